package cache

// WalkPath descends the graph from root along path, an ordered sequence
// of labels: at each depth it follows neighbors labeled path[d] and
// recurses on path[d+1:]. When whole is true every neighbor encountered
// at every depth is collected; when false, only neighbors reached at the
// final depth whose label equals the last element of path are collected.
// Results are deduplicated by node id in first-seen order, which also
// breaks cycles (a node already visited is never descended into again).
func (g *CachedGraph) WalkPath(root string, path []string, whole bool) []Node {
	return g.WalkPaths(root, [][]string{path}, whole)
}

// WalkPaths is the union, deduplicated by node id across every path, of
// [CachedGraph.WalkPath] applied to each element of paths.
func (g *CachedGraph) WalkPaths(root string, paths [][]string, whole bool) []Node {
	visited := map[string]bool{root: true}
	var out []Node
	for _, path := range paths {
		g.walk(root, path, whole, visited, &out)
	}
	return out
}

func (g *CachedGraph) walk(current string, path []string, whole bool, visited map[string]bool, out *[]Node) {
	if len(path) == 0 {
		return
	}
	label, rest := path[0], path[1:]
	final := len(rest) == 0

	for _, n := range g.NeighborsLabeled(current, label) {
		if visited[n.ID] {
			continue
		}
		visited[n.ID] = true
		if whole || final {
			*out = append(*out, n)
		}
		g.walk(n.ID, rest, whole, visited, out)
	}
}
