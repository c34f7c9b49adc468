package tree

import "github.com/corbinhal/dictgraph/cache"

// NodeTree is an instantiated walk: a reference to a graph [cache.Node],
// the title and correlation carried from the TypeTree node that matched
// it, and ordered children.
type NodeTree struct {
	Node        cache.Node
	Title       string
	Correlation Correlation
	Children    []NodeTree
}

// Construct walks graph starting at root, guided by typeTree: for every
// child TypeTree, it enumerates the root's neighbors matching that
// child's label (not its title — the title only names the output key;
// the label is what identifies which node type to descend into) and
// recursively constructs a subtree for each neighbor, in
// (child-type order, neighbor order).
//
// No cycle detection is performed; dictionaries that are acyclic along
// the declared traversal produce a finite tree.
func Construct(graph *cache.CachedGraph, typeTree TypeTree, root cache.Node) NodeTree {
	nt := NodeTree{
		Node:        root,
		Title:       typeTree.Title,
		Correlation: typeTree.Correlation,
	}
	for _, childType := range typeTree.Children {
		for _, neighbor := range graph.NeighborsLabeled(root.ID, childType.Label) {
			nt.Children = append(nt.Children, Construct(graph, childType, neighbor))
		}
	}
	return nt
}
