package cache

import (
	"context"
	"log/slog"
	"sync"

	"github.com/corbinhal/dictgraph/internal/trace"
)

// CachedGraph is the in-memory property graph: every node, owned by id,
// and a bidirectional adjacency mirror of every edge.
//
// Construction ([CachedGraph.AddNode], [CachedGraph.AddEdge], [CachedGraph.RemoveNode])
// must run single-threaded; concurrent readers ([CachedGraph.GetNode],
// the Neighbors family, [CachedGraph.WalkPath]/[CachedGraph.WalkPaths])
// are safe once the graph is loaded. RemoveNode is the only mutator
// permitted during the serving phase, and is mutually exclusive with all
// readers via mu.
type CachedGraph struct {
	cfg config
	mu  sync.RWMutex

	nodes map[string]Node
	// nodeOrder records every node id in the order it was first inserted,
	// so label-filtered scans are stable (per run) rather than subject to
	// Go's randomized map iteration.
	nodeOrder []string
	// adj[a][b] holds every edge between a and b, in insertion order.
	// Mirrored: adj[a][b] and adj[b][a] hold the same edge instances.
	adj map[string]map[string][]Edge
	// adjOrder[a] records the neighbor ids of a in the order each was
	// first linked, mirroring nodeOrder's purpose for adjacency scans.
	adjOrder map[string][]string
}

// New returns an empty CachedGraph.
func New(opts ...Option) *CachedGraph {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &CachedGraph{
		cfg:      cfg,
		nodes:    make(map[string]Node),
		adj:      make(map[string]map[string][]Edge),
		adjOrder: make(map[string][]string),
	}
}

// AddNode inserts n, keyed by n.ID. A later AddNode call with an id equal
// to an existing node replaces the entry; callers performing anything
// but a single bulk load must not rely on that replacement behavior.
func (g *CachedGraph) AddNode(ctx context.Context, n Node) {
	op := trace.Begin(ctx, g.cfg.logger, "dictgraph.cache.add_node", slog.String("id", n.ID))
	defer op.End(nil)

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.nodes[n.ID]; !exists {
		g.nodeOrder = append(g.nodeOrder, n.ID)
	}
	g.nodes[n.ID] = n
}

// AddEdge inserts e into the adjacency mirror. It fails with a
// [errs.ReferentialError] if either endpoint is absent from the graph.
// Repeated calls with an identical (src, dst, label) accumulate rather
// than replace, since the graph is a multigraph.
func (g *CachedGraph) AddEdge(ctx context.Context, e Edge) error {
	op := trace.Begin(ctx, g.cfg.logger, "dictgraph.cache.add_edge",
		slog.String("src", e.SrcID), slog.String("dst", e.DstID), slog.String("label", e.Label))

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[e.SrcID]; !ok {
		err := referentialError("cache.AddEdge", e.SrcID)
		op.End(err)
		return err
	}
	if _, ok := g.nodes[e.DstID]; !ok {
		err := referentialError("cache.AddEdge", e.DstID)
		op.End(err)
		return err
	}

	g.link(e.SrcID, e.DstID, e)
	g.link(e.DstID, e.SrcID, e)

	op.End(nil)
	return nil
}

func (g *CachedGraph) link(from, to string, e Edge) {
	if g.adj[from] == nil {
		g.adj[from] = make(map[string][]Edge)
	}
	if _, exists := g.adj[from][to]; !exists {
		g.adjOrder[from] = append(g.adjOrder[from], to)
	}
	g.adj[from][to] = append(g.adj[from][to], e)
}

// GetNode returns the node with the given id, if present.
func (g *CachedGraph) GetNode(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	return n, ok
}

// NodeCount returns the number of nodes currently in the graph.
func (g *CachedGraph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// NodesLabeled returns every node whose label is in labels, in node
// insertion order. The result is deterministic across repeated calls on
// the same graph.
func (g *CachedGraph) NodesLabeled(labels ...string) []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	want := make(map[string]bool, len(labels))
	for _, l := range labels {
		want[l] = true
	}

	var out []Node
	for _, id := range g.nodeOrder {
		n, ok := g.nodes[id]
		if !ok {
			continue
		}
		if want[n.Label] {
			out = append(out, n)
		}
	}
	return out
}

// Neighbors returns every node adjacent to id, with no duplicates. If id
// is absent, the result is empty.
func (g *CachedGraph) Neighbors(id string) []Node {
	return g.NeighborsLabeled(id)
}

// NeighborsLabeled returns every node adjacent to id whose label is in
// labels (or every adjacent node, if labels is empty), with no
// duplicates, in the order each neighbor was first linked. The result
// is deterministic across repeated calls on the same graph.
func (g *CachedGraph) NeighborsLabeled(id string, labels ...string) []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var want map[string]bool
	if len(labels) > 0 {
		want = make(map[string]bool, len(labels))
		for _, l := range labels {
			want[l] = true
		}
	}

	var out []Node
	for _, dst := range g.adjOrder[id] {
		n, ok := g.nodes[dst]
		if !ok {
			continue
		}
		if want != nil && !want[n.Label] {
			continue
		}
		out = append(out, n)
	}
	return out
}

// GetEdges returns the edges between src and dst, in insertion order.
func (g *CachedGraph) GetEdges(src, dst string) ([]Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges, ok := g.adj[src][dst]
	if !ok {
		return nil, false
	}
	cp := make([]Edge, len(edges))
	copy(cp, edges)
	return cp, true
}

// RemoveNode removes the node with the given id and every incident
// adjacency entry on both sides, returning the removed node if it was
// present. RemoveNode is the only mutator permitted once the graph has
// entered its read-mostly serving phase; it is mutually exclusive with
// all readers.
func (g *CachedGraph) RemoveNode(ctx context.Context, id string) (Node, bool) {
	op := trace.Begin(ctx, g.cfg.logger, "dictgraph.cache.remove_node", slog.String("id", id))
	defer op.End(nil)

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.removeNodeLocked(id)
}

func (g *CachedGraph) removeNodeLocked(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	delete(g.nodes, id)
	g.nodeOrder = removeID(g.nodeOrder, id)
	for peer := range g.adj[id] {
		delete(g.adj[peer], id)
		g.adjOrder[peer] = removeID(g.adjOrder[peer], id)
	}
	delete(g.adj, id)
	delete(g.adjOrder, id)
	return n, true
}

// removeID returns order with the first occurrence of id removed.
func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

// RemoveNodes removes every node in ids, returning the nodes actually
// present before removal. A bulk form of [CachedGraph.RemoveNode] for
// callers (e.g. a project-exclusion pass) that drop many nodes at once
// under a single lock acquisition.
func (g *CachedGraph) RemoveNodes(ctx context.Context, ids ...string) []Node {
	op := trace.Begin(ctx, g.cfg.logger, "dictgraph.cache.remove_nodes", slog.Int("count", len(ids)))
	defer op.End(nil)

	g.mu.Lock()
	defer g.mu.Unlock()

	removed := make([]Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := g.removeNodeLocked(id); ok {
			removed = append(removed, n)
		}
	}
	return removed
}
