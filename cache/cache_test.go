package cache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/corbinhal/dictgraph/cache"
	"github.com/corbinhal/dictgraph/docval"
)

func node(id, label string) cache.Node {
	return cache.Node{ID: id, Label: label, Props: docval.New()}
}

func TestAddEdgeFailsOnMissingEndpoint(t *testing.T) {
	g := cache.New()
	ctx := t.Context()
	g.AddNode(ctx, node("case-1", "case"))

	err := g.AddEdge(ctx, cache.Edge{Label: "member_of", SrcID: "case-1", DstID: "missing"})
	if err == nil {
		t.Fatal("expected AddEdge to fail when dst endpoint is absent")
	}
}

func TestAddEdgeMirrorsBothDirections(t *testing.T) {
	g := cache.New()
	ctx := t.Context()
	g.AddNode(ctx, node("case-1", "case"))
	g.AddNode(ctx, node("project-1", "project"))

	if err := g.AddEdge(ctx, cache.Edge{Label: "member_of", SrcID: "case-1", DstID: "project-1"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	fwd, ok := g.GetEdges("case-1", "project-1")
	if !ok || len(fwd) != 1 {
		t.Fatalf("expected 1 forward edge, got %v, %v", fwd, ok)
	}
	back, ok := g.GetEdges("project-1", "case-1")
	if !ok || len(back) != 1 {
		t.Fatalf("expected 1 mirrored edge, got %v, %v", back, ok)
	}
}

func TestAddEdgeAccumulatesMultigraph(t *testing.T) {
	g := cache.New()
	ctx := t.Context()
	g.AddNode(ctx, node("a", "x"))
	g.AddNode(ctx, node("b", "y"))

	for i := 0; i < 3; i++ {
		if err := g.AddEdge(ctx, cache.Edge{Label: "rel", SrcID: "a", DstID: "b"}); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	edges, _ := g.GetEdges("a", "b")
	if len(edges) != 3 {
		t.Fatalf("expected 3 accumulated edges, got %d", len(edges))
	}
}

func TestRemoveNodeClearsBothSidesOfAdjacency(t *testing.T) {
	g := cache.New()
	ctx := t.Context()
	g.AddNode(ctx, node("a", "x"))
	g.AddNode(ctx, node("b", "y"))
	if err := g.AddEdge(ctx, cache.Edge{Label: "rel", SrcID: "a", DstID: "b"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	removed, ok := g.RemoveNode(ctx, "a")
	if !ok || removed.ID != "a" {
		t.Fatalf("expected to remove node a, got %v, %v", removed, ok)
	}
	if _, ok := g.GetNode("a"); ok {
		t.Fatal("expected a to be gone")
	}
	if edges, ok := g.GetEdges("b", "a"); ok && len(edges) > 0 {
		t.Fatalf("expected no residual edges from b to removed a, got %v", edges)
	}
}

func TestRemoveNodesBulk(t *testing.T) {
	g := cache.New()
	ctx := t.Context()
	g.AddNode(ctx, node("a", "x"))
	g.AddNode(ctx, node("b", "x"))
	g.AddNode(ctx, node("c", "x"))

	removed := g.RemoveNodes(ctx, "a", "b", "missing")
	if len(removed) != 2 {
		t.Fatalf("expected 2 nodes actually removed, got %d", len(removed))
	}
	if _, ok := g.GetNode("c"); !ok {
		t.Fatal("expected c to survive")
	}
}

func TestNeighborsLabeledFiltersByLabel(t *testing.T) {
	g := cache.New()
	ctx := t.Context()
	g.AddNode(ctx, node("case-1", "case"))
	g.AddNode(ctx, node("file-1", "file"))
	g.AddNode(ctx, node("project-1", "project"))
	if err := g.AddEdge(ctx, cache.Edge{Label: "data_from", SrcID: "case-1", DstID: "file-1"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(ctx, cache.Edge{Label: "member_of", SrcID: "case-1", DstID: "project-1"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	files := g.NeighborsLabeled("case-1", "file")
	if len(files) != 1 || files[0].ID != "file-1" {
		t.Fatalf("expected only file-1, got %v", files)
	}

	all := g.Neighbors("case-1")
	if len(all) != 2 {
		t.Fatalf("expected 2 neighbors total, got %d", len(all))
	}
}

func TestWalkPathWholeCollectsEveryDepth(t *testing.T) {
	g := cache.New()
	ctx := t.Context()
	g.AddNode(ctx, node("case-1", "case"))
	g.AddNode(ctx, node("sample-1", "sample"))
	g.AddNode(ctx, node("file-1", "file"))
	if err := g.AddEdge(ctx, cache.Edge{Label: "derived_from", SrcID: "sample-1", DstID: "case-1"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(ctx, cache.Edge{Label: "data_from", SrcID: "file-1", DstID: "sample-1"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	whole := g.WalkPath("case-1", []string{"sample", "file"}, true)
	if len(whole) != 2 {
		t.Fatalf("expected both sample and file collected, got %v", whole)
	}

	leavesOnly := g.WalkPath("case-1", []string{"sample", "file"}, false)
	if len(leavesOnly) != 1 || leavesOnly[0].ID != "file-1" {
		t.Fatalf("expected only file-1 collected, got %v", leavesOnly)
	}
}

func TestWalkPathDedupsAndBreaksCycles(t *testing.T) {
	g := cache.New()
	ctx := t.Context()
	g.AddNode(ctx, node("a", "x"))
	g.AddNode(ctx, node("b", "x"))
	// a <-> b forms a cycle under label "x".
	if err := g.AddEdge(ctx, cache.Edge{Label: "rel", SrcID: "a", DstID: "b"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	got := g.WalkPath("a", []string{"x", "x", "x"}, true)
	if len(got) != 1 {
		t.Fatalf("expected cycle to be broken after first hop, got %v", got)
	}
}

func TestWalkPathsUnionsAcrossPaths(t *testing.T) {
	g := cache.New()
	ctx := t.Context()
	g.AddNode(ctx, node("case-1", "case"))
	g.AddNode(ctx, node("sample-1", "sample"))
	g.AddNode(ctx, node("file-1", "file"))
	if err := g.AddEdge(ctx, cache.Edge{Label: "derived_from", SrcID: "sample-1", DstID: "case-1"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(ctx, cache.Edge{Label: "data_from", SrcID: "file-1", DstID: "case-1"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	got := g.WalkPaths("case-1", [][]string{{"sample"}, {"file"}}, false)
	if len(got) != 2 {
		t.Fatalf("expected union of both paths, got %v", got)
	}
}

func TestNeighborsLabeledIsOrderStableAcrossRepeatedCalls(t *testing.T) {
	g := cache.New()
	ctx := t.Context()
	g.AddNode(ctx, node("case-1", "case"))
	g.AddNode(ctx, node("file-2", "file"))
	g.AddNode(ctx, node("file-1", "file"))
	g.AddNode(ctx, node("file-3", "file"))
	if err := g.AddEdge(ctx, cache.Edge{Label: "data_from", SrcID: "case-1", DstID: "file-2"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(ctx, cache.Edge{Label: "data_from", SrcID: "case-1", DstID: "file-1"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(ctx, cache.Edge{Label: "data_from", SrcID: "case-1", DstID: "file-3"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	want := []string{"file-2", "file-1", "file-3"}
	for i := 0; i < 20; i++ {
		got := g.NeighborsLabeled("case-1", "file")
		if len(got) != len(want) {
			t.Fatalf("call %d: got %v, want %v", i, got, want)
		}
		for j, n := range got {
			if n.ID != want[j] {
				t.Fatalf("call %d: got order %v, want %v", i, idsOf(got), want)
			}
		}
	}
}

func TestNodesLabeledIsOrderStableAcrossRepeatedCalls(t *testing.T) {
	g := cache.New()
	ctx := t.Context()
	g.AddNode(ctx, node("case-2", "case"))
	g.AddNode(ctx, node("project-1", "project"))
	g.AddNode(ctx, node("case-1", "case"))
	g.AddNode(ctx, node("case-3", "case"))

	want := []string{"case-2", "case-1", "case-3"}
	for i := 0; i < 20; i++ {
		got := g.NodesLabeled("case")
		if len(got) != len(want) {
			t.Fatalf("call %d: got %v, want %v", i, idsOf(got), want)
		}
		for j, n := range got {
			if n.ID != want[j] {
				t.Fatalf("call %d: got order %v, want %v", i, idsOf(got), want)
			}
		}
	}
}

func idsOf(nodes []cache.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func TestConcurrentReadsDuringServingPhase(t *testing.T) {
	g := cache.New()
	ctx := t.Context()
	for i := 0; i < 50; i++ {
		g.AddNode(ctx, node(fmt.Sprintf("case-%d", i), "case"))
	}

	const numGoroutines = 100
	var wg sync.WaitGroup
	for i := range numGoroutines {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("case-%d", i%50)
			if _, ok := g.GetNode(id); !ok {
				t.Errorf("expected %s to be present", id)
			}
			_ = g.NeighborsLabeled(id, "case")
		}(i)
	}
	wg.Wait()

	if g.NodeCount() != 50 {
		t.Fatalf("expected 50 nodes, got %d", g.NodeCount())
	}
}
