package graph

import (
	"errors"
	"strings"
	"testing"
)

func TestRename_RoundTrip(t *testing.T) {
	g := mustUndirected(t, []string{"a", "b", "c"}, []Edge[string]{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
	})

	upper, err := g.Rename(strings.ToUpper)
	if err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if !upper.ContainsEdge("A", "B") {
		t.Error("renamed graph missing relabeled edge A-B")
	}

	back, err := upper.Rename(strings.ToLower)
	if err != nil {
		t.Fatalf("inverse Rename() error = %v", err)
	}
	if !back.Equal(g) {
		t.Error("rename round trip did not reproduce the original graph")
	}
}

func TestRename_ConstantFunctionCollides(t *testing.T) {
	g := mustUndirected(t, []string{"a", "b"}, nil)

	_, err := g.Rename(func(string) string { return "x" })
	if !errors.Is(err, ErrRenameCollision) {
		t.Errorf("Rename(constant) error = %v, want ErrRenameCollision", err)
	}
}

func TestUnsafeUnion_CollapsesEqualLabels(t *testing.T) {
	g := mustUndirected(t, []string{"a", "b"}, []Edge[string]{{From: "a", To: "b"}})
	h := mustUndirected(t, []string{"b", "c"}, []Edge[string]{{From: "b", To: "c"}})

	u := g.UnsafeUnion(h)

	if u.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3 (shared label collapses)", u.NodeCount())
	}
	if !u.ContainsEdge("a", "b") || !u.ContainsEdge("b", "c") {
		t.Error("union lost an edge")
	}
}

func TestSafeUnion_DisjointAfterRename(t *testing.T) {
	g := mustUndirected(t, []string{"a", "b"}, []Edge[string]{{From: "a", To: "b"}})
	h := mustUndirected(t, []string{"a", "c"}, []Edge[string]{{From: "a", To: "c"}})

	u, err := g.SafeUnion(h,
		func(n string) string { return "l." + n },
		func(n string) string { return "r." + n },
	)
	if err != nil {
		t.Fatalf("SafeUnion() error = %v", err)
	}

	if got, want := u.NodeCount(), g.NodeCount()+h.NodeCount(); got != want {
		t.Errorf("NodeCount() = %d, want %d", got, want)
	}
	if got, want := u.EdgeCount(), g.EdgeCount()+h.EdgeCount(); got != want {
		t.Errorf("EdgeCount() = %d, want %d", got, want)
	}
}

func TestSafeUnion_RejectsOverlap(t *testing.T) {
	g := mustUndirected(t, []string{"a"}, nil)
	h := mustUndirected(t, []string{"a"}, nil)

	id := func(n string) string { return n }
	_, err := g.SafeUnion(h, id, id)
	if !errors.Is(err, ErrOverlappingUnion) {
		t.Errorf("SafeUnion(overlapping) error = %v, want ErrOverlappingUnion", err)
	}
}

func TestSubgraphWith_InducedEdges(t *testing.T) {
	g := mustUndirected(t, []string{"a", "b", "c", "d"}, []Edge[string]{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "c", To: "d"},
	})

	sub, err := g.SubgraphWith([]string{"a", "b", "d"})
	if err != nil {
		t.Fatalf("SubgraphWith() error = %v", err)
	}

	if sub.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", sub.NodeCount())
	}
	if !sub.ContainsEdge("a", "b") {
		t.Error("induced subgraph lost edge a-b")
	}
	if sub.ContainsEdge("c", "d") || sub.ContainsEdge("b", "c") {
		t.Error("induced subgraph kept an edge with a dropped endpoint")
	}
}

func TestSubgraphWithout_DropsNodes(t *testing.T) {
	g := mustUndirected(t, []string{"a", "b", "c"}, []Edge[string]{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
	})

	sub, err := g.SubgraphWithout([]string{"b"})
	if err != nil {
		t.Fatalf("SubgraphWithout() error = %v", err)
	}

	if sub.ContainsNode("b") {
		t.Error("dropped node still present")
	}
	if sub.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", sub.EdgeCount())
	}
}

func TestSubgraph_RejectsOutsideNodes(t *testing.T) {
	g := mustUndirected(t, []string{"a"}, nil)

	if _, err := g.SubgraphWith([]string{"z"}); !errors.Is(err, ErrNotSubgraph) {
		t.Errorf("SubgraphWith(outside) error = %v, want ErrNotSubgraph", err)
	}
	if _, err := g.SubgraphWithout([]string{"z"}); !errors.Is(err, ErrNotSubgraph) {
		t.Errorf("SubgraphWithout(outside) error = %v, want ErrNotSubgraph", err)
	}
}

func TestEqual_Structural(t *testing.T) {
	g1 := mustUndirected(t, []string{"a", "b"}, []Edge[string]{{From: "a", To: "b"}})
	g2 := mustUndirected(t, []string{"b", "a"}, []Edge[string]{{From: "b", To: "a"}})
	g3 := mustUndirected(t, []string{"a", "b"}, nil)

	if !g1.Equal(g2) {
		t.Error("structurally identical graphs compare unequal")
	}
	if g1.Equal(g3) {
		t.Error("graphs with different edge sets compare equal")
	}
}

func TestDirected_OneOrientationOnly(t *testing.T) {
	g, err := NewDirected([]string{"a", "b"}, []Edge[string]{{From: "a", To: "b"}})
	if err != nil {
		t.Fatalf("NewDirected() error = %v", err)
	}

	if !g.ContainsEdge("a", "b") {
		t.Error("directed edge missing")
	}
	if g.ContainsEdge("b", "a") {
		t.Error("directed graph stored the reverse orientation")
	}
	if got := g.PredecessorsOf("b"); len(got) != 1 || got[0] != "a" {
		t.Errorf("PredecessorsOf(b) = %v, want [a]", got)
	}
	if got := g.ArityOf("b"); got != 0 {
		t.Errorf("ArityOf(b) = %d, want 0", got)
	}
}

func TestDirected_RemoveEdgeKeepsReverse(t *testing.T) {
	g, err := NewDirected([]string{"a", "b"}, []Edge[string]{
		{From: "a", To: "b"},
		{From: "b", To: "a"},
	})
	if err != nil {
		t.Fatalf("NewDirected() error = %v", err)
	}

	g2 := g.RemoveEdge("a", "b")

	if g2.ContainsEdge("a", "b") {
		t.Error("removed edge still present")
	}
	if !g2.ContainsEdge("b", "a") {
		t.Error("reverse edge was removed as well")
	}
}
