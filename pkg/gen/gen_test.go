package gen

import (
	"errors"
	"testing"
)

func TestRandom_Deterministic(t *testing.T) {
	opts := Options{Nodes: 12, Density: 0.3, Connected: true, Seed: 7}

	g1, err := Random(opts)
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	g2, err := Random(opts)
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}

	if !g1.Equal(g2) {
		t.Error("equal seeds produced different graphs")
	}
}

func TestRandom_SeedChangesGraph(t *testing.T) {
	g1, err := Random(Options{Nodes: 12, Density: 0.5, Seed: 1})
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	g2, err := Random(Options{Nodes: 12, Density: 0.5, Seed: 2})
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}

	if g1.Equal(g2) {
		t.Error("different seeds produced identical graphs (possible, but suspicious)")
	}
}

func TestRandom_Connected(t *testing.T) {
	g, err := Random(Options{Nodes: 20, Density: 0, Connected: true, Seed: 3})
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}

	// Zero density means the spanning tree is all there is; walk it.
	nodes := g.Nodes()
	seen := map[string]bool{nodes[0]: true}
	frontier := []string{nodes[0]}
	for len(frontier) > 0 {
		n := frontier[0]
		frontier = frontier[1:]
		for _, nb := range g.NeighborsOf(n) {
			if !seen[nb] {
				seen[nb] = true
				frontier = append(frontier, nb)
			}
		}
	}
	if len(seen) != g.NodeCount() {
		t.Errorf("reached %d of %d nodes, graph not connected", len(seen), g.NodeCount())
	}
	if g.EdgeCount() != 2*(g.NodeCount()-1) {
		t.Errorf("EdgeCount() = %d, want spanning tree size %d", g.EdgeCount(), 2*(g.NodeCount()-1))
	}
}

func TestRandom_DensityExtremes(t *testing.T) {
	empty, err := Random(Options{Nodes: 8, Density: 0, Seed: 1})
	if err != nil {
		t.Fatalf("Random(density 0) error = %v", err)
	}
	if empty.EdgeCount() != 0 {
		t.Errorf("density 0 produced %d edges", empty.EdgeCount())
	}

	full, err := Random(Options{Nodes: 8, Density: 1, Seed: 1})
	if err != nil {
		t.Fatalf("Random(density 1) error = %v", err)
	}
	if got, want := full.EdgeCount(), 8*7; got != want {
		t.Errorf("density 1 EdgeCount() = %d, want %d", got, want)
	}
}

func TestRandom_RejectsBadOptions(t *testing.T) {
	if _, err := Random(Options{Nodes: 0}); !errors.Is(err, ErrBadSize) {
		t.Errorf("Random(0 nodes) error = %v, want ErrBadSize", err)
	}
	if _, err := Random(Options{Nodes: 3, Density: 1.5}); !errors.Is(err, ErrBadDensity) {
		t.Errorf("Random(density 1.5) error = %v, want ErrBadDensity", err)
	}
}

func TestComplete(t *testing.T) {
	g, err := Complete(5)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if g.NodeCount() != 5 {
		t.Errorf("NodeCount() = %d, want 5", g.NodeCount())
	}
	if got, want := g.EdgeCount(), 5*4; got != want {
		t.Errorf("EdgeCount() = %d, want %d", got, want)
	}
}

func TestCycle(t *testing.T) {
	g, err := Cycle(6)
	if err != nil {
		t.Fatalf("Cycle() error = %v", err)
	}
	for _, n := range g.Nodes() {
		if got := g.ArityOf(n); got != 2 {
			t.Errorf("ArityOf(%s) = %d, want 2", n, got)
		}
	}

	if _, err := Cycle(2); !errors.Is(err, ErrBadSize) {
		t.Errorf("Cycle(2) error = %v, want ErrBadSize", err)
	}
}
