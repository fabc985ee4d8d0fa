package dot

import (
	"strings"
	"testing"

	"github.com/matzehuels/tinct/pkg/color"
	"github.com/matzehuels/tinct/pkg/graph"
)

func triangle(t *testing.T) *graph.Undirected[string] {
	t.Helper()
	g, err := graph.NewUndirected(
		[]string{"a", "b", "c"},
		[]graph.Edge[string]{{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "a", To: "c"}},
	)
	if err != nil {
		t.Fatalf("NewUndirected() error = %v", err)
	}
	return g
}

func TestToDOTStructure(t *testing.T) {
	dot := ToDOT(triangle(t), NoFill[string](), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("ToDOT() should start with 'graph G {'")
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("ToDOT() should end with '}'")
	}

	expected := []string{
		"layout=neato",
		"bgcolor=\"transparent\"",
		`"a" -- "b";`,
		`"a" -- "c";`,
		`"b" -- "c";`,
	}
	for _, exp := range expected {
		if !strings.Contains(dot, exp) {
			t.Errorf("ToDOT() missing %q", exp)
		}
	}
}

func TestToDOTOneLinePerEdge(t *testing.T) {
	dot := ToDOT(triangle(t), NoFill[string](), Options{})

	if got := strings.Count(dot, "--"); got != 3 {
		t.Errorf("edge lines = %d, want 3", got)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	g := triangle(t)
	if a, b := ToDOT(g, NoFill[string](), Options{}), ToDOT(g, NoFill[string](), Options{}); a != b {
		t.Error("ToDOT() should be deterministic for equal inputs")
	}
}

func TestToDOTPaletteFill(t *testing.T) {
	c := color.Coloring[string]{"a": 0, "b": 1, "c": 2}

	dot := ToDOT(triangle(t), PaletteFill(c), Options{Detailed: true})

	for _, exp := range []string{"fillcolor=", "color 0", "color 1", "color 2"} {
		if !strings.Contains(dot, exp) {
			t.Errorf("ToDOT() missing %q", exp)
		}
	}
}

func TestToDOTUncoloredNodes(t *testing.T) {
	// Partial colorings leave the remaining nodes with the default fill.
	c := color.Coloring[string]{"a": 0}

	dot := ToDOT(triangle(t), PaletteFill(c), Options{})

	if got := strings.Count(dot, "fillcolor=\"#"); got != 1 {
		t.Errorf("filled nodes = %d, want 1", got)
	}
}

func TestToDOTEmptyGraph(t *testing.T) {
	dot := ToDOT(&graph.Undirected[string]{}, NoFill[string](), Options{})

	if !strings.Contains(dot, "graph G {") {
		t.Error("ToDOT() should produce valid DOT for the empty graph")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8pt" height="4pt" viewBox="0.00 0.00 120.75 60.25">body</svg>`)

	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 120.75 60.25"`) {
		t.Errorf("normalizeViewBox() = %s, want origin view box", out)
	}
	if !strings.Contains(out, `width="121" height="60"`) {
		t.Errorf("normalizeViewBox() = %s, want pixel dimensions", out)
	}
}
