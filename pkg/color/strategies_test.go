package color_test

import (
	"errors"
	"testing"

	"github.com/matzehuels/tinct/pkg/color"
	"github.com/matzehuels/tinct/pkg/gen"
	"github.com/matzehuels/tinct/pkg/graph"
)

func strategies() []color.Strategy[string] {
	return []color.Strategy[string]{
		color.Exhaustive[string]{},
		color.Progressive[string]{},
		color.BranchBound[string]{},
	}
}

func triangle(t *testing.T) *graph.Undirected[string] {
	t.Helper()
	g, err := graph.NewUndirected([]string{"a", "b", "c"}, []graph.Edge[string]{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "a", To: "c"},
	})
	if err != nil {
		t.Fatalf("triangle: %v", err)
	}
	return g
}

func TestStrategies_TriangleNeedsThreeColors(t *testing.T) {
	g := triangle(t)

	for _, s := range strategies() {
		c, found, err := s.Color(g, color.Options[string]{MaxColors: 3})
		if err != nil {
			t.Fatalf("%s: Color(max 3) error = %v", s.Name(), err)
		}
		if !found {
			t.Fatalf("%s: triangle not colored with 3 colors", s.Name())
		}
		if err := color.Validate(g, c, 3); err != nil {
			t.Errorf("%s: invalid coloring: %v", s.Name(), err)
		}

		_, found, err = s.Color(g, color.Options[string]{MaxColors: 2})
		if err != nil {
			t.Fatalf("%s: Color(max 2) error = %v", s.Name(), err)
		}
		if found {
			t.Errorf("%s: triangle colored with 2 colors", s.Name())
		}
	}
}

func TestStrategies_EdgelessGraphOneColor(t *testing.T) {
	g, err := graph.NewUndirected([]string{"a", "b", "c", "d"}, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range strategies() {
		c, found, err := s.Color(g, color.Options[string]{MaxColors: 1})
		if err != nil {
			t.Fatalf("%s: error = %v", s.Name(), err)
		}
		if !found {
			t.Fatalf("%s: edgeless graph not 1-colorable", s.Name())
		}
		for n, idx := range c {
			if idx != 0 {
				t.Errorf("%s: node %s has color %d, want 0", s.Name(), n, idx)
			}
		}
	}
}

func TestStrategies_EmptyGraph(t *testing.T) {
	g, err := graph.NewUndirected[string](nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range strategies() {
		c, found, err := s.Color(g, color.Options[string]{})
		if err != nil {
			t.Fatalf("%s: error = %v", s.Name(), err)
		}
		if !found {
			t.Errorf("%s: empty graph not colorable", s.Name())
		}
		if len(c) != 0 {
			t.Errorf("%s: empty graph coloring has %d entries", s.Name(), len(c))
		}
	}
}

func TestStrategies_BadOrderFailsBeforeSearch(t *testing.T) {
	g := triangle(t)

	cases := map[string][]string{
		"missing node":  {"a", "b"},
		"duplicate":     {"a", "a", "b"},
		"foreign node":  {"a", "b", "z"},
		"dup full size": {"a", "b", "b"},
	}
	for name, order := range cases {
		for _, s := range strategies() {
			_, _, err := s.Color(g, color.Options[string]{Order: order})
			if !errors.Is(err, color.ErrBadOrder) {
				t.Errorf("%s/%s: error = %v, want ErrBadOrder", s.Name(), name, err)
			}
		}
	}
}

// The node order is a performance hint only: any permutation finds a
// coloring when one exists.
func TestStrategies_OrderNeverAffectsFeasibility(t *testing.T) {
	g := triangle(t)
	orders := [][]string{
		{"a", "b", "c"},
		{"c", "b", "a"},
		{"b", "a", "c"},
	}

	for _, s := range strategies() {
		for _, order := range orders {
			c, found, err := s.Color(g, color.Options[string]{MaxColors: 3, Order: order})
			if err != nil || !found {
				t.Fatalf("%s order %v: found=%v err=%v", s.Name(), order, found, err)
			}
			if err := color.Validate(g, c, 3); err != nil {
				t.Errorf("%s order %v: %v", s.Name(), order, err)
			}
		}
	}
}

func TestStrategies_ColorsWithinBound(t *testing.T) {
	g, err := gen.Cycle(6)
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range strategies() {
		c, found, err := s.Color(g, color.Options[string]{MaxColors: 2})
		if err != nil {
			t.Fatalf("%s: error = %v", s.Name(), err)
		}
		if !found {
			t.Fatalf("%s: even cycle not 2-colorable", s.Name())
		}
		for n, idx := range c {
			if idx < 0 || idx >= 2 {
				t.Errorf("%s: node %s color %d outside [0,2)", s.Name(), n, idx)
			}
		}
	}
}

func TestStrategies_OddCycleNeedsThree(t *testing.T) {
	g, err := gen.Cycle(7)
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range strategies() {
		if _, found, err := s.Color(g, color.Options[string]{MaxColors: 2}); err != nil || found {
			t.Errorf("%s: odd cycle with 2 colors: found=%v err=%v", s.Name(), found, err)
		}
		c, found, err := s.Color(g, color.Options[string]{MaxColors: 3})
		if err != nil || !found {
			t.Fatalf("%s: odd cycle with 3 colors: found=%v err=%v", s.Name(), found, err)
		}
		if err := color.Validate(g, c, 3); err != nil {
			t.Errorf("%s: %v", s.Name(), err)
		}
	}
}

// All three strategies must agree on feasibility for the same inputs, even
// when they return different colorings.
func TestStrategies_AgreeOnFeasibility(t *testing.T) {
	for seed := uint64(1); seed <= 4; seed++ {
		g, err := gen.Random(gen.Options{Nodes: 7, Density: 0.45, Seed: seed})
		if err != nil {
			t.Fatal(err)
		}
		for maxColors := 1; maxColors <= 4; maxColors++ {
			var verdicts []bool
			for _, s := range strategies() {
				c, found, err := s.Color(g, color.Options[string]{MaxColors: maxColors})
				if err != nil {
					t.Fatalf("%s seed=%d max=%d: %v", s.Name(), seed, maxColors, err)
				}
				if found {
					if err := color.Validate(g, c, maxColors); err != nil {
						t.Errorf("%s seed=%d max=%d: %v", s.Name(), seed, maxColors, err)
					}
				}
				verdicts = append(verdicts, found)
			}
			if verdicts[0] != verdicts[1] || verdicts[1] != verdicts[2] {
				t.Errorf("seed=%d max=%d: strategies disagree: %v", seed, maxColors, verdicts)
			}
		}
	}
}

// Progressive's first success uses the fewest colors possible, so with the
// default budget it reports the chromatic number.
func TestProgressive_FindsChromaticNumber(t *testing.T) {
	cases := []struct {
		name string
		g    func() (*graph.Undirected[string], error)
		want int
	}{
		{"even cycle", func() (*graph.Undirected[string], error) { return gen.Cycle(8) }, 2},
		{"odd cycle", func() (*graph.Undirected[string], error) { return gen.Cycle(9) }, 3},
		{"complete K4", func() (*graph.Undirected[string], error) { return gen.Complete(4) }, 4},
	}

	for _, tc := range cases {
		g, err := tc.g()
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		c, found, err := color.Progressive[string]{}.Color(g, color.Options[string]{})
		if err != nil || !found {
			t.Fatalf("%s: found=%v err=%v", tc.name, found, err)
		}
		if got := color.NumColors(c); got != tc.want {
			t.Errorf("%s: NumColors = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestStrategies_Deterministic(t *testing.T) {
	g, err := gen.Random(gen.Options{Nodes: 8, Density: 0.4, Seed: 11})
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range strategies() {
		c1, found1, err1 := s.Color(g, color.Options[string]{MaxColors: 4})
		c2, found2, err2 := s.Color(g, color.Options[string]{MaxColors: 4})
		if found1 != found2 || (err1 == nil) != (err2 == nil) {
			t.Fatalf("%s: verdicts differ across identical runs", s.Name())
		}
		if len(c1) != len(c2) {
			t.Fatalf("%s: coloring sizes differ", s.Name())
		}
		for n, idx := range c1 {
			if c2[n] != idx {
				t.Errorf("%s: node %s colored %d then %d", s.Name(), n, idx, c2[n])
			}
		}
	}
}

func TestOptions_ExpansionBudget(t *testing.T) {
	g, err := gen.Complete(6)
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range strategies() {
		_, _, err := s.Color(g, color.Options[string]{MaxColors: 5, MaxExpansions: 3})
		if !errors.Is(err, color.ErrBudgetExhausted) {
			t.Errorf("%s: error = %v, want ErrBudgetExhausted", s.Name(), err)
		}
	}
}

func TestParse(t *testing.T) {
	for _, name := range color.Names() {
		s, err := color.Parse[string](name)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("Parse(%q).Name() = %q", name, s.Name())
		}
	}
	if _, err := color.Parse[string]("greedy"); !errors.Is(err, color.ErrUnknownStrategy) {
		t.Errorf("Parse(greedy) error = %v, want ErrUnknownStrategy", err)
	}
}

func TestValidate_CatchesBadColorings(t *testing.T) {
	g := triangle(t)

	if err := color.Validate(g, color.Coloring[string]{"a": 0, "b": 1}, 3); err == nil {
		t.Error("Validate accepted a partial coloring")
	}
	if err := color.Validate(g, color.Coloring[string]{"a": 0, "b": 0, "c": 1}, 3); err == nil {
		t.Error("Validate accepted a monochrome edge")
	}
	if err := color.Validate(g, color.Coloring[string]{"a": 0, "b": 1, "c": 5}, 3); err == nil {
		t.Error("Validate accepted an out-of-range color")
	}
	if err := color.Validate(g, color.Coloring[string]{"a": 0, "b": 1, "c": 2}, 3); err != nil {
		t.Errorf("Validate rejected a proper coloring: %v", err)
	}
}
