package color

import (
	"cmp"

	"github.com/matzehuels/tinct/pkg/graph"
)

// Exhaustive explores the hypothesis space breadth-first: a FIFO queue is
// seeded with the base hypothesis, every dequeued hypothesis is extended,
// and the first complete hypothesis wins. The queue emptying without a
// complete hypothesis is the proof that no coloring exists within the color
// bound.
//
// Exploration is strictly by search depth, so within a fixed color budget
// the worst case still visits exponentially many hypotheses; the problem is
// NP-complete and no polynomial bound is claimed.
type Exhaustive[N cmp.Ordered] struct{}

// Name implements Strategy.
func (Exhaustive[N]) Name() string { return NameExhaustive }

// Color implements Strategy.
func (Exhaustive[N]) Color(g *graph.Undirected[N], opts Options[N]) (Coloring[N], bool, error) {
	s, err := newSearch(g, opts)
	if err != nil {
		return nil, false, err
	}
	return s.exhaustive(s.maxColors)
}

// exhaustive runs one breadth-first pass with the given color budget.
// Progressive reuses it with increasing budgets.
func (s *search[N]) exhaustive(colorBudget int) (Coloring[N], bool, error) {
	queue := []*hypothesis[N]{newHypothesis(s.order)}
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if h.complete() {
			return Coloring[N](h.colors), true, nil
		}
		if err := s.spend(); err != nil {
			return nil, false, err
		}
		queue = append(queue, h.extend(s.g, colorBudget)...)
	}
	return nil, false, nil
}
