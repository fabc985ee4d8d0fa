package color

import (
	"cmp"

	"github.com/matzehuels/tinct/pkg/graph"
)

// Progressive wraps the exhaustive search with increasing color budgets:
// 1, 2, ... up to MaxColors, returning the first success. Feasibility is
// monotonic in the number of permitted colors, so the first budget that
// succeeds is the chromatic number (when MaxColors is left at its default)
// and the result is never worse than bounding at MaxColors directly.
//
// Budgets that fail are fully explored before the next is tried; the
// repeated work is usually far cheaper than searching the full MaxColors
// space, because infeasible low-budget trees are heavily cut by the budget.
type Progressive[N cmp.Ordered] struct{}

// Name implements Strategy.
func (Progressive[N]) Name() string { return NameProgressive }

// Color implements Strategy.
func (Progressive[N]) Color(g *graph.Undirected[N], opts Options[N]) (Coloring[N], bool, error) {
	s, err := newSearch(g, opts)
	if err != nil {
		return nil, false, err
	}
	// min handles the empty graph, whose default budget is zero and whose
	// base hypothesis is already complete.
	for budget := min(1, s.maxColors); budget <= s.maxColors; budget++ {
		c, ok, err := s.exhaustive(budget)
		if err != nil || ok {
			return c, ok, err
		}
	}
	return nil, false, nil
}
