package color

import (
	"cmp"

	"github.com/matzehuels/tinct/pkg/graph"
)

// hypothesis is one node of the search tree: a partial coloring of a prefix
// of the node order, plus the count of colors committed so far. The colors
// map and the remaining suffix partition the graph's node set exactly.
//
// Hypotheses are immutable once created; extend builds children with fresh
// color maps and a shared (never written) remaining slice.
type hypothesis[N cmp.Ordered] struct {
	colors    map[N]int
	remaining []N
	numColors int
}

// newHypothesis is the base hypothesis of a search: nothing decided, the
// whole order remaining, zero colors committed.
func newHypothesis[N cmp.Ordered](order []N) *hypothesis[N] {
	return &hypothesis[N]{colors: map[N]int{}, remaining: order}
}

// complete reports whether every node has been decided.
func (h *hypothesis[N]) complete() bool { return len(h.remaining) == 0 }

// lowerBound is the fewest colors any completion of h can use: the colors
// already committed cannot be taken back.
func (h *hypothesis[N]) lowerBound() int { return h.numColors }

// upperBound is the most colors any completion of h can use: every
// remaining node might need a brand-new color.
func (h *hypothesis[N]) upperBound() int { return h.numColors + len(h.remaining) }

// width is the gap between the bounds; narrower hypotheses are closer to a
// decided answer.
func (h *hypothesis[N]) width() int { return len(h.remaining) }

// extend produces every locally consistent one-node extension of h, bounded
// by maxColors. This is the single branching primitive all strategies share.
//
// The next node is the head of the remaining order. Each existing color not
// used by an already-decided neighbor yields a reuse child, in ascending
// color order; if the color budget allows, one further child commits a
// brand-new color. A complete hypothesis has no extensions.
func (h *hypothesis[N]) extend(g *graph.Undirected[N], maxColors int) []*hypothesis[N] {
	if h.complete() {
		return nil
	}
	next := h.remaining[0]

	taken := make(map[int]struct{})
	for _, nb := range g.NeighborsOf(next) {
		if c, decided := h.colors[nb]; decided {
			taken[c] = struct{}{}
		}
	}

	var children []*hypothesis[N]
	for c := 0; c < h.numColors; c++ {
		if _, used := taken[c]; !used {
			children = append(children, h.assign(next, c, h.numColors))
		}
	}
	if h.numColors < maxColors {
		children = append(children, h.assign(next, h.numColors, h.numColors+1))
	}
	return children
}

// assign builds the child hypothesis that gives node the color c.
func (h *hypothesis[N]) assign(node N, c, numColors int) *hypothesis[N] {
	colors := make(map[N]int, len(h.colors)+1)
	for n, v := range h.colors {
		colors[n] = v
	}
	colors[node] = c
	return &hypothesis[N]{
		colors:    colors,
		remaining: h.remaining[1:],
		numColors: numColors,
	}
}
