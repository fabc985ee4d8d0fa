package color

import (
	"cmp"
	"container/heap"

	"github.com/matzehuels/tinct/pkg/graph"
)

// BranchBound explores hypotheses in priority order instead of FIFO order.
// A mutable global upper bound starts at the node count (one color per node
// always works) and tightens to the smallest upper bound of any pending
// hypothesis; pending hypotheses whose lower bound exceeds the global bound
// are pruned, since no completion of theirs can beat a bound already known
// achievable.
//
// The bound tightening is a pure performance optimization: extension always
// uses the caller's MaxColors cap, so the feasibility question is unchanged.
// The returned coloring is the bound-respecting one first discovered under
// the priority order, not necessarily a minimum coloring; pair with
// Progressive to obtain the chromatic number.
type BranchBound[N cmp.Ordered] struct{}

// Name implements Strategy.
func (BranchBound[N]) Name() string { return NameBranchBound }

// Color implements Strategy.
func (BranchBound[N]) Color(g *graph.Undirected[N], opts Options[N]) (Coloring[N], bool, error) {
	s, err := newSearch(g, opts)
	if err != nil {
		return nil, false, err
	}

	pending := &frontier[N]{}
	heap.Init(pending)
	pending.add(newHypothesis(s.order))
	globalUpper := s.g.NodeCount()

	for pending.Len() > 0 {
		h := heap.Pop(pending).(*entry[N]).h
		if h.lowerBound() > globalUpper {
			continue // pruned: cannot beat the best known achievable bound
		}
		if h.complete() {
			return Coloring[N](h.colors), true, nil
		}
		if err := s.spend(); err != nil {
			return nil, false, err
		}
		for _, child := range h.extend(s.g, s.maxColors) {
			if child.complete() {
				return Coloring[N](child.colors), true, nil
			}
			pending.add(child)
			if ub := child.upperBound(); ub < globalUpper {
				globalUpper = ub
			}
		}
	}
	return nil, false, nil
}

// entry pairs a hypothesis with its insertion sequence number. The sequence
// is the final comparator key, which makes the ordering total and the
// search order reproducible.
type entry[N cmp.Ordered] struct {
	h   *hypothesis[N]
	seq int
}

// frontier is the priority-ordered work set, a min-heap under compare.
type frontier[N cmp.Ordered] struct {
	entries []*entry[N]
	nextSeq int
}

// compare orders by ascending bound width (narrower hypotheses are closer
// to a decided answer), then ascending upper bound (prefer hypotheses that
// promise fewer colors, tightening the global bound faster), then insertion
// order.
func compare[N cmp.Ordered](a, b *entry[N]) int {
	if c := cmp.Compare(a.h.width(), b.h.width()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.h.upperBound(), b.h.upperBound()); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

func (f *frontier[N]) add(h *hypothesis[N]) {
	heap.Push(f, &entry[N]{h: h, seq: f.nextSeq})
	f.nextSeq++
}

func (f *frontier[N]) Len() int { return len(f.entries) }

func (f *frontier[N]) Less(i, j int) bool {
	return compare(f.entries[i], f.entries[j]) < 0
}

func (f *frontier[N]) Swap(i, j int) {
	f.entries[i], f.entries[j] = f.entries[j], f.entries[i]
}

func (f *frontier[N]) Push(x any) {
	f.entries = append(f.entries, x.(*entry[N]))
}

func (f *frontier[N]) Pop() any {
	last := len(f.entries) - 1
	e := f.entries[last]
	f.entries[last] = nil
	f.entries = f.entries[:last]
	return e
}
