// Package color implements exact graph coloring: assigning every node of an
// undirected graph a non-negative integer such that no edge connects two
// equal integers, optionally bounded by a maximum color count.
//
// # Strategies
//
// Three interchangeable search engines implement the [Strategy] contract:
//
//   - [Exhaustive] explores the space of partial colorings breadth-first
//     and returns the first complete one.
//   - [Progressive] reruns the exhaustive search with budgets 1, 2, ... up
//     to MaxColors. Its first success uses the fewest colors possible, so
//     with the default budget it computes the chromatic number.
//   - [BranchBound] orders partial colorings by how decided they are and
//     prunes those that provably cannot beat the best bound found so far.
//
// All three agree on feasibility for the same (graph, MaxColors) pair; they
// may return different valid colorings. "No coloring within the bound" is
// an expected answer, reported as found=false with a nil error, never as a
// failure.
//
// # Hypotheses
//
// The engines share one branching primitive: a hypothesis maps a prefix of
// the node order to colors and extends by coloring the next node with every
// neighbor-compatible existing color, plus one brand-new color while the
// budget allows. A hypothesis with no remaining nodes is a solution.
//
// # Determinism
//
// Searches are single-threaded, synchronous, and deterministic: identical
// inputs retrace identical expansion sequences. The default node order is
// the canonical ascending order, and the branch-and-bound comparator breaks
// all ties by insertion sequence, so fixtures reproduce across platforms.
//
// The search space is exponential in the worst case. [Options.MaxExpansions]
// bounds the work a single call may do; there is no internal timeout.
//
// # Usage
//
//	g, _ := graph.NewUndirected([]string{"a", "b", "c"}, []graph.Edge[string]{
//		{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "a", To: "c"},
//	})
//	c, found, err := color.Progressive[string]{}.Color(g, color.Options[string]{})
//	// found == true, color.NumColors(c) == 3
package color
