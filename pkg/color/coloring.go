package color

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/matzehuels/tinct/pkg/graph"
)

var (
	// ErrBadOrder is returned when a supplied node order does not visit every
	// graph node exactly once. The check runs before any search work.
	ErrBadOrder = errors.New("node order must visit every graph node exactly once")

	// ErrBudgetExhausted is returned when a search exceeds the expansion
	// budget set via Options.MaxExpansions.
	ErrBudgetExhausted = errors.New("expansion budget exhausted")

	// ErrUnknownStrategy is returned by Parse for an unrecognized name.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Coloring assigns a non-negative color index to every node of a graph such
// that no edge connects two identically colored nodes.
type Coloring[N cmp.Ordered] map[N]int

// NumColors returns the number of distinct colors a coloring uses, which is
// one more than the highest color index, or zero for an empty coloring.
func NumColors[N cmp.Ordered](c Coloring[N]) int {
	n := 0
	for _, idx := range c {
		if idx+1 > n {
			n = idx + 1
		}
	}
	return n
}

// Validate checks that c is a proper coloring of g: it colors exactly the
// nodes of g, every color index lies in [0, maxColors) (maxColors <= 0
// disables the range check), and no edge connects equal colors.
func Validate[N cmp.Ordered](g *graph.Undirected[N], c Coloring[N], maxColors int) error {
	if len(c) != g.NodeCount() {
		return fmt.Errorf("coloring covers %d of %d nodes", len(c), g.NodeCount())
	}
	for n, idx := range c {
		if !g.ContainsNode(n) {
			return fmt.Errorf("coloring assigns unknown node %v", n)
		}
		if idx < 0 || (maxColors > 0 && idx >= maxColors) {
			return fmt.Errorf("node %v has color %d outside [0,%d)", n, idx, maxColors)
		}
	}
	for _, e := range g.Edges() {
		if c[e.From] == c[e.To] {
			return fmt.Errorf("edge %v-%v connects equal colors", e.From, e.To)
		}
	}
	return nil
}

// Options configures a coloring search.
//
// The zero value asks for the defaults: a color budget of NodeCount (always
// sufficient, one color per node), the canonical ascending node order, and
// no expansion budget.
type Options[N cmp.Ordered] struct {
	// MaxColors bounds the number of distinct colors the search may commit.
	// Values <= 0 default to the graph's node count.
	MaxColors int

	// Order is the node visitation order. It must contain every graph node
	// exactly once; nil selects the canonical ascending order. The order is
	// a performance hint only and never affects whether a coloring exists.
	Order []N

	// MaxExpansions caps the number of hypothesis expansions a single Color
	// call may perform, as an external bound on the otherwise unbounded
	// search. Zero means unlimited. Exceeding the cap fails with
	// ErrBudgetExhausted rather than returning a negative result.
	MaxExpansions int
}

// Strategy is the contract shared by the three search engines. Color
// returns (coloring, true, nil) on success and (nil, false, nil) when no
// coloring exists within the color bound; the negative result is an
// expected answer, not an error. Errors are reserved for invalid input
// (ErrBadOrder) and the expansion budget (ErrBudgetExhausted).
//
// For identical (graph, options) inputs every strategy retraces an
// identical expansion sequence, so results are reproducible.
type Strategy[N cmp.Ordered] interface {
	// Name returns the registry name of the strategy.
	Name() string

	// Color searches for a proper coloring of g within opts.MaxColors.
	Color(g *graph.Undirected[N], opts Options[N]) (Coloring[N], bool, error)
}

// Strategy registry names.
const (
	NameExhaustive  = "exhaustive"
	NameProgressive = "progressive"
	NameBranchBound = "branchbound"
)

// Names lists the registered strategy names in presentation order.
func Names() []string {
	return []string{NameExhaustive, NameProgressive, NameBranchBound}
}

// Parse resolves a strategy by its registry name.
func Parse[N cmp.Ordered](name string) (Strategy[N], error) {
	switch name {
	case NameExhaustive:
		return Exhaustive[N]{}, nil
	case NameProgressive:
		return Progressive[N]{}, nil
	case NameBranchBound:
		return BranchBound[N]{}, nil
	}
	return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownStrategy, name, Names())
}

// search carries the validated, normalized inputs of one Color invocation.
// Each invocation owns its search exclusively; no state outlives the call.
type search[N cmp.Ordered] struct {
	g         *graph.Undirected[N]
	maxColors int
	order     []N

	budget   int // 0 = unlimited
	expanded int
}

// newSearch validates opts against g and fills in defaults. A supplied
// order is rejected with ErrBadOrder before any search work if it omits,
// duplicates, or invents a node.
func newSearch[N cmp.Ordered](g *graph.Undirected[N], opts Options[N]) (*search[N], error) {
	s := &search[N]{
		g:         g,
		maxColors: opts.MaxColors,
		order:     opts.Order,
		budget:    opts.MaxExpansions,
	}
	if s.maxColors <= 0 {
		s.maxColors = g.NodeCount()
	}
	if s.order == nil {
		s.order = g.Nodes()
		return s, nil
	}
	seen := make(map[N]struct{}, len(s.order))
	for _, n := range s.order {
		if !g.ContainsNode(n) {
			return nil, fmt.Errorf("%w: %v is not a graph node", ErrBadOrder, n)
		}
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("%w: %v appears twice", ErrBadOrder, n)
		}
		seen[n] = struct{}{}
	}
	if len(seen) != g.NodeCount() {
		return nil, fmt.Errorf("%w: %d of %d nodes ordered", ErrBadOrder, len(seen), g.NodeCount())
	}
	return s, nil
}

// spend consumes one unit of the expansion budget.
func (s *search[N]) spend() error {
	s.expanded++
	if s.budget > 0 && s.expanded > s.budget {
		return fmt.Errorf("%w after %d expansions", ErrBudgetExhausted, s.budget)
	}
	return nil
}
