// Package gen produces undirected graphs for search-engine fixtures and
// demos: seeded random graphs with size, density, and connectivity
// parameters, plus the classic complete and cycle families.
//
// Generation is deterministic for a given seed, so fixtures reproduce
// across runs and platforms.
package gen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/tinct/pkg/graph"
)

var (
	// ErrBadSize is returned for a non-positive node count.
	ErrBadSize = errors.New("gen: node count must be positive")

	// ErrBadDensity is returned for a density outside [0, 1].
	ErrBadDensity = errors.New("gen: density must be in [0,1]")
)

// Options configures Random.
type Options struct {
	// Nodes is the number of nodes. Must be positive.
	Nodes int

	// Density is the fraction of all possible edges to include, in [0, 1].
	// A connected graph may exceed the requested density slightly, since its
	// spanning tree is placed first.
	Density float64

	// Connected forces a single connected component by seeding the graph
	// with a random spanning tree before density edges are added.
	Connected bool

	// Seed drives the generator. Equal options always produce equal graphs.
	Seed uint64
}

// Random generates an undirected graph with Options.Nodes nodes labeled
// n000, n001, ... and approximately Density * n*(n-1)/2 edges.
func Random(opts Options) (*graph.Undirected[string], error) {
	if opts.Nodes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, opts.Nodes)
	}
	if opts.Density < 0 || opts.Density > 1 {
		return nil, fmt.Errorf("%w: %g", ErrBadDensity, opts.Density)
	}

	labels := nodeLabels(opts.Nodes)
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))

	g, err := graph.NewUndirected(labels, nil)
	if err != nil {
		return nil, err
	}

	if opts.Connected && opts.Nodes > 1 {
		// A random spanning tree: attach each node to a uniformly chosen
		// earlier node, after shuffling so the tree shape varies with seed.
		shuffled := append([]string(nil), labels...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		for i := 1; i < len(shuffled); i++ {
			parent := shuffled[rng.IntN(i)]
			if g, err = g.MaybeAddEdge(parent, shuffled[i]); err != nil {
				return nil, err
			}
		}
	}

	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			if rng.Float64() >= opts.Density {
				continue
			}
			if g, err = g.MaybeAddEdge(labels[i], labels[j]); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Complete returns the complete graph on n nodes, whose chromatic number
// is exactly n.
func Complete(n int) (*graph.Undirected[string], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	labels := nodeLabels(n)
	var edges []graph.Edge[string]
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, graph.Edge[string]{From: labels[i], To: labels[j]})
		}
	}
	return graph.NewUndirected(labels, edges)
}

// Cycle returns the cycle graph on n nodes (n >= 3): 2-chromatic for even
// n, 3-chromatic for odd n.
func Cycle(n int) (*graph.Undirected[string], error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: cycle needs at least 3 nodes, got %d", ErrBadSize, n)
	}
	labels := nodeLabels(n)
	edges := make([]graph.Edge[string], n)
	for i := range labels {
		edges[i] = graph.Edge[string]{From: labels[i], To: labels[(i+1)%n]}
	}
	return graph.NewUndirected(labels, edges)
}

func nodeLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("n%03d", i)
	}
	return labels
}
