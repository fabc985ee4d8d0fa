package graph

import "cmp"

// Undirected is an immutable undirected graph over ordered node labels.
// Every logical edge is stored symmetrically, so ContainsEdge(a, b) and
// ContainsEdge(b, a) always agree and Edges returns both orientations.
//
// All mutating operations return a new graph and never modify the receiver;
// derived graphs share no mutable state with their source, so an Undirected
// may be read concurrently without synchronization.
//
// The zero value is an empty graph. Use NewUndirected to construct a graph
// from explicit node and edge sets.
type Undirected[N cmp.Ordered] struct {
	s store[N]
}

// NewUndirected builds an undirected graph from a node set and an edge set.
// Edges may be given in either (or both) orientations; each is stored
// symmetrically. Returns ErrUnknownNode if an edge endpoint is not in
// nodes, or ErrSelfLoop for an edge from a node to itself.
func NewUndirected[N cmp.Ordered](nodes []N, edges []Edge[N]) (*Undirected[N], error) {
	s, err := build(true, nodes, edges)
	if err != nil {
		return nil, err
	}
	return &Undirected[N]{s: s}, nil
}

func (g *Undirected[N]) state() store[N] {
	if g.s.nodes == nil {
		return newStore[N](true)
	}
	return g.s
}

// ContainsNode reports whether n is a member of the graph.
func (g *Undirected[N]) ContainsNode(n N) bool { return g.state().containsNode(n) }

// ContainsEdge reports whether the edge a-b is present. Symmetric storage
// makes the argument order irrelevant.
func (g *Undirected[N]) ContainsEdge(a, b N) bool { return g.state().containsEdge(a, b) }

// MaybeAddNode returns a graph with n inserted, or a graph with the same
// structural content if n is already present.
func (g *Undirected[N]) MaybeAddNode(n N) *Undirected[N] {
	s, _ := g.state().addNode(n, false)
	return &Undirected[N]{s: s}
}

// AddNode returns a graph with n inserted. Unlike MaybeAddNode it returns
// ErrDuplicateNode when n is already present, for callers that want
// assert-new semantics.
func (g *Undirected[N]) AddNode(n N) (*Undirected[N], error) {
	s, err := g.state().addNode(n, true)
	if err != nil {
		return nil, err
	}
	return &Undirected[N]{s: s}, nil
}

// MaybeAddEdge returns a graph with the edge a-b inserted, or the same
// structural content if it is already present. Returns ErrUnknownNode if
// either endpoint is absent, or ErrSelfLoop when a == b.
func (g *Undirected[N]) MaybeAddEdge(a, b N) (*Undirected[N], error) {
	s, err := g.state().addEdge(a, b, false)
	if err != nil {
		return nil, err
	}
	return &Undirected[N]{s: s}, nil
}

// AddEdge is MaybeAddEdge with assert-new semantics: it additionally
// returns ErrDuplicateEdge when the edge is already present.
func (g *Undirected[N]) AddEdge(a, b N) (*Undirected[N], error) {
	s, err := g.state().addEdge(a, b, true)
	if err != nil {
		return nil, err
	}
	return &Undirected[N]{s: s}, nil
}

// RemoveNode returns a graph without n. Every edge incident to n is removed
// as well, so the edges-reference-existing-nodes invariant holds after every
// removal. Removing an absent node is a no-op.
func (g *Undirected[N]) RemoveNode(n N) *Undirected[N] {
	return &Undirected[N]{s: g.state().removeNode(n)}
}

// RemoveEdge returns a graph without the edge a-b (both orientations).
// Removing an absent edge is a no-op.
func (g *Undirected[N]) RemoveEdge(a, b N) *Undirected[N] {
	return &Undirected[N]{s: g.state().removeEdge(a, b)}
}

// SuccessorsOf returns the nodes reachable from n by one edge, sorted.
// Empty for absent nodes. In an undirected graph this equals PredecessorsOf.
func (g *Undirected[N]) SuccessorsOf(n N) []N { return g.state().successors(n) }

// PredecessorsOf returns the nodes with an edge into n, sorted.
// Empty for absent nodes.
func (g *Undirected[N]) PredecessorsOf(n N) []N { return g.state().predecessors(n) }

// NeighborsOf returns the union of predecessors and successors of n, sorted.
func (g *Undirected[N]) NeighborsOf(n N) []N { return g.state().neighbors(n) }

// EdgesFrom returns the edges leaving n, sorted. Empty for absent nodes.
func (g *Undirected[N]) EdgesFrom(n N) []Edge[N] { return g.state().edgesFrom(n) }

// EdgesInto returns the edges entering n, sorted. Empty for absent nodes.
func (g *Undirected[N]) EdgesInto(n N) []Edge[N] { return g.state().edgesInto(n) }

// ArityOf returns the out-degree of n, which for an undirected graph is its
// degree. Zero for absent nodes.
func (g *Undirected[N]) ArityOf(n N) int { return len(g.state().out[n]) }

// Rename returns a graph with every node and edge endpoint relabeled by f.
// Returns ErrRenameCollision if f maps two distinct nodes to the same label.
func (g *Undirected[N]) Rename(f func(N) N) (*Undirected[N], error) {
	s, err := g.state().rename(f)
	if err != nil {
		return nil, err
	}
	return &Undirected[N]{s: s}, nil
}

// UnsafeUnion returns the node and edge set union of g and other without
// any collision handling: equal labels collapse into a single node.
func (g *Undirected[N]) UnsafeUnion(other *Undirected[N]) *Undirected[N] {
	return &Undirected[N]{s: g.state().union(other.state())}
}

// SafeUnion relabels g with left and other with right, requires the
// relabeled node sets to be disjoint, and returns their union. Returns
// ErrRenameCollision if either relabeling collapses nodes, or
// ErrOverlappingUnion if the relabeled operands still share labels.
func (g *Undirected[N]) SafeUnion(other *Undirected[N], left, right func(N) N) (*Undirected[N], error) {
	ls, err := g.state().rename(left)
	if err != nil {
		return nil, err
	}
	rs, err := other.state().rename(right)
	if err != nil {
		return nil, err
	}
	if !ls.disjoint(rs) {
		return nil, ErrOverlappingUnion
	}
	return &Undirected[N]{s: ls.union(rs)}, nil
}

// SubgraphWith returns the subgraph induced by subset: only those nodes,
// and only the edges with both endpoints surviving. Returns ErrNotSubgraph
// if subset contains nodes outside the graph.
func (g *Undirected[N]) SubgraphWith(subset []N) (*Undirected[N], error) {
	s, err := g.state().subgraph(subset, func(in bool) bool { return in })
	if err != nil {
		return nil, err
	}
	return &Undirected[N]{s: s}, nil
}

// SubgraphWithout returns the subgraph induced by dropping subset. Returns
// ErrNotSubgraph if subset contains nodes outside the graph.
func (g *Undirected[N]) SubgraphWithout(subset []N) (*Undirected[N], error) {
	s, err := g.state().subgraph(subset, func(in bool) bool { return !in })
	if err != nil {
		return nil, err
	}
	return &Undirected[N]{s: s}, nil
}

// Nodes returns all nodes in ascending order.
func (g *Undirected[N]) Nodes() []N { return g.state().nodeList() }

// Edges returns all stored edges (both orientations of every logical edge)
// sorted by From, then To.
func (g *Undirected[N]) Edges() []Edge[N] { return g.state().edgeList() }

// NodeCount returns the number of nodes.
func (g *Undirected[N]) NodeCount() int { return len(g.state().nodes) }

// EdgeCount returns the number of stored edges. Symmetric storage means
// every logical edge counts twice.
func (g *Undirected[N]) EdgeCount() int { return g.state().edgeCount() }

// Equal reports structural equality: identical node and edge sets.
func (g *Undirected[N]) Equal(other *Undirected[N]) bool {
	return g.state().equal(other.state())
}
