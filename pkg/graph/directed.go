package graph

import "cmp"

// Directed is an immutable directed graph over ordered node labels. Each
// edge is stored in its single orientation only. Directed and Undirected
// are distinct concrete types, each with its own structural equality; a
// directed graph never compares equal to an undirected one because they
// cannot meet at the type level.
//
// All mutating operations return a new graph and never modify the receiver.
// The zero value is an empty graph. Use NewDirected to construct a graph
// from explicit node and edge sets.
type Directed[N cmp.Ordered] struct {
	s store[N]
}

// NewDirected builds a directed graph from a node set and an edge set.
// Returns ErrUnknownNode if an edge endpoint is not in nodes, or
// ErrSelfLoop for an edge from a node to itself.
func NewDirected[N cmp.Ordered](nodes []N, edges []Edge[N]) (*Directed[N], error) {
	s, err := build(false, nodes, edges)
	if err != nil {
		return nil, err
	}
	return &Directed[N]{s: s}, nil
}

func (g *Directed[N]) state() store[N] {
	if g.s.nodes == nil {
		return newStore[N](false)
	}
	return g.s
}

// ContainsNode reports whether n is a member of the graph.
func (g *Directed[N]) ContainsNode(n N) bool { return g.state().containsNode(n) }

// ContainsEdge reports whether the directed edge from->to is present.
func (g *Directed[N]) ContainsEdge(from, to N) bool { return g.state().containsEdge(from, to) }

// MaybeAddNode returns a graph with n inserted, or a graph with the same
// structural content if n is already present.
func (g *Directed[N]) MaybeAddNode(n N) *Directed[N] {
	s, _ := g.state().addNode(n, false)
	return &Directed[N]{s: s}
}

// AddNode returns a graph with n inserted, or ErrDuplicateNode when n is
// already present.
func (g *Directed[N]) AddNode(n N) (*Directed[N], error) {
	s, err := g.state().addNode(n, true)
	if err != nil {
		return nil, err
	}
	return &Directed[N]{s: s}, nil
}

// MaybeAddEdge returns a graph with the edge from->to inserted, or the same
// structural content if it is already present. Returns ErrUnknownNode if
// either endpoint is absent, or ErrSelfLoop when from == to.
func (g *Directed[N]) MaybeAddEdge(from, to N) (*Directed[N], error) {
	s, err := g.state().addEdge(from, to, false)
	if err != nil {
		return nil, err
	}
	return &Directed[N]{s: s}, nil
}

// AddEdge is MaybeAddEdge with assert-new semantics: it additionally
// returns ErrDuplicateEdge when the edge is already present.
func (g *Directed[N]) AddEdge(from, to N) (*Directed[N], error) {
	s, err := g.state().addEdge(from, to, true)
	if err != nil {
		return nil, err
	}
	return &Directed[N]{s: s}, nil
}

// RemoveNode returns a graph without n and without every edge incident to
// n, in either direction. Removing an absent node is a no-op.
func (g *Directed[N]) RemoveNode(n N) *Directed[N] {
	return &Directed[N]{s: g.state().removeNode(n)}
}

// RemoveEdge returns a graph without the edge from->to. The reverse edge,
// if present, is untouched. Removing an absent edge is a no-op.
func (g *Directed[N]) RemoveEdge(from, to N) *Directed[N] {
	return &Directed[N]{s: g.state().removeEdge(from, to)}
}

// SuccessorsOf returns the nodes n has an edge to, sorted. Empty for
// absent nodes.
func (g *Directed[N]) SuccessorsOf(n N) []N { return g.state().successors(n) }

// PredecessorsOf returns the nodes with an edge into n, sorted. Empty for
// absent nodes.
func (g *Directed[N]) PredecessorsOf(n N) []N { return g.state().predecessors(n) }

// NeighborsOf returns the union of predecessors and successors of n, sorted.
func (g *Directed[N]) NeighborsOf(n N) []N { return g.state().neighbors(n) }

// EdgesFrom returns the edges leaving n, sorted. Empty for absent nodes.
func (g *Directed[N]) EdgesFrom(n N) []Edge[N] { return g.state().edgesFrom(n) }

// EdgesInto returns the edges entering n, sorted. Empty for absent nodes.
func (g *Directed[N]) EdgesInto(n N) []Edge[N] { return g.state().edgesInto(n) }

// ArityOf returns the out-degree of n. Zero for absent nodes.
func (g *Directed[N]) ArityOf(n N) int { return len(g.state().out[n]) }

// Rename returns a graph with every node and edge endpoint relabeled by f.
// Returns ErrRenameCollision if f maps two distinct nodes to the same label.
func (g *Directed[N]) Rename(f func(N) N) (*Directed[N], error) {
	s, err := g.state().rename(f)
	if err != nil {
		return nil, err
	}
	return &Directed[N]{s: s}, nil
}

// UnsafeUnion returns the node and edge set union of g and other without
// any collision handling: equal labels collapse into a single node.
func (g *Directed[N]) UnsafeUnion(other *Directed[N]) *Directed[N] {
	return &Directed[N]{s: g.state().union(other.state())}
}

// SafeUnion relabels g with left and other with right, requires the
// relabeled node sets to be disjoint, and returns their union.
func (g *Directed[N]) SafeUnion(other *Directed[N], left, right func(N) N) (*Directed[N], error) {
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
	return &Directed[N]{s: ls.union(rs)}, nil
}

// SubgraphWith returns the subgraph induced by subset. Returns
// ErrNotSubgraph if subset contains nodes outside the graph.
func (g *Directed[N]) SubgraphWith(subset []N) (*Directed[N], error) {
	s, err := g.state().subgraph(subset, func(in bool) bool { return in })
	if err != nil {
		return nil, err
	}
	return &Directed[N]{s: s}, nil
}

// SubgraphWithout returns the subgraph induced by dropping subset. Returns
// ErrNotSubgraph if subset contains nodes outside the graph.
func (g *Directed[N]) SubgraphWithout(subset []N) (*Directed[N], error) {
	s, err := g.state().subgraph(subset, func(in bool) bool { return !in })
	if err != nil {
		return nil, err
	}
	return &Directed[N]{s: s}, nil
}

// Nodes returns all nodes in ascending order.
func (g *Directed[N]) Nodes() []N { return g.state().nodeList() }

// Edges returns all edges sorted by From, then To.
func (g *Directed[N]) Edges() []Edge[N] { return g.state().edgeList() }

// NodeCount returns the number of nodes.
func (g *Directed[N]) NodeCount() int { return len(g.state().nodes) }

// EdgeCount returns the number of edges.
func (g *Directed[N]) EdgeCount() int { return g.state().edgeCount() }

// Equal reports structural equality: identical node and edge sets.
func (g *Directed[N]) Equal(other *Directed[N]) bool {
	return g.state().equal(other.state())
}
