package graph

import (
	"cmp"
	"errors"
	"slices"
)

var (
	// ErrUnknownNode is returned when an edge or subgraph operation references
	// a node that is not a member of the graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrDuplicateNode is returned by the strict AddNode variant when the node
	// is already present. Use MaybeAddNode for idempotent insertion.
	ErrDuplicateNode = errors.New("duplicate node")

	// ErrDuplicateEdge is returned by the strict AddEdge variant when the edge
	// is already present. Use MaybeAddEdge for idempotent insertion.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrSelfLoop is returned when an edge would connect a node to itself.
	// Self-loops are never valid.
	ErrSelfLoop = errors.New("self-loop edge")

	// ErrRenameCollision is returned by Rename when the relabeling function is
	// not injective over the node set, i.e. two nodes map to the same label.
	ErrRenameCollision = errors.New("rename collapses distinct nodes")

	// ErrOverlappingUnion is returned by SafeUnion when the operands still
	// share node labels after both relabeling functions have been applied.
	ErrOverlappingUnion = errors.New("union operands overlap after rename")

	// ErrNotSubgraph is returned by SubgraphWith and SubgraphWithout when the
	// requested node subset contains nodes outside the graph.
	ErrNotSubgraph = errors.New("subset contains nodes outside the graph")
)

// Edge is an ordered pair of node labels. In an undirected graph every
// logical edge is stored as both orientations, so for each Edge{a, b} the
// mirrored Edge{b, a} is present as well.
type Edge[N cmp.Ordered] struct {
	From N
	To   N
}

// compareEdges orders edges by From, then To.
func compareEdges[N cmp.Ordered](a, b Edge[N]) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}
	return cmp.Compare(a.To, b.To)
}

// store holds the node and adjacency sets shared by both graph variants.
// A store is never mutated after construction: every operation clones first
// and returns the clone, which is what gives the public types their
// functional update semantics.
type store[N cmp.Ordered] struct {
	symmetric bool
	nodes     map[N]struct{}
	out       map[N]map[N]struct{}
	in        map[N]map[N]struct{}
}

func newStore[N cmp.Ordered](symmetric bool) store[N] {
	return store[N]{
		symmetric: symmetric,
		nodes:     make(map[N]struct{}),
		out:       make(map[N]map[N]struct{}),
		in:        make(map[N]map[N]struct{}),
	}
}

func (s store[N]) clone() store[N] {
	c := newStore[N](s.symmetric)
	for n := range s.nodes {
		c.nodes[n] = struct{}{}
	}
	for n, adj := range s.out {
		m := make(map[N]struct{}, len(adj))
		for t := range adj {
			m[t] = struct{}{}
		}
		c.out[n] = m
	}
	for n, adj := range s.in {
		m := make(map[N]struct{}, len(adj))
		for t := range adj {
			m[t] = struct{}{}
		}
		c.in[n] = m
	}
	return c
}

func (s store[N]) containsNode(n N) bool {
	_, ok := s.nodes[n]
	return ok
}

func (s store[N]) containsEdge(from, to N) bool {
	_, ok := s.out[from][to]
	return ok
}

// addNode returns a store with n inserted. When strict, an existing node is
// an error; otherwise the insertion is idempotent.
func (s store[N]) addNode(n N, strict bool) (store[N], error) {
	if s.containsNode(n) {
		if strict {
			return store[N]{}, ErrDuplicateNode
		}
		return s, nil
	}
	c := s.clone()
	c.nodes[n] = struct{}{}
	return c, nil
}

// link records a single directed pair in both adjacency indices.
// The caller has already validated endpoints.
func (s *store[N]) link(from, to N) {
	if s.out[from] == nil {
		s.out[from] = make(map[N]struct{})
	}
	s.out[from][to] = struct{}{}
	if s.in[to] == nil {
		s.in[to] = make(map[N]struct{})
	}
	s.in[to][from] = struct{}{}
}

func (s *store[N]) unlink(from, to N) {
	delete(s.out[from], to)
	delete(s.in[to], from)
}

// addEdge returns a store with the edge inserted. Symmetric stores record
// both orientations. Endpoint membership and the self-loop ban are checked
// on every insertion path.
func (s store[N]) addEdge(from, to N, strict bool) (store[N], error) {
	if from == to {
		return store[N]{}, ErrSelfLoop
	}
	if !s.containsNode(from) || !s.containsNode(to) {
		return store[N]{}, ErrUnknownNode
	}
	if s.containsEdge(from, to) {
		if strict {
			return store[N]{}, ErrDuplicateEdge
		}
		return s, nil
	}
	c := s.clone()
	c.link(from, to)
	if c.symmetric {
		c.link(to, from)
	}
	return c, nil
}

// removeNode returns a store without n and without every edge incident to
// it. Removing an absent node is a no-op.
func (s store[N]) removeNode(n N) store[N] {
	if !s.containsNode(n) {
		return s
	}
	c := s.clone()
	for t := range c.out[n] {
		delete(c.in[t], n)
	}
	for t := range c.in[n] {
		delete(c.out[t], n)
	}
	delete(c.out, n)
	delete(c.in, n)
	delete(c.nodes, n)
	return c
}

// removeEdge returns a store without the edge (both orientations for a
// symmetric store). Removing an absent edge is a no-op.
func (s store[N]) removeEdge(from, to N) store[N] {
	if !s.containsEdge(from, to) {
		return s
	}
	c := s.clone()
	c.unlink(from, to)
	if c.symmetric {
		c.unlink(to, from)
	}
	return c
}

// rename rebuilds the store with every node and edge endpoint relabeled by
// f. Injectivity is checked by comparing the image size to the node count.
func (s store[N]) rename(f func(N) N) (store[N], error) {
	c := newStore[N](s.symmetric)
	for n := range s.nodes {
		c.nodes[f(n)] = struct{}{}
	}
	if len(c.nodes) != len(s.nodes) {
		return store[N]{}, ErrRenameCollision
	}
	for from, adj := range s.out {
		for to := range adj {
			c.link(f(from), f(to))
		}
	}
	return c, nil
}

// union merges o into a copy of s without any collision handling: equal
// labels collapse into a single node.
func (s store[N]) union(o store[N]) store[N] {
	c := s.clone()
	for n := range o.nodes {
		c.nodes[n] = struct{}{}
	}
	for from, adj := range o.out {
		for to := range adj {
			c.link(from, to)
		}
	}
	return c
}

func (s store[N]) disjoint(o store[N]) bool {
	for n := range o.nodes {
		if s.containsNode(n) {
			return false
		}
	}
	return true
}

// subgraph returns the subgraph induced by the nodes for which keep reports
// true. subset must be a subset of the node set.
func (s store[N]) subgraph(subset []N, keep func(inSubset bool) bool) (store[N], error) {
	member := make(map[N]struct{}, len(subset))
	for _, n := range subset {
		if !s.containsNode(n) {
			return store[N]{}, ErrNotSubgraph
		}
		member[n] = struct{}{}
	}
	c := newStore[N](s.symmetric)
	for n := range s.nodes {
		_, in := member[n]
		if keep(in) {
			c.nodes[n] = struct{}{}
		}
	}
	for from, adj := range s.out {
		if !c.containsNode(from) {
			continue
		}
		for to := range adj {
			if c.containsNode(to) {
				c.link(from, to)
			}
		}
	}
	return c, nil
}

func (s store[N]) nodeList() []N {
	nodes := make([]N, 0, len(s.nodes))
	for n := range s.nodes {
		nodes = append(nodes, n)
	}
	slices.Sort(nodes)
	return nodes
}

func (s store[N]) edgeList() []Edge[N] {
	var edges []Edge[N]
	for from, adj := range s.out {
		for to := range adj {
			edges = append(edges, Edge[N]{From: from, To: to})
		}
	}
	slices.SortFunc(edges, compareEdges)
	return edges
}

func (s store[N]) edgeCount() int {
	total := 0
	for _, adj := range s.out {
		total += len(adj)
	}
	return total
}

func sortedKeys[N cmp.Ordered](set map[N]struct{}) []N {
	if len(set) == 0 {
		return nil
	}
	keys := make([]N, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// successors and predecessors return sorted slices and are empty for
// absent nodes rather than an error.
func (s store[N]) successors(n N) []N   { return sortedKeys(s.out[n]) }
func (s store[N]) predecessors(n N) []N { return sortedKeys(s.in[n]) }

func (s store[N]) neighbors(n N) []N {
	merged := make(map[N]struct{}, len(s.out[n])+len(s.in[n]))
	for t := range s.out[n] {
		merged[t] = struct{}{}
	}
	for t := range s.in[n] {
		merged[t] = struct{}{}
	}
	return sortedKeys(merged)
}

func (s store[N]) edgesFrom(n N) []Edge[N] {
	var edges []Edge[N]
	for to := range s.out[n] {
		edges = append(edges, Edge[N]{From: n, To: to})
	}
	slices.SortFunc(edges, compareEdges)
	return edges
}

func (s store[N]) edgesInto(n N) []Edge[N] {
	var edges []Edge[N]
	for from := range s.in[n] {
		edges = append(edges, Edge[N]{From: from, To: n})
	}
	slices.SortFunc(edges, compareEdges)
	return edges
}

// equal reports structural equality: identical node and edge sets.
func (s store[N]) equal(o store[N]) bool {
	if len(s.nodes) != len(o.nodes) || s.edgeCount() != o.edgeCount() {
		return false
	}
	for n := range s.nodes {
		if !o.containsNode(n) {
			return false
		}
	}
	for from, adj := range s.out {
		for to := range adj {
			if !o.containsEdge(from, to) {
				return false
			}
		}
	}
	return true
}

// build seeds a store from explicit node and edge sets, applying the full
// construction validation: endpoints must be members, no self-loops.
// Duplicate nodes and edges in the input are collapsed.
func build[N cmp.Ordered](symmetric bool, nodes []N, edges []Edge[N]) (store[N], error) {
	s := newStore[N](symmetric)
	for _, n := range nodes {
		s.nodes[n] = struct{}{}
	}
	for _, e := range edges {
		if e.From == e.To {
			return store[N]{}, ErrSelfLoop
		}
		if !s.containsNode(e.From) || !s.containsNode(e.To) {
			return store[N]{}, ErrUnknownNode
		}
		s.link(e.From, e.To)
		if symmetric {
			s.link(e.To, e.From)
		}
	}
	return s, nil
}
