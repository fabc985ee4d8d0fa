// Package graph provides immutable directed and undirected graphs with
// functional update semantics.
//
// # Overview
//
// Tinct's coloring engines explore large search spaces over a fixed input
// graph, so the graph type is persistent: every structural operation
// ([Undirected.AddEdge], [Undirected.RemoveNode], [Undirected.Rename],
// [Undirected.SubgraphWith], ...) returns a new graph and leaves the
// receiver untouched. Graphs can therefore be shared freely across
// goroutines and search frontiers without copying or locking.
//
// [Directed] and [Undirected] are distinct concrete types rather than a
// mode flag on a shared type. Each defines structural equality over its own
// node and edge sets, which rules out accidental cross-variant comparisons
// at compile time.
//
// # Invariants
//
// Three invariants are enforced on every construction and mutation path:
//
//   - every edge endpoint is a member of the node set
//   - no edge connects a node to itself
//   - undirected edge storage is symmetric: (a,b) present iff (b,a) present
//
// RemoveNode preserves the first invariant by always cascading the removal
// of incident edges.
//
// # Basic Usage
//
//	g, err := graph.NewUndirected(
//		[]string{"a", "b", "c"},
//		[]graph.Edge[string]{{From: "a", To: "b"}, {From: "b", To: "c"}},
//	)
//	if err != nil {
//		return err
//	}
//	g2, err := g.AddEdge("a", "c") // g is unchanged
//
// Adjacency queries ([Undirected.NeighborsOf], [Undirected.SuccessorsOf],
// [Undirected.EdgesFrom], ...) return sorted slices and are empty, not an
// error, for absent nodes.
//
// # Add Variants
//
// Insertion comes in two deliberate flavors: MaybeAddNode/MaybeAddEdge are
// idempotent, while AddNode/AddEdge fail with [ErrDuplicateNode] or
// [ErrDuplicateEdge] when the element already exists. Callers choose which
// semantics they mean instead of getting one silently.
//
// # Determinism
//
// All enumeration ([Undirected.Nodes], [Undirected.Edges], adjacency
// results) is sorted by the node label's natural order, so downstream
// algorithms see a reproducible view regardless of map iteration order.
package graph
