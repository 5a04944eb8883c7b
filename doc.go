// Package lwwgraph implements a Last-Writer-Wins Element Graph: a
// conflict-free replicated data type (CRDT) for an undirected graph of
// atoms and unordered edges that converges across replicas without
// coordination.
//
// The implementation is split across focused subpackages:
//
//	core/     — Edge and Operation: the comparable, serializable building
//	            blocks every other package is built from
//	clock/    — monotonic timestamp sources (Mock, Realtime) mutators stamp
//	            operations with
//	lwwset/   — a standalone LWW-Element-Set, the single-type building
//	            block the graph's add/remove semantics generalize
//	graph/    — Graph[T]: the CRDT itself — an append-only operation log,
//	            materialized into vertices, edges, and connected components
//	path/     — shortest-path queries over a Graph's components snapshot
//	peer/     — a minimal in-process broadcast registry for exchanging
//	            operations between replicas
//	fixtures/ — deterministic generators for known graph topologies, used
//	            across the other packages' tests
//
// This root package holds no code of its own.
package lwwgraph
