// Package graph implements the LWW-Element-Graph CRDT core: a log-backed,
// undirected graph of atoms and unordered edges that converges across
// replicas without coordination.
//
// Graph[T] is the central exported type, alongside the State[T] and
// Component[T] values its queries return. It accumulates Operation[T] records
// (see package core) in an append-only log and reconstructs the current
// vertex set, edge set, and connected-components map on demand by sorting
// and folding that log — the "materialization" described in the package's
// design notes.
//
// # Materialization algorithm
//
// The log is sorted by (timestamp ascending, kind priority ascending), with
// kind priority DelE < DelV < AddV < AddE. This ordering enforces two rules
// at equal timestamps:
//
//   - Remove-wins: a delete of an object is folded before an add of the
//     same object at the same instant, so the add is rejected by the
//     "no dominating delete" checks below.
//   - Validity at each instant: edge deletions are applied before vertex
//     deletions before vertex additions before edge additions, so that an
//     edge addition at time t only ever sees vertex state that is already
//     consistent at t.
//
// While scanning in that order, four maps record the last-seen timestamp
// per (kind, arg): lastAddV, lastDelV, lastAddE, lastDelE. Removing a vertex
// additionally stamps lastDelE for every edge cascaded away by that
// removal — this is what stops a later AddVertex for the same atom from
// resurrecting edges that were only alive because of the vertex's earlier
// lifetime (the "non-restoration" rule). Reviving such an edge requires an
// explicit, later AddEdge.
//
// # Components
//
// The live vertex/edge sets are accompanied by a components map: an
// unordered list of per-component adjacency maps (vertex -> set of
// neighbors) that partitions the live vertex set. Rather than maintaining
// it incrementally step by step as the log folds (the merge-on-add,
// maybe-split-on-remove bookkeeping in the specification's §4.4.4), it is
// recomputed by a single connectivity sweep over the final live (V, E) —
// the two strategies must agree, since the partition is a pure function of
// the final state. Self-loops are reflected as v present in its own
// neighbor set.
//
// Grounded on the teacher's (lvlath) core.Graph mutex-guarded adjacency
// list and gridgraph.ConnectedComponents' BFS-based island-finding for the
// split pass; the fold itself is the specification's own algorithm — there
// is no equivalent body in original_source (its log_lww_graph.py leaves
// every mutator as a stub for the reader to fill in).
package graph
