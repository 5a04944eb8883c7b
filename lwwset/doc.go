// Package lwwset implements the Last-Writer-Wins Element Set: a log-backed
// CRDT set with last-writer-wins conflict resolution and remove-wins
// tie-breaking at equal timestamps.
//
// State is an append-only log of {Add, Del} operations per element. An
// element is present in the materialized set iff its most recent Add
// timestamp strictly exceeds its most recent Del timestamp (a missing side
// counts as -infinity); the strict inequality is what makes a tied
// Add/Del at the same instant resolve in favor of removal.
//
// This is component C3 of the LWW-Graph CRDT. Package graph does not use
// Set[T]; it keeps its own core.Operation log and applies the same
// remove-wins rule in its own fold.
//
// Grounded on the teacher's (lvlath) single-mutex, log-then-fold style
// (core.Graph's muVert/muEdgeAdj convention collapses here to one mutex
// since there is only one piece of state: the log) and on
// original_source/crdt/lww_set/impl/log_lww_set.py for the exact
// last-writer-wins fold.
package lwwset
