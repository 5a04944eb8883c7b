// Package clock provides the pluggable monotonic timestamp source that
// every mutator in this module stamps operations with when the caller does
// not supply an explicit timestamp.
//
// Source is the single-method contract: Nanoseconds() returns a 64-bit
// integer that never decreases across calls on the same instance. Two
// implementations are provided:
//
//   - Mock: a deterministic, hand-steppable clock for tests (see
//     original_source/crdt/clock/impl/mocktime.py).
//   - Realtime: wraps the Go monotonic clock relative to a caller-supplied
//     zero timestamp (see original_source/crdt/clock/impl/realtime.py).
//
// A backward-going Source is a bug in the caller's clock, not in this
// package or in the CRDT built on top of it — the core only ever compares
// timestamps already recorded in the log.
package clock
