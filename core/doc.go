// Package core defines the value types shared by every other package in
// this module: the unordered Edge, the tagged Operation record that the
// replication log is built from, and the sentinel error raised when an
// Operation is constructed with an argument that does not match its kind.
//
// Neither type carries any mutable state or locking of its own — both are
// plain, comparable-by-value records. The mutable, concurrency-safe state
// lives one layer up, in package graph.
//
// Atom type
//
// Every exported type here is parameterized over an atom type T, which must
// satisfy Go's built-in comparable constraint (so it can key a map and be
// compared with ==). The core places no further requirement on T; callers
// are free to use strings, integers, or any comparable struct as vertex
// identity.
package core
