// Package peer provides a minimal, in-process registry for exchanging
// operation batches between graph replicas.
//
// It implements the specification's "Peer protocol (skeletal)": a Server
// accepts client registration and fans out Update batches to every other
// registered client. It carries no ordering, delivery, or liveness
// guarantee — convergence holds once every replica has received every
// operation at least once, by any means; Server is wiring to exercise that
// property in tests and examples, not a transport.
//
// Grounded on the teacher's (lvlath) core.Graph registry-style mutex
// discipline: one lock guards the whole client list, matching the
// single-threaded-per-replica, caller-serializes-access contract the rest
// of this module follows.
package peer
