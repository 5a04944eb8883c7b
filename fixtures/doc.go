// Package fixtures builds graph.Graph replicas of known undirected,
// unweighted topologies, for exercising materialization, convergence, and
// component-tracking against graphs of known shape and size.
//
// Each topology is exposed as a Constructor: a closure over its
// parameters that appends a deterministic sequence of AddVertex/AddEdge
// operations to a graph.Graph, stamping each with a caller-chosen
// starting timestamp and an increment of 1 per operation. Construct with
// Build, which applies a Constructor and returns the timestamp the next
// operation should use, so constructors can be composed in sequence
// against one replica.
//
// Grounded on the teacher's (lvlath) builder package: the same
// Constructor-closure shape and one-topology-per-function layout, trimmed
// to the undirected/unweighted/simple-graph domain this module covers —
// weighted, directed, and multigraph generators (builder.OHLC, Pulse,
// Chirp, Letters, the platonic-solid family, and every WithWeight/
// WithDirected option) have no equivalent here and are not reimplemented.
package fixtures
