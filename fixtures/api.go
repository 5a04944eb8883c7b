package fixtures

import "github.com/agravier/lwwgraph/graph"

// Constructor builds one topology against g, stamping its operations
// starting at ts and incrementing by 1 per operation. It returns the
// first timestamp not yet used, so a caller composing several
// Constructors against the same replica can chain them without
// collisions.
type Constructor func(g *graph.Graph[string], ts int64) int64

// Build applies c to g starting at ts and returns the next free
// timestamp.
func Build(g *graph.Graph[string], ts int64, c Constructor) int64 {
	return c(g, ts)
}
