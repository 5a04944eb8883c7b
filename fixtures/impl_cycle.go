package fixtures

import "github.com/agravier/lwwgraph/graph"

const minCycleVertices = 3

// Cycle returns a Constructor that builds an n-vertex ring 0-1-...-(n-1)-0.
// Panics if n < 3.
func Cycle(n int) Constructor {
	if n < minCycleVertices {
		panic(ErrTooFewVertices)
	}
	return func(g *graph.Graph[string], ts int64) int64 {
		for i := 0; i < n; i++ {
			ts = tickVertex(g, intToID(i), ts)
		}
		for i := 0; i < n; i++ {
			ts = tickEdge(g, intToID(i), intToID((i+1)%n), ts)
		}
		return ts
	}
}
