package fixtures

import "github.com/agravier/lwwgraph/graph"

const minStarLeaves = 1

// Star returns a Constructor that builds a star with one hub, "hub", and n
// leaves "0".."n-1", each connected only to the hub. Panics if n < 1.
func Star(n int) Constructor {
	if n < minStarLeaves {
		panic(ErrTooFewVertices)
	}
	return func(g *graph.Graph[string], ts int64) int64 {
		ts = tickVertex(g, "hub", ts)
		for i := 0; i < n; i++ {
			ts = tickVertex(g, intToID(i), ts)
		}
		for i := 0; i < n; i++ {
			ts = tickEdge(g, "hub", intToID(i), ts)
		}
		return ts
	}
}
