package fixtures

import "github.com/agravier/lwwgraph/graph"

const minWheelRimVertices = 3

// Wheel returns a Constructor that builds a wheel: an n-vertex rim cycle
// "0".."n-1" plus a "hub" connected to every rim vertex. Panics if n < 3.
func Wheel(n int) Constructor {
	if n < minWheelRimVertices {
		panic(ErrTooFewVertices)
	}
	return func(g *graph.Graph[string], ts int64) int64 {
		ts = Cycle(n)(g, ts)
		ts = tickVertex(g, "hub", ts)
		for i := 0; i < n; i++ {
			ts = tickEdge(g, "hub", intToID(i), ts)
		}
		return ts
	}
}
