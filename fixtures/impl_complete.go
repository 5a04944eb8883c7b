package fixtures

import "github.com/agravier/lwwgraph/graph"

const minCompleteVertices = 1

// Complete returns a Constructor that builds the complete graph K_n over
// vertices "0".."n-1": every distinct pair is connected. Panics if n < 1.
func Complete(n int) Constructor {
	if n < minCompleteVertices {
		panic(ErrTooFewVertices)
	}
	return func(g *graph.Graph[string], ts int64) int64 {
		for i := 0; i < n; i++ {
			ts = tickVertex(g, intToID(i), ts)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				ts = tickEdge(g, intToID(i), intToID(j), ts)
			}
		}
		return ts
	}
}
