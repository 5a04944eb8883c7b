package fixtures

import "github.com/agravier/lwwgraph/graph"

const minPathVertices = 2

// Path returns a Constructor that builds a simple path of n vertices,
// 0-(n-1), connected in order. Panics if n < 2, via the sentinel
// ErrTooFewVertices wrapped into a runtime panic: topology size is a
// construction-time programming error, not a replica-runtime failure (the
// graph itself never fails a mutation).
func Path(n int) Constructor {
	if n < minPathVertices {
		panic(ErrTooFewVertices)
	}
	return func(g *graph.Graph[string], ts int64) int64 {
		for i := 0; i < n; i++ {
			ts = tickVertex(g, intToID(i), ts)
		}
		for i := 1; i < n; i++ {
			ts = tickEdge(g, intToID(i-1), intToID(i), ts)
		}
		return ts
	}
}
