package fixtures

import (
	"math/rand"

	"github.com/agravier/lwwgraph/graph"
)

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor that samples an Erdos-Renyi-style
// graph over n vertices "0".."n-1", including each unordered pair {i,j}
// (i<j) independently with probability p, under the given seed. Panics if
// n < 1 or p is outside [0,1].
func RandomSparse(n int, p float64, seed int64) Constructor {
	if n < minRandomSparseVertices {
		panic(ErrTooFewVertices)
	}
	if p < 0.0 || p > 1.0 {
		panic(ErrInvalidProbability)
	}
	return func(g *graph.Graph[string], ts int64) int64 {
		for i := 0; i < n; i++ {
			ts = tickVertex(g, intToID(i), ts)
		}
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < p {
					ts = tickEdge(g, intToID(i), intToID(j), ts)
				}
			}
		}
		return ts
	}
}
