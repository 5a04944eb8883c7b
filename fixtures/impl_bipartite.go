package fixtures

import (
	"fmt"

	"github.com/agravier/lwwgraph/graph"
)

const minBipartiteSide = 1

// CompleteBipartite returns a Constructor that builds K_{m,n}: m vertices
// "a0".."a(m-1)" each connected to every one of n vertices "b0".."b(n-1)".
// Panics if m < 1 or n < 1.
func CompleteBipartite(m, n int) Constructor {
	if m < minBipartiteSide || n < minBipartiteSide {
		panic(ErrTooFewVertices)
	}
	return func(g *graph.Graph[string], ts int64) int64 {
		for i := 0; i < m; i++ {
			ts = tickVertex(g, fmt.Sprintf("a%d", i), ts)
		}
		for j := 0; j < n; j++ {
			ts = tickVertex(g, fmt.Sprintf("b%d", j), ts)
		}
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				ts = tickEdge(g, fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", j), ts)
			}
		}
		return ts
	}
}
