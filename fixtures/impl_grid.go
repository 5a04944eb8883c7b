package fixtures

import (
	"fmt"

	"github.com/agravier/lwwgraph/graph"
)

const minGridDim = 1

// Grid returns a Constructor that builds a rows-by-cols rectangular grid,
// vertex IDs "r_c", with edges to the right and down neighbor of each
// cell. Panics if rows < 1 or cols < 1.
func Grid(rows, cols int) Constructor {
	if rows < minGridDim || cols < minGridDim {
		panic(ErrTooFewVertices)
	}
	id := func(r, c int) string { return fmt.Sprintf("%d_%d", r, c) }

	return func(g *graph.Graph[string], ts int64) int64 {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ts = tickVertex(g, id(r, c), ts)
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if r+1 < rows {
					ts = tickEdge(g, id(r, c), id(r+1, c), ts)
				}
				if c+1 < cols {
					ts = tickEdge(g, id(r, c), id(r, c+1), ts)
				}
			}
		}
		return ts
	}
}
