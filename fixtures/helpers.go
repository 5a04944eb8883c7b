package fixtures

import (
	"strconv"

	"github.com/agravier/lwwgraph/core"
	"github.com/agravier/lwwgraph/graph"
)

func intToID(i int) string {
	return strconv.Itoa(i)
}

// tickVertex appends an AddVertex(v) operation at ts and returns ts+1.
func tickVertex(g *graph.Graph[string], v string, ts int64) int64 {
	g.AddVertex(v, &ts)
	return ts + 1
}

// tickEdge appends an AddEdge(u,v) operation at ts and returns ts+1.
func tickEdge(g *graph.Graph[string], u, v string, ts int64) int64 {
	g.AddEdge(core.NewEdge(u, v), &ts)
	return ts + 1
}
