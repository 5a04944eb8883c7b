package fixtures_test

import (
	"testing"

	"github.com/agravier/lwwgraph/clock"
	"github.com/agravier/lwwgraph/fixtures"
	"github.com/agravier/lwwgraph/graph"
	"github.com/stretchr/testify/require"
)

func newGraph() *graph.Graph[string] {
	return graph.New[string](clock.NewMock(0))
}

func TestPath_VertexAndEdgeCounts(t *testing.T) {
	g := newGraph()
	next := fixtures.Build(g, 0, fixtures.Path(5))
	require.Equal(t, int64(9), next) // 5 vertices + 4 edges

	st := g.Materialize()
	require.Len(t, st.Vertices, 5)
	require.Len(t, st.Edges, 4)
	require.Len(t, st.Components, 1)
}

func TestCycle_IsOneComponentAndEveryVertexHasDegreeTwo(t *testing.T) {
	g := newGraph()
	fixtures.Build(g, 0, fixtures.Cycle(6))

	st := g.Materialize()
	require.Len(t, st.Vertices, 6)
	require.Len(t, st.Edges, 6)
	require.Len(t, st.Components, 1)
	for _, c := range st.Components[0].Neighbors {
		require.Len(t, c, 2)
	}
}

func TestStar_HubHasDegreeN(t *testing.T) {
	g := newGraph()
	fixtures.Build(g, 0, fixtures.Star(4))

	st := g.Materialize()
	require.Len(t, st.Vertices, 5)
	require.Len(t, st.Edges, 4)
	require.Len(t, st.Components[0].Neighbors["hub"], 4)
}

func TestWheel_RimPlusHub(t *testing.T) {
	g := newGraph()
	fixtures.Build(g, 0, fixtures.Wheel(5))

	st := g.Materialize()
	require.Len(t, st.Vertices, 6)
	require.Len(t, st.Edges, 10) // 5 rim + 5 spokes
}

func TestComplete_EveryPairConnected(t *testing.T) {
	g := newGraph()
	fixtures.Build(g, 0, fixtures.Complete(5))

	st := g.Materialize()
	require.Len(t, st.Vertices, 5)
	require.Len(t, st.Edges, 10) // C(5,2)
	require.Len(t, st.Components, 1)
}

func TestCompleteBipartite_EdgeCount(t *testing.T) {
	g := newGraph()
	fixtures.Build(g, 0, fixtures.CompleteBipartite(3, 4))

	st := g.Materialize()
	require.Len(t, st.Vertices, 7)
	require.Len(t, st.Edges, 12)
}

func TestGrid_InteriorDegreeFour(t *testing.T) {
	g := newGraph()
	fixtures.Build(g, 0, fixtures.Grid(3, 3))

	st := g.Materialize()
	require.Len(t, st.Vertices, 9)
	require.Len(t, st.Components, 1)
	require.Len(t, st.Components[0].Neighbors["1_1"], 4)
	require.Len(t, st.Components[0].Neighbors["0_0"], 2)
}

func TestRandomSparse_DeterministicForFixedSeed(t *testing.T) {
	g1, g2 := newGraph(), newGraph()
	fixtures.Build(g1, 0, fixtures.RandomSparse(30, 0.2, 42))
	fixtures.Build(g2, 0, fixtures.RandomSparse(30, 0.2, 42))

	st1, st2 := g1.Materialize(), g2.Materialize()
	require.Equal(t, len(st1.Edges), len(st2.Edges))
	require.ElementsMatch(t, edgeKeys(st1), edgeKeys(st2))
}

func edgeKeys(st graph.State[string]) []string {
	out := make([]string, len(st.Edges))
	for i, e := range st.Edges {
		a, b := e.Vertices()
		if a > b {
			a, b = b, a
		}
		out[i] = a + "-" + b
	}
	return out
}

func TestComposingConstructorsChainsTimestamps(t *testing.T) {
	g := newGraph()
	next := fixtures.Build(g, 0, fixtures.Path(3))
	next = fixtures.Build(g, next, fixtures.Cycle(4))

	st := g.Materialize()
	// Path's "0","1","2" and Cycle's "0".."3" share the same ID scheme and
	// collapse onto the same four vertices when composed against one
	// replica; that's why real fixture composition uses distinct prefixes
	// (as CompleteBipartite does) instead of two unprefixed topologies.
	require.Len(t, st.Vertices, 4)
	require.Greater(t, next, int64(0))
}

func TestTooFewVerticesPanics(t *testing.T) {
	require.PanicsWithValue(t, fixtures.ErrTooFewVertices, func() { fixtures.Path(1) })
	require.PanicsWithValue(t, fixtures.ErrTooFewVertices, func() { fixtures.Cycle(2) })
}
