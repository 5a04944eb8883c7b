package core_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/agravier/lwwgraph/core"
	"github.com/stretchr/testify/require"
)

func TestNewVertexOp_RejectsEdgeKind(t *testing.T) {
	_, err := core.NewVertexOp[string](core.AddEdge, "a", 1)
	require.ErrorIs(t, err, core.ErrInvalidOperation)
}

func TestNewEdgeOp_RejectsVertexKind(t *testing.T) {
	_, err := core.NewEdgeOp[string](core.AddVertex, core.NewEdge("a", "b"), 1)
	require.ErrorIs(t, err, core.ErrInvalidOperation)
}

func TestNewVertexOp_Accessors(t *testing.T) {
	op, err := core.NewVertexOp(core.AddVertex, "a", 10)
	require.NoError(t, err)

	v, ok := op.Vertex()
	require.True(t, ok)
	require.Equal(t, "a", v)

	_, ok = op.EdgeArg()
	require.False(t, ok)
}

func TestNewEdgeOp_Accessors(t *testing.T) {
	op, err := core.NewEdgeOp(core.AddEdge, core.NewEdge("a", "b"), 10)
	require.NoError(t, err)

	e, ok := op.EdgeArg()
	require.True(t, ok)
	require.True(t, e.Equal(core.NewEdge("b", "a")))

	_, ok = op.Vertex()
	require.False(t, ok)
}

func TestOperation_Equal(t *testing.T) {
	op1, _ := core.NewEdgeOp(core.AddEdge, core.NewEdge("a", "b"), 5)
	op2, _ := core.NewEdgeOp(core.AddEdge, core.NewEdge("b", "a"), 5)
	require.True(t, op1.Equal(op2))

	op3, _ := core.NewEdgeOp(core.AddEdge, core.NewEdge("a", "b"), 6)
	require.False(t, op1.Equal(op3))
}

func TestOperation_KindPriority(t *testing.T) {
	require.Less(t, core.RemoveEdge.Priority(), core.RemoveVertex.Priority())
	require.Less(t, core.RemoveVertex.Priority(), core.AddVertex.Priority())
	require.Less(t, core.AddVertex.Priority(), core.AddEdge.Priority())
}

func TestOperation_JSONRoundTrip_Vertex(t *testing.T) {
	op, err := core.NewVertexOp(core.AddVertex, "peer-1", 42)
	require.NoError(t, err)

	data, err := json.Marshal(op)
	require.NoError(t, err)
	require.JSONEq(t, `{"op":"add_v","arg":"peer-1","ts":42}`, string(data))

	var back core.Operation[string]
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, op.Equal(back))
}

func TestOperation_JSONRoundTrip_Edge(t *testing.T) {
	op, err := core.NewEdgeOp(core.AddEdge, core.NewEdge("a", "b"), 7)
	require.NoError(t, err)

	data, err := json.Marshal(op)
	require.NoError(t, err)

	var back core.Operation[string]
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, op.Equal(back))
}

func TestOperation_JSONRoundTrip_EdgeIsOrderIndependentOnTheWire(t *testing.T) {
	// A receiver presenting endpoints in the opposite order must still
	// materialize to the same logical edge.
	raw := []byte(`{"op":"add_e","arg":{"a":"b","b":"a"},"ts":7}`)
	var op core.Operation[string]
	require.NoError(t, json.Unmarshal(raw, &op))

	e, ok := op.EdgeArg()
	require.True(t, ok)
	require.True(t, e.Equal(core.NewEdge("a", "b")))
}

func TestOperation_UnmarshalJSON_RejectsBadEdgeArg(t *testing.T) {
	raw := []byte(`{"op":"add_e","arg":"not-an-edge","ts":1}`)
	var op core.Operation[string]
	err := json.Unmarshal(raw, &op)
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrInvalidOperation))
}
