package lwwset_test

import (
	"sort"
	"testing"

	"github.com/agravier/lwwgraph/clock"
	"github.com/agravier/lwwgraph/lwwset"
	"github.com/stretchr/testify/require"
)

func ts(v int64) *int64 { return &v }

func TestSet_AddThenContains(t *testing.T) {
	s := lwwset.New[string](clock.NewMock(0))
	s.Add("a", ts(1))
	require.True(t, s.Contains("a"))
	require.False(t, s.Contains("b"))
}

func TestSet_RemoveWinsOnEqualTimestamp(t *testing.T) {
	s := lwwset.New[string](clock.NewMock(0))
	s.Remove("a", ts(50))
	s.Add("a", ts(50))
	require.False(t, s.Contains("a"), "remove must win a tied timestamp")
}

func TestSet_LaterAddWins(t *testing.T) {
	s := lwwset.New[string](clock.NewMock(0))
	s.Add("a", ts(1))
	s.Remove("a", ts(2))
	s.Add("a", ts(3))
	require.True(t, s.Contains("a"))
}

func TestSet_LaterRemoveWins(t *testing.T) {
	s := lwwset.New[string](clock.NewMock(0))
	s.Add("a", ts(3))
	s.Remove("a", ts(5))
	require.False(t, s.Contains("a"))
}

func TestSet_OutOfOrderDelivery(t *testing.T) {
	// Entries arrive (are appended) out of timestamp order; the fold must
	// not care about append order, only about the (op, arg, ts) triples.
	s := lwwset.New[string](clock.NewMock(0))
	s.Remove("a", ts(5))
	s.Add("a", ts(3))
	require.False(t, s.Contains("a"))
}

func TestSet_DuplicateDeliveryIsIdempotent(t *testing.T) {
	s := lwwset.New[string](clock.NewMock(0))
	s.Add("a", ts(1))
	s.Add("a", ts(1))
	s.Add("a", ts(1))
	require.True(t, s.Contains("a"))
	require.ElementsMatch(t, []string{"a"}, s.Elements())
}

func TestSet_ElementsReflectsOnlyLiveItems(t *testing.T) {
	s := lwwset.New[string](clock.NewMock(0))
	s.Add("a", ts(1))
	s.Add("b", ts(1))
	s.Remove("b", ts(2))

	got := s.Elements()
	sort.Strings(got)
	require.Equal(t, []string{"a"}, got)
}

func TestSet_UsesClockWhenTimestampOmitted(t *testing.T) {
	c := clock.NewMock(0)
	require.NoError(t, c.SetStepSize(10))
	s := lwwset.New[string](c)

	stampedAt := s.Add("a", nil)
	require.Equal(t, int64(10), stampedAt)
	require.True(t, s.Contains("a"))
}
