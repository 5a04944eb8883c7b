package clock_test

import (
	"testing"

	"github.com/agravier/lwwgraph/clock"
	"github.com/stretchr/testify/require"
)

func TestMock_NormalOperation(t *testing.T) {
	c := clock.NewMock(10)
	require.Equal(t, int64(1), c.StepSize())
	require.Equal(t, int64(11), c.NextTick())
	require.Equal(t, int64(11), c.Nanoseconds())

	c2 := clock.NewMock(0)
	require.NoError(t, c2.SetStepSize(10))
	require.Equal(t, int64(10), c2.NextTick())
	require.Equal(t, int64(10), c2.Nanoseconds())

	require.NoError(t, c2.SetNextTick(1000))
	require.Equal(t, int64(1000), c2.NextTick())
	require.Equal(t, int64(1000), c2.Nanoseconds())
	// the override is consumed by the prior tick; next tick falls back to
	// now + step_size.
	require.Equal(t, int64(1010), c2.NextTick())

	require.NoError(t, c2.SetStepSize(0))
	require.Equal(t, int64(1000), c2.NextTick())
}

func TestMock_RejectsNegativeStep(t *testing.T) {
	c := clock.NewMock(0)
	err := c.SetStepSize(-1)
	require.ErrorIs(t, err, clock.ErrNegativeStep)
}

func TestMock_RejectsBackwardNextTick(t *testing.T) {
	c := clock.NewMock(10)
	err := c.SetNextTick(9)
	require.ErrorIs(t, err, clock.ErrNonMonotonic)
}

func TestMock_SatisfiesSourceInterface(t *testing.T) {
	var _ clock.Source = clock.NewMock(0)
}
