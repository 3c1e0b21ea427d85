package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStepper(initial int) (*Stepper, *int) {
	value := initial
	s := NewStepper("size", "Living space", 0, 500,
		func() int { return value },
		func(v int) { value = v },
	)
	return s, &value
}

func TestPressAppliesImmediately(t *testing.T) {
	s, value := newTestStepper(10)

	cmd := s.Press(+1)
	assert.Equal(t, 11, *value)
	assert.NotNil(t, cmd, "press schedules the first repeat tick")
	assert.True(t, s.Held())
}

func TestHoldRepeatsInPressedDirection(t *testing.T) {
	s, value := newTestStepper(1)

	require.NotNil(t, s.Press(+1)) // 2
	for i := 0; i < 3; i++ {
		require.NotNil(t, s.Tick(HoldTickMsg{ID: "size"}))
	}
	assert.Equal(t, 5, *value, "one press plus three held ticks")
}

func TestTickAfterReleaseIsIgnored(t *testing.T) {
	s, value := newTestStepper(10)

	s.Press(+1)
	s.Release()

	// The tick scheduled before the release still arrives; it must not move
	// the value or re-arm the repeat.
	cmd := s.Tick(HoldTickMsg{ID: "size"})
	assert.Nil(t, cmd)
	assert.Equal(t, 11, *value)
	assert.False(t, s.Held())
}

func TestTickForOtherStepperIsIgnored(t *testing.T) {
	s, value := newTestStepper(10)
	s.Press(+1)

	assert.Nil(t, s.Tick(HoldTickMsg{ID: "bedrooms"}))
	assert.Equal(t, 11, *value)
}

func TestHoldReadsLiveValue(t *testing.T) {
	s, value := newTestStepper(10)

	s.Press(+1) // 11
	// A manual edit lands while the hold is active.
	*value = 100
	s.Tick(HoldTickMsg{ID: "size"})
	assert.Equal(t, 101, *value, "ticks step from the live value, not a hold-start copy")
}

func TestClampAtBounds(t *testing.T) {
	s, value := newTestStepper(0)

	s.Press(-1)
	assert.Equal(t, 0, *value, "decrement stops at the minimum")

	*value = 500
	s.Release()
	s.Press(+1)
	assert.Equal(t, 500, *value, "increment stops at the maximum")
}

func TestMaxBelowMinMeansUnboundedAbove(t *testing.T) {
	value := 7
	s := NewStepper("garages", "Garages", 0, -1,
		func() int { return value },
		func(v int) { value = v },
	)

	s.Press(+1)
	assert.Equal(t, 8, value)
}

func TestDecrementHold(t *testing.T) {
	s, value := newTestStepper(5)

	s.Press(-1) // 4
	s.Tick(HoldTickMsg{ID: "size"})
	s.Tick(HoldTickMsg{ID: "size"})
	assert.Equal(t, 2, *value)
}
