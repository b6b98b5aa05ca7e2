package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertEventQuantizesToFourMillisecondGrid(t *testing.T) {
	tl := NewTimeline(1)
	e := tl.InsertEvent(10, 0, 1.0, false)
	require.NotNil(t, e)
	assert.Equal(t, 8, e.Time)
}

func TestInsertEventUpdatesExistingEventInPlace(t *testing.T) {
	tl := NewTimeline(1)
	tl.InsertEvent(0, 0, 1.0, false)
	e := tl.InsertEvent(0, 0, 2.0, false)
	require.Len(t, tl.Events, 1)
	assert.InDelta(t, 2.0, e.Parameters[0], 1e-9)
}

func TestInsertEventMaintainsNonDecreasingTimeOrder(t *testing.T) {
	tl := NewTimeline(1)
	tl.InsertEvent(40, 0, 1.0, false)
	tl.InsertEvent(8, 0, 2.0, false)
	tl.InsertEvent(20, 0, 3.0, false)
	require.Len(t, tl.Events, 3)
	for i := 1; i < len(tl.Events); i++ {
		assert.LessOrEqual(t, tl.Events[i-1].Time, tl.Events[i].Time)
	}
}

func TestInsertEventNegativeTimeIsRejected(t *testing.T) {
	tl := NewTimeline(1)
	e := tl.InsertEvent(-1, 0, 1.0, false)
	assert.Nil(t, e)
}

func TestSetZeroRefShiftsSubsequentInsertions(t *testing.T) {
	tl := NewTimeline(1)
	tl.InsertEvent(0, 0, 1.0, false)
	tl.SetZeroRef(100)
	e := tl.InsertEvent(0, 0, 2.0, false)
	assert.Equal(t, 100, e.Time)
}

func TestInsertSentinelSetsFlag(t *testing.T) {
	tl := NewTimeline(1)
	e := tl.InsertSentinel(0)
	require.NotNil(t, e)
	assert.True(t, e.Flag)
	assert.False(t, e.HasParameter(0, false))
}
