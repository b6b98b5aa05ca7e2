package frame

import (
	"testing"

	"github.com/mym-br/gama-tts-sub001/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEmptyTimelineYieldsNoFrames(t *testing.T) {
	tl := event.NewTimeline(1)
	frames := Generate(tl, Config{PitchParamIndex: -1})
	assert.Nil(t, frames)
}

func TestGenerateConstantTargetHoldsAcrossAllFrames(t *testing.T) {
	tl := event.NewTimeline(1)
	tl.InsertEvent(0, 0, 42.0, false)
	tl.InsertEvent(100, -1, 0, false)

	frames := Generate(tl, Config{PitchParamIndex: -1})
	require.Len(t, frames, 26)
	for _, f := range frames {
		assert.InDelta(t, 42.0, f[0], 1e-9)
	}
}

func TestGenerateProducesRisingDiphoneSequenceOver100ms(t *testing.T) {
	tl := event.NewTimeline(1)
	tl.InsertEvent(0, 0, 0.0, false)
	tl.InsertEvent(100, 0, 100.0, false)

	frames := Generate(tl, Config{PitchParamIndex: -1})
	require.Len(t, frames, 26) // 0, 4, ..., 100 ms inclusive at 250 Hz

	assert.InDelta(t, 0.0, frames[0][0], 1e-9)
	assert.InDelta(t, 100.0, frames[len(frames)-1][0], 1e-9)
	for i := 1; i < len(frames); i++ {
		assert.GreaterOrEqual(t, frames[i][0], frames[i-1][0])
	}
}

func TestGenerateAddsPitchMeanAndSpecialOffset(t *testing.T) {
	tl := event.NewTimeline(1)
	tl.InsertEvent(0, 0, 10.0, false)
	tl.InsertEvent(0, 0, 2.0, true)
	tl.InsertEvent(40, -1, 0, false)

	frames := Generate(tl, Config{PitchParamIndex: 0, PitchMean: 5.0})
	require.NotEmpty(t, frames)
	assert.InDelta(t, 17.0, frames[0][0], 1e-9) // 10 (value) + 2 (special) + 5 (mean)
}
