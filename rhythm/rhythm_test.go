package rhythm

import (
	"testing"

	"github.com/mym-br/gama-tts-sub001/phonstring"
	"github.com/stretchr/testify/assert"
)

func TestApplyClampsLowTempoToMinimum(t *testing.T) {
	feet := []phonstring.FootEntry{{Start: 0, End: 0, Tempo: 0.01, Marked: true}}
	postureTempo := []float64{1.0}
	Apply(feet, postureTempo, 1.0, DefaultConfig())
	assert.Equal(t, DefaultConfig().MinTempo, postureTempo[0])
}

func TestApplyScalesPostureTempoByFootAndGlobalTempo(t *testing.T) {
	cfg := Config{MarkedA: 0, MarkedB: 0, MarkedDiv: 1, UnmarkedA: 0, UnmarkedB: 0, UnmarkedDiv: 1, MinTempo: 0, MaxTempo: 10}
	feet := []phonstring.FootEntry{{Start: 0, End: 1, Tempo: 1.0, Marked: false}}
	postureTempo := []float64{1.0, 2.0}
	Apply(feet, postureTempo, 2.0, cfg)
	assert.InDelta(t, 2.0, postureTempo[0], 1e-9)
	assert.InDelta(t, 4.0, postureTempo[1], 1e-9)
}

func TestApplyLeavesOtherFeetIndependent(t *testing.T) {
	cfg := Config{MarkedA: 0, MarkedB: 0, MarkedDiv: 1, UnmarkedA: 0, UnmarkedB: 0, UnmarkedDiv: 1, MinTempo: 0, MaxTempo: 10}
	feet := []phonstring.FootEntry{
		{Start: 0, End: 0, Tempo: 1.0},
		{Start: 1, End: 1, Tempo: 2.0},
	}
	postureTempo := []float64{1.0, 1.0}
	Apply(feet, postureTempo, 1.0, cfg)
	assert.InDelta(t, 1.0, postureTempo[0], 1e-9)
	assert.InDelta(t, 2.0, postureTempo[1], 1e-9)
}
