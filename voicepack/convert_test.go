package voicepack

import (
	"testing"

	"github.com/mym-br/gama-tts-sub001/rhythm"
	"github.com/stretchr/testify/assert"
)

func TestRhythmConfigMergeKeepsBaseForZeroFields(t *testing.T) {
	base := rhythm.DefaultConfig()
	override := RhythmConfig{MarkedA: 200.0}

	merged := override.Merge(base)
	assert.Equal(t, 200.0, merged.MarkedA)
	assert.Equal(t, base.MarkedB, merged.MarkedB)
	assert.Equal(t, base.MinTempo, merged.MinTempo)
}

func TestBuildIntonationConfigUsesFixedWhenRequested(t *testing.T) {
	fixed := &IntonationParamsDoc{Pretonic: 1, Tonic: -3}
	cfg := BuildIntonationConfig(IntonationConfig{UseFixedParameters: true, Fixed: fixed}, ToneGroupParameters{})
	a := assert.New(t)
	a.NotNil(cfg.Fixed)
	a.Equal(1.0, cfg.Fixed.Pretonic)
	a.Equal(-3.0, cfg.Fixed.Tonic)
}

func TestBuildIntonationConfigFallsBackToDefaultForEmptyTableSlots(t *testing.T) {
	cfg := BuildIntonationConfig(IntonationConfig{Smooth: true}, ToneGroupParameters{
		Statement: []IntonationParamsDoc{{Pretonic: 5}},
	})
	assert.Len(t, cfg.Table[0], 1)
	assert.Equal(t, 5.0, cfg.Table[0][0].Pretonic)
	assert.NotEmpty(t, cfg.Table[1]) // question slot falls back to default row
}
