package intonation

import (
	"testing"

	"github.com/mym-br/gama-tts-sub001/event"
	"github.com/mym-br/gama-tts-sub001/model"
	"github.com/mym-br/gama-tts-sub001/phonstring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSimpleStream(t *testing.T) (*model.Model, []*model.Posture, []float64) {
	t.Helper()
	m := model.NewModel()
	vocoidID, err := m.AddCategory("vocoid", false)
	require.NoError(t, err)

	aa := model.NewPosture("aa", 0, 0)
	aa.Categories = append(aa.Categories, vocoidID)
	_, err = m.AddPosture(aa)
	require.NoError(t, err)

	p := model.NewPosture("p", 0, 0)
	_, err = m.AddPosture(p)
	require.NoError(t, err)

	ii := model.NewPosture("ii", 0, 0)
	ii.Categories = append(ii.Categories, vocoidID)
	_, err = m.AddPosture(ii)
	require.NoError(t, err)

	postures := []*model.Posture{aa, p, ii}
	onsets := []float64{0, 100, 200}
	return m, postures, onsets
}

func TestBuildPointsEmitsOnePretonicPointPerUnmarkedFoot(t *testing.T) {
	m, postures, onsets := buildSimpleStream(t)
	stream := &phonstring.Stream{
		Feet:       []phonstring.FootEntry{{Start: 0, End: 2, Marked: false, Last: true}},
		ToneGroups: []phonstring.ToneGroupEntry{{StartFoot: 0, EndFoot: 0, Type: phonstring.ToneGroupStatement}},
	}
	spans := []RuleSpan{{FirstPosture: 0, LastPosture: 2, StartTimeMs: 0}}
	cfg := DefaultConfig()

	points, err := BuildPoints(m, postures, onsets, stream, spans, cfg, nil)
	require.NoError(t, err)
	require.Len(t, points, 2) // one pretonic point + the trailing final point
}

func TestBuildPointsEmitsTwoPointsPerMarkedFoot(t *testing.T) {
	m, postures, onsets := buildSimpleStream(t)
	stream := &phonstring.Stream{
		Feet:       []phonstring.FootEntry{{Start: 0, End: 2, Marked: true, Last: true}},
		ToneGroups: []phonstring.ToneGroupEntry{{StartFoot: 0, EndFoot: 0, Type: phonstring.ToneGroupStatement}},
	}
	spans := []RuleSpan{{FirstPosture: 0, LastPosture: 2, StartTimeMs: 0}}
	cfg := DefaultConfig()

	points, err := BuildPoints(m, postures, onsets, stream, spans, cfg, nil)
	require.NoError(t, err)
	require.Len(t, points, 3) // peak + fall + trailing final point
	for i := 1; i < len(points); i++ {
		assert.LessOrEqual(t, points[i-1].TimeMs, points[i].TimeMs)
	}
}

func TestBuildPointsMissingVocoidCategoryFails(t *testing.T) {
	m := model.NewModel()
	stream := &phonstring.Stream{}
	_, err := BuildPoints(m, nil, nil, stream, nil, DefaultConfig(), nil)
	assert.Error(t, err)
}

func TestCubicCoefficientsPassThroughEndpoints(t *testing.T) {
	data := cubicCoefficients(0, 0, 0.02, 100, 5, 0.02)
	assert.InDelta(t, 0, Eval(data, 0), 1e-6)
	assert.InDelta(t, 5, Eval(data, 100), 1e-6)
}

func TestLinearCoefficientsPassThroughEndpoints(t *testing.T) {
	data := linearCoefficients(0, -2, 200, 4)
	assert.InDelta(t, -2, Eval(data, 0), 1e-9)
	assert.InDelta(t, 4, Eval(data, 200), 1e-9)
}

func TestApplyToTimelineAttachesInterpToAllButLastEvent(t *testing.T) {
	tl := event.NewTimeline(0)
	points := []Point{{TimeMs: 0, Semitone: 0, Slope: 0.02}, {TimeMs: 100, Semitone: 5, Slope: 0.02}, {TimeMs: 200, Semitone: 0, Slope: 0}}
	ApplyToTimeline(tl, points, true)

	require.Len(t, tl.Events, 3)
	assert.NotNil(t, tl.Events[0].Interp)
	assert.NotNil(t, tl.Events[1].Interp)
	assert.Nil(t, tl.Events[2].Interp)
}
