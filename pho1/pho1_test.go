package pho1

import (
	"strings"
	"testing"

	"github.com/mym-br/gama-tts-sub001/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicEntries(t *testing.T) {
	text := "; comment\naa 120 0 440 50 220\nii 80\n"
	entries, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "aa", entries[0].Phoneme)
	assert.InDelta(t, 120, entries[0].Duration, 1e-9)
	require.Len(t, entries[0].Points, 2)
	assert.InDelta(t, 50, entries[0].Points[1].Position, 1e-9)
	assert.Empty(t, entries[1].Points)
}

func TestParseRejectsOddIntonationFields(t *testing.T) {
	_, err := Parse("aa 120 0 440 50\n")
	assert.Error(t, err)
}

func TestReplacePhonemesSplitsAndRedistributesPoints(t *testing.T) {
	pm, err := LoadPhonemeMap(strings.NewReader("ay eh_ih\n"))
	require.NoError(t, err)

	entries := []Entry{{
		Phoneme:  "ay",
		Duration: 100,
		Points: []IntonPoint{
			{Position: 25, Frequency: 200},
			{Position: 75, Frequency: 210},
		},
	}}
	out := ReplacePhonemes(entries, pm)
	require.Len(t, out, 2)
	assert.Equal(t, "eh", out[0].Phoneme)
	assert.Equal(t, "ih", out[1].Phoneme)
	assert.InDelta(t, 50, out[0].Duration, 1e-9)
	require.Len(t, out[0].Points, 1)
	assert.InDelta(t, 50, out[0].Points[0].Position, 1e-9)
	require.Len(t, out[1].Points, 1)
	assert.InDelta(t, 50, out[1].Points[0].Position, 1e-9)
}

func TestBuildComputesTempoFromSymbolDurations(t *testing.T) {
	m := model.NewModel()
	_, err := m.AddSymbol(model.Symbol{Name: "qssa"})
	require.NoError(t, err)
	_, err = m.AddSymbol(model.Symbol{Name: "qssb"})
	require.NoError(t, err)
	_, err = m.AddSymbol(model.Symbol{Name: "transition"})
	require.NoError(t, err)

	p := model.NewPosture("aa", 0, 3)
	qssaID, _ := m.FindSymbol("qssa")
	qssbID, _ := m.FindSymbol("qssb")
	transID, _ := m.FindSymbol("transition")
	p.SymTargets[qssaID] = 20
	p.SymTargets[qssbID] = 20
	p.SymTargets[transID] = 60
	_, err = m.AddPosture(p)
	require.NoError(t, err)

	entries := []Entry{{Phoneme: "aa", Duration: 200, Points: []IntonPoint{{Position: 50, Frequency: 200}}}}
	postures, points, err := Build(m, entries, 1.0, FrequencyToSemitones(150))
	require.NoError(t, err)
	require.Len(t, postures, 1)
	assert.InDelta(t, 0.5, postures[0].Tempo, 1e-9)
	require.Len(t, points, 1)
	assert.InDelta(t, FrequencyToSemitones(200)-FrequencyToSemitones(150), points[0].Semitone, 1e-9)
}
