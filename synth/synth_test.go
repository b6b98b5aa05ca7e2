package synth

import (
	"testing"

	"github.com/mym-br/gama-tts-sub001/intonation"
	"github.com/mym-br/gama-tts-sub001/rhythm"
	"github.com/mym-br/gama-tts-sub001/voicepack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalVoicepackDoc builds the smallest document that satisfies every
// handle phonstring.Parse, event.NewRuleApplier, and intonation.BuildPoints
// resolve by name: the two boundary postures, one vocoid vowel and its
// marked variant, one consonant, a diphone rise transition, and a single
// two-posture rule.
func minimalVoicepackDoc() *voicepack.Document {
	freeHundred := 100.0
	return &voicepack.Document{
		Categories: []voicepack.CategoryDoc{{Name: "phone"}, {Name: "vocoid"}},
		Parameters: []voicepack.ParameterDoc{{Name: "glottalVolume", Minimum: 0, Maximum: 100}},
		Symbols:    []voicepack.SymbolDoc{{Name: "transition"}, {Name: "qssa"}, {Name: "qssb"}},
		Postures: []voicepack.PostureDoc{
			{Name: "^", Categories: []string{"phone"}},
			{Name: "#", Categories: []string{"phone"}},
			{Name: "aa", Categories: []string{"phone", "vocoid"}, ParamTargets: map[string]float64{"glottalVolume": 0}},
			{Name: "aa'", Categories: []string{"phone", "vocoid"}, ParamTargets: map[string]float64{"glottalVolume": 0}},
			{Name: "p", Categories: []string{"phone"}, ParamTargets: map[string]float64{"glottalVolume": 100}},
		},
		Transitions: []voicepack.TransitionGroupDoc{
			{
				Name: "g",
				Transitions: []voicepack.TransitionDoc{
					{
						Name: "rise",
						Type: "diphone",
						Points: []voicepack.PointOrSlopeDoc{
							{Point: &voicepack.PointDoc{Type: 2, Value: 100, FreeTime: &freeHundred}},
						},
					},
				},
			},
		},
		Rules: []voicepack.RuleDoc{
			{BoolExprs: []string{"phone", "phone"}, ParamProfiles: []string{"rise"}},
		},
	}
}

func TestSynthesizeProducesFramesForSimplePhoneticString(t *testing.T) {
	doc := minimalVoicepackDoc()
	m, err := voicepack.Build(doc)
	require.NoError(t, err)

	cfg := DefaultConfig()
	s, err := New(m, cfg)
	require.NoError(t, err)

	frames, err := s.SynthesizePhoneticString("aa p")
	require.NoError(t, err)
	assert.NotEmpty(t, frames)
	for _, f := range frames {
		require.Len(t, f, 1)
	}
}

func TestSynthesizeWithMacroIntonationAndDriftAddsPitchMovement(t *testing.T) {
	doc := minimalVoicepackDoc()
	m, err := voicepack.Build(doc)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.PitchParameter = "glottalVolume"
	cfg.Intonation = voicepack.IntonationMacro | voicepack.IntonationDrift
	cfg.DriftDeviation = 0.5
	cfg.DriftLowpassCutoff = 3.0
	cfg.IntonationTable = intonation.DefaultConfig()

	s, err := New(m, cfg)
	require.NoError(t, err)

	frames, err := s.SynthesizePhoneticString("/*aa /_p")
	require.NoError(t, err)
	require.NotEmpty(t, frames)
	// glottalVolume's own target at t=0 is 0; the default table's tonic
	// (-2) plus tonic delta (-6) puts the macro curve at -8 there, and the
	// first drift sample is far below the delta.
	assert.InDelta(t, -8.0, frames[0][0], 0.01)
}

func TestSynthesizeUnknownPitchParameterFails(t *testing.T) {
	doc := minimalVoicepackDoc()
	m, err := voicepack.Build(doc)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.PitchParameter = "nosuch"
	_, err = New(m, cfg)
	assert.Error(t, err)
}

func TestSynthesizeUnmatchedPostureWindowFails(t *testing.T) {
	doc := minimalVoicepackDoc()
	doc.Rules = nil
	m, err := voicepack.Build(doc)
	require.NoError(t, err)

	cfg := DefaultConfig()
	s, err := New(m, cfg)
	require.NoError(t, err)

	_, err = s.SynthesizePhoneticString("aa p")
	assert.Error(t, err)
}

func TestApplyIntonationModeCouplesMacroWithSmooth(t *testing.T) {
	settings := applyIntonationMode(voicepack.IntonationMacro)
	assert.True(t, settings.macro)
	assert.True(t, settings.smooth)
	assert.False(t, settings.drift)
}

func TestApplyIntonationModeDecodesEachBitIndependently(t *testing.T) {
	settings := applyIntonationMode(voicepack.IntonationDrift | voicepack.IntonationRandom)
	assert.False(t, settings.macro)
	assert.True(t, settings.drift)
	assert.True(t, settings.random)
}

func TestDefaultConfigUsesReferenceRhythmConstants(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, rhythm.DefaultConfig(), cfg.Rhythm)
}
