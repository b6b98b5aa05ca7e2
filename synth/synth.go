// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

// Package synth wires every earlier stage (phonetic string parsing,
// rhythm, rule application, intonation, drift, frame resampling) into
// one blocking entry point, the way trmcontrolv2.Control owns an
// Events pipeline and a model.Model together.
package synth

import (
	"math/rand"

	"github.com/goki/ki/bitflag"
	"github.com/mym-br/gama-tts-sub001/drift"
	"github.com/mym-br/gama-tts-sub001/event"
	"github.com/mym-br/gama-tts-sub001/frame"
	"github.com/mym-br/gama-tts-sub001/intonation"
	"github.com/mym-br/gama-tts-sub001/model"
	"github.com/mym-br/gama-tts-sub001/phonstring"
	"github.com/mym-br/gama-tts-sub001/rhythm"
	"github.com/mym-br/gama-tts-sub001/ttserr"
	"github.com/mym-br/gama-tts-sub001/voicepack"
	"github.com/rs/zerolog"
)

// Config is a synthesis run's tunable voice parameters, the live
// counterpart of voicepack.ModelConfig plus the intonation and rhythm
// tables it references.
type Config struct {
	GlobalTempo        float64
	PitchMean          float64
	PitchParameter     string
	DriftDeviation     float64
	DriftLowpassCutoff float64
	Intonation         voicepack.IntonationMode
	Rhythm             rhythm.Config
	IntonationTable    intonation.Config
	Rewriter           *phonstring.Rewriter
	// Rand drives tone-group parameter selection and per-foot
	// perturbation when the Random intonation bit is set. A nil Rand
	// is only safe when that bit is never set.
	Rand *rand.Rand
}

// DefaultConfig returns the reference voice's rhythm defaults and a flat
// intonation table used for every tone-group type, at 1.0 global tempo and no drift or randomness.
func DefaultConfig() Config {
	return Config{
		GlobalTempo:     1.0,
		PitchParameter:  "glottalVolume",
		Rhythm:          rhythm.DefaultConfig(),
		IntonationTable: intonation.DefaultConfig(),
	}
}

// intonationSettings is the decoded form of a voicepack.IntonationMode
// bitmask, mirroring trmcontrolv2.Control.SetIntonation's five flags
// collapsed to the four this package actually drives (there is no
// separate micro-intonation pass here: postures carry their own
// targets directly).
type intonationSettings struct {
	macro  bool
	smooth bool
	drift  bool
	random bool
}

// applyIntonationMode decodes mode with github.com/goki/ki/bitflag, the
// way the teacher's Control.SetIntonation does, including its
// Macro-implies-Smooth coupling ("Macro and not smooth is not
// working").
func applyIntonationMode(mode voicepack.IntonationMode) intonationSettings {
	var s intonationSettings
	raw := int(mode)
	if bitflag.Has(raw, int(voicepack.IntonationMacro)) {
		s.macro = true
		s.smooth = true
	}
	if bitflag.Has(raw, int(voicepack.IntonationDrift)) {
		s.drift = true
	}
	if bitflag.Has(raw, int(voicepack.IntonationRandom)) {
		s.random = true
	}
	return s
}

// Synthesizer binds a live model.Model to a Config, resolving the
// symbol and parameter handles every stage needs once up front.
type Synthesizer struct {
	Model  *model.Model
	Config Config
	Log    zerolog.Logger

	ruleApplier   *event.RuleApplier
	pitchParamIdx int
}

// New resolves m's pitch parameter and posture-symbol handles against
// cfg and returns a ready Synthesizer. The returned Synthesizer's Log
// defaults to zerolog.Nop(); set it before calling
// SynthesizePhoneticString to see per-stage diagnostics.
func New(m *model.Model, cfg Config) (*Synthesizer, error) {
	ra, err := event.NewRuleApplier(m)
	if err != nil {
		return nil, err
	}
	pitchIdx := -1
	if cfg.PitchParameter != "" {
		id, ok := m.FindParameter(cfg.PitchParameter)
		if !ok {
			return nil, ttserr.NewLookupError("parameter", cfg.PitchParameter)
		}
		pitchIdx = int(id)
	}
	return &Synthesizer{
		Model:         m,
		Config:        cfg,
		Log:           zerolog.Nop(),
		ruleApplier:   ra,
		pitchParamIdx: pitchIdx,
	}, nil
}

// SynthesizePhoneticString parses text as a marked phonetic string and runs it
// through rhythm adjustment, rule application, macro intonation, drift,
// and 250 Hz frame resampling, returning the resulting frame stream.
func (s *Synthesizer) SynthesizePhoneticString(text string) ([]frame.Frame, error) {
	stream, err := phonstring.Parse(s.Model, s.Config.Rewriter, text)
	if err != nil {
		return nil, err
	}
	s.Log.Debug().Int("postures", len(stream.Postures)).Int("feet", len(stream.Feet)).Msg("parsed phonetic string")
	return s.synthesizeStream(stream)
}

func (s *Synthesizer) synthesizeStream(stream *phonstring.Stream) ([]frame.Frame, error) {
	settings := applyIntonationMode(s.Config.Intonation)

	postureTempo := make([]float64, len(stream.Postures))
	for i, pe := range stream.Postures {
		postureTempo[i] = pe.Tempo
	}
	rhythm.Apply(stream.Feet, postureTempo, s.Config.GlobalTempo, s.Config.Rhythm)

	footOf := make([]int, len(stream.Postures))
	for fi, foot := range stream.Feet {
		for i := foot.Start; i <= foot.End; i++ {
			footOf[i] = fi
		}
	}

	tl := event.NewTimeline(len(s.Model.Parameters))
	onsets := make([]float64, len(stream.Postures))
	var ruleSpans []intonation.RuleSpan
	postures := make([]*model.Posture, len(stream.Postures))
	for i, pe := range stream.Postures {
		postures[i] = pe.Posture
	}

	for i := 0; i < len(stream.Postures)-1; {
		window := make([]model.RuleExpressionData, 0, 4)
		for j := i; j < len(stream.Postures) && len(window) < 4; j++ {
			window = append(window, model.RuleExpressionData{
				Posture: stream.Postures[j].Posture,
				Tempo:   postureTempo[j],
				Marked:  stream.Feet[footOf[j]].Marked,
			})
		}
		rule, ruleIdx, n, err := s.Model.FindFirstMatchingRule(window)
		if err != nil {
			return nil, ttserr.NewRuntimeError(i, err.Error())
		}

		startTime := float64(tl.ZeroRef)
		for k := 0; k < n; k++ {
			onsets[i+k] = startTime
		}

		windowPostures := postures[i : i+n]
		windowTempos := postureTempo[i : i+n]
		ruleTempo := stream.Postures[i].RuleTempo

		res, err := s.ruleApplier.Apply(tl, rule, windowPostures, windowTempos, ruleTempo)
		if err != nil {
			return nil, err
		}
		s.Log.Debug().Int("rule", ruleIdx).Int("posture", i).Int("window", n).Float64("duration", res.Duration).Msg("applied rule")
		ruleSpans = append(ruleSpans, intonation.RuleSpan{FirstPosture: i, LastPosture: i + n - 1, StartTimeMs: startTime})
		// The last posture of this window is the first of the next one.
		i += n - 1
	}

	var macro *event.Timeline
	if settings.macro && s.pitchParamIdx >= 0 {
		points, err := intonation.BuildPoints(s.Model, postures, onsets, stream, ruleSpans, s.Config.IntonationTable, s.randIfEnabled(settings.random))
		if err != nil {
			return nil, err
		}
		if len(points) > 0 {
			macro = event.NewTimeline(0)
			intonation.ApplyToTimeline(macro, points, settings.smooth)
		}
	}

	var driftGen *drift.Generator
	if settings.drift && s.pitchParamIdx >= 0 {
		driftGen = drift.NewGenerator(s.Config.DriftDeviation, 1000.0/float64(frame.ControlPeriodMs), s.Config.DriftLowpassCutoff)
	}

	frames := frame.Generate(tl, frame.Config{
		PitchParamIndex: s.pitchParamIdx,
		PitchMean:       s.Config.PitchMean,
		Macro:           macro,
		Smooth:          settings.smooth,
		Drift:           driftGen,
	})
	s.Log.Debug().Int("frames", len(frames)).Msg("generated control-rate frames")
	return frames, nil
}

func (s *Synthesizer) randIfEnabled(enabled bool) *rand.Rand {
	if !enabled {
		return nil
	}
	return s.Config.Rand
}
