// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package pho1

import (
	"math"

	"github.com/mym-br/gama-tts-sub001/model"
	"github.com/mym-br/gama-tts-sub001/phonstring"
	"github.com/mym-br/gama-tts-sub001/ttserr"
)

// referenceFrequency is the hertz value mapped to zero semitones by
// FrequencyToSemitones. Only differences of semitone values are ever
// used downstream, so the choice of reference is arbitrary as long as
// it is applied consistently.
const referenceFrequency = 1.0

// FrequencyToSemitones converts a pitch in hertz to semitones relative
// to referenceFrequency.
func FrequencyToSemitones(freqHz float64) float64 {
	return 12.0 * math.Log2(freqHz/referenceFrequency)
}

// PostureIntonationPoint is one intonation marker resolved against a
// built posture stream: which posture it attaches to, its position
// (0.0-1.0) within that posture's duration, and its semitone value
// relative to a mean pitch.
type PostureIntonationPoint struct {
	PostureIndex int
	Position     float64
	Semitone     float64
}

// Build resolves entries' phoneme names against m and computes each
// posture's tempo as its own (qssa+qssb+transition) symbol duration
// divided by the entry's requested duration, matching the rest of the
// pipeline's tempo convention where 1.0 means "play at the posture's
// natural speed". meanPitch is subtracted from every intonation
// point's converted semitone value.
func Build(m *model.Model, entries []Entry, globalTempo, meanPitch float64) ([]phonstring.PostureEntry, []PostureIntonationPoint, error) {
	qssaID, ok := m.FindSymbol("qssa")
	if !ok {
		return nil, nil, ttserr.NewLookupError("symbol", "qssa")
	}
	qssbID, ok := m.FindSymbol("qssb")
	if !ok {
		return nil, nil, ttserr.NewLookupError("symbol", "qssb")
	}
	transID, ok := m.FindSymbol("transition")
	if !ok {
		return nil, nil, ttserr.NewLookupError("symbol", "transition")
	}

	postures := make([]phonstring.PostureEntry, 0, len(entries))
	var points []PostureIntonationPoint

	for i, e := range entries {
		pid, ok := m.FindPosture(e.Phoneme)
		if !ok {
			return nil, nil, ttserr.NewLookupError("posture", e.Phoneme)
		}
		posture := m.Posture(pid)
		natural := posture.SymTarget(qssaID) + posture.SymTarget(qssbID) + posture.SymTarget(transID)
		tempo := 1.0
		if e.Duration > 0 {
			tempo = natural / e.Duration
		}
		postures = append(postures, phonstring.PostureEntry{
			Posture:   posture,
			Tempo:     tempo,
			RuleTempo: globalTempo,
		})
		for _, p := range e.Points {
			points = append(points, PostureIntonationPoint{
				PostureIndex: i,
				Position:     p.Position / 100.0,
				Semitone:     FrequencyToSemitones(p.Frequency) - meanPitch,
			})
		}
	}
	return postures, points, nil
}
