// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

// Package intonation builds the macro intonation pitch contour: one
// semitone point per foot (pretonic) or per tonic-syllable boundary,
// selected from a per-tone-group-type parameter table, then fitted into
// the cubic (or linear) interpolation coefficients the frame pass reads
// off the timeline's sentinel events.
package intonation

import "github.com/mym-br/gama-tts-sub001/phonstring"

// Params is one row of a tone group's intonation parameter table:
// notional pretonic level, its random perturbation range, the tonic
// level and its delta and perturbation range. Named fields replace the
// reference engine's positional ten-float row, of which only five
// slots are ever read.
type Params struct {
	Pretonic             float64
	PretonicPerturbation float64
	Tonic                float64
	TonicDelta           float64
	TonicPerturbation    float64
}

// toneGroupTableIndex maps a tone group type to its parameter table
// slot. Statement and exclamation share one slot, matching the
// reference engine's TONE_GROUP_TYPE_STATEMENT/EXCLAMATION fallthrough.
func toneGroupTableIndex(t phonstring.ToneGroupType) int {
	switch t {
	case phonstring.ToneGroupQuestion:
		return 1
	case phonstring.ToneGroupContinuation:
		return 2
	case phonstring.ToneGroupSemicolon:
		return 3
	default:
		return 0
	}
}

// Config selects how BuildPoints picks a Params row and fits the
// resulting points into a curve.
type Config struct {
	// Fixed, if non-nil, is used for every tone group instead of the table.
	Fixed *Params
	// Table holds one or more candidate rows per table slot (see
	// toneGroupTableIndex); BuildPoints picks row 0 unless UseRandom.
	Table [4][]Params
	// UseRandom enables per-tone-group random row selection and the
	// per-foot random semitone/slope perturbation.
	UseRandom bool
	// Smooth records whether cubic-Hermite fitting (the reference
	// engine's smoothIntonation_) or linear fitting is wanted. BuildPoints
	// does not read it; ApplyToTimeline takes the fitting mode as its own
	// argument.
	Smooth bool
}

// DefaultConfig returns a single flat row, placed in all four table
// slots, usable when a voicepack supplies no intonation table: pretonic
// at 0, a modest tonic fall, no perturbation, smooth fitting.
func DefaultConfig() Config {
	row := Params{Pretonic: 0, Tonic: -2, TonicDelta: -6}
	return Config{
		Table:  [4][]Params{{row}, {row}, {row}, {row}},
		Smooth: true,
	}
}

func (c Config) paramsFor(t phonstring.ToneGroupType, pick func(n int) int) Params {
	if c.Fixed != nil {
		return *c.Fixed
	}
	rows := c.Table[toneGroupTableIndex(t)]
	if len(rows) == 0 {
		return Params{}
	}
	idx := 0
	if c.UseRandom && pick != nil {
		idx = pick(len(rows))
	}
	return rows[idx]
}
