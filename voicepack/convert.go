// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package voicepack

import (
	"github.com/mym-br/gama-tts-sub001/intonation"
	"github.com/mym-br/gama-tts-sub001/rhythm"
)

// Merge overlays c's non-zero fields onto base, returning the combined
// rhythm.Config. A RhythmConfig loaded from JSON typically sets only
// the constants a voice wants to tune; fields left at the JSON zero
// value keep base's value instead of silently zeroing the regression.
func (c RhythmConfig) Merge(base rhythm.Config) rhythm.Config {
	merge := func(override, def float64) float64 {
		if override != 0 {
			return override
		}
		return def
	}
	return rhythm.Config{
		MarkedA:     merge(c.MarkedA, base.MarkedA),
		MarkedB:     merge(c.MarkedB, base.MarkedB),
		MarkedDiv:   merge(c.MarkedDiv, base.MarkedDiv),
		UnmarkedA:   merge(c.UnmarkedA, base.UnmarkedA),
		UnmarkedB:   merge(c.UnmarkedB, base.UnmarkedB),
		UnmarkedDiv: merge(c.UnmarkedDiv, base.UnmarkedDiv),
		MinTempo:    merge(c.MinTempo, base.MinTempo),
		MaxTempo:    merge(c.MaxTempo, base.MaxTempo),
	}
}

func toParams(d IntonationParamsDoc) intonation.Params {
	return intonation.Params{
		Pretonic:             d.Pretonic,
		PretonicPerturbation: d.PretonicPerturbation,
		Tonic:                d.Tonic,
		TonicDelta:           d.TonicDelta,
		TonicPerturbation:    d.TonicPerturbation,
	}
}

func toParamsRow(docs []IntonationParamsDoc) []intonation.Params {
	if len(docs) == 0 {
		return nil
	}
	row := make([]intonation.Params, len(docs))
	for i, d := range docs {
		row[i] = toParams(d)
	}
	return row
}

// BuildIntonationConfig turns the JSON-facing IntonationConfig and its
// per-tone-group candidate tables into a live intonation.Config. Every
// empty table slot falls back to intonation.DefaultConfig's flat row,
// so BuildPoints never sees an empty candidate list.
func BuildIntonationConfig(ic IntonationConfig, table ToneGroupParameters) intonation.Config {
	cfg := intonation.Config{UseRandom: ic.UseRandom, Smooth: ic.Smooth}
	if ic.UseFixedParameters && ic.Fixed != nil {
		fixed := toParams(*ic.Fixed)
		cfg.Fixed = &fixed
		return cfg
	}

	def := intonation.DefaultConfig()
	rows := [4][]IntonationParamsDoc{table.Statement, table.Question, table.Continuation, table.Semicolon}
	for i, r := range rows {
		if converted := toParamsRow(r); converted != nil {
			cfg.Table[i] = converted
		} else {
			cfg.Table[i] = def.Table[i]
		}
	}
	return cfg
}
