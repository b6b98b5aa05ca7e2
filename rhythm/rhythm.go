// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

// Package rhythm adjusts per-foot and per-posture tempo before rule
// symbol evaluation, per the marked/unmarked linear regression against
// foot size.
package rhythm

import "github.com/mym-br/gama-tts-sub001/phonstring"

// Config holds the tunable constants of the tempo regression and its
// clamp range. Defaults match the reference voice.
type Config struct {
	MarkedA, MarkedB, MarkedDiv     float64
	UnmarkedA, UnmarkedB, UnmarkedDiv float64
	MinTempo, MaxTempo              float64
}

// DefaultConfig returns the reference voice's rhythm constants.
func DefaultConfig() Config {
	return Config{
		MarkedA: 117.7, MarkedB: 19.36, MarkedDiv: 180.0,
		UnmarkedA: 18.5, UnmarkedB: 2.08, UnmarkedDiv: 140.0,
		MinTempo: 0.2, MaxTempo: 2.0,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Apply mutates feet's per-foot tempo in place (applying the
// marked/unmarked regression against the foot's posture count) and
// scales every posture's own tempo (postureTempo, indexed the same way
// as stream.Postures) by globalTempo times its foot's adjusted tempo,
// clamping each to [cfg.MinTempo, cfg.MaxTempo].
func Apply(feet []phonstring.FootEntry, postureTempo []float64, globalTempo float64, cfg Config) {
	for i := range feet {
		foot := &feet[i]
		rus := float64(foot.End - foot.Start + 1)
		var regression float64
		if foot.Marked {
			regression = (cfg.MarkedA - cfg.MarkedB*rus) / cfg.MarkedDiv
		} else {
			regression = (cfg.UnmarkedA - cfg.UnmarkedB*rus) / cfg.UnmarkedDiv
		}
		foot.Tempo -= regression
		footTempo := globalTempo * foot.Tempo

		for j := foot.Start; j <= foot.End; j++ {
			postureTempo[j] = clamp(postureTempo[j]*footTempo, cfg.MinTempo, cfg.MaxTempo)
		}
	}
}
