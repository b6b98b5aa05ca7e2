// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package intonation

import (
	"math/rand"
	"sort"

	"github.com/mym-br/gama-tts-sub001/model"
	"github.com/mym-br/gama-tts-sub001/phonstring"
	"github.com/mym-br/gama-tts-sub001/ttserr"
)

// Point is one anchor of the macro intonation curve: an absolute
// timeline time, a target semitone offset from the voice's mean pitch,
// and the slope (semitones per ms) the curve should carry through it.
type Point struct {
	TimeMs   float64
	Semitone float64
	Slope    float64
}

// RuleSpan records, for one applied rule, the posture index range it
// covers and the absolute time (ms, on the same clock as posture
// onsets) its zero reference begins at. BuildPoints anchors every
// point it emits to the start time of the rule spanning its posture.
type RuleSpan struct {
	FirstPosture int
	LastPosture  int
	StartTimeMs  float64
}

func findRuleIndex(spans []RuleSpan, postureIndex, from int) int {
	for i := from; i < len(spans); i++ {
		if postureIndex >= spans[i].FirstPosture && postureIndex <= spans[i].LastPosture {
			return i
		}
	}
	if from > 0 {
		return from - 1
	}
	return 0
}

// firstVocoidInFoot returns the index (into postures/onsets) of the
// first posture in [foot.Start, foot.End] belonging to the vocoid
// category, or foot.Start if the foot has none.
func firstVocoidInFoot(postures []*model.Posture, vocoid model.CategoryID, foot phonstring.FootEntry) int {
	for i := foot.Start; i <= foot.End; i++ {
		if postures[i].HasCategory(vocoid) {
			return i
		}
	}
	return foot.Start
}

// BuildPoints walks every tone group of stream, emitting one pretonic
// point per unmarked foot and two tonic points (peak, then fall) per
// marked foot, picking parameters per tone group from cfg and anchoring
// every point's absolute time to the rule covering its posture (via
// ruleSpans) plus a small negative lead-in after a tone group's first
// foot, matching the reference engine's anticipatory offset. rng may be
// nil when cfg.UseRandom is false.
func BuildPoints(m *model.Model, postures []*model.Posture, onsets []float64, stream *phonstring.Stream, ruleSpans []RuleSpan, cfg Config, rng *rand.Rand) ([]Point, error) {
	vocoid, ok := m.FindCategory("vocoid")
	if !ok {
		return nil, ttserr.NewLookupError("category", "vocoid")
	}

	pick := func(n int) int {
		if rng == nil || n <= 1 {
			return 0
		}
		return rng.Intn(n)
	}
	randRange := func(span float64) float64 {
		if rng == nil {
			return 0
		}
		return rng.Float64()*span - span/2
	}

	var points []Point
	lastRuleIdx := 0
	var lastParams Params

	for _, tg := range stream.ToneGroups {
		firstFoot := stream.Feet[tg.StartFoot]
		lastFoot := stream.Feet[tg.EndFoot]
		startTime := onsets[firstFoot.Start]
		endTime := onsets[lastFoot.End]
		span := endTime - startTime

		params := cfg.paramsFor(tg.Type, pick)
		lastParams = params

		var pretonicDelta float64
		if span != 0 {
			pretonicDelta = params.Pretonic / span
		}

		offsetTime := 0.0
		for fi := tg.StartFoot; fi <= tg.EndFoot; fi++ {
			foot := stream.Feet[fi]
			postureIdx := firstVocoidInFoot(postures, vocoid, foot)
			ruleIdx := findRuleIndex(ruleSpans, postureIdx, 0)
			if ruleIdx > lastRuleIdx {
				lastRuleIdx = ruleIdx
			}

			if !foot.Marked {
				semitone := (onsets[postureIdx]-startTime)*pretonicDelta + params.Pretonic + randRange(params.PretonicPerturbation)
				slope := 0.02
				if cfg.UseRandom {
					slope = rng.Float64()*0.015 + 0.01
				}
				points = append(points, Point{TimeMs: anchor(ruleSpans, ruleIdx, offsetTime), Semitone: semitone, Slope: slope})
			} else {
				slope := 0.02
				if tg.Type == phonstring.ToneGroupSemicolon {
					slope = 0.01
				}
				if cfg.UseRandom {
					slope += rng.Float64() * 0.03
				} else {
					slope += 0.03
				}
				semitone := params.Tonic + params.Pretonic + randRange(params.TonicPerturbation)
				points = append(points, Point{TimeMs: anchor(ruleSpans, ruleIdx, offsetTime), Semitone: semitone, Slope: slope})

				endPostureIdx := foot.End
				endRuleIdx := findRuleIndex(ruleSpans, endPostureIdx, ruleIdx)
				if endRuleIdx > lastRuleIdx {
					lastRuleIdx = endRuleIdx
				}
				points = append(points, Point{
					TimeMs:   anchor(ruleSpans, endRuleIdx, 0),
					Semitone: params.Tonic + params.Pretonic + params.TonicDelta,
					Slope:    0,
				})
			}
			offsetTime = -40.0
		}
	}

	if len(points) > 0 {
		points = append(points, Point{
			TimeMs:   anchor(ruleSpans, lastRuleIdx, 0),
			Semitone: lastParams.Tonic + lastParams.Pretonic + lastParams.TonicDelta,
			Slope:    0,
		})
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].TimeMs < points[j].TimeMs })
	return points, nil
}

func anchor(spans []RuleSpan, ruleIdx int, offset float64) float64 {
	if ruleIdx < 0 || ruleIdx >= len(spans) {
		return offset
	}
	t := spans[ruleIdx].StartTimeMs + offset
	if t < 0 {
		t = 0
	}
	return t
}
