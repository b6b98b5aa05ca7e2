// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

// Package frame resamples a rule-applied event timeline at the fixed
// 250 Hz control rate into a dense stream of parameter vectors, the
// last stage before the vocal tract model.
package frame

import (
	"github.com/mym-br/gama-tts-sub001/drift"
	"github.com/mym-br/gama-tts-sub001/event"
	"github.com/mym-br/gama-tts-sub001/intonation"
)

// ControlPeriodMs is the frame generator's fixed step: 250 Hz.
const ControlPeriodMs = 4

// Frame is one control-rate sample: a value per parameter, in model
// parameter order.
type Frame []float64

// Config controls the pitch-specific additions Generate layers onto one
// parameter's piecewise-linear track.
type Config struct {
	// PitchParamIndex selects which parameter receives the macro
	// intonation curve, drift, and mean-pitch bias. -1 disables all three.
	PitchParamIndex int
	PitchMean       float64
	// Macro is the curve built by intonation.ApplyToTimeline; nil
	// disables macro intonation.
	Macro *event.Timeline
	// Smooth must match the mode Macro's curve was fit with.
	Smooth bool
	// Drift, if non-nil, is sampled once per frame and added to the
	// pitch parameter.
	Drift *drift.Generator
}

type breakpoint struct {
	time  int
	value float64
}

func extractBreakpoints(tl *event.Timeline, paramIdx int, special bool) []breakpoint {
	var bps []breakpoint
	for _, e := range tl.Events {
		if e.HasParameter(paramIdx, special) {
			v := e.Parameters[paramIdx]
			if special {
				v = e.Special[paramIdx]
			}
			bps = append(bps, breakpoint{time: e.Time, value: v})
		}
	}
	return bps
}

// interpolate evaluates the piecewise-linear curve through bps at time
// t, holding the boundary value constant outside the breakpoint range.
// An empty bps contributes 0 (a parameter or special track the rule
// never touched).
func interpolate(bps []breakpoint, t float64) float64 {
	if len(bps) == 0 {
		return 0
	}
	if t <= float64(bps[0].time) {
		return bps[0].value
	}
	last := bps[len(bps)-1]
	if t >= float64(last.time) {
		return last.value
	}
	for i := 0; i < len(bps)-1; i++ {
		a, b := bps[i], bps[i+1]
		if t >= float64(a.time) && t <= float64(b.time) {
			if b.time == a.time {
				return b.value
			}
			frac := (t - float64(a.time)) / float64(b.time-a.time)
			return a.value + frac*(b.value-a.value)
		}
	}
	return last.value
}

func macroPitchAt(macro *event.Timeline, t float64, smooth bool) float64 {
	if macro == nil || len(macro.Events) == 0 {
		return 0
	}
	events := macro.Events
	if events[0].Interp != nil && t <= float64(events[0].Time) {
		return intonation.Eval(events[0].Interp, float64(events[0].Time))
	}
	last := events[len(events)-1]
	clamped := t
	if clamped > float64(last.Time) {
		clamped = float64(last.Time)
	}
	for i := 0; i < len(events)-1; i++ {
		if clamped <= float64(events[i+1].Time) {
			if events[i].Interp != nil {
				return intonation.Eval(events[i].Interp, clamped)
			}
			break
		}
	}
	if len(events) >= 2 && events[len(events)-2].Interp != nil {
		return intonation.Eval(events[len(events)-2].Interp, float64(last.Time))
	}
	return 0
}

// Generate resamples tl at the 250 Hz control rate, producing one frame
// per 4 ms step from time 0 through tl's last event (inclusive). An
// empty timeline produces no frames.
func Generate(tl *event.Timeline, cfg Config) []Frame {
	if len(tl.Events) == 0 {
		return nil
	}
	numParams := tl.NumParams
	paramBP := make([][]breakpoint, numParams)
	specialBP := make([][]breakpoint, numParams)
	for p := 0; p < numParams; p++ {
		paramBP[p] = extractBreakpoints(tl, p, false)
		specialBP[p] = extractBreakpoints(tl, p, true)
	}

	total := tl.Events[len(tl.Events)-1].Time
	steps := total/ControlPeriodMs + 1
	frames := make([]Frame, steps)

	for step := 0; step < steps; step++ {
		t := float64(step * ControlPeriodMs)
		fr := make(Frame, numParams)
		for p := 0; p < numParams; p++ {
			v := interpolate(paramBP[p], t) + interpolate(specialBP[p], t)
			if p == cfg.PitchParamIndex {
				v += macroPitchAt(cfg.Macro, t, cfg.Smooth)
				if cfg.Drift != nil {
					v += cfg.Drift.Next()
				}
				v += cfg.PitchMean
			}
			fr[p] = v
		}
		frames[step] = fr
	}
	return frames
}
