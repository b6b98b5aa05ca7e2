// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package intonation

import (
	"github.com/mym-br/gama-tts-sub001/event"
	"gonum.org/v1/gonum/mat"
)

// ApplyToTimeline inserts a pure-sentinel event (no parameter value) at
// every point's time and attaches interpolation coefficients spanning
// it and the next point, so the frame pass can evaluate the pitch curve
// at any time between two consecutive points without re-walking the
// point list. Caller must reset tl's zero reference to 0 first: points'
// times are absolute, not rule-relative.
func ApplyToTimeline(tl *event.Timeline, points []Point, smooth bool) {
	if len(points) == 0 {
		return
	}
	event1 := tl.InsertEvent(points[0].TimeMs, -1, 0, false)
	if event1 == nil {
		return
	}
	for i := 0; i < len(points)-1; i++ {
		p1, p2 := points[i], points[i+1]
		event2 := tl.InsertEvent(p2.TimeMs, -1, 0, false)
		if event2 == nil {
			break
		}
		x1, y1 := float64(event1.Time), p1.Semitone
		x2, y2 := float64(event2.Time), p2.Semitone
		if smooth {
			event1.Interp = cubicCoefficients(x1, y1, p1.Slope, x2, y2, p2.Slope)
		} else {
			event1.Interp = linearCoefficients(x1, y1, x2, y2)
		}
		event1 = event2
	}
}

// cubicCoefficients fits the cubic a*x^3 + b*x^2 + c*x + d through
// (x1,y1) and (x2,y2) with slopes m1, m2 (a Hermite boundary-value
// problem), by assembling the 4x4 system those four constraints impose
// on [a b c d] and solving it with gonum rather than hand-deriving the
// closed-form inverse.
func cubicCoefficients(x1, y1, m1, x2, y2, m2 float64) *event.InterpData {
	dx := x2 - x1
	if dx == 0 {
		return &event.InterpData{D: y1}
	}
	x12, x22 := x1*x1, x2*x2

	a := mat.NewDense(4, 4, []float64{
		x1 * x12, x12, x1, 1,
		x2 * x22, x22, x2, 1,
		3 * x12, 2 * x1, 1, 0,
		3 * x22, 2 * x2, 1, 0,
	})
	b := mat.NewDense(4, 1, []float64{y1, y2, m1, m2})

	var coeffs mat.Dense
	if err := coeffs.Solve(a, b); err != nil {
		// A degenerate (singular) system only arises when x1 == x2,
		// already excluded above; fall back to a flat segment rather
		// than propagating a solver error into the timeline.
		return &event.InterpData{D: y1}
	}
	return &event.InterpData{A: coeffs.At(0, 0), B: coeffs.At(1, 0), C: coeffs.At(2, 0), D: coeffs.At(3, 0)}
}

func linearCoefficients(x1, y1, x2, y2 float64) *event.InterpData {
	dx := x2 - x1
	if dx == 0 {
		return &event.InterpData{D: y1}
	}
	slope := (y2 - y1) / dx
	intercept := y1 - x1*slope
	return &event.InterpData{A: 0, B: 0, C: slope, D: intercept}
}

// Eval evaluates an InterpData's curve at time t, honoring the same
// coefficient layout cubicCoefficients and linearCoefficients produce:
// value = a*t^3 + b*t^2 + c*t + d.
func Eval(data *event.InterpData, t float64) float64 {
	return t*(t*(t*data.A+data.B)+data.C) + data.D
}
