// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

// Package event materialises rule applications into a sparse,
// time-ordered parameter event timeline, the way EventList does in the
// original source, but as a single value-type slice rather than a
// vector of owning pointers.
package event

// InterpData is the cubic interpolation coefficients the macro
// intonation pass attaches to the events that bound a pitch segment.
type InterpData struct {
	A, B, C, D float64
}

// Event is a record at one quantised point in time: for each
// parameter, an optional target value and an optional additive special
// offset. Flag marks a rule-boundary sentinel carrying no parameter
// data of its own.
type Event struct {
	Time       int
	Flag       bool
	Parameters []float64
	paramSet   []bool
	Special    []float64
	specialSet []bool
	Interp     *InterpData
}

func newEvent(time, numParams int) *Event {
	return &Event{
		Time:       time,
		Parameters: make([]float64, numParams),
		paramSet:   make([]bool, numParams),
		Special:    make([]float64, numParams),
		specialSet: make([]bool, numParams),
	}
}

// SetParameter records value for parameter index, as a special additive
// offset if special is true, otherwise as the parameter's own target.
func (e *Event) SetParameter(index int, value float64, special bool) {
	if special {
		e.Special[index] = value
		e.specialSet[index] = true
	} else {
		e.Parameters[index] = value
		e.paramSet[index] = true
	}
}

// HasParameter reports whether index carries a value of the requested
// kind: a special offset if special is true, otherwise a target.
func (e *Event) HasParameter(index int, special bool) bool {
	if special {
		return e.specialSet[index]
	}
	return e.paramSet[index]
}
