// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package event

// timeQuantizationMs is the 4 ms (250 Hz) control grid every event time
// is rounded down to.
const timeQuantizationMs = 4

// Timeline is the ordered, non-decreasing-time list of events produced
// by rule application. Zero value is not usable; use NewTimeline.
type Timeline struct {
	Events    []*Event
	NumParams int
	ZeroRef   int
	ZeroIndex int
}

// NewTimeline returns an empty timeline sized for numParams parameters.
func NewTimeline(numParams int) *Timeline {
	return &Timeline{NumParams: numParams}
}

func quantize(t int) int {
	return (t >> 2) << 2
}

// InsertEvent quantises time (milliseconds, relative to the current
// zero reference) to the 4 ms grid and finds or creates the event at
// that instant, scanning backward from the end of the list (events
// arrive close to sorted) rather than doing a full binary search.
// paramIndex < 0 creates or touches a pure sentinel with no parameter
// value of its own; InsertEvent returns nil for a negative time.
func (tl *Timeline) InsertEvent(timeMs float64, paramIndex int, value float64, special bool) *Event {
	if timeMs < 0 {
		return nil
	}
	tempTime := quantize(tl.ZeroRef + int(timeMs))

	setIfWanted := func(e *Event) {
		if paramIndex >= 0 {
			e.SetParameter(paramIndex, value, special)
		}
	}

	if len(tl.Events) == 0 {
		e := newEvent(tempTime, tl.NumParams)
		setIfWanted(e)
		tl.Events = append(tl.Events, e)
		return e
	}

	for i := len(tl.Events) - 1; i >= tl.ZeroIndex; i-- {
		switch {
		case tl.Events[i].Time == tempTime:
			setIfWanted(tl.Events[i])
			return tl.Events[i]
		case tl.Events[i].Time < tempTime:
			e := newEvent(tempTime, tl.NumParams)
			setIfWanted(e)
			tl.insertAt(i+1, e)
			return e
		}
	}

	e := newEvent(tempTime, tl.NumParams)
	setIfWanted(e)
	tl.insertAt(tl.ZeroIndex, e)
	return e
}

func (tl *Timeline) insertAt(idx int, e *Event) {
	tl.Events = append(tl.Events, nil)
	copy(tl.Events[idx+1:], tl.Events[idx:])
	tl.Events[idx] = e
}

// InsertSentinel inserts (or reuses) a time-marker event carrying no
// parameter value and flags it as a rule boundary.
func (tl *Timeline) InsertSentinel(timeMs float64) *Event {
	e := tl.InsertEvent(timeMs, -1, 0, false)
	if e != nil {
		e.Flag = true
	}
	return e
}

// SetZeroRef advances the zero reference to newValue and recomputes
// ZeroIndex, the earliest index InsertEvent's backward scan needs to
// consider: the position of the last existing event strictly before
// newValue.
func (tl *Timeline) SetZeroRef(newValue int) {
	tl.ZeroRef = newValue
	tl.ZeroIndex = 0
	for i := len(tl.Events) - 1; i >= 0; i-- {
		if tl.Events[i].Time < newValue {
			tl.ZeroIndex = i
			return
		}
	}
}
