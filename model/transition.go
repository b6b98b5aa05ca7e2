// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package model

import "github.com/goki/ki/kit"

// TransitionType classifies a Transition by the number of postures its
// rule window spans.
type TransitionType int

const (
	TransInvalid   TransitionType = 0
	TransDiphone   TransitionType = 2
	TransTriphone  TransitionType = 3
	TransTetraphone TransitionType = 4
	TransTypeN     TransitionType = 5
)

//go:generate stringer -type=TransitionType

// KitTransitionType registers TransitionType the way the teacher
// registers every small closed enum.
var KitTransitionType = kit.Enums.AddEnum(int64(TransTypeN), kit.NotBitFlag, nil)

// Phases returns the number of postures (2, 3, or 4) a TransitionType
// spans, or 0 for TransInvalid.
func (t TransitionType) Phases() int {
	switch t {
	case TransDiphone:
		return 2
	case TransTriphone:
		return 3
	case TransTetraphone:
		return 4
	default:
		return 0
	}
}

// pointOrSlopeKind tags the variant held by a PointOrSlope node.
type pointOrSlopeKind int

const (
	kindPoint pointOrSlopeKind = iota
	kindSlopeRatio
)

// Point is one point of a transition profile: a value, expressed as a
// percentage of the inter-posture delta for the phase it falls in, and a
// time, either a free-running constant or the result of evaluating a
// named equation. A Phantom point contributes to slope-ratio interior
// geometry (as an interpolation anchor) but is never itself inserted as
// an event.
type Point struct {
	Type         int // phase: 2 (postures 0-1), 3 (postures 1-2), or 4 (postures 2-3)
	Value        float64
	HasFreeTime  bool
	FreeTime     float64
	TimeEquation EquationID // InvalidID if HasFreeTime
	Phantom      bool
}

// SlopeRatio is a sequence of >= 2 Points plus one fewer raw slope
// weights, declaring that the inter-point value deltas must be in the
// given ratio. The first and last points anchor the group; interior
// points are derived from the slopes at expansion time (see package
// event).
type SlopeRatio struct {
	Points []Point
	Slopes []float64
}

// PointOrSlope is one node of a Transition's point sequence: either a
// Point or a SlopeRatio, modelled as a tagged variant instead of an
// interface hierarchy so evaluation is a plain switch, not a type
// assertion or virtual call.
type PointOrSlope struct {
	kind       pointOrSlopeKind
	point      Point
	slopeRatio SlopeRatio
}

// NewPointNode wraps a single Point as a PointOrSlope.
func NewPointNode(p Point) PointOrSlope {
	return PointOrSlope{kind: kindPoint, point: p}
}

// NewSlopeRatioNode wraps a SlopeRatio as a PointOrSlope.
func NewSlopeRatioNode(sr SlopeRatio) PointOrSlope {
	return PointOrSlope{kind: kindSlopeRatio, slopeRatio: sr}
}

// IsSlopeRatio reports whether the node holds a SlopeRatio rather than a
// plain Point.
func (n *PointOrSlope) IsSlopeRatio() bool { return n.kind == kindSlopeRatio }

// Point returns the wrapped Point. Only valid when !IsSlopeRatio().
func (n *PointOrSlope) Point() Point { return n.point }

// SlopeRatio returns the wrapped SlopeRatio. Only valid when IsSlopeRatio().
func (n *PointOrSlope) SlopeRatio() SlopeRatio { return n.slopeRatio }

// TotalSlopeUnits sums the raw slope weights of sr.
func (sr *SlopeRatio) TotalSlopeUnits() float64 {
	total := 0.0
	for _, s := range sr.Slopes {
		total += s
	}
	return total
}

// Transition is a named profile describing how one parameter evolves
// within a rule window. special marks a transition usable only as a
// special profile, contributing an additive offset applied outside
// min/max clamping (see package event).
type Transition struct {
	Name    string
	Type    TransitionType
	Points  []PointOrSlope
	Special bool
	Comment string
}

// TransitionGroup is a named collection of transitions.
type TransitionGroup struct {
	Name        string
	Transitions []*Transition
}
