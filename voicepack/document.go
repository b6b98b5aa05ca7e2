// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

// Package voicepack loads a voice's static description from a small set
// of JSON documents and builds a live model.Model from them, the way
// the teacher's trmcontrolv2 package loads its own JSON configuration
// with encoding/json instead of the reference engine's XML schema.
package voicepack

// Document is the top-level voice description: categories, parameters,
// symbols, postures, equations, transitions, special transitions, and
// rules, in the same order the reference engine's XML schema lists
// them, cross-referenced by name rather than by the model's runtime
// handles.
type Document struct {
	Categories         []CategoryDoc        `json:"categories"`
	Parameters         []ParameterDoc       `json:"parameters"`
	Symbols            []SymbolDoc          `json:"symbols"`
	Postures           []PostureDoc         `json:"postures"`
	Equations          []EquationGroupDoc   `json:"equations"`
	Transitions        []TransitionGroupDoc `json:"transitions"`
	SpecialTransitions []TransitionGroupDoc `json:"specialTransitions"`
	Rules              []RuleDoc            `json:"rules"`
}

type CategoryDoc struct {
	Name    string `json:"name"`
	Comment string `json:"comment,omitempty"`
}

type ParameterDoc struct {
	Name    string  `json:"name"`
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
	Default float64 `json:"default"`
}

type SymbolDoc struct {
	Name    string  `json:"name"`
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
	Default float64 `json:"default"`
}

// PostureDoc's ParamTargets/SymTargets are maps keyed by parameter/symbol
// name rather than position: a posture that omits an entry gets 0 for
// that parameter, matching the reference engine's sparse posture tables.
type PostureDoc struct {
	Name         string             `json:"name"`
	Categories   []string           `json:"categories,omitempty"`
	ParamTargets map[string]float64 `json:"paramTargets,omitempty"`
	SymTargets   map[string]float64 `json:"symTargets,omitempty"`
	Comment      string             `json:"comment,omitempty"`
}

type EquationGroupDoc struct {
	Name      string        `json:"name"`
	Equations []EquationDoc `json:"equations"`
}

type EquationDoc struct {
	Name    string `json:"name"`
	Formula string `json:"formula"`
	Comment string `json:"comment,omitempty"`
}

type TransitionGroupDoc struct {
	Name        string          `json:"name"`
	Transitions []TransitionDoc `json:"transitions"`
}

// TransitionDoc.Type is one of "diphone", "triphone", "tetraphone".
type TransitionDoc struct {
	Name    string            `json:"name"`
	Type    string            `json:"type"`
	Special bool              `json:"special,omitempty"`
	Points  []PointOrSlopeDoc `json:"points"`
	Comment string            `json:"comment,omitempty"`
}

// PointOrSlopeDoc carries exactly one of Point or SlopeRatio, mirroring
// model.PointOrSlope's tagged-variant shape at the JSON boundary.
type PointOrSlopeDoc struct {
	Point      *PointDoc      `json:"point,omitempty"`
	SlopeRatio *SlopeRatioDoc `json:"slopeRatio,omitempty"`
}

// PointDoc's Type is the phase (2, 3, or 4) it belongs to. Exactly one
// of FreeTime or TimeEquation must be set.
type PointDoc struct {
	Type         int      `json:"type"`
	Value        float64  `json:"value"`
	FreeTime     *float64 `json:"freeTime,omitempty"`
	TimeEquation string   `json:"timeEquation,omitempty"`
	Phantom      bool     `json:"phantom,omitempty"`
}

type SlopeRatioDoc struct {
	Points []PointDoc `json:"points"`
	Slopes []float64  `json:"slopes"`
}

// RuleDoc's profile and equation fields hold names; an empty string
// means "none" (InvalidID after resolution).
type RuleDoc struct {
	BoolExprs       []string `json:"boolExprs"`
	ParamProfiles   []string `json:"paramProfiles"`
	SpecialProfiles []string `json:"specialProfiles,omitempty"`
	Duration        string   `json:"duration,omitempty"`
	Beat            string   `json:"beat,omitempty"`
	Mark1           string   `json:"mark1,omitempty"`
	Mark2           string   `json:"mark2,omitempty"`
	Mark3           string   `json:"mark3,omitempty"`
	Comment         string   `json:"comment,omitempty"`
}
