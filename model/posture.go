// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package model

// Posture is a static articulatory target: a vector of parameter and
// symbol values, tagged with categories. Once registered with
// Model.AddPosture, a posture always includes a native category named
// after the posture itself, which lets rule boolean expressions refer
// to one exact posture the same way they refer to a hand-authored
// category.
type Posture struct {
	Name         string
	Categories   []CategoryID
	ParamTargets []float64
	SymTargets   []float64
	Comment      string
}

// NewPosture allocates a Posture named name with nParams parameter
// targets and nSyms symbol targets, all zero, and no categories; its
// native category is added when the posture is registered (see
// Model.AddPosture). nParams and nSyms must equal the model's parameter
// and symbol counts, which AddPosture checks.
func NewPosture(name string, nParams, nSyms int) *Posture {
	return &Posture{
		Name:         name,
		ParamTargets: make([]float64, nParams),
		SymTargets:   make([]float64, nSyms),
	}
}

// HasCategory reports whether the posture belongs to category id.
func (p *Posture) HasCategory(id CategoryID) bool {
	for _, c := range p.Categories {
		if c == id {
			return true
		}
	}
	return false
}

// ParamTarget returns the posture's target value for parameter index idx.
func (p *Posture) ParamTarget(idx ParamID) float64 {
	return p.ParamTargets[idx]
}

// SymTarget returns the posture's target value for symbol index idx.
func (p *Posture) SymTarget(idx SymID) float64 {
	return p.SymTargets[idx]
}

// Clone returns a deep copy of p named newName, with p's parameter
// targets, symbol targets, and comment. No category memberships are
// copied, hand-authored or native; the copy gets its native category
// from Model.AddPosture.
func (p *Posture) Clone(newName string) *Posture {
	np := &Posture{
		Name:         newName,
		ParamTargets: append([]float64(nil), p.ParamTargets...),
		SymTargets:   append([]float64(nil), p.SymTargets...),
		Comment:      p.Comment,
	}
	return np
}
