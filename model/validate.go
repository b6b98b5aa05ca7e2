// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package model

import "github.com/mym-br/gama-tts-sub001/ttserr"

// Validate performs the eager checks that let every later stage assume
// a Model is internally consistent: every transition profile is shaped
// correctly, and every rule's transition table has one slot per
// parameter. It does not re-check the boolean expressions, which are
// already validated at parse time by AddRule.
func (m *Model) Validate() error {
	for _, t := range m.Transitions {
		if err := validateTransition(t); err != nil {
			return err
		}
	}
	for i, r := range m.Rules {
		if len(r.ParamProfileTransitions) != len(m.Parameters) {
			return ttserr.NewInvalidRule(i, "parameter profile transition count mismatch")
		}
		if len(r.SpecialProfileTransitions) != len(m.Parameters) {
			return ttserr.NewInvalidRule(i, "special profile transition count mismatch")
		}
		for _, tid := range r.ParamProfileTransitions {
			if tid != InvalidID && (int(tid) < 0 || int(tid) >= len(m.Transitions)) {
				return ttserr.NewInvalidRule(i, "parameter profile transition out of range")
			}
		}
		for _, tid := range r.SpecialProfileTransitions {
			if tid != InvalidID && (int(tid) < 0 || int(tid) >= len(m.Transitions)) {
				return ttserr.NewInvalidRule(i, "special profile transition out of range")
			}
		}
	}
	return nil
}

// validateTransition checks that a transition's point sequence is well
// formed: at least one point or slope-ratio group, every slope-ratio
// group has exactly one fewer slope than points and at least one
// non-zero slope (an all-zero slope set cannot be normalized into a
// value split), and every point's phase type is 2, 3, or 4.
func validateTransition(t *Transition) error {
	if len(t.Points) == 0 {
		return ttserr.NewConfigError("", "transition "+t.Name+": no points", nil)
	}
	for _, n := range t.Points {
		if n.IsSlopeRatio() {
			sr := n.SlopeRatio()
			if len(sr.Points) < 2 {
				return ttserr.NewConfigError("", "transition "+t.Name+": slope-ratio needs at least 2 points", nil)
			}
			if len(sr.Slopes) != len(sr.Points)-1 {
				return ttserr.NewConfigError("", "transition "+t.Name+": slope-ratio slope count must be points-1", nil)
			}
			nonZero := false
			for _, s := range sr.Slopes {
				if s != 0 {
					nonZero = true
					break
				}
			}
			if !nonZero {
				return ttserr.NewConfigError("", "transition "+t.Name+": slope-ratio has no non-zero slope", nil)
			}
			for _, p := range sr.Points {
				if err := validatePointType(t.Name, p); err != nil {
					return err
				}
			}
		} else {
			if err := validatePointType(t.Name, n.Point()); err != nil {
				return err
			}
		}
	}
	return nil
}

func validatePointType(transName string, p Point) error {
	switch p.Type {
	case 2, 3, 4:
		return nil
	default:
		return ttserr.NewConfigError("", "transition "+transName+": point has invalid phase type", nil)
	}
}
