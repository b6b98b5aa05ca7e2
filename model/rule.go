// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package model

// ExprSymEquations names the equations a Rule uses to compute its
// expression symbols (duration, beat, and the three marks) from the formula
// symbol table built out of the matched postures' transition/qssa/qssb
// targets and the rule's own tempo. EquationID fields are InvalidID when
// the rule does not override that symbol's default equation.
type ExprSymEquations struct {
	Duration EquationID
	Beat     EquationID
	Mark1    EquationID
	Mark2    EquationID
	Mark3    EquationID
}

// Rule is one entry of the ordered rule list: a window of 2-4 boolean
// expressions plus the parameter and special transitions it applies when
// it matches, and the equations used to derive its expression symbols.
type Rule struct {
	BoolExprs                 []string
	compiled                  []*ruleExprNode
	ParamProfileTransitions   []TransitionID // one per Model parameter, InvalidID if none
	SpecialProfileTransitions []TransitionID // one per Model parameter, InvalidID if none
	Exprs                     ExprSymEquations
	Comment                   string
}

// NumPostures returns the size of the posture window the rule matches:
// the number of boolean expressions it carries (2, 3, or 4).
func (r *Rule) NumPostures() int {
	return len(r.BoolExprs)
}

// Matches reports whether window, one RuleExpressionData per posture in
// the candidate window, satisfies every one of the rule's compiled
// boolean expressions pairwise. len(window) must equal r.NumPostures().
func (r *Rule) Matches(window []RuleExpressionData) bool {
	if len(window) != len(r.compiled) {
		return false
	}
	for i, node := range r.compiled {
		if !node.eval(&window[i]) {
			return false
		}
	}
	return true
}
