// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

// Package model holds the static description of a voice: categories,
// parameters, symbols, postures, equations, transitions, and the
// ordered rule list, addressed throughout by small integer handles
// rather than a graph of shared pointers.
package model

import (
	"github.com/mym-br/gama-tts-sub001/formula"
	"github.com/mym-br/gama-tts-sub001/ttserr"
)

// Model is the arena owning every piece of a voice's static
// description. Zero value is not usable; use NewModel.
type Model struct {
	Categories    []Category
	categoryIndex map[string]CategoryID

	Parameters []Parameter
	paramIndex map[string]ParamID

	Symbols  []Symbol
	symIndex map[string]SymID

	Postures     []*Posture
	postureIndex map[string]PostureID

	EquationGroups []*EquationGroup
	Equations      []*Equation
	equationIndex  map[string]EquationID

	TransitionGroups []*TransitionGroup
	Transitions      []*Transition
	transitionIndex  map[string]TransitionID

	Rules []*Rule
}

// NewModel returns an empty Model ready to be populated.
func NewModel() *Model {
	return &Model{
		categoryIndex:   make(map[string]CategoryID),
		paramIndex:      make(map[string]ParamID),
		symIndex:        make(map[string]SymID),
		postureIndex:    make(map[string]PostureID),
		equationIndex:   make(map[string]EquationID),
		transitionIndex: make(map[string]TransitionID),
	}
}

// AddCategory registers a hand-authored category, returning its handle.
// Adding the same name twice is a ConfigError: category names are
// unique, including the native per-posture categories AddPosture
// creates.
func (m *Model) AddCategory(name string, native bool) (CategoryID, error) {
	if _, exists := m.categoryIndex[name]; exists {
		return InvalidID, ttserr.NewConfigError("", "duplicate category: "+name, nil)
	}
	id := CategoryID(len(m.Categories))
	m.Categories = append(m.Categories, Category{Name: name, Native: native})
	m.categoryIndex[name] = id
	return id, nil
}

// FindCategory looks up a category by name.
func (m *Model) FindCategory(name string) (CategoryID, bool) {
	id, ok := m.categoryIndex[name]
	return id, ok
}

// resolveCategoryForExpr is the lookup ruleExprParser uses to resolve a
// terminal name of a boolean expression: it is always a plain category
// lookup, since every posture's native category is registered into the
// same table as hand-authored categories by AddPosture.
func (m *Model) resolveCategoryForExpr(name string) (CategoryID, bool) {
	return m.FindCategory(name)
}

// AddParameter registers an ordered vocal-tract control parameter.
func (m *Model) AddParameter(p Parameter) (ParamID, error) {
	if _, exists := m.paramIndex[p.Name]; exists {
		return InvalidID, ttserr.NewConfigError("", "duplicate parameter: "+p.Name, nil)
	}
	id := ParamID(len(m.Parameters))
	m.Parameters = append(m.Parameters, p)
	m.paramIndex[p.Name] = id
	return id, nil
}

// FindParameter looks up a parameter by name.
func (m *Model) FindParameter(name string) (ParamID, bool) {
	id, ok := m.paramIndex[name]
	return id, ok
}

// AddSymbol registers an ordered posture-metadata symbol.
func (m *Model) AddSymbol(s Symbol) (SymID, error) {
	if _, exists := m.symIndex[s.Name]; exists {
		return InvalidID, ttserr.NewConfigError("", "duplicate symbol: "+s.Name, nil)
	}
	id := SymID(len(m.Symbols))
	m.Symbols = append(m.Symbols, s)
	m.symIndex[s.Name] = id
	return id, nil
}

// FindSymbol looks up a symbol by name.
func (m *Model) FindSymbol(name string) (SymID, bool) {
	id, ok := m.symIndex[name]
	return id, ok
}

// AddPosture registers p, first giving it its native category (a
// category named after the posture itself, created if one doesn't
// already exist with that name) so rule boolean expressions can refer
// to an exact posture the same way they refer to a hand-authored
// category. p.ParamTargets and p.SymTargets must already be sized to
// len(m.Parameters) and len(m.Symbols).
func (m *Model) AddPosture(p *Posture) (PostureID, error) {
	if _, exists := m.postureIndex[p.Name]; exists {
		return InvalidID, ttserr.NewConfigError("", "duplicate posture: "+p.Name, nil)
	}
	if len(p.ParamTargets) != len(m.Parameters) {
		return InvalidID, ttserr.NewConfigError("", "posture "+p.Name+": parameter target count mismatch", nil)
	}
	if len(p.SymTargets) != len(m.Symbols) {
		return InvalidID, ttserr.NewConfigError("", "posture "+p.Name+": symbol target count mismatch", nil)
	}
	native, ok := m.FindCategory(p.Name)
	if !ok {
		var err error
		native, err = m.AddCategory(p.Name, true)
		if err != nil {
			return InvalidID, err
		}
	}
	hasNative := false
	for _, c := range p.Categories {
		if c == native {
			hasNative = true
			break
		}
	}
	if !hasNative {
		p.Categories = append(p.Categories, native)
	}
	id := PostureID(len(m.Postures))
	m.Postures = append(m.Postures, p)
	m.postureIndex[p.Name] = id
	return id, nil
}

// FindPosture looks up a posture by name.
func (m *Model) FindPosture(name string) (PostureID, bool) {
	id, ok := m.postureIndex[name]
	return id, ok
}

// Posture returns the posture with handle id.
func (m *Model) Posture(id PostureID) *Posture {
	return m.Postures[id]
}

// AddEquationGroup registers every equation of group, indexing each by
// name across the whole model (names are unique across groups, not just
// within one).
func (m *Model) AddEquationGroup(group *EquationGroup) error {
	for _, eq := range group.Equations {
		if _, exists := m.equationIndex[eq.Name]; exists {
			return ttserr.NewConfigError("", "duplicate equation: "+eq.Name, nil)
		}
	}
	m.EquationGroups = append(m.EquationGroups, group)
	for _, eq := range group.Equations {
		id := EquationID(len(m.Equations))
		m.Equations = append(m.Equations, eq)
		m.equationIndex[eq.Name] = id
	}
	return nil
}

// FindEquation looks up an equation by name.
func (m *Model) FindEquation(name string) (EquationID, bool) {
	id, ok := m.equationIndex[name]
	return id, ok
}

// Equation returns the equation with handle id.
func (m *Model) Equation(id EquationID) *formula.Equation {
	return m.Equations[id]
}

// AddTransitionGroup registers every transition of group, indexing each
// by name across the whole model.
func (m *Model) AddTransitionGroup(group *TransitionGroup) error {
	for _, t := range group.Transitions {
		if _, exists := m.transitionIndex[t.Name]; exists {
			return ttserr.NewConfigError("", "duplicate transition: "+t.Name, nil)
		}
	}
	m.TransitionGroups = append(m.TransitionGroups, group)
	for _, t := range group.Transitions {
		id := TransitionID(len(m.Transitions))
		m.Transitions = append(m.Transitions, t)
		m.transitionIndex[t.Name] = id
	}
	return nil
}

// FindTransition looks up a transition by name.
func (m *Model) FindTransition(name string) (TransitionID, bool) {
	id, ok := m.transitionIndex[name]
	return id, ok
}

// Transition returns the transition with handle id.
func (m *Model) Transition(id TransitionID) *Transition {
	return m.Transitions[id]
}

// AddRule compiles boolExprs against the categories already registered
// in m and appends the resulting Rule to the ordered rule list. Rules
// must be added in priority order: FindFirstMatchingRule returns the
// first one in this list that matches.
func (m *Model) AddRule(boolExprs []string, paramTrans, specialTrans []TransitionID, exprs ExprSymEquations, comment string) (*Rule, error) {
	if len(boolExprs) < 2 || len(boolExprs) > 4 {
		return nil, ttserr.NewInvalidModel("rule must have 2-4 boolean expressions")
	}
	compiled := make([]*ruleExprNode, len(boolExprs))
	for i, expr := range boolExprs {
		node, err := ParseRuleExpression(m, expr)
		if err != nil {
			return nil, err
		}
		compiled[i] = node
	}
	r := &Rule{
		BoolExprs:                 boolExprs,
		compiled:                  compiled,
		ParamProfileTransitions:   paramTrans,
		SpecialProfileTransitions: specialTrans,
		Exprs:                     exprs,
		Comment:                   comment,
	}
	m.Rules = append(m.Rules, r)
	return r, nil
}

// FindFirstMatchingRule scans the ordered rule list for the first rule
// whose posture-window size is no larger than len(window) and whose
// boolean expressions all evaluate true against the leading
// NumPostures() elements of window. It returns the matched rule, its
// index in m.Rules, and the size of its posture window.
func (m *Model) FindFirstMatchingRule(window []RuleExpressionData) (*Rule, int, int, error) {
	for i, r := range m.Rules {
		n := r.NumPostures()
		if n > len(window) {
			continue
		}
		if r.Matches(window[:n]) {
			return r, i, n, nil
		}
	}
	return nil, -1, 0, ttserr.NewInvalidModel("no rule matches posture window")
}
