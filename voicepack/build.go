// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package voicepack

import (
	"github.com/mym-br/gama-tts-sub001/formula"
	"github.com/mym-br/gama-tts-sub001/model"
	"github.com/mym-br/gama-tts-sub001/ttserr"
)

// Build turns a Document into a live model.Model, resolving every
// name-based cross-reference (posture category, transition point time
// equation, rule profile/equation name) into the handle model.Model
// addresses it by. It returns the first ttserr typed error encountered,
// naming the offending entity.
func Build(doc *Document) (*model.Model, error) {
	m := model.NewModel()

	for _, c := range doc.Categories {
		if _, err := m.AddCategory(c.Name, false); err != nil {
			return nil, err
		}
	}
	for _, p := range doc.Parameters {
		if _, err := m.AddParameter(model.Parameter{Name: p.Name, Minimum: p.Minimum, Maximum: p.Maximum, Default: p.Default}); err != nil {
			return nil, err
		}
	}
	for _, s := range doc.Symbols {
		if _, err := m.AddSymbol(model.Symbol{Name: s.Name, Minimum: s.Minimum, Maximum: s.Maximum, Default: s.Default}); err != nil {
			return nil, err
		}
	}
	for _, p := range doc.Postures {
		posture, err := buildPosture(m, p)
		if err != nil {
			return nil, err
		}
		if _, err := m.AddPosture(posture); err != nil {
			return nil, err
		}
	}
	for _, g := range doc.Equations {
		group, err := buildEquationGroup(g)
		if err != nil {
			return nil, err
		}
		if err := m.AddEquationGroup(group); err != nil {
			return nil, err
		}
	}
	for _, g := range doc.Transitions {
		group, err := buildTransitionGroup(m, g)
		if err != nil {
			return nil, err
		}
		if err := m.AddTransitionGroup(group); err != nil {
			return nil, err
		}
	}
	for _, g := range doc.SpecialTransitions {
		group, err := buildTransitionGroup(m, g)
		if err != nil {
			return nil, err
		}
		if err := m.AddTransitionGroup(group); err != nil {
			return nil, err
		}
	}
	for i, r := range doc.Rules {
		if err := buildRule(m, r, i); err != nil {
			return nil, err
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func buildPosture(m *model.Model, p PostureDoc) (*model.Posture, error) {
	posture := model.NewPosture(p.Name, len(m.Parameters), len(m.Symbols))
	posture.Comment = p.Comment

	for _, catName := range p.Categories {
		id, ok := m.FindCategory(catName)
		if !ok {
			return nil, ttserr.NewLookupError("category", catName)
		}
		posture.Categories = append(posture.Categories, id)
	}
	for name, value := range p.ParamTargets {
		id, ok := m.FindParameter(name)
		if !ok {
			return nil, ttserr.NewLookupError("parameter", name)
		}
		posture.ParamTargets[id] = value
	}
	for name, value := range p.SymTargets {
		id, ok := m.FindSymbol(name)
		if !ok {
			return nil, ttserr.NewLookupError("symbol", name)
		}
		posture.SymTargets[id] = value
	}
	return posture, nil
}

func buildEquationGroup(g EquationGroupDoc) (*model.EquationGroup, error) {
	group := &model.EquationGroup{Name: g.Name}
	for _, e := range g.Equations {
		eq, err := formula.NewEquation(e.Name, e.Formula)
		if err != nil {
			return nil, err
		}
		eq.Comment = e.Comment
		group.Equations = append(group.Equations, eq)
	}
	return group, nil
}

func transitionTypeFromString(s string) model.TransitionType {
	switch s {
	case "diphone":
		return model.TransDiphone
	case "triphone":
		return model.TransTriphone
	case "tetraphone":
		return model.TransTetraphone
	default:
		return model.TransInvalid
	}
}

func buildTransitionGroup(m *model.Model, g TransitionGroupDoc) (*model.TransitionGroup, error) {
	group := &model.TransitionGroup{Name: g.Name}
	for _, t := range g.Transitions {
		trans := &model.Transition{
			Name:    t.Name,
			Type:    transitionTypeFromString(t.Type),
			Special: t.Special,
			Comment: t.Comment,
		}
		for _, node := range t.Points {
			n, err := buildPointOrSlope(m, node)
			if err != nil {
				return nil, err
			}
			trans.Points = append(trans.Points, n)
		}
		group.Transitions = append(group.Transitions, trans)
	}
	return group, nil
}

func buildPointOrSlope(m *model.Model, doc PointOrSlopeDoc) (model.PointOrSlope, error) {
	switch {
	case doc.Point != nil:
		p, err := buildPoint(m, *doc.Point)
		if err != nil {
			return model.PointOrSlope{}, err
		}
		return model.NewPointNode(p), nil
	case doc.SlopeRatio != nil:
		sr := model.SlopeRatio{Slopes: doc.SlopeRatio.Slopes}
		for _, pd := range doc.SlopeRatio.Points {
			p, err := buildPoint(m, pd)
			if err != nil {
				return model.PointOrSlope{}, err
			}
			sr.Points = append(sr.Points, p)
		}
		return model.NewSlopeRatioNode(sr), nil
	default:
		return model.PointOrSlope{}, ttserr.NewConfigError("", "transition point has neither point nor slopeRatio", nil)
	}
}

func buildPoint(m *model.Model, doc PointDoc) (model.Point, error) {
	p := model.Point{Type: doc.Type, Value: doc.Value, Phantom: doc.Phantom, TimeEquation: model.InvalidID}
	switch {
	case doc.FreeTime != nil:
		p.HasFreeTime = true
		p.FreeTime = *doc.FreeTime
	case doc.TimeEquation != "":
		id, ok := m.FindEquation(doc.TimeEquation)
		if !ok {
			return model.Point{}, ttserr.NewLookupError("equation", doc.TimeEquation)
		}
		p.TimeEquation = id
	default:
		return model.Point{}, ttserr.NewConfigError("", "transition point has neither freeTime nor timeEquation", nil)
	}
	return p, nil
}

func resolveTransitionID(m *model.Model, name string) (model.TransitionID, error) {
	if name == "" {
		return model.InvalidID, nil
	}
	id, ok := m.FindTransition(name)
	if !ok {
		return model.InvalidID, ttserr.NewLookupError("transition", name)
	}
	return id, nil
}

func resolveEquationID(m *model.Model, name string) (model.EquationID, error) {
	if name == "" {
		return model.InvalidID, nil
	}
	id, ok := m.FindEquation(name)
	if !ok {
		return model.InvalidID, ttserr.NewLookupError("equation", name)
	}
	return id, nil
}

func buildRule(m *model.Model, r RuleDoc, index int) error {
	paramTrans := make([]model.TransitionID, len(r.ParamProfiles))
	for i, name := range r.ParamProfiles {
		id, err := resolveTransitionID(m, name)
		if err != nil {
			return ttserr.NewInvalidRule(index, err.Error())
		}
		paramTrans[i] = id
	}
	// SpecialProfiles is optional in the JSON document; an absent table
	// means "no special transition for any parameter", one InvalidID
	// slot per parameter, same as if every entry were the empty string.
	specialSize := len(r.SpecialProfiles)
	if specialSize == 0 {
		specialSize = len(m.Parameters)
	}
	specialTrans := make([]model.TransitionID, specialSize)
	for i := range specialTrans {
		specialTrans[i] = model.InvalidID
	}
	for i, name := range r.SpecialProfiles {
		id, err := resolveTransitionID(m, name)
		if err != nil {
			return ttserr.NewInvalidRule(index, err.Error())
		}
		specialTrans[i] = id
	}

	exprs := model.ExprSymEquations{}
	var err error
	if exprs.Duration, err = resolveEquationID(m, r.Duration); err != nil {
		return ttserr.NewInvalidRule(index, err.Error())
	}
	if exprs.Beat, err = resolveEquationID(m, r.Beat); err != nil {
		return ttserr.NewInvalidRule(index, err.Error())
	}
	if exprs.Mark1, err = resolveEquationID(m, r.Mark1); err != nil {
		return ttserr.NewInvalidRule(index, err.Error())
	}
	if exprs.Mark2, err = resolveEquationID(m, r.Mark2); err != nil {
		return ttserr.NewInvalidRule(index, err.Error())
	}
	if exprs.Mark3, err = resolveEquationID(m, r.Mark3); err != nil {
		return ttserr.NewInvalidRule(index, err.Error())
	}

	_, err = m.AddRule(r.BoolExprs, paramTrans, specialTrans, exprs, r.Comment)
	return err
}
