// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package event

import (
	"github.com/mym-br/gama-tts-sub001/formula"
	"github.com/mym-br/gama-tts-sub001/model"
	"github.com/mym-br/gama-tts-sub001/ttserr"
)

// RuleResult is the outcome of evaluating a rule's five expression-symbol
// equations: the duration driving the zero-reference advance, the beat
// used by the intonation pass, and the three mark offsets.
type RuleResult struct {
	Duration float64
	Beat     float64
	Mark1    float64
	Mark2    float64
	Mark3    float64
}

// RuleApplier expands matched rules into timeline events. It caches the
// posture symbol handles (transition, qssa, qssb) the formula symbol
// table is seeded from, resolved once against the model.
type RuleApplier struct {
	model         *model.Model
	transitionSym model.SymID
	qssaSym       model.SymID
	qssbSym       model.SymID
}

// NewRuleApplier resolves the posture symbols Apply needs against m.
func NewRuleApplier(m *model.Model) (*RuleApplier, error) {
	transitionSym, ok := m.FindSymbol("transition")
	if !ok {
		return nil, ttserr.NewLookupError("symbol", "transition")
	}
	qssaSym, ok := m.FindSymbol("qssa")
	if !ok {
		return nil, ttserr.NewLookupError("symbol", "qssa")
	}
	qssbSym, ok := m.FindSymbol("qssb")
	if !ok {
		return nil, ttserr.NewLookupError("symbol", "qssb")
	}
	return &RuleApplier{model: m, transitionSym: transitionSym, qssaSym: qssaSym, qssbSym: qssbSym}, nil
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Apply expands rule against its matched posture window into tl,
// seeding the formula symbol table from postures and tempos, evaluating
// the rule's expression-symbol equations, walking every parameter's
// profile (and, where present, special profile) transition, and
// advancing tl's zero reference by the resulting duration. tempos and
// postures must both have length rule.NumPostures(). ruleTempo is the
// tempo recorded against the window's first posture; time multiplier is
// its reciprocal.
func (ra *RuleApplier) Apply(tl *Timeline, rule *model.Rule, postures []*model.Posture, tempos []float64, ruleTempo float64) (RuleResult, error) {
	n := len(postures)
	symbols := &formula.SymbolValues{}
	if err := symbols.SetDefaults(n); err != nil {
		return RuleResult{}, err
	}
	for i := 0; i < n; i++ {
		symbols.Set(formula.Transition1+formula.Symbol(i), postures[i].SymTarget(ra.transitionSym))
		symbols.Set(formula.Qssa1+formula.Symbol(i), postures[i].SymTarget(ra.qssaSym))
		symbols.Set(formula.Qssb1+formula.Symbol(i), postures[i].SymTarget(ra.qssbSym))
		symbols.Set(formula.Tempo1+formula.Symbol(i), tempos[i])
	}

	result := RuleResult{
		Duration: ra.evalOrDefault(rule.Exprs.Duration, symbols, symbols.Get(formula.Rd)),
		Beat:     ra.evalOrDefault(rule.Exprs.Beat, symbols, 0),
		Mark1:    ra.evalOrDefault(rule.Exprs.Mark1, symbols, 0),
		Mark2:    ra.evalOrDefault(rule.Exprs.Mark2, symbols, 0),
		Mark3:    ra.evalOrDefault(rule.Exprs.Mark3, symbols, 0),
	}

	timeMultiplier := 1.0
	if ruleTempo != 0 {
		timeMultiplier = 1.0 / ruleTempo
	}

	tl.InsertSentinel(0)

	for p := 0; p < len(ra.model.Parameters); p++ {
		targets := make([]float64, n)
		for i, posture := range postures {
			targets[i] = posture.ParamTarget(model.ParamID(p))
		}
		param := ra.model.Parameters[p]

		allEqual := true
		for i := 1; i < n; i++ {
			if targets[i] != targets[0] {
				allEqual = false
				break
			}
		}
		if allEqual {
			tl.InsertEvent(0, p, targets[0], false)
		} else {
			transID := rule.ParamProfileTransitions[p]
			if transID == model.InvalidID {
				return RuleResult{}, ttserr.NewInvalidModel("rule has no parameter profile transition but targets differ")
			}
			trans := ra.model.Transition(transID)
			if err := ra.walkTransition(tl, trans, targets, param.Minimum, param.Maximum, p, false, symbols, timeMultiplier); err != nil {
				return RuleResult{}, err
			}
		}

		if specID := rule.SpecialProfileTransitions[p]; specID != model.InvalidID {
			specTrans := ra.model.Transition(specID)
			if err := ra.walkTransition(tl, specTrans, targets, 0, 0, p, true, symbols, timeMultiplier); err != nil {
				return RuleResult{}, err
			}
		}
	}

	tl.SetZeroRef(tl.ZeroRef + int(result.Duration*timeMultiplier))
	tl.InsertSentinel(0)

	return result, nil
}

func (ra *RuleApplier) evalOrDefault(id model.EquationID, symbols *formula.SymbolValues, def float64) float64 {
	if id == model.InvalidID {
		return def
	}
	return ra.model.Equation(id).Eval(symbols)
}

// walkTransition expands trans's point sequence against targets (one
// per posture of the matched window), inserting an event per non-phantom
// point (and per interior point of a slope-ratio group) into tl.
func (ra *RuleApplier) walkTransition(tl *Timeline, trans *model.Transition, targets []float64, min, max float64, paramIdx int, special bool, symbols *formula.SymbolValues, timeMultiplier float64) error {
	n := len(targets)
	currentPhase := 2
	currentBase := targets[0]
	lastValue := targets[0]

	phaseDelta := func(phase int) (float64, error) {
		if phase-2 < 0 || phase-1 >= n {
			return 0, ttserr.NewInvalidModel("transition point phase outside posture window")
		}
		return targets[phase-1] - targets[phase-2], nil
	}

	for _, node := range trans.Points {
		if node.IsSlopeRatio() {
			sr := node.SlopeRatio()
			if len(sr.Points) == 0 {
				continue
			}
			phase := sr.Points[0].Type
			if phase != currentPhase {
				currentBase = lastValue
				currentPhase = phase
			}
			delta, err := phaseDelta(phase)
			if err != nil {
				return err
			}
			v, err := ra.expandSlopeRatio(tl, sr, currentBase, delta, min, max, paramIdx, special, symbols, timeMultiplier)
			if err != nil {
				return err
			}
			lastValue = v
			continue
		}

		p := node.Point()
		if p.Type != currentPhase {
			currentBase = lastValue
			currentPhase = p.Type
		}
		delta, err := phaseDelta(p.Type)
		if err != nil {
			return err
		}
		val := currentBase + (p.Value/100.0)*delta
		if !special {
			val = clampF(val, min, max)
		}
		lastValue = val

		t, err := ra.computeTime(p, symbols)
		if err != nil {
			return err
		}
		if !p.Phantom {
			tl.InsertEvent(t*timeMultiplier, paramIdx, val, special)
		}
	}
	return nil
}

// expandSlopeRatio distributes a slope-ratio group's raw percent
// interior values in proportion to each interval's slope weight scaled
// by its share of the group's total time span, matching the reference
// engine's normalise-then-rescale construction.
func (ra *RuleApplier) expandSlopeRatio(tl *Timeline, sr model.SlopeRatio, base, delta, min, max float64, paramIdx int, special bool, symbols *formula.SymbolValues, timeMultiplier float64) (float64, error) {
	n := len(sr.Points)
	if n < 2 {
		return base, nil
	}
	times := make([]float64, n)
	for i, p := range sr.Points {
		t, err := ra.computeTime(p, symbols)
		if err != nil {
			return 0, err
		}
		times[i] = t
	}

	startRaw := sr.Points[0].Value
	endRaw := sr.Points[n-1].Value
	deltaRaw := endRaw - startRaw
	totalTime := times[n-1] - times[0]
	totalSlope := sr.TotalSlopeUnits()

	numSlopes := len(sr.Slopes)
	contrib := make([]float64, numSlopes)
	sum := 0.0
	for i := 0; i < numSlopes; i++ {
		normSlope := sr.Slopes[i] / totalSlope
		intervalTime := times[i+1] - times[i]
		var timeFrac float64
		if totalTime != 0 {
			timeFrac = intervalTime / totalTime
		}
		contrib[i] = normSlope * timeFrac * deltaRaw
		sum += contrib[i]
	}
	factor := 1.0
	if sum != 0 {
		factor = deltaRaw / sum
	}

	runningRaw := startRaw
	lastVal := base
	for i, p := range sr.Points {
		var raw float64
		switch {
		case i == 0:
			raw = startRaw
		case i == n-1:
			raw = endRaw
		default:
			runningRaw += contrib[i-1] * factor
			raw = runningRaw
		}
		val := base + (raw/100.0)*delta
		if !special {
			val = clampF(val, min, max)
		}
		lastVal = val
		if !p.Phantom {
			tl.InsertEvent(times[i]*timeMultiplier, paramIdx, val, special)
		}
	}
	return lastVal, nil
}

func (ra *RuleApplier) computeTime(p model.Point, symbols *formula.SymbolValues) (float64, error) {
	if p.HasFreeTime {
		return p.FreeTime, nil
	}
	if p.TimeEquation == model.InvalidID {
		return 0, ttserr.NewInvalidModel("transition point has neither a free time nor a time equation")
	}
	return ra.model.Equation(p.TimeEquation).Eval(symbols), nil
}
