package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSimpleModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel()
	_, err := m.AddCategory("vowel", false)
	require.NoError(t, err)
	_, err = m.AddCategory("consonant", false)
	require.NoError(t, err)
	_, err = m.AddParameter(Parameter{Name: "glottalVolume", Minimum: 0, Maximum: 60, Default: 0})
	require.NoError(t, err)

	vowelID, _ := m.FindCategory("vowel")
	consID, _ := m.FindCategory("consonant")

	pa := NewPosture("a", 1, 0)
	pa.Categories = append(pa.Categories, vowelID)
	_, err = m.AddPosture(pa)
	require.NoError(t, err)

	pb := NewPosture("b", 1, 0)
	pb.Categories = append(pb.Categories, consID)
	_, err = m.AddPosture(pb)
	require.NoError(t, err)

	return m
}

func TestAddPostureRegistersNativeCategory(t *testing.T) {
	m := buildSimpleModel(t)
	id, ok := m.FindCategory("a")
	require.True(t, ok)
	pid, _ := m.FindPosture("a")
	assert.True(t, m.Posture(pid).HasCategory(id))
}

func TestAddPostureRejectsMismatchedTargetCounts(t *testing.T) {
	m := buildSimpleModel(t)
	bad := NewPosture("c", 99, 0)
	_, err := m.AddPosture(bad)
	assert.Error(t, err)
}

func TestAddRuleCompilesExpressions(t *testing.T) {
	m := buildSimpleModel(t)
	r, err := m.AddRule(
		[]string{"vowel", "consonant"},
		[]TransitionID{InvalidID},
		[]TransitionID{InvalidID},
		ExprSymEquations{Duration: InvalidID},
		"vowel-to-consonant",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, r.NumPostures())
}

func TestAddRuleRejectsOutOfRangeWindow(t *testing.T) {
	m := buildSimpleModel(t)
	_, err := m.AddRule([]string{"vowel"}, nil, nil, ExprSymEquations{}, "")
	assert.Error(t, err)
}

func TestFindFirstMatchingRulePrefersEarlierRule(t *testing.T) {
	m := buildSimpleModel(t)
	specific, err := m.AddRule(
		[]string{"vowel", "consonant"},
		[]TransitionID{InvalidID}, []TransitionID{InvalidID},
		ExprSymEquations{}, "specific",
	)
	require.NoError(t, err)
	_, err = m.AddRule(
		[]string{"vowel", "(vowel or consonant)"},
		[]TransitionID{InvalidID}, []TransitionID{InvalidID},
		ExprSymEquations{}, "fallback-never-reached",
	)
	require.NoError(t, err)

	aID, _ := m.FindPosture("a")
	bID, _ := m.FindPosture("b")
	window := []RuleExpressionData{
		{Posture: m.Posture(aID)},
		{Posture: m.Posture(bID)},
	}
	matched, idx, consumed, err := m.FindFirstMatchingRule(window)
	require.NoError(t, err)
	assert.Same(t, specific, matched)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 2, consumed)
}

func TestFindFirstMatchingRuleErrorsWhenNoneMatch(t *testing.T) {
	m := buildSimpleModel(t)
	_, err := m.AddRule(
		[]string{"vowel", "vowel"},
		[]TransitionID{InvalidID}, []TransitionID{InvalidID},
		ExprSymEquations{}, "",
	)
	require.NoError(t, err)

	bID, _ := m.FindPosture("b")
	window := []RuleExpressionData{{Posture: m.Posture(bID)}, {Posture: m.Posture(bID)}}
	_, _, _, err = m.FindFirstMatchingRule(window)
	assert.Error(t, err)
}

func TestValidateRejectsBadTransitionPointType(t *testing.T) {
	m := buildSimpleModel(t)
	bad := &Transition{
		Name: "badTrans",
		Type: TransDiphone,
		Points: []PointOrSlope{
			NewPointNode(Point{Type: 99, Value: 0}),
		},
	}
	require.NoError(t, m.AddTransitionGroup(&TransitionGroup{Name: "g", Transitions: []*Transition{bad}}))
	err := m.Validate()
	assert.Error(t, err)
}

func TestValidateRejectsSlopeRatioWithAllZeroSlopes(t *testing.T) {
	m := buildSimpleModel(t)
	bad := &Transition{
		Name: "badSlope",
		Type: TransDiphone,
		Points: []PointOrSlope{
			NewSlopeRatioNode(SlopeRatio{
				Points: []Point{{Type: 2, Value: 0}, {Type: 2, Value: 100}},
				Slopes: []float64{0},
			}),
		},
	}
	require.NoError(t, m.AddTransitionGroup(&TransitionGroup{Name: "g", Transitions: []*Transition{bad}}))
	err := m.Validate()
	assert.Error(t, err)
}

func TestValidateAcceptsWellFormedTransitionsAndRules(t *testing.T) {
	m := buildSimpleModel(t)
	good := &Transition{
		Name: "goodTrans",
		Type: TransDiphone,
		Points: []PointOrSlope{
			NewPointNode(Point{Type: 2, Value: 0, HasFreeTime: true, FreeTime: 0}),
			NewPointNode(Point{Type: 2, Value: 100, HasFreeTime: true, FreeTime: 100}),
		},
	}
	require.NoError(t, m.AddTransitionGroup(&TransitionGroup{Name: "g", Transitions: []*Transition{good}}))
	tid, _ := m.FindTransition("goodTrans")
	_, err := m.AddRule(
		[]string{"vowel", "consonant"},
		[]TransitionID{tid},
		[]TransitionID{InvalidID},
		ExprSymEquations{},
		"",
	)
	require.NoError(t, err)
	assert.NoError(t, m.Validate())
}
