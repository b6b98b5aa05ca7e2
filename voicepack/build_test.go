package voicepack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalDocument() *Document {
	freeHundred := 100.0
	return &Document{
		Categories: []CategoryDoc{{Name: "phone"}, {Name: "vocoid"}},
		Parameters: []ParameterDoc{{Name: "glottalVolume", Minimum: 0, Maximum: 100}},
		Symbols:    []SymbolDoc{{Name: "transition"}, {Name: "qssa"}, {Name: "qssb"}},
		Postures: []PostureDoc{
			{Name: "aa", Categories: []string{"phone", "vocoid"}, ParamTargets: map[string]float64{"glottalVolume": 0}},
			{Name: "ii", Categories: []string{"phone", "vocoid"}, ParamTargets: map[string]float64{"glottalVolume": 100}},
		},
		Transitions: []TransitionGroupDoc{
			{
				Name: "g",
				Transitions: []TransitionDoc{
					{
						Name: "rise",
						Type: "diphone",
						Points: []PointOrSlopeDoc{
							{Point: &PointDoc{Type: 2, Value: 100, FreeTime: &freeHundred}},
						},
					},
				},
			},
		},
		Rules: []RuleDoc{
			{
				BoolExprs:     []string{"phone", "phone"},
				ParamProfiles: []string{"rise"},
			},
		},
	}
}

func TestBuildResolvesCategoriesParametersAndTransitions(t *testing.T) {
	doc := minimalDocument()
	m, err := Build(doc)
	require.NoError(t, err)
	assert.Len(t, m.Postures, 2)
	assert.Len(t, m.Rules, 1)

	_, ok := m.FindTransition("rise")
	assert.True(t, ok)
}

func TestBuildUnknownCategoryFails(t *testing.T) {
	doc := &Document{
		Postures: []PostureDoc{{Name: "aa", Categories: []string{"nosuch"}}},
	}
	_, err := Build(doc)
	assert.Error(t, err)
}

func TestBuildUnknownTransitionInRuleFails(t *testing.T) {
	doc := &Document{
		Categories: []CategoryDoc{{Name: "phone"}},
		Rules: []RuleDoc{
			{BoolExprs: []string{"phone", "phone"}, ParamProfiles: []string{"missing"}},
		},
	}
	_, err := Build(doc)
	assert.Error(t, err)
}

func TestBuildRejectsMalformedEquationFormula(t *testing.T) {
	doc := &Document{
		Equations: []EquationGroupDoc{
			{Name: "g", Equations: []EquationDoc{{Name: "bad", Formula: "1 +"}}},
		},
	}
	_, err := Build(doc)
	assert.Error(t, err)
}
