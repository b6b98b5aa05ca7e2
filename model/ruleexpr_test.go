package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModelWithCategories(t *testing.T, names ...string) *Model {
	t.Helper()
	m := NewModel()
	for _, n := range names {
		_, err := m.AddCategory(n, false)
		require.NoError(t, err)
	}
	return m
}

func TestRuleExprTerminalAndNot(t *testing.T) {
	m := newTestModelWithCategories(t, "vowel", "consonant")
	vowelID, _ := m.FindCategory("vowel")

	node, err := ParseRuleExpression(m, "vowel")
	require.NoError(t, err)
	assert.True(t, node.eval(&RuleExpressionData{Posture: &Posture{Categories: []CategoryID{vowelID}}}))
	assert.False(t, node.eval(&RuleExpressionData{Posture: &Posture{}}))

	notNode, err := ParseRuleExpression(m, "(not vowel)")
	require.NoError(t, err)
	assert.False(t, notNode.eval(&RuleExpressionData{Posture: &Posture{Categories: []CategoryID{vowelID}}}))
	assert.True(t, notNode.eval(&RuleExpressionData{Posture: &Posture{}}))
}

func TestRuleExprAndOrXorAreCommutative(t *testing.T) {
	m := newTestModelWithCategories(t, "a", "b")
	aID, _ := m.FindCategory("a")
	bID, _ := m.FindCategory("b")

	cases := []struct{ op string }{{"and"}, {"or"}, {"xor"}}
	data := []RuleExpressionData{
		{Posture: &Posture{Categories: []CategoryID{aID}}},
		{Posture: &Posture{Categories: []CategoryID{bID}}},
		{Posture: &Posture{Categories: []CategoryID{aID, bID}}},
		{Posture: &Posture{}},
	}
	for _, c := range cases {
		n1, err := ParseRuleExpression(m, "("+"a "+c.op+" b)")
		require.NoError(t, err)
		n2, err := ParseRuleExpression(m, "("+"b "+c.op+" a)")
		require.NoError(t, err)
		for _, d := range data {
			assert.Equal(t, n1.eval(&d), n2.eval(&d), "operator %s should commute", c.op)
		}
	}
}

func TestRuleExprDoubleNegation(t *testing.T) {
	m := newTestModelWithCategories(t, "a")
	aID, _ := m.FindCategory("a")
	node, err := ParseRuleExpression(m, "(not (not a))")
	require.NoError(t, err)
	assert.True(t, node.eval(&RuleExpressionData{Posture: &Posture{Categories: []CategoryID{aID}}}))
	assert.False(t, node.eval(&RuleExpressionData{Posture: &Posture{}}))
}

func TestRuleExprMarkedRequiresBothCategoryAndFlag(t *testing.T) {
	m := newTestModelWithCategories(t, "a")
	aID, _ := m.FindCategory("a")
	node, err := ParseRuleExpression(m, "(marked a)")
	require.NoError(t, err)

	assert.True(t, node.eval(&RuleExpressionData{Posture: &Posture{Categories: []CategoryID{aID}}, Marked: true}))
	assert.False(t, node.eval(&RuleExpressionData{Posture: &Posture{Categories: []CategoryID{aID}}, Marked: false}))
	assert.False(t, node.eval(&RuleExpressionData{Posture: &Posture{}, Marked: true}))
}

func TestRuleExprParseErrors(t *testing.T) {
	m := newTestModelWithCategories(t, "a", "b")
	inputs := []string{
		"",
		"(and a b",
		"(unknownCategory)",
		"(a and)",
		"()",
	}
	for _, in := range inputs {
		_, err := ParseRuleExpression(m, in)
		assert.Error(t, err, "input %q should fail to parse", in)
	}
}
