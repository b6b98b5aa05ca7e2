package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArithmetic(t *testing.T) {
	cases := []struct {
		formula string
		want    float64
	}{
		{"1 + 2", 3},
		{"2 * 3 + 4", 10},
		{"2 * (3 + 4)", 14},
		{"-5 + 2", -3},
		{"10 / 2 / 5", 1},
		{"-(2 + 3)", -5},
	}
	var syms SymbolValues
	for _, c := range cases {
		root, err := Parse(c.formula)
		require.NoError(t, err, c.formula)
		assert.InDelta(t, c.want, root.Eval(&syms), 1e-9, c.formula)
	}
}

func TestParseSymbols(t *testing.T) {
	root, err := Parse("rd + beat * 2")
	require.NoError(t, err)
	var syms SymbolValues
	syms.Set(Rd, 10)
	syms.Set(Beat, 5)
	assert.Equal(t, 20.0, root.Eval(&syms))
}

func TestParseErrors(t *testing.T) {
	for _, formula := range []string{"", "1 +", "(1 + 2", "1 $ 2", "bogusSymbol"} {
		_, err := Parse(formula)
		assert.Error(t, err, formula)
	}
}

func TestDivisionByZeroIsUnpoliced(t *testing.T) {
	root, err := Parse("1 / 0")
	require.NoError(t, err)
	var syms SymbolValues
	result := root.Eval(&syms)
	assert.True(t, math.IsInf(result, 1))
}

func TestSetDefaults(t *testing.T) {
	var syms SymbolValues
	require.NoError(t, syms.SetDefaults(2))
	assert.Equal(t, 100.0, syms.Get(Rd))
	require.NoError(t, syms.SetDefaults(3))
	assert.Equal(t, 200.0, syms.Get(Rd))
	assert.Error(t, syms.SetDefaults(5))
}
