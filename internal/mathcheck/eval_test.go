package mathcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want int
	}{
		{"7 + 5", 12},
		{"3 - 9", -6},
		{"6 × 7", 42},
		{"84 ÷ 12", 7},
		{"(4 + 9) × 3 - 2", 37},
		{"4 + (9 × 3) - 2", 29},
		{"(4 - 9) + (3 × 2)", 1},
		{"5^3", 125},
		{"2^3^2", 512},
		{"47 mod 6", 5},
		{"47 % 6", 5},
		{"(24/3) ÷ (8/4)", 4},
		{"(12/8) ÷ (3/4)", 2},
		{"-3 + 10", 7},
		{"5 * 4 * 3", 60},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	for _, expr := range []string{
		"",
		"7 +",
		"(1 + 2",
		"3 / 0",
		"7 / 2",
		"two plus two",
		"5 mod 0",
	} {
		_, err := Evaluate(expr)
		assert.Error(t, err, "expr %q", expr)
	}
}

func TestEvaluatePrompt(t *testing.T) {
	got, err := EvaluatePrompt("(4 + 9) × 3 - 2 = ?")
	require.NoError(t, err)
	assert.Equal(t, 37, got)

	_, err = EvaluatePrompt("How many sides does a hexagon have?")
	assert.ErrorIs(t, err, ErrNotComputable)
}

func TestSolveLinear(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"3x - 5 = 4, x = ?", 3},
		{"2x + 7 = -13, x = ?", -10},
		{"1x + 0 = 0, x = ?", 0},
		{"-4x + 2 = 10, x = ?", -2},
	}
	for _, tt := range tests {
		got, err := SolveLinear(tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}

	_, err := SolveLinear("3x + 1 = 3, x = ?")
	assert.Error(t, err)
	_, err = SolveLinear("7 + 5 = ?")
	assert.ErrorIs(t, err, ErrNotComputable)
}
