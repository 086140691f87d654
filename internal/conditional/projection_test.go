package conditional

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
)

func TestProjectFormula(t *testing.T) {
	testCases := []struct {
		name     string
		list     any
		expected string
		ok       bool
	}{
		{
			name:     "positive flat",
			list:     []any{map[string]any{"magnitude": float64(5), "magnitudeType": "flat"}},
			expected: "+5",
			ok:       true,
		},
		{
			name:     "zero is signed",
			list:     []any{map[string]any{"magnitude": float64(0)}},
			expected: "+0",
			ok:       true,
		},
		{
			name:     "negative carries its own sign",
			list:     []any{map[string]any{"magnitude": float64(-2), "magnitudeType": "percentage"}},
			expected: "-2%",
			ok:       true,
		},
		{
			name:     "fractional",
			list:     []map[string]any{{"magnitude": 2.5, "magnitudeType": "flat"}},
			expected: "+2.5",
			ok:       true,
		},
		{
			name:     "int magnitude",
			list:     []any{spell.Settings{"magnitude": 3}},
			expected: "+3",
			ok:       true,
		},
		{
			name:     "string used verbatim",
			list:     []any{map[string]any{"magnitude": "1d4", "magnitudeType": "percentage"}},
			expected: "1d4",
			ok:       true,
		},
		{name: "empty list", list: []any{}},
		{name: "not a list", list: "5"},
		{name: "missing magnitude", list: []any{map[string]any{"magnitudeType": "flat"}}},
		{name: "non-map entry", list: []any{5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			formula, ok := ProjectFormula(tc.list)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, formula)
		})
	}
}

func TestApplyFormulaDoesNotMutateInput(t *testing.T) {
	input := []any{map[string]any{"magnitude": float64(1), "magnitudeType": "flat"}}

	out, ok := applyFormula(input, "+4")

	assert.True(t, ok)
	assert.Equal(t, float64(1), input[0].(map[string]any)["magnitude"])
	assert.Equal(t, float64(4), out[0].(map[string]any)["magnitude"])
}

func TestApplyFormulaEmptyList(t *testing.T) {
	_, ok := applyFormula([]any{}, "+4")
	assert.False(t, ok)

	_, ok = applyFormula(nil, "+4")
	assert.False(t, ok)
}
