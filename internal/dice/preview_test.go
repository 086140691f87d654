package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

func TestPreviewFormula(t *testing.T) {
	testCases := []struct {
		formula   string
		notation  string
		count     int
		size      int
		remainder string
	}{
		{formula: "2d6 + INT", notation: "2d6", count: 2, size: 6, remainder: "+ INT"},
		{formula: "3d6 + INT*2", notation: "3d6", count: 3, size: 6, remainder: "+ INT*2"},
		{formula: "1D8", notation: "1d8", count: 1, size: 8, remainder: ""},
		{formula: "SPI + 1d4", notation: "1d4", count: 1, size: 4, remainder: "SPI +"},
	}

	for _, tc := range testCases {
		t.Run(tc.formula, func(t *testing.T) {
			got, err := PreviewFormula(tc.formula)
			require.NoError(t, err)

			assert.Equal(t, tc.notation, got.Notation)
			assert.Equal(t, tc.count, got.Count)
			assert.Equal(t, tc.size, got.Size)
			assert.Equal(t, tc.remainder, got.Remainder)
			assert.Equal(t, tc.count, got.Min)
			assert.Equal(t, tc.count*tc.size, got.Max)
			assert.GreaterOrEqual(t, got.Total, got.Min)
			assert.LessOrEqual(t, got.Total, got.Max)
			assert.NotEmpty(t, got.Description)
		})
	}
}

func TestPreviewFormulaErrors(t *testing.T) {
	for _, formula := range []string{"", "+2", "INT", "0d6", "2d0", "101d6", "1d1001"} {
		t.Run(formula, func(t *testing.T) {
			_, err := PreviewFormula(formula)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestParseRolledDice(t *testing.T) {
	assert.Equal(t, []int{3, 4}, parseRolledDice("+2d6[3,4]=7"))
	assert.Nil(t, parseRolledDice("7"))
}
