package conditional

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
)

const magnitudePercentage = "percentage"

// ProjectFormula derives the legacy formula string from the first entry of a stat
// modifier list. String magnitudes are used verbatim; numbers are signed and get a
// "%" suffix for percentage modifiers. Penalties carry their own sign.
func ProjectFormula(list any) (string, bool) {
	first, ok := leadingModifier(list)
	if !ok {
		return "", false
	}

	magnitude, present := first[spell.FieldMagnitude]
	if !present || magnitude == nil {
		return "", false
	}
	if text, ok := magnitude.(string); ok {
		return text, true
	}

	n, ok := spell.ToNumber(magnitude)
	if !ok {
		return "", false
	}
	sign := ""
	if n >= 0 {
		sign = "+"
	}
	formula := sign + strconv.FormatFloat(n, 'f', -1, 64)
	if magnitudeType, _ := first[spell.FieldMagnitudeType].(string); magnitudeType == magnitudePercentage {
		formula += "%"
	}
	return formula, true
}

// leadingModifier returns the first modifier of a list in its map form
func leadingModifier(list any) (map[string]any, bool) {
	switch l := list.(type) {
	case []any:
		if len(l) == 0 {
			return nil, false
		}
		return asModifier(l[0])
	case []map[string]any:
		if len(l) == 0 {
			return nil, false
		}
		return l[0], true
	default:
		return nil, false
	}
}

func asModifier(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case spell.Settings:
		return m, true
	default:
		return nil, false
	}
}

// applyFormula writes a formula back into the magnitude of the leading modifier.
// "+5" and "5" become the number 5, "10%" becomes a percentage, anything else is
// kept as a string magnitude. It returns a new list and leaves the input untouched.
func applyFormula(list any, formula string) ([]any, bool) {
	copied, ok := spell.CloneValue(list).([]any)
	if !ok || len(copied) == 0 {
		return nil, false
	}
	first, ok := asModifier(copied[0])
	if !ok {
		return nil, false
	}

	text := strings.TrimSpace(formula)
	percentage := strings.HasSuffix(text, "%")
	number := strings.TrimPrefix(strings.TrimSuffix(text, "%"), "+")

	n, err := strconv.ParseFloat(strings.TrimSpace(number), 64)
	if err != nil {
		first[spell.FieldMagnitude] = formula
		copied[0] = first
		return copied, true
	}

	first[spell.FieldMagnitude] = n
	switch {
	case percentage:
		first[spell.FieldMagnitudeType] = magnitudePercentage
	case first[spell.FieldMagnitudeType] == magnitudePercentage:
		first[spell.FieldMagnitudeType] = "flat"
	}
	copied[0] = first
	return copied, true
}
