package spell

import "strconv"

// Settings field names shared by seeding, projection and display code
const (
	FieldFormula                   = "formula"
	FieldDamageType                = "damageType"
	FieldElementType               = "elementType"
	FieldDotDuration               = "dotDuration"
	FieldDotDurationUnit           = "dotDurationUnit"
	FieldHealingType               = "healingType"
	FieldStatModifiers             = "statModifiers"
	FieldStatPenalties             = "statPenalties"
	FieldDuration                  = "duration"
	FieldDurationUnit              = "durationUnit"
	FieldControlType               = "controlType"
	FieldSavingThrow               = "savingThrow"
	FieldDifficultyClass           = "difficultyClass"
	FieldResourceType              = "resourceType"
	FieldResolution                = "resolution"
	FieldIsOverTime                = "isOverTime"
	FieldOverTimeFormula           = "overTimeFormula"
	FieldOverTimeDuration          = "overTimeDuration"
	FieldTickFrequency             = "tickFrequency"
	FieldIsProgressiveOverTime     = "isProgressiveOverTime"
	FieldOverTimeProgressiveStages = "overTimeProgressiveStages"
	FieldMagnitude                 = "magnitude"
	FieldMagnitudeType             = "magnitudeType"
)

// Settings is a JSON-compatible configuration tree: strings, float64 numbers, booleans,
// []any and map[string]any, matching what encoding/json produces when decoding.
type Settings map[string]any

// Clone returns a deep copy so the result shares no maps or slices with s
func (s Settings) Clone() Settings {
	if s == nil {
		return nil
	}
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = CloneValue(v)
	}
	return out
}

// Merge returns a new tree holding s with every field of over written on top.
// Fields are replaced whole, never merged recursively.
func (s Settings) Merge(over Settings) Settings {
	out := make(Settings, len(s)+len(over))
	for k, v := range s {
		out[k] = CloneValue(v)
	}
	for k, v := range over {
		out[k] = CloneValue(v)
	}
	return out
}

// Has reports whether the field is present with a non-nil value
func (s Settings) Has(field string) bool {
	v, ok := s[field]
	return ok && v != nil
}

// String reads a string field, returning fallback when it is missing or not a string
func (s Settings) String(field, fallback string) string {
	if v, ok := s[field].(string); ok && v != "" {
		return v
	}
	return fallback
}

// Number reads a numeric field. Numeric strings are accepted.
func (s Settings) Number(field string) (float64, bool) {
	return ToNumber(s[field])
}

// CloneValue deep-copies a JSON-compatible value
func CloneValue(v any) any {
	switch t := v.(type) {
	case Settings:
		return t.Clone()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = CloneValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = CloneValue(vv)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = CloneValue(vv)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = vv
		}
		return out
	default:
		return v
	}
}

// ToNumber converts the numeric representations a settings tree may hold
func ToNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
