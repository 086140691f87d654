package spell

// DefaultOverrideKey is the override consulted when the firing trigger has no entry of its own
const DefaultOverrideKey = "default"

// ConditionalEffectConfig layers trigger-scoped overrides over an effect's base configuration.
// It is never deleted; disabling only clears IsConditional so the overrides survive.
type ConditionalEffectConfig struct {
	IsConditional  bool                `json:"isConditional"`
	DefaultEnabled bool                `json:"defaultEnabled"`
	BaseFormula    string              `json:"baseFormula"`
	BaseSettings   Settings            `json:"baseSettings"`
	Overrides      map[string]Settings `json:"overrides"`
}

// Clone returns a deep copy of the configuration
func (c *ConditionalEffectConfig) Clone() *ConditionalEffectConfig {
	if c == nil {
		return nil
	}
	out := &ConditionalEffectConfig{
		IsConditional:  c.IsConditional,
		DefaultEnabled: c.DefaultEnabled,
		BaseFormula:    c.BaseFormula,
		BaseSettings:   c.BaseSettings.Clone(),
	}
	if c.Overrides != nil {
		out.Overrides = make(map[string]Settings, len(c.Overrides))
		for k, v := range c.Overrides {
			out.Overrides[k] = v.Clone()
		}
	}
	return out
}
