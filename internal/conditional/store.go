// Package conditional resolves which effect configuration applies when a given trigger fires.
//
// Each effect type owns a base configuration and a sparse map of trigger-scoped
// overrides. Reads never fail: missing entries fall back to the "default" override,
// then to the base configuration, then to the per-kind defaults in the spell package.
package conditional

import (
	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
)

// Store holds the conditional layer of every effect type on one spell.
// It is owned by a single editing session and is not safe for concurrent use.
type Store struct {
	configs map[string]*spell.ConditionalEffectConfig
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{configs: make(map[string]*spell.ConditionalEffectConfig)}
}

// FromConfigs creates a store over a copy of an existing conditional layer
func FromConfigs(configs map[string]*spell.ConditionalEffectConfig) *Store {
	s := NewStore()
	for effectType, cfg := range configs {
		if cfg == nil {
			continue
		}
		s.configs[effectType] = cfg.Clone()
	}
	return s
}

// Configs returns a deep copy of every conditional configuration in the store
func (s *Store) Configs() map[string]*spell.ConditionalEffectConfig {
	out := make(map[string]*spell.ConditionalEffectConfig, len(s.configs))
	for effectType, cfg := range s.configs {
		out[effectType] = cfg.Clone()
	}
	return out
}

// Get returns a copy of the configuration for an effect type
func (s *Store) Get(effectType string) (*spell.ConditionalEffectConfig, bool) {
	cfg, ok := s.configs[effectType]
	if !ok {
		return nil, false
	}
	return cfg.Clone(), true
}

// Initialize creates the conditional configuration for an effect type seeded from its base
// configuration. When one already exists only the base formula and settings are refreshed.
func (s *Store) Initialize(effectType, baseFormula string, baseSettings spell.Settings) *spell.ConditionalEffectConfig {
	kind := spell.KindOf(effectType)
	if baseFormula == "" {
		baseFormula = spell.DefaultFormula(kind)
	}

	if _, ok := s.configs[effectType]; ok {
		s.update(effectType, func(cfg *spell.ConditionalEffectConfig) {
			cfg.BaseFormula = baseFormula
			cfg.BaseSettings = baseSettings.Clone()
		})
		return s.configs[effectType].Clone()
	}

	s.configs[effectType] = &spell.ConditionalEffectConfig{
		IsConditional:  true,
		DefaultEnabled: true,
		BaseFormula:    baseFormula,
		BaseSettings:   baseSettings.Clone(),
		Overrides: map[string]spell.Settings{
			spell.DefaultOverrideKey: {spell.FieldFormula: baseFormula},
		},
	}
	return s.configs[effectType].Clone()
}

// SetOverrideField writes one field of a trigger's override, seeding the override from
// the base configuration the first time the trigger is touched. Writing a buff or debuff
// stat list also re-derives the override's formula from the leading modifier.
func (s *Store) SetOverrideField(effectType, triggerID, field string, value any) {
	kind := spell.KindOf(effectType)
	s.update(effectType, func(cfg *spell.ConditionalEffectConfig) {
		override := entryFor(kind, cfg, triggerID)
		override[field] = spell.CloneValue(value)

		if listField, ok := kind.StatListField(); ok && field == listField {
			if formula, ok := ProjectFormula(override[field]); ok {
				override[spell.FieldFormula] = formula
			}
		}
	})
}

// SetFormula writes a trigger's formula. For buffs and debuffs the formula is also pushed
// into the leading stat modifier so the list and the formula stay in sync.
func (s *Store) SetFormula(effectType, triggerID, formula string) {
	kind := spell.KindOf(effectType)
	s.update(effectType, func(cfg *spell.ConditionalEffectConfig) {
		override := entryFor(kind, cfg, triggerID)
		override[spell.FieldFormula] = formula

		listField, ok := kind.StatListField()
		if !ok {
			return
		}
		list, ok := applyFormula(override[listField], formula)
		if !ok {
			return
		}
		override[listField] = list
		if projected, ok := ProjectFormula(list); ok {
			override[spell.FieldFormula] = projected
		}
	})
}

// Resolve returns the configuration that applies when the trigger fires: the base settings
// with the trigger's override on top, or the "default" override when the trigger has none.
func (s *Store) Resolve(effectType, triggerID string) spell.Settings {
	kind := spell.KindOf(effectType)
	cfg, ok := s.configs[effectType]
	if !ok {
		return spell.DefaultsFor(kind)
	}

	override, ok := cfg.Overrides[triggerID]
	if !ok {
		override, ok = cfg.Overrides[spell.DefaultOverrideKey]
	}
	if !ok {
		override = spell.Settings{spell.FieldFormula: cfg.BaseFormula}
	}

	resolved := cfg.BaseSettings.Merge(override)
	if !resolved.Has(spell.FieldFormula) {
		resolved[spell.FieldFormula] = fallbackFormula(kind, cfg)
	}
	return resolved
}

// Replace stores cfg as the effect type's configuration wholesale. The "default" override
// is re-established if cfg lacks one.
func (s *Store) Replace(effectType string, cfg *spell.ConditionalEffectConfig) {
	next := cfg.Clone()
	if next == nil {
		next = &spell.ConditionalEffectConfig{}
	}
	if next.Overrides == nil {
		next.Overrides = make(map[string]spell.Settings)
	}
	if next.BaseSettings == nil {
		next.BaseSettings = spell.Settings{}
	}
	ensureDefault(next, spell.KindOf(effectType))
	s.configs[effectType] = next
}

// ToggleConditional flips whether the conditional layer is active. Overrides are kept
// when disabling so re-enabling restores them. Enabling an effect type that was never
// initialized creates its configuration from the kind defaults.
func (s *Store) ToggleConditional(effectType string, enabled bool) {
	if _, ok := s.configs[effectType]; !ok {
		if !enabled {
			return
		}
		s.Initialize(effectType, "", spell.Settings{})
		return
	}
	s.update(effectType, func(cfg *spell.ConditionalEffectConfig) {
		cfg.IsConditional = enabled
	})
}

// update applies fn to a copy of the effect type's configuration and stores the copy.
// Missing configurations are initialized from the kind defaults first.
func (s *Store) update(effectType string, fn func(cfg *spell.ConditionalEffectConfig)) {
	current, ok := s.configs[effectType]
	if !ok {
		s.Initialize(effectType, "", spell.Settings{})
		current = s.configs[effectType]
	}

	next := current.Clone()
	if next.Overrides == nil {
		next.Overrides = make(map[string]spell.Settings)
	}
	if next.BaseSettings == nil {
		next.BaseSettings = spell.Settings{}
	}
	fn(next)
	ensureDefault(next, spell.KindOf(effectType))
	s.configs[effectType] = next
}

// entryFor returns the trigger's override, creating it from the seeding table when absent
func entryFor(kind spell.EffectKind, cfg *spell.ConditionalEffectConfig, triggerID string) spell.Settings {
	if override, ok := cfg.Overrides[triggerID]; ok && override != nil {
		return override
	}
	override := spell.SeedOverride(kind, cfg.BaseSettings)
	cfg.Overrides[triggerID] = override
	return override
}

// ensureDefault re-establishes the "default" override if it has gone missing
func ensureDefault(cfg *spell.ConditionalEffectConfig, kind spell.EffectKind) {
	if _, ok := cfg.Overrides[spell.DefaultOverrideKey]; ok {
		return
	}
	cfg.Overrides[spell.DefaultOverrideKey] = spell.Settings{
		spell.FieldFormula: fallbackFormula(kind, cfg),
	}
}

func fallbackFormula(kind spell.EffectKind, cfg *spell.ConditionalEffectConfig) string {
	if cfg.BaseFormula != "" {
		return cfg.BaseFormula
	}
	return spell.DefaultFormula(kind)
}
