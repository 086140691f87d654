package spellwizard

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-spellwizard/internal/conditional"
	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

// EnableConditional creates (or refreshes) the conditional layer of a selected effect type
// from its base configuration and marks it active
func (o *orchestrator) EnableConditional(ctx context.Context, input *EnableConditionalInput) (_ *EnableConditionalOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "EnableConditional",
		attribute.String("spell_id", input.SpellID),
		attribute.String("effect_type", input.EffectType))
	defer func() { endSpan(span, err) }()

	if err := requireEffectType(input.EffectType); err != nil {
		return nil, err
	}

	var cfg *spell.ConditionalEffectConfig
	saved, err := o.mutateConditional(ctx, input.SpellID, input.EffectType, func(s *spell.Spell, store *conditional.Store) {
		base := s.Effects[input.EffectType]
		store.Initialize(input.EffectType, base.String(spell.FieldFormula, ""), base)
		store.ToggleConditional(input.EffectType, true)
		cfg, _ = store.Get(input.EffectType)
	})
	if err != nil {
		return nil, err
	}

	return &EnableConditionalOutput{Spell: saved, Config: cfg}, nil
}

// ToggleConditional flips the conditional layer. Overrides survive being disabled.
func (o *orchestrator) ToggleConditional(ctx context.Context, input *ToggleConditionalInput) (_ *ToggleConditionalOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "ToggleConditional",
		attribute.String("spell_id", input.SpellID),
		attribute.String("effect_type", input.EffectType),
		attribute.Bool("enabled", input.Enabled))
	defer func() { endSpan(span, err) }()

	if err := requireEffectType(input.EffectType); err != nil {
		return nil, err
	}

	var cfg *spell.ConditionalEffectConfig
	saved, err := o.mutateConditional(ctx, input.SpellID, input.EffectType, func(s *spell.Spell, store *conditional.Store) {
		if _, ok := store.Get(input.EffectType); !ok && input.Enabled {
			// seeded from the effect's base configuration
			base := s.Effects[input.EffectType]
			store.Initialize(input.EffectType, base.String(spell.FieldFormula, ""), base)
		}
		store.ToggleConditional(input.EffectType, input.Enabled)
		cfg, _ = store.Get(input.EffectType)
	})
	if err != nil {
		return nil, err
	}

	return &ToggleConditionalOutput{Spell: saved, Config: cfg}, nil
}

// SetOverrideField writes one field of a trigger's override
func (o *orchestrator) SetOverrideField(ctx context.Context, input *SetOverrideFieldInput) (_ *SetOverrideFieldOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "SetOverrideField",
		attribute.String("spell_id", input.SpellID),
		attribute.String("effect_type", input.EffectType),
		attribute.String("trigger_id", input.TriggerID),
		attribute.String("field", input.Field))
	defer func() { endSpan(span, err) }()

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("effectType", input.EffectType, vb)
	errors.ValidateRequired("field", input.Field, vb)
	validateOverrideKey(input.TriggerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var cfg *spell.ConditionalEffectConfig
	saved, err := o.mutateConditional(ctx, input.SpellID, input.EffectType, func(s *spell.Spell, store *conditional.Store) {
		o.ensureInitialized(s, store, input.EffectType)
		store.SetOverrideField(input.EffectType, input.TriggerID, input.Field, input.Value)
		cfg, _ = store.Get(input.EffectType)
	})
	if err != nil {
		return nil, err
	}

	return &SetOverrideFieldOutput{Spell: saved, Config: cfg}, nil
}

// SetOverrideFormula writes a trigger's override formula
func (o *orchestrator) SetOverrideFormula(ctx context.Context, input *SetOverrideFormulaInput) (_ *SetOverrideFormulaOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "SetOverrideFormula",
		attribute.String("spell_id", input.SpellID),
		attribute.String("effect_type", input.EffectType),
		attribute.String("trigger_id", input.TriggerID))
	defer func() { endSpan(span, err) }()

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("effectType", input.EffectType, vb)
	validateOverrideKey(input.TriggerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var cfg *spell.ConditionalEffectConfig
	saved, err := o.mutateConditional(ctx, input.SpellID, input.EffectType, func(s *spell.Spell, store *conditional.Store) {
		o.ensureInitialized(s, store, input.EffectType)
		store.SetFormula(input.EffectType, input.TriggerID, input.Formula)
		cfg, _ = store.Get(input.EffectType)
	})
	if err != nil {
		return nil, err
	}

	return &SetOverrideFormulaOutput{Spell: saved, Config: cfg}, nil
}

// ResolveEffect returns the configuration that applies when the trigger fires. Effect
// types without an active conditional layer resolve to their base over the kind defaults.
func (o *orchestrator) ResolveEffect(ctx context.Context, input *ResolveEffectInput) (_ *ResolveEffectOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "ResolveEffect",
		attribute.String("spell_id", input.SpellID),
		attribute.String("effect_type", input.EffectType),
		attribute.String("trigger_id", input.TriggerID))
	defer func() { endSpan(span, err) }()

	if err := requireEffectType(input.EffectType); err != nil {
		return nil, err
	}

	s, err := o.load(ctx, input.SpellID)
	if err != nil {
		return nil, err
	}

	cfg := s.ConditionalEffects[input.EffectType]
	if cfg == nil || !cfg.IsConditional {
		kind := spell.KindOf(input.EffectType)
		return &ResolveEffectOutput{
			Settings: spell.DefaultsFor(kind).Merge(s.Effects[input.EffectType]),
			Source:   ResolveSourceBase,
		}, nil
	}

	source := ResolveSourceDefault
	if _, ok := cfg.Overrides[input.TriggerID]; ok && input.TriggerID != spell.DefaultOverrideKey {
		source = ResolveSourceOverride
	}

	store := conditional.FromConfigs(s.ConditionalEffects)
	return &ResolveEffectOutput{
		Settings: store.Resolve(input.EffectType, input.TriggerID),
		Source:   source,
	}, nil
}

// mutateConditional loads the spell, runs fn over its conditional layer and saves the result
func (o *orchestrator) mutateConditional(
	ctx context.Context,
	spellID, effectType string,
	fn func(s *spell.Spell, store *conditional.Store),
) (*spell.Spell, error) {
	s, err := o.load(ctx, spellID)
	if err != nil {
		return nil, err
	}
	ensureMaps(s)

	if !s.HasEffectType(effectType) {
		return nil, errors.FailedPreconditionf("effect type %s is not selected on spell %s", effectType, spellID).
			WithMeta("spell_id", spellID).
			WithMeta("effect_type", effectType)
	}

	store := conditional.FromConfigs(s.ConditionalEffects)
	fn(s, store)
	s.ConditionalEffects = store.Configs()

	saved, err := o.save(ctx, s)
	if err != nil {
		return nil, err
	}

	slog.Debug("Updated conditional effect", "spell_id", spellID, "effect_type", effectType)
	return saved, nil
}

// ensureInitialized seeds the conditional layer from the effect's base before the
// first override write
func (o *orchestrator) ensureInitialized(s *spell.Spell, store *conditional.Store, effectType string) {
	if _, ok := store.Get(effectType); ok {
		return
	}
	base := s.Effects[effectType]
	store.Initialize(effectType, base.String(spell.FieldFormula, ""), base)
}

// validateOverrideKey requires a non-empty key. Keys outside the catalog are stored and
// surface as advisories.
func validateOverrideKey(triggerID string, vb *errors.ValidationBuilder) {
	if triggerID == "" {
		vb.RequiredField("triggerID")
	}
}
