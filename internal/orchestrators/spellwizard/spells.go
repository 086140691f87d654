package spellwizard

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-spellwizard/internal/conditional"
	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	spelldraft "github.com/KirkDiggler/rpg-spellwizard/internal/repositories/spell_draft"
)

const maxNameLength = 120

// CreateSpell creates a new spell with kind defaults for each selected effect type
func (o *orchestrator) CreateSpell(ctx context.Context, input *CreateSpellInput) (_ *CreateSpellOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "CreateSpell", attribute.String("owner_id", input.OwnerID))
	defer func() { endSpan(span, err) }()

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("name", input.Name, maxNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()
	s := &spell.Spell{
		ID:          o.idGen.Generate(),
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
		TriggerConfig: spell.TriggerConfig{
			GlobalTriggers: spell.CompoundTriggerSet{LogicType: spell.LogicAnd},
			Role:           spell.TriggerRole{Mode: spell.TriggerModeManual},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	ensureMaps(s)

	for _, effectType := range input.EffectTypes {
		if effectType == "" || s.HasEffectType(effectType) {
			continue
		}
		s.EffectTypes = append(s.EffectTypes, effectType)
		s.Effects[effectType] = spell.DefaultsFor(spell.KindOf(effectType))
	}

	out, err := o.spellRepo.Create(ctx, spelldraft.CreateInput{Spell: s})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create spell")
	}

	slog.Info("Created spell", "spell_id", s.ID, "owner_id", s.OwnerID, "effect_types", s.EffectTypes)

	return &CreateSpellOutput{
		Spell:      out.Spell,
		Advisories: Advisories(out.Spell, o.catalog),
	}, nil
}

// GetSpell retrieves a spell and its advisories
func (o *orchestrator) GetSpell(ctx context.Context, input *GetSpellInput) (_ *GetSpellOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "GetSpell", attribute.String("spell_id", input.SpellID))
	defer func() { endSpan(span, err) }()

	s, err := o.load(ctx, input.SpellID)
	if err != nil {
		return nil, err
	}

	return &GetSpellOutput{Spell: s, Advisories: Advisories(s, o.catalog)}, nil
}

// ListSpells lists an owner's spells
func (o *orchestrator) ListSpells(ctx context.Context, input *ListSpellsInput) (_ *ListSpellsOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "ListSpells", attribute.String("owner_id", input.OwnerID))
	defer func() { endSpan(span, err) }()

	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	out, err := o.spellRepo.ListByOwner(ctx, spelldraft.ListByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spells")
	}

	return &ListSpellsOutput{Spells: out.Spells}, nil
}

// DeleteSpell deletes a spell
func (o *orchestrator) DeleteSpell(ctx context.Context, input *DeleteSpellInput) (_ *DeleteSpellOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "DeleteSpell", attribute.String("spell_id", input.SpellID))
	defer func() { endSpan(span, err) }()

	if input.SpellID == "" {
		return nil, errors.InvalidArgument("spell ID is required")
	}

	if _, err := o.spellRepo.Delete(ctx, spelldraft.DeleteInput{ID: input.SpellID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete spell %s", input.SpellID)
	}

	slog.Info("Deleted spell", "spell_id", input.SpellID)
	return &DeleteSpellOutput{}, nil
}

// UpdateEffectConfig replaces an effect type's base configuration, selecting the effect
// type if needed. An existing conditional layer has its base refreshed; its overrides stay.
// Removing an effect type drops its base and triggers and leaves the conditional layer
// inactive so re-adding the effect type restores it.
func (o *orchestrator) UpdateEffectConfig(ctx context.Context, input *UpdateEffectConfigInput) (_ *UpdateEffectConfigOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "UpdateEffectConfig",
		attribute.String("spell_id", input.SpellID),
		attribute.String("effect_type", input.EffectType),
		attribute.Bool("remove", input.Remove))
	defer func() { endSpan(span, err) }()

	if err := requireEffectType(input.EffectType); err != nil {
		return nil, err
	}

	s, err := o.load(ctx, input.SpellID)
	if err != nil {
		return nil, err
	}
	ensureMaps(s)

	if input.Remove {
		removeEffectType(s, input.EffectType)
	} else {
		if !s.HasEffectType(input.EffectType) {
			s.EffectTypes = append(s.EffectTypes, input.EffectType)
		}
		base := input.Settings.Clone()
		if base == nil {
			base = spell.DefaultsFor(spell.KindOf(input.EffectType))
		}
		s.Effects[input.EffectType] = base
		refreshConditionalBase(s, input.EffectType)
	}

	saved, err := o.save(ctx, s)
	if err != nil {
		return nil, err
	}

	slog.Debug("Updated effect configuration", "spell_id", s.ID, "effect_type", input.EffectType, "remove", input.Remove)

	return &UpdateEffectConfigOutput{Spell: saved, Advisories: Advisories(saved, o.catalog)}, nil
}

// ValidateSpell returns the advisories for a stored spell
func (o *orchestrator) ValidateSpell(ctx context.Context, input *ValidateSpellInput) (_ *ValidateSpellOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "ValidateSpell", attribute.String("spell_id", input.SpellID))
	defer func() { endSpan(span, err) }()

	s, err := o.load(ctx, input.SpellID)
	if err != nil {
		return nil, err
	}

	return &ValidateSpellOutput{Advisories: Advisories(s, o.catalog)}, nil
}

func removeEffectType(s *spell.Spell, effectType string) {
	kept := s.EffectTypes[:0]
	for _, et := range s.EffectTypes {
		if et != effectType {
			kept = append(kept, et)
		}
	}
	s.EffectTypes = kept
	delete(s.Effects, effectType)
	delete(s.TriggerConfig.EffectTriggers, effectType)

	if _, ok := s.ConditionalEffects[effectType]; ok {
		store := conditional.FromConfigs(s.ConditionalEffects)
		store.ToggleConditional(effectType, false)
		s.ConditionalEffects = store.Configs()
	}
}

// refreshConditionalBase pushes the effect type's base configuration into an existing
// conditional layer. Effect types without one are left alone.
func refreshConditionalBase(s *spell.Spell, effectType string) {
	if _, ok := s.ConditionalEffects[effectType]; !ok {
		return
	}
	base := s.Effects[effectType]
	store := conditional.FromConfigs(s.ConditionalEffects)
	store.Initialize(effectType, base.String(spell.FieldFormula, ""), base)
	s.ConditionalEffects = store.Configs()
}
