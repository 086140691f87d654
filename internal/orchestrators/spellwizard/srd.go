package spellwizard

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-spellwizard/internal/dice"
	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

const (
	effectTypeDamage  = "damage"
	effectTypeControl = "control"
)

// srdAbilities maps SRD saving throw abbreviations to ability names
var srdAbilities = map[string]string{
	"str": "strength",
	"dex": "dexterity",
	"con": "constitution",
	"int": "intelligence",
	"wis": "wisdom",
	"cha": "charisma",
}

// ImportSRDSpell seeds a spell's damage and control base configuration from an SRD spell
func (o *orchestrator) ImportSRDSpell(ctx context.Context, input *ImportSRDSpellInput) (_ *ImportSRDSpellOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "ImportSRDSpell",
		attribute.String("spell_id", input.SpellID),
		attribute.String("srd_key", input.SRDKey))
	defer func() { endSpan(span, err) }()

	if input.SRDKey == "" {
		return nil, errors.InvalidArgument("srd key is required")
	}

	s, err := o.load(ctx, input.SpellID)
	if err != nil {
		return nil, err
	}
	ensureMaps(s)

	srd, err := o.externalClient.GetSpell(ctx, input.SRDKey)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch srd spell %s", input.SRDKey)
	}
	if !srd.HasDamage() && !srd.HasSave() {
		return nil, errors.FailedPreconditionf("srd spell %s has no damage or saving throw to import", input.SRDKey)
	}

	if srd.HasDamage() {
		seed := spell.Settings{
			spell.FieldFormula:    srd.DamageDice,
			spell.FieldDamageType: "direct",
		}
		if srd.DamageType != "" {
			seed[spell.FieldElementType] = srd.DamageType
		}
		seedEffect(s, effectTypeDamage, seed)
	}

	if srd.HasSave() {
		ability, ok := srdAbilities[srd.SaveAbility]
		if !ok {
			ability = srd.SaveAbility
		}
		seedEffect(s, effectTypeControl, spell.Settings{spell.FieldSavingThrow: ability})
	}

	if s.Description == "" {
		s.Description = srd.Name
	}

	saved, err := o.save(ctx, s)
	if err != nil {
		return nil, err
	}

	slog.Info("Imported SRD spell", "spell_id", s.ID, "srd_key", srd.Key, "damage", srd.DamageDice, "save", srd.SaveAbility)

	return &ImportSRDSpellOutput{Spell: saved, SRD: srd}, nil
}

// seedEffect layers seed over the effect's current base (or kind defaults) and selects it
func seedEffect(s *spell.Spell, effectType string, seed spell.Settings) {
	base := spell.DefaultsFor(spell.KindOf(effectType)).Merge(s.Effects[effectType]).Merge(seed)
	s.Effects[effectType] = base
	if !s.HasEffectType(effectType) {
		s.EffectTypes = append(s.EffectTypes, effectType)
	}
	refreshConditionalBase(s, effectType)
}

// PreviewFormula rolls the dice part of a formula
func (o *orchestrator) PreviewFormula(ctx context.Context, input *PreviewFormulaInput) (_ *PreviewFormulaOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	_, span := startSpan(ctx, "PreviewFormula", attribute.String("formula", input.Formula))
	defer func() { endSpan(span, err) }()

	preview, err := dice.PreviewFormula(input.Formula)
	if err != nil {
		return nil, err
	}
	return &PreviewFormulaOutput{Preview: preview}, nil
}
