package spellwizard

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-spellwizard/internal/conditional"
	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	"github.com/KirkDiggler/rpg-spellwizard/internal/triggers"
)

// Dispatch applies one typed action to the latest stored snapshot of a spell
func (o *orchestrator) Dispatch(ctx context.Context, input *DispatchInput) (_ *DispatchOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "Dispatch",
		attribute.String("spell_id", input.SpellID),
		attribute.String("action", string(input.Action.Type)),
		attribute.String("effect_type", input.Action.EffectType))
	defer func() { endSpan(span, err) }()

	s, err := o.load(ctx, input.SpellID)
	if err != nil {
		return nil, err
	}
	ensureMaps(s)

	if err := applyAction(s, input.Action, o.catalog); err != nil {
		return nil, err
	}

	saved, err := o.save(ctx, s)
	if err != nil {
		return nil, err
	}

	slog.Debug("Dispatched spell action", "spell_id", s.ID, "action", input.Action.Type)

	return &DispatchOutput{Spell: saved, Advisories: Advisories(saved, o.catalog)}, nil
}

// applyAction is the spell reducer. It mutates s in place.
func applyAction(s *spell.Spell, action spell.Action, catalog *triggers.Catalog) error {
	switch action.Type {
	case spell.ActionUpdateTriggerConfig:
		set, err := normalizeSet(action.Triggers, catalog)
		if err != nil {
			return err
		}
		s.TriggerConfig.GlobalTriggers = set

	case spell.ActionUpdateEffectTrigger:
		if err := requireEffectType(action.EffectType); err != nil {
			return err
		}
		set, err := normalizeSet(action.Triggers, catalog)
		if err != nil {
			return err
		}
		s.TriggerConfig.EffectTriggers[action.EffectType] = set

	case spell.ActionUpdateConditionalEffect:
		if err := requireEffectType(action.EffectType); err != nil {
			return err
		}
		if action.Conditional == nil {
			return errors.InvalidArgument("conditional configuration is required")
		}
		store := conditional.FromConfigs(s.ConditionalEffects)
		store.Replace(action.EffectType, action.Conditional)
		s.ConditionalEffects = store.Configs()

	case spell.ActionUpdateTriggerRole:
		if action.Role == nil {
			return errors.InvalidArgument("trigger role is required")
		}
		switch action.Role.Mode {
		case spell.TriggerModeManual, spell.TriggerModeTriggered, spell.TriggerModeConditional:
		default:
			return errors.InvalidArgumentf("unknown trigger mode %q", action.Role.Mode)
		}
		s.TriggerConfig.Role = *action.Role

	default:
		return errors.InvalidArgumentf("unknown action type %q", action.Type)
	}
	return nil
}

// normalizeSet validates the logic type, defaults it to AND and fills missing
// categories from the catalog. Unknown trigger IDs are kept and surface as advisories.
func normalizeSet(set *spell.CompoundTriggerSet, catalog *triggers.Catalog) (spell.CompoundTriggerSet, error) {
	if set == nil {
		return spell.CompoundTriggerSet{}, errors.InvalidArgument("trigger set is required")
	}
	if set.LogicType != "" && !set.LogicType.Valid() {
		return spell.CompoundTriggerSet{}, errors.InvalidArgumentf("unknown logic type %q", set.LogicType)
	}

	out := set.Clone()
	out.LogicType = set.Logic()
	for i, t := range out.Triggers {
		if t.TriggerID == "" {
			return spell.CompoundTriggerSet{}, errors.InvalidArgumentf("trigger %d has no ID", i)
		}
		if t.Category == "" {
			if d, ok := catalog.Get(t.TriggerID); ok {
				out.Triggers[i].Category = d.Category
			}
		}
		if out.Triggers[i].Parameters == nil {
			out.Triggers[i].Parameters = map[string]any{}
		}
	}
	return out, nil
}
