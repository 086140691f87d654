package spellwizard

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	"github.com/KirkDiggler/rpg-spellwizard/internal/triggers"
)

// ListTriggers returns catalog entries, optionally filtered by category
func (o *orchestrator) ListTriggers(ctx context.Context, input *ListTriggersInput) (_ *ListTriggersOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	_, span := startSpan(ctx, "ListTriggers", attribute.String("category", input.Category))
	defer func() { endSpan(span, err) }()

	categories := o.catalog.Categories()
	if input.Category != "" {
		errs := errors.NewValidationBuilder()
		errors.ValidateEnum("category", input.Category, categories, errs)
		if err := errs.Build(); err != nil {
			return nil, err
		}
	}

	return &ListTriggersOutput{
		Triggers:   o.catalog.ByCategory(input.Category),
		Categories: categories,
	}, nil
}

// DescribeTriggers renders a compound trigger set in English
func (o *orchestrator) DescribeTriggers(ctx context.Context, input *DescribeTriggersInput) (_ *DescribeTriggersOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "DescribeTriggers",
		attribute.String("spell_id", input.SpellID),
		attribute.String("effect_type", input.EffectType),
		attribute.String("perspective", input.Perspective))
	defer func() { endSpan(span, err) }()

	var set spell.CompoundTriggerSet
	switch {
	case input.Set != nil:
		set = *input.Set
	case input.SpellID != "":
		s, err := o.load(ctx, input.SpellID)
		if err != nil {
			return nil, err
		}
		set = s.TriggerConfig.GlobalTriggers
		if input.EffectType != "" {
			set = s.TriggerConfig.EffectTriggers[input.EffectType]
		}
	default:
		return nil, errors.InvalidArgument("either a trigger set or a spell ID is required")
	}

	perspective := triggers.ParsePerspective(input.Perspective)
	clauses := make([]string, len(set.Triggers))
	for i, t := range set.Triggers {
		clauses[i] = o.catalog.Describe(t, perspective)
	}

	return &DescribeTriggersOutput{
		Description: o.catalog.DescribeSet(set, perspective),
		Clauses:     clauses,
	}, nil
}
