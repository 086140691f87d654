package spellwizard

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-spellwizard/internal/archive"
	"github.com/KirkDiggler/rpg-spellwizard/internal/conditional"
	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	spelldraft "github.com/KirkDiggler/rpg-spellwizard/internal/repositories/spell_draft"
)

// ExportSpell packs a spell into a portable archive
func (o *orchestrator) ExportSpell(ctx context.Context, input *ExportSpellInput) (_ *ExportSpellOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "ExportSpell", attribute.String("spell_id", input.SpellID))
	defer func() { endSpan(span, err) }()

	s, err := o.load(ctx, input.SpellID)
	if err != nil {
		return nil, err
	}

	blob, err := archive.Pack(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export spell")
	}

	span.SetAttributes(attribute.Int("archive_bytes", len(blob)))
	return &ExportSpellOutput{Archive: blob}, nil
}

// ImportSpell creates a new spell for the owner from an archive. The imported document
// gets a fresh ID and timestamps.
func (o *orchestrator) ImportSpell(ctx context.Context, input *ImportSpellInput) (_ *ImportSpellOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := startSpan(ctx, "ImportSpell",
		attribute.String("owner_id", input.OwnerID),
		attribute.Int("archive_bytes", len(input.Archive)))
	defer func() { endSpan(span, err) }()

	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	s, err := archive.Unpack(input.Archive)
	if err != nil {
		return nil, err
	}
	ensureMaps(s)
	normalizeConditionalEffects(s)

	sourceID := s.ID
	now := o.clock.Now().Unix()
	s.ID = o.idGen.Generate()
	s.OwnerID = input.OwnerID
	s.CreatedAt = now
	s.UpdatedAt = now

	out, err := o.spellRepo.Create(ctx, spelldraft.CreateInput{Spell: s})
	if err != nil {
		return nil, errors.Wrap(err, "failed to import spell")
	}

	slog.Info("Imported spell", "spell_id", s.ID, "source_id", sourceID, "owner_id", s.OwnerID)

	return &ImportSpellOutput{Spell: out.Spell, Advisories: Advisories(out.Spell, o.catalog)}, nil
}

// normalizeConditionalEffects runs archived conditional configs through the store so every
// aggregate carries its "default" override
func normalizeConditionalEffects(s *spell.Spell) {
	store := conditional.NewStore()
	for effectType, cfg := range s.ConditionalEffects {
		if cfg == nil {
			continue
		}
		store.Replace(effectType, cfg)
	}
	s.ConditionalEffects = store.Configs()
}
