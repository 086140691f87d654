// Package spellwizard implements the spell wizard orchestrator: spell document lifecycle,
// conditional overrides over persisted spells, trigger dispatch, SRD seeding and transfer.
//
// Every mutating call is a read-modify-write against the latest stored snapshot.
// Concurrent edits to the same spell are last-write-wins.
package spellwizard

//go:generate mockgen -destination=mock/mock_service.go -package=spellwizardmock github.com/KirkDiggler/rpg-spellwizard/internal/orchestrators/spellwizard Service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-spellwizard/internal/clients/external"
	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	"github.com/KirkDiggler/rpg-spellwizard/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-spellwizard/internal/pkg/idgen"
	spelldraft "github.com/KirkDiggler/rpg-spellwizard/internal/repositories/spell_draft"
	"github.com/KirkDiggler/rpg-spellwizard/internal/triggers"
)

// Service defines the spell wizard operations
type Service interface {
	// Spell lifecycle
	CreateSpell(ctx context.Context, input *CreateSpellInput) (*CreateSpellOutput, error)
	GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error)
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)
	DeleteSpell(ctx context.Context, input *DeleteSpellInput) (*DeleteSpellOutput, error)
	UpdateEffectConfig(ctx context.Context, input *UpdateEffectConfigInput) (*UpdateEffectConfigOutput, error)
	ValidateSpell(ctx context.Context, input *ValidateSpellInput) (*ValidateSpellOutput, error)

	// Conditional overrides
	EnableConditional(ctx context.Context, input *EnableConditionalInput) (*EnableConditionalOutput, error)
	ToggleConditional(ctx context.Context, input *ToggleConditionalInput) (*ToggleConditionalOutput, error)
	SetOverrideField(ctx context.Context, input *SetOverrideFieldInput) (*SetOverrideFieldOutput, error)
	SetOverrideFormula(ctx context.Context, input *SetOverrideFormulaInput) (*SetOverrideFormulaOutput, error)
	ResolveEffect(ctx context.Context, input *ResolveEffectInput) (*ResolveEffectOutput, error)

	// Triggers
	Dispatch(ctx context.Context, input *DispatchInput) (*DispatchOutput, error)
	ListTriggers(ctx context.Context, input *ListTriggersInput) (*ListTriggersOutput, error)
	DescribeTriggers(ctx context.Context, input *DescribeTriggersInput) (*DescribeTriggersOutput, error)

	// Reference data and transfer
	ImportSRDSpell(ctx context.Context, input *ImportSRDSpellInput) (*ImportSRDSpellOutput, error)
	PreviewFormula(ctx context.Context, input *PreviewFormulaInput) (*PreviewFormulaOutput, error)
	ExportSpell(ctx context.Context, input *ExportSpellInput) (*ExportSpellOutput, error)
	ImportSpell(ctx context.Context, input *ImportSpellInput) (*ImportSpellOutput, error)
}

// Config holds the dependencies for the spell wizard orchestrator
type Config struct {
	SpellRepo      spelldraft.Repository
	ExternalClient external.Client
	IDGenerator    idgen.Generator
	Clock          clock.Clock
	// Catalog defaults to the embedded trigger catalog
	Catalog *triggers.Catalog
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}
	if c.ExternalClient == nil {
		vb.RequiredField("ExternalClient")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	spellRepo      spelldraft.Repository
	externalClient external.Client
	idGen          idgen.Generator
	clock          clock.Clock
	catalog        *triggers.Catalog
}

// NewOrchestrator creates a new spell wizard orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = triggers.Default()
	}

	return &orchestrator{
		spellRepo:      cfg.SpellRepo,
		externalClient: cfg.ExternalClient,
		idGen:          cfg.IDGenerator,
		clock:          cfg.Clock,
		catalog:        catalog,
	}, nil
}

var tracer = otel.Tracer("github.com/KirkDiggler/rpg-spellwizard/internal/orchestrators/spellwizard")

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, "spellwizard."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, errors.GetMessage(err))
	}
	span.End()
}

// load fetches the latest snapshot of a spell
func (o *orchestrator) load(ctx context.Context, spellID string) (*spell.Spell, error) {
	if spellID == "" {
		return nil, errors.InvalidArgument("spell ID is required")
	}
	out, err := o.spellRepo.Get(ctx, spelldraft.GetInput{ID: spellID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell %s", spellID)
	}
	return out.Spell, nil
}

// save stamps and persists a modified spell
func (o *orchestrator) save(ctx context.Context, s *spell.Spell) (*spell.Spell, error) {
	s.UpdatedAt = o.clock.Now().Unix()
	out, err := o.spellRepo.Update(ctx, spelldraft.UpdateInput{Spell: s})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save spell %s", s.ID)
	}
	return out.Spell, nil
}

// requireEffectType rejects empty effect types
func requireEffectType(effectType string) error {
	if effectType == "" {
		return errors.InvalidArgument("effect type is required")
	}
	return nil
}

// ensureMaps initializes the nil collections of a loaded spell
func ensureMaps(s *spell.Spell) {
	if s.EffectTypes == nil {
		s.EffectTypes = []string{}
	}
	if s.Effects == nil {
		s.Effects = make(map[string]spell.Settings)
	}
	if s.ConditionalEffects == nil {
		s.ConditionalEffects = make(map[string]*spell.ConditionalEffectConfig)
	}
	if s.TriggerConfig.EffectTriggers == nil {
		s.TriggerConfig.EffectTriggers = make(map[string]spell.CompoundTriggerSet)
	}
}
