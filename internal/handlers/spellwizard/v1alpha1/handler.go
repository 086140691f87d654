// Package v1alpha1 handles the spell wizard gRPC service
package v1alpha1

import (
	"context"

	spellwizardv1alpha1 "github.com/KirkDiggler/rpg-spellwizard/internal/api/spellwizard/v1alpha1"
	"github.com/KirkDiggler/rpg-spellwizard/internal/clients/external"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	"github.com/KirkDiggler/rpg-spellwizard/internal/orchestrators/spellwizard"
)

// HandlerConfig holds dependencies for the spell wizard handler
type HandlerConfig struct {
	SpellWizardService spellwizard.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.SpellWizardService == nil {
		return errors.InvalidArgument("spell wizard service is required")
	}
	return nil
}

// Handler implements SpellWizardServiceServer
type Handler struct {
	spellwizardv1alpha1.UnimplementedSpellWizardServiceServer
	service spellwizard.Service
}

// NewHandler creates a new spell wizard handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.SpellWizardService}, nil
}

// CreateSpell creates a new spell
func (h *Handler) CreateSpell(
	ctx context.Context,
	req *spellwizardv1alpha1.CreateSpellRequest,
) (*spellwizardv1alpha1.CreateSpellResponse, error) {
	out, err := h.service.CreateSpell(ctx, &spellwizard.CreateSpellInput{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		EffectTypes: req.EffectTypes,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.CreateSpellResponse{Spell: out.Spell, Advisories: out.Advisories}, nil
}

// GetSpell retrieves a spell
func (h *Handler) GetSpell(
	ctx context.Context,
	req *spellwizardv1alpha1.GetSpellRequest,
) (*spellwizardv1alpha1.GetSpellResponse, error) {
	if req.SpellID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("spell_id is required"))
	}

	out, err := h.service.GetSpell(ctx, &spellwizard.GetSpellInput{SpellID: req.SpellID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.GetSpellResponse{Spell: out.Spell, Advisories: out.Advisories}, nil
}

// ListSpells lists an owner's spells
func (h *Handler) ListSpells(
	ctx context.Context,
	req *spellwizardv1alpha1.ListSpellsRequest,
) (*spellwizardv1alpha1.ListSpellsResponse, error) {
	if req.OwnerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	out, err := h.service.ListSpells(ctx, &spellwizard.ListSpellsInput{OwnerID: req.OwnerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.ListSpellsResponse{Spells: out.Spells}, nil
}

// DeleteSpell deletes a spell
func (h *Handler) DeleteSpell(
	ctx context.Context,
	req *spellwizardv1alpha1.DeleteSpellRequest,
) (*spellwizardv1alpha1.DeleteSpellResponse, error) {
	if req.SpellID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("spell_id is required"))
	}

	if _, err := h.service.DeleteSpell(ctx, &spellwizard.DeleteSpellInput{SpellID: req.SpellID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.DeleteSpellResponse{}, nil
}

// UpdateEffectConfig replaces or removes an effect type's base configuration
func (h *Handler) UpdateEffectConfig(
	ctx context.Context,
	req *spellwizardv1alpha1.UpdateEffectConfigRequest,
) (*spellwizardv1alpha1.UpdateEffectConfigResponse, error) {
	out, err := h.service.UpdateEffectConfig(ctx, &spellwizard.UpdateEffectConfigInput{
		SpellID:    req.SpellID,
		EffectType: req.EffectType,
		Settings:   req.Settings,
		Remove:     req.Remove,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.UpdateEffectConfigResponse{Spell: out.Spell, Advisories: out.Advisories}, nil
}

// ValidateSpell returns a spell's advisories
func (h *Handler) ValidateSpell(
	ctx context.Context,
	req *spellwizardv1alpha1.ValidateSpellRequest,
) (*spellwizardv1alpha1.ValidateSpellResponse, error) {
	out, err := h.service.ValidateSpell(ctx, &spellwizard.ValidateSpellInput{SpellID: req.SpellID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.ValidateSpellResponse{Advisories: out.Advisories}, nil
}

// EnableConditional turns on an effect type's conditional layer
func (h *Handler) EnableConditional(
	ctx context.Context,
	req *spellwizardv1alpha1.EnableConditionalRequest,
) (*spellwizardv1alpha1.ConditionalResponse, error) {
	out, err := h.service.EnableConditional(ctx, &spellwizard.EnableConditionalInput{
		SpellID:    req.SpellID,
		EffectType: req.EffectType,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.ConditionalResponse{Spell: out.Spell, Config: out.Config}, nil
}

// ToggleConditional flips an effect type's conditional layer
func (h *Handler) ToggleConditional(
	ctx context.Context,
	req *spellwizardv1alpha1.ToggleConditionalRequest,
) (*spellwizardv1alpha1.ConditionalResponse, error) {
	out, err := h.service.ToggleConditional(ctx, &spellwizard.ToggleConditionalInput{
		SpellID:    req.SpellID,
		EffectType: req.EffectType,
		Enabled:    req.Enabled,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.ConditionalResponse{Spell: out.Spell, Config: out.Config}, nil
}

// SetOverrideField writes one field of a trigger's override
func (h *Handler) SetOverrideField(
	ctx context.Context,
	req *spellwizardv1alpha1.SetOverrideFieldRequest,
) (*spellwizardv1alpha1.ConditionalResponse, error) {
	out, err := h.service.SetOverrideField(ctx, &spellwizard.SetOverrideFieldInput{
		SpellID:    req.SpellID,
		EffectType: req.EffectType,
		TriggerID:  req.TriggerID,
		Field:      req.Field,
		Value:      req.Value,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.ConditionalResponse{Spell: out.Spell, Config: out.Config}, nil
}

// SetOverrideFormula writes a trigger's override formula
func (h *Handler) SetOverrideFormula(
	ctx context.Context,
	req *spellwizardv1alpha1.SetOverrideFormulaRequest,
) (*spellwizardv1alpha1.ConditionalResponse, error) {
	out, err := h.service.SetOverrideFormula(ctx, &spellwizard.SetOverrideFormulaInput{
		SpellID:    req.SpellID,
		EffectType: req.EffectType,
		TriggerID:  req.TriggerID,
		Formula:    req.Formula,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.ConditionalResponse{Spell: out.Spell, Config: out.Config}, nil
}

// ResolveEffect returns the configuration applied when a trigger fires
func (h *Handler) ResolveEffect(
	ctx context.Context,
	req *spellwizardv1alpha1.ResolveEffectRequest,
) (*spellwizardv1alpha1.ResolveEffectResponse, error) {
	out, err := h.service.ResolveEffect(ctx, &spellwizard.ResolveEffectInput{
		SpellID:    req.SpellID,
		EffectType: req.EffectType,
		TriggerID:  req.TriggerID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.ResolveEffectResponse{Settings: out.Settings, Source: string(out.Source)}, nil
}

// Dispatch applies a typed action to a spell
func (h *Handler) Dispatch(
	ctx context.Context,
	req *spellwizardv1alpha1.DispatchRequest,
) (*spellwizardv1alpha1.DispatchResponse, error) {
	if req.Action.Type == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("action.type is required"))
	}

	out, err := h.service.Dispatch(ctx, &spellwizard.DispatchInput{
		SpellID: req.SpellID,
		Action:  req.Action,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.DispatchResponse{Spell: out.Spell, Advisories: out.Advisories}, nil
}

// ListTriggers lists the trigger catalog
func (h *Handler) ListTriggers(
	ctx context.Context,
	req *spellwizardv1alpha1.ListTriggersRequest,
) (*spellwizardv1alpha1.ListTriggersResponse, error) {
	out, err := h.service.ListTriggers(ctx, &spellwizard.ListTriggersInput{Category: req.Category})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.ListTriggersResponse{Triggers: out.Triggers, Categories: out.Categories}, nil
}

// DescribeTriggers renders a trigger set in English
func (h *Handler) DescribeTriggers(
	ctx context.Context,
	req *spellwizardv1alpha1.DescribeTriggersRequest,
) (*spellwizardv1alpha1.DescribeTriggersResponse, error) {
	out, err := h.service.DescribeTriggers(ctx, &spellwizard.DescribeTriggersInput{
		Set:         req.Set,
		SpellID:     req.SpellID,
		EffectType:  req.EffectType,
		Perspective: req.Perspective,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.DescribeTriggersResponse{Description: out.Description, Clauses: out.Clauses}, nil
}

// ImportSRDSpell seeds a spell from an SRD spell
func (h *Handler) ImportSRDSpell(
	ctx context.Context,
	req *spellwizardv1alpha1.ImportSRDSpellRequest,
) (*spellwizardv1alpha1.ImportSRDSpellResponse, error) {
	if req.SRDKey == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("srd_key is required"))
	}

	out, err := h.service.ImportSRDSpell(ctx, &spellwizard.ImportSRDSpellInput{
		SpellID: req.SpellID,
		SRDKey:  req.SRDKey,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.ImportSRDSpellResponse{Spell: out.Spell, SRD: convertSRDSpell(out.SRD)}, nil
}

// PreviewFormula rolls the dice part of a formula
func (h *Handler) PreviewFormula(
	ctx context.Context,
	req *spellwizardv1alpha1.PreviewFormulaRequest,
) (*spellwizardv1alpha1.PreviewFormulaResponse, error) {
	if req.Formula == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("formula is required"))
	}

	out, err := h.service.PreviewFormula(ctx, &spellwizard.PreviewFormulaInput{Formula: req.Formula})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	p := out.Preview
	return &spellwizardv1alpha1.PreviewFormulaResponse{
		Notation:    p.Notation,
		Count:       p.Count,
		Size:        p.Size,
		Total:       p.Total,
		Dice:        p.Dice,
		Description: p.Description,
		Remainder:   p.Remainder,
		Min:         p.Min,
		Max:         p.Max,
	}, nil
}

// ExportSpell packs a spell into a portable archive
func (h *Handler) ExportSpell(
	ctx context.Context,
	req *spellwizardv1alpha1.ExportSpellRequest,
) (*spellwizardv1alpha1.ExportSpellResponse, error) {
	out, err := h.service.ExportSpell(ctx, &spellwizard.ExportSpellInput{SpellID: req.SpellID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.ExportSpellResponse{Archive: out.Archive}, nil
}

// ImportSpell creates a spell from an archive
func (h *Handler) ImportSpell(
	ctx context.Context,
	req *spellwizardv1alpha1.ImportSpellRequest,
) (*spellwizardv1alpha1.ImportSpellResponse, error) {
	if len(req.Archive) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("archive is required"))
	}

	out, err := h.service.ImportSpell(ctx, &spellwizard.ImportSpellInput{
		OwnerID: req.OwnerID,
		Archive: req.Archive,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &spellwizardv1alpha1.ImportSpellResponse{Spell: out.Spell, Advisories: out.Advisories}, nil
}

func convertSRDSpell(s *external.SRDSpell) *spellwizardv1alpha1.SRDSpell {
	if s == nil {
		return nil
	}
	return &spellwizardv1alpha1.SRDSpell{
		Key:           s.Key,
		Name:          s.Name,
		Level:         s.Level,
		School:        s.School,
		CastingTime:   s.CastingTime,
		Range:         s.Range,
		Duration:      s.Duration,
		Concentration: s.Concentration,
		Ritual:        s.Ritual,
		DamageDice:    s.DamageDice,
		DamageType:    s.DamageType,
		SaveAbility:   s.SaveAbility,
		SaveSuccess:   s.SaveSuccess,
	}
}
