package spellwizard

import (
	"github.com/KirkDiggler/rpg-spellwizard/internal/clients/external"
	"github.com/KirkDiggler/rpg-spellwizard/internal/dice"
	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
)

// CreateSpellInput contains the initial fields for a new spell
type CreateSpellInput struct {
	OwnerID     string
	Name        string
	Description string
	// EffectTypes are selected with their kind defaults as base configuration
	EffectTypes []string
}

// CreateSpellOutput contains the created spell
type CreateSpellOutput struct {
	Spell      *spell.Spell
	Advisories []string
}

// GetSpellInput identifies a spell
type GetSpellInput struct {
	SpellID string
}

// GetSpellOutput contains the spell and its current advisories
type GetSpellOutput struct {
	Spell      *spell.Spell
	Advisories []string
}

// ListSpellsInput selects an owner's spells
type ListSpellsInput struct {
	OwnerID string
}

// ListSpellsOutput contains the owner's spells, oldest first
type ListSpellsOutput struct {
	Spells []*spell.Spell
}

// DeleteSpellInput identifies the spell to delete
type DeleteSpellInput struct {
	SpellID string
}

// DeleteSpellOutput is empty
type DeleteSpellOutput struct{}

// UpdateEffectConfigInput replaces or removes one effect type's base configuration
type UpdateEffectConfigInput struct {
	SpellID    string
	EffectType string
	Settings   spell.Settings
	// Remove deselects the effect type instead of updating it
	Remove bool
}

// UpdateEffectConfigOutput contains the updated spell
type UpdateEffectConfigOutput struct {
	Spell      *spell.Spell
	Advisories []string
}

// EnableConditionalInput turns on the conditional layer for an effect type
type EnableConditionalInput struct {
	SpellID    string
	EffectType string
}

// EnableConditionalOutput contains the effect type's conditional configuration
type EnableConditionalOutput struct {
	Spell  *spell.Spell
	Config *spell.ConditionalEffectConfig
}

// ToggleConditionalInput flips the conditional layer of an effect type
type ToggleConditionalInput struct {
	SpellID    string
	EffectType string
	Enabled    bool
}

// ToggleConditionalOutput contains the effect type's conditional configuration
type ToggleConditionalOutput struct {
	Spell  *spell.Spell
	Config *spell.ConditionalEffectConfig
}

// SetOverrideFieldInput writes one field of a trigger's override
type SetOverrideFieldInput struct {
	SpellID    string
	EffectType string
	// TriggerID is a catalog trigger ID or "default"
	TriggerID string
	Field     string
	Value     any
}

// SetOverrideFieldOutput contains the effect type's conditional configuration
type SetOverrideFieldOutput struct {
	Spell  *spell.Spell
	Config *spell.ConditionalEffectConfig
}

// SetOverrideFormulaInput writes a trigger's override formula
type SetOverrideFormulaInput struct {
	SpellID    string
	EffectType string
	TriggerID  string
	Formula    string
}

// SetOverrideFormulaOutput contains the effect type's conditional configuration
type SetOverrideFormulaOutput struct {
	Spell  *spell.Spell
	Config *spell.ConditionalEffectConfig
}

// ResolveSource tells where a resolved configuration came from
type ResolveSource string

// Resolve sources
const (
	ResolveSourceOverride ResolveSource = "override"
	ResolveSourceDefault  ResolveSource = "default"
	ResolveSourceBase     ResolveSource = "base"
)

// ResolveEffectInput asks for the configuration applied when a trigger fires
type ResolveEffectInput struct {
	SpellID    string
	EffectType string
	TriggerID  string
}

// ResolveEffectOutput contains the effective configuration
type ResolveEffectOutput struct {
	Settings spell.Settings
	Source   ResolveSource
}

// DispatchInput applies one typed action to a spell
type DispatchInput struct {
	SpellID string
	Action  spell.Action
}

// DispatchOutput contains the updated spell
type DispatchOutput struct {
	Spell      *spell.Spell
	Advisories []string
}

// ListTriggersInput filters the catalog by category; empty lists everything
type ListTriggersInput struct {
	Category string
}

// ListTriggersOutput contains catalog entries and the known categories
type ListTriggersOutput struct {
	Triggers   []spell.TriggerDescriptor
	Categories []string
}

// DescribeTriggersInput selects a compound set to describe. Set wins when given,
// otherwise the spell's effect set (EffectType) or global set is used.
type DescribeTriggersInput struct {
	Set         *spell.CompoundTriggerSet
	SpellID     string
	EffectType  string
	Perspective string
}

// DescribeTriggersOutput contains the combined sentence and each clause
type DescribeTriggersOutput struct {
	Description string
	Clauses     []string
}

// ValidateSpellInput identifies the spell to check
type ValidateSpellInput struct {
	SpellID string
}

// ValidateSpellOutput contains advisory messages; empty means nothing to flag
type ValidateSpellOutput struct {
	Advisories []string
}

// ImportSRDSpellInput seeds a spell from an SRD reference spell
type ImportSRDSpellInput struct {
	SpellID string
	SRDKey  string
}

// ImportSRDSpellOutput contains the seeded spell and the SRD data used
type ImportSRDSpellOutput struct {
	Spell *spell.Spell
	SRD   *external.SRDSpell
}

// PreviewFormulaInput contains a formula to roll
type PreviewFormulaInput struct {
	Formula string
}

// PreviewFormulaOutput contains one roll of the formula's dice
type PreviewFormulaOutput struct {
	Preview *dice.Preview
}

// ExportSpellInput identifies the spell to export
type ExportSpellInput struct {
	SpellID string
}

// ExportSpellOutput contains the compressed archive
type ExportSpellOutput struct {
	Archive []byte
}

// ImportSpellInput creates a spell for OwnerID from an exported archive
type ImportSpellInput struct {
	OwnerID string
	Archive []byte
}

// ImportSpellOutput contains the imported spell under its new ID
type ImportSpellOutput struct {
	Spell      *spell.Spell
	Advisories []string
}
