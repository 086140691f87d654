package spellwizardv1alpha1

import (
	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
)

// CreateSpellRequest creates a spell with kind defaults for each effect type
type CreateSpellRequest struct {
	OwnerID     string   `json:"ownerId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	EffectTypes []string `json:"effectTypes,omitempty"`
}

// CreateSpellResponse returns the created spell
type CreateSpellResponse struct {
	Spell      *spell.Spell `json:"spell"`
	Advisories []string     `json:"advisories"`
}

// GetSpellRequest identifies a spell
type GetSpellRequest struct {
	SpellID string `json:"spellId"`
}

// GetSpellResponse returns a spell and its advisories
type GetSpellResponse struct {
	Spell      *spell.Spell `json:"spell"`
	Advisories []string     `json:"advisories"`
}

// ListSpellsRequest lists an owner's spells
type ListSpellsRequest struct {
	OwnerID string `json:"ownerId"`
}

// ListSpellsResponse returns the owner's spells, oldest first
type ListSpellsResponse struct {
	Spells []*spell.Spell `json:"spells"`
}

// DeleteSpellRequest identifies the spell to delete
type DeleteSpellRequest struct {
	SpellID string `json:"spellId"`
}

// DeleteSpellResponse is empty
type DeleteSpellResponse struct{}

// UpdateEffectConfigRequest replaces or removes an effect type's base configuration
type UpdateEffectConfigRequest struct {
	SpellID    string         `json:"spellId"`
	EffectType string         `json:"effectType"`
	Settings   spell.Settings `json:"settings,omitempty"`
	Remove     bool           `json:"remove,omitempty"`
}

// UpdateEffectConfigResponse returns the updated spell
type UpdateEffectConfigResponse struct {
	Spell      *spell.Spell `json:"spell"`
	Advisories []string     `json:"advisories"`
}

// ValidateSpellRequest identifies the spell to check
type ValidateSpellRequest struct {
	SpellID string `json:"spellId"`
}

// ValidateSpellResponse returns the spell's advisories
type ValidateSpellResponse struct {
	Advisories []string `json:"advisories"`
}

// EnableConditionalRequest turns on an effect type's conditional layer
type EnableConditionalRequest struct {
	SpellID    string `json:"spellId"`
	EffectType string `json:"effectType"`
}

// ConditionalResponse returns a spell and one effect type's conditional configuration
type ConditionalResponse struct {
	Spell  *spell.Spell                   `json:"spell"`
	Config *spell.ConditionalEffectConfig `json:"config"`
}

// ToggleConditionalRequest flips an effect type's conditional layer
type ToggleConditionalRequest struct {
	SpellID    string `json:"spellId"`
	EffectType string `json:"effectType"`
	Enabled    bool   `json:"enabled"`
}

// SetOverrideFieldRequest writes one field of a trigger's override
type SetOverrideFieldRequest struct {
	SpellID    string `json:"spellId"`
	EffectType string `json:"effectType"`
	TriggerID  string `json:"triggerId"`
	Field      string `json:"field"`
	Value      any    `json:"value"`
}

// SetOverrideFormulaRequest writes a trigger's override formula
type SetOverrideFormulaRequest struct {
	SpellID    string `json:"spellId"`
	EffectType string `json:"effectType"`
	TriggerID  string `json:"triggerId"`
	Formula    string `json:"formula"`
}

// ResolveEffectRequest asks for the configuration applied when a trigger fires
type ResolveEffectRequest struct {
	SpellID    string `json:"spellId"`
	EffectType string `json:"effectType"`
	TriggerID  string `json:"triggerId"`
}

// ResolveEffectResponse returns the effective configuration and where it came from
type ResolveEffectResponse struct {
	Settings spell.Settings `json:"settings"`
	Source   string         `json:"source"`
}

// DispatchRequest applies one typed action to a spell
type DispatchRequest struct {
	SpellID string       `json:"spellId"`
	Action  spell.Action `json:"action"`
}

// DispatchResponse returns the updated spell
type DispatchResponse struct {
	Spell      *spell.Spell `json:"spell"`
	Advisories []string     `json:"advisories"`
}

// ListTriggersRequest filters the trigger catalog by category
type ListTriggersRequest struct {
	Category string `json:"category,omitempty"`
}

// ListTriggersResponse returns catalog entries and categories
type ListTriggersResponse struct {
	Triggers   []spell.TriggerDescriptor `json:"triggers"`
	Categories []string                  `json:"categories"`
}

// DescribeTriggersRequest selects a trigger set to describe
type DescribeTriggersRequest struct {
	Set         *spell.CompoundTriggerSet `json:"set,omitempty"`
	SpellID     string                    `json:"spellId,omitempty"`
	EffectType  string                    `json:"effectType,omitempty"`
	Perspective string                    `json:"perspective,omitempty"`
}

// DescribeTriggersResponse returns the English description
type DescribeTriggersResponse struct {
	Description string   `json:"description"`
	Clauses     []string `json:"clauses"`
}

// ImportSRDSpellRequest seeds a spell from an SRD spell
type ImportSRDSpellRequest struct {
	SpellID string `json:"spellId"`
	SRDKey  string `json:"srdKey"`
}

// SRDSpell is the SRD reference data a spell was seeded from
type SRDSpell struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Level         int    `json:"level"`
	School        string `json:"school,omitempty"`
	CastingTime   string `json:"castingTime,omitempty"`
	Range         string `json:"range,omitempty"`
	Duration      string `json:"duration,omitempty"`
	Concentration bool   `json:"concentration"`
	Ritual        bool   `json:"ritual"`
	DamageDice    string `json:"damageDice,omitempty"`
	DamageType    string `json:"damageType,omitempty"`
	SaveAbility   string `json:"saveAbility,omitempty"`
	SaveSuccess   string `json:"saveSuccess,omitempty"`
}

// ImportSRDSpellResponse returns the seeded spell
type ImportSRDSpellResponse struct {
	Spell *spell.Spell `json:"spell"`
	SRD   *SRDSpell    `json:"srd"`
}

// PreviewFormulaRequest contains a formula to roll
type PreviewFormulaRequest struct {
	Formula string `json:"formula"`
}

// PreviewFormulaResponse is one roll of the formula's dice
type PreviewFormulaResponse struct {
	Notation    string `json:"notation"`
	Count       int    `json:"count"`
	Size        int    `json:"size"`
	Total       int    `json:"total"`
	Dice        []int  `json:"dice"`
	Description string `json:"description"`
	Remainder   string `json:"remainder,omitempty"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
}

// ExportSpellRequest identifies the spell to export
type ExportSpellRequest struct {
	SpellID string `json:"spellId"`
}

// ExportSpellResponse returns the compressed archive
type ExportSpellResponse struct {
	Archive []byte `json:"archive"`
}

// ImportSpellRequest creates a spell from an exported archive
type ImportSpellRequest struct {
	OwnerID string `json:"ownerId"`
	Archive []byte `json:"archive"`
}

// ImportSpellResponse returns the imported spell
type ImportSpellResponse struct {
	Spell      *spell.Spell `json:"spell"`
	Advisories []string     `json:"advisories"`
}
