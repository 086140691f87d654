package spell

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType identifies spell documents to rpg-toolkit and in storage keys
const EntityType = "spell"

// Spell is the document edited by the spell wizard
type Spell struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// EffectTypes lists the selected effect type tags in the order they were added
	EffectTypes []string `json:"effectTypes"`

	// Effects holds the base configuration per effect type
	Effects map[string]Settings `json:"effects"`

	TriggerConfig TriggerConfig `json:"triggerConfig"`

	// ConditionalEffects holds the conditional layer per effect type
	ConditionalEffects map[string]*ConditionalEffectConfig `json:"conditionalEffects"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// GetID returns the spell ID
func (s *Spell) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *Spell) GetType() string {
	return EntityType
}

var _ core.Entity = (*Spell)(nil)

// HasEffectType reports whether the effect type is selected on the spell
func (s *Spell) HasEffectType(effectType string) bool {
	for _, et := range s.EffectTypes {
		if et == effectType {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the spell
func (s *Spell) Clone() *Spell {
	if s == nil {
		return nil
	}
	out := &Spell{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		Name:          s.Name,
		Description:   s.Description,
		TriggerConfig: s.TriggerConfig.Clone(),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.EffectTypes != nil {
		out.EffectTypes = make([]string, len(s.EffectTypes))
		copy(out.EffectTypes, s.EffectTypes)
	}
	if s.Effects != nil {
		out.Effects = make(map[string]Settings, len(s.Effects))
		for k, v := range s.Effects {
			out.Effects[k] = v.Clone()
		}
	}
	if s.ConditionalEffects != nil {
		out.ConditionalEffects = make(map[string]*ConditionalEffectConfig, len(s.ConditionalEffects))
		for k, v := range s.ConditionalEffects {
			out.ConditionalEffects[k] = v.Clone()
		}
	}
	return out
}
