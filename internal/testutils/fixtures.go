package testutils

import (
	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
)

// TestSpellName is the default spell name for test fixtures
const TestSpellName = "Ember Lance"

// NewTestSpell creates a spell with a single damage effect. Values are JSON-native
// so a stored and reloaded copy compares equal.
func NewTestSpell(id, ownerID string) *spell.Spell {
	return &spell.Spell{
		ID:          id,
		OwnerID:     ownerID,
		Name:        TestSpellName,
		Description: "A lance of fire",
		EffectTypes: []string{"damage"},
		Effects: map[string]spell.Settings{
			"damage": {
				spell.FieldFormula:     "1d6 + INT",
				spell.FieldDamageType:  "direct",
				spell.FieldElementType: "fire",
			},
		},
		TriggerConfig: spell.TriggerConfig{
			GlobalTriggers: spell.CompoundTriggerSet{LogicType: spell.LogicAnd},
			EffectTriggers: map[string]spell.CompoundTriggerSet{},
			Role:           spell.TriggerRole{Mode: spell.TriggerModeManual},
		},
		ConditionalEffects: map[string]*spell.ConditionalEffectConfig{},
	}
}
