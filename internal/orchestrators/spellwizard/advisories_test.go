package spellwizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/orchestrators/spellwizard"
	"github.com/KirkDiggler/rpg-spellwizard/internal/testutils"
	"github.com/KirkDiggler/rpg-spellwizard/internal/triggers"
)

func TestAdvisories(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(s *spell.Spell)
		want   []string
	}{
		{
			name:   "manual spell needs nothing",
			modify: func(s *spell.Spell) {},
			want:   []string{},
		},
		{
			name: "triggered spell without global triggers",
			modify: func(s *spell.Spell) {
				s.TriggerConfig.Role.Mode = spell.TriggerModeTriggered
			},
			want: []string{spellwizard.AdvisoryNoGlobalTrigger},
		},
		{
			name: "unknown global trigger",
			modify: func(s *spell.Spell) {
				s.TriggerConfig.GlobalTriggers.Triggers = []spell.TriggerInstance{{TriggerID: "moon_phase"}}
			},
			want: []string{`Unknown trigger "moon_phase" in global triggers`},
		},
		{
			name: "unconfigured effect",
			modify: func(s *spell.Spell) {
				s.EffectTypes = append(s.EffectTypes, "healing")
			},
			want: []string{"Please configure the healing effect"},
		},
		{
			name: "conditional effect without triggers",
			modify: func(s *spell.Spell) {
				s.ConditionalEffects["damage"] = &spell.ConditionalEffectConfig{
					IsConditional: true,
					Overrides:     map[string]spell.Settings{spell.DefaultOverrideKey: {spell.FieldFormula: "1d6"}},
				}
			},
			want: []string{"The damage effect is conditional but has no triggers attached"},
		},
		{
			name: "override for detached trigger",
			modify: func(s *spell.Spell) {
				s.TriggerConfig.EffectTriggers["damage"] = spell.CompoundTriggerSet{
					Triggers: []spell.TriggerInstance{{TriggerID: "critical_hit"}},
				}
				s.ConditionalEffects["damage"] = &spell.ConditionalEffectConfig{
					IsConditional: true,
					Overrides: map[string]spell.Settings{
						spell.DefaultOverrideKey: {spell.FieldFormula: "1d6"},
						"critical_hit":           {spell.FieldFormula: "3d6"},
						"turn_start":             {spell.FieldFormula: "2d6"},
					},
				}
			},
			want: []string{`The damage override for "turn_start" applies to a trigger that is no longer attached`},
		},
		{
			name: "disabled conditional layer is ignored",
			modify: func(s *spell.Spell) {
				s.ConditionalEffects["damage"] = &spell.ConditionalEffectConfig{
					Overrides: map[string]spell.Settings{"turn_start": {spell.FieldFormula: "2d6"}},
				}
			},
			want: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := testutils.NewTestSpell("spell_1", "player_1")
			tc.modify(s)
			assert.Equal(t, tc.want, spellwizard.Advisories(s, triggers.Default()))
		})
	}
}

func TestAdvisoriesNilSpell(t *testing.T) {
	assert.Equal(t, []string{}, spellwizard.Advisories(nil, triggers.Default()))
}
