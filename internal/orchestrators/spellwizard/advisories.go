package spellwizard

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/triggers"
)

// Advisory messages
const (
	AdvisoryNoGlobalTrigger = "Please add at least one global trigger condition"
)

// Advisories scans a spell for configuration the user probably wants to fix.
// It never fails and returns an empty slice when there is nothing to report.
func Advisories(s *spell.Spell, catalog *triggers.Catalog) []string {
	out := []string{}
	if s == nil {
		return out
	}

	tc := s.TriggerConfig
	if (tc.Role.Mode == spell.TriggerModeTriggered || tc.Role.Mode == spell.TriggerModeConditional) &&
		len(tc.GlobalTriggers.Triggers) == 0 {
		out = append(out, AdvisoryNoGlobalTrigger)
	}

	out = append(out, unknownTriggers("global triggers", tc.GlobalTriggers, catalog)...)

	for _, effectType := range s.EffectTypes {
		if len(s.Effects[effectType]) == 0 {
			out = append(out, fmt.Sprintf("Please configure the %s effect", effectType))
		}

		effectSet := tc.EffectTriggers[effectType]
		out = append(out, unknownTriggers(effectType+" triggers", effectSet, catalog)...)

		cfg := s.ConditionalEffects[effectType]
		if cfg == nil || !cfg.IsConditional {
			continue
		}
		if len(tc.GlobalTriggers.Triggers) == 0 && len(effectSet.Triggers) == 0 {
			out = append(out, fmt.Sprintf("The %s effect is conditional but has no triggers attached", effectType))
		}

		for _, triggerID := range sortedKeys(cfg.Overrides) {
			if triggerID == spell.DefaultOverrideKey {
				continue
			}
			if !tc.GlobalTriggers.Has(triggerID) && !effectSet.Has(triggerID) {
				out = append(out, fmt.Sprintf("The %s override for %q applies to a trigger that is no longer attached", effectType, triggerID))
			}
		}
	}

	return out
}

func unknownTriggers(where string, set spell.CompoundTriggerSet, catalog *triggers.Catalog) []string {
	var out []string
	for _, t := range set.Triggers {
		if _, ok := catalog.Get(t.TriggerID); !ok {
			out = append(out, fmt.Sprintf("Unknown trigger %q in %s", t.TriggerID, where))
		}
	}
	return out
}

func sortedKeys(m map[string]spell.Settings) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
