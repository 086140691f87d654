// Package spell holds the spell document model authored through the spell wizard:
// effect kinds, settings trees, triggers and conditional effect configuration.
package spell

import "strings"

// EffectKind is the closed set of behaviours an effect type tag can resolve to.
type EffectKind int

// Effect kinds
const (
	KindUtility EffectKind = iota
	KindDamage
	KindDamageOverTime
	KindHealing
	KindBuff
	KindDebuff
	KindControl
	KindSummon
	KindRestoration
)

var kindNames = map[EffectKind]string{
	KindUtility:        "utility",
	KindDamage:         "damage",
	KindDamageOverTime: "damage_over_time",
	KindHealing:        "healing",
	KindBuff:           "buff",
	KindDebuff:         "debuff",
	KindControl:        "control",
	KindSummon:         "summon",
	KindRestoration:    "restoration",
}

// exactKinds are effect type tags that map directly onto a kind
var exactKinds = map[string]EffectKind{
	"damage":      KindDamage,
	"damage_dot":  KindDamageOverTime,
	"dot":         KindDamageOverTime,
	"healing":     KindHealing,
	"heal":        KindHealing,
	"buff":        KindBuff,
	"debuff":      KindDebuff,
	"control":     KindControl,
	"summon":      KindSummon,
	"summoning":   KindSummon,
	"restoration": KindRestoration,
	"utility":     KindUtility,
}

// String returns the canonical name of the kind
func (k EffectKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "utility"
}

// KindOf maps an effect type tag such as "damage_dot" or "buff_stat" to its kind.
// Unrecognized tags are utility effects.
func KindOf(effectType string) EffectKind {
	tag := strings.ToLower(strings.TrimSpace(effectType))
	if kind, ok := exactKinds[tag]; ok {
		return kind
	}

	switch {
	case strings.Contains(tag, "control"):
		return KindControl
	case strings.HasPrefix(tag, "damage"):
		if strings.Contains(tag, "dot") || strings.Contains(tag, "over_time") {
			return KindDamageOverTime
		}
		return KindDamage
	case strings.HasPrefix(tag, "heal"):
		return KindHealing
	case strings.HasPrefix(tag, "debuff"):
		return KindDebuff
	case strings.HasPrefix(tag, "buff"):
		return KindBuff
	case strings.HasPrefix(tag, "restor"):
		return KindRestoration
	case strings.HasPrefix(tag, "summon"):
		return KindSummon
	default:
		return KindUtility
	}
}

// StatListField returns the settings field holding the kind's stat modifier list.
// Only buffs and debuffs carry one.
func (k EffectKind) StatListField() (string, bool) {
	switch k {
	case KindBuff:
		return FieldStatModifiers, true
	case KindDebuff:
		return FieldStatPenalties, true
	default:
		return "", false
	}
}

// IsDamage reports whether the kind deals damage, including damage over time
func (k EffectKind) IsDamage() bool {
	return k == KindDamage || k == KindDamageOverTime
}
