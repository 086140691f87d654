package spell

// FallbackFormula is used when neither the effect nor the kind defaults name a formula
const FallbackFormula = "1d6 + INT"

// kindDefaults is the single source of default values for every effect kind.
// Seeding, resolution and display all read from here.
var kindDefaults = map[EffectKind]Settings{
	KindDamage: {
		FieldFormula:     FallbackFormula,
		FieldDamageType:  "direct",
		FieldElementType: "fire",
	},
	KindDamageOverTime: {
		FieldFormula:         FallbackFormula,
		FieldDamageType:      "dot",
		FieldElementType:     "fire",
		FieldDotDuration:     float64(3),
		FieldDotDurationUnit: "rounds",
	},
	KindHealing: {
		FieldFormula:     "1d8 + SPI",
		FieldHealingType: "direct",
	},
	KindBuff: {
		FieldFormula:       "+2",
		FieldStatModifiers: []any{},
		FieldDuration:      float64(3),
		FieldDurationUnit:  "rounds",
	},
	KindDebuff: {
		FieldFormula:       "-2",
		FieldStatPenalties: []any{},
		FieldDuration:      float64(3),
		FieldDurationUnit:  "rounds",
	},
	KindControl: {
		FieldFormula:         "",
		FieldControlType:     "stun",
		FieldDuration:        float64(1),
		FieldSavingThrow:     "constitution",
		FieldDifficultyClass: float64(15),
	},
	KindRestoration: {
		FieldFormula:                   "1d6 + SPI",
		FieldResourceType:              "mana",
		FieldResolution:                "flat",
		FieldIsOverTime:                false,
		FieldOverTimeFormula:           "1d4 + SPI",
		FieldOverTimeDuration:          float64(3),
		FieldTickFrequency:             float64(1),
		FieldIsProgressiveOverTime:     false,
		FieldOverTimeProgressiveStages: []any{},
	},
	KindSummon:  {FieldFormula: ""},
	KindUtility: {FieldFormula: ""},
}

// seedFields lists, per kind, the fields copied into a trigger override the first time it is created
var seedFields = map[EffectKind][]string{
	KindDamage:         {FieldDamageType, FieldElementType},
	KindDamageOverTime: {FieldDamageType, FieldElementType, FieldDotDuration, FieldDotDurationUnit},
	KindHealing:        {FieldHealingType},
	KindBuff:           {FieldStatModifiers, FieldDuration, FieldDurationUnit},
	KindDebuff:         {FieldStatPenalties, FieldDuration, FieldDurationUnit},
	KindControl:        {FieldControlType, FieldDuration, FieldSavingThrow, FieldDifficultyClass},
	KindRestoration: {
		FieldResourceType, FieldResolution, FieldIsOverTime, FieldOverTimeFormula,
		FieldOverTimeDuration, FieldTickFrequency, FieldIsProgressiveOverTime, FieldOverTimeProgressiveStages,
	},
	KindSummon:  {},
	KindUtility: {},
}

// DefaultsFor returns a copy of the default settings for a kind
func DefaultsFor(kind EffectKind) Settings {
	if d, ok := kindDefaults[kind]; ok {
		return d.Clone()
	}
	return Settings{FieldFormula: ""}
}

// DefaultFormula returns the kind's default formula. Control, summon and utility
// effects default to an empty formula.
func DefaultFormula(kind EffectKind) string {
	d, ok := kindDefaults[kind]
	if !ok {
		return FallbackFormula
	}
	formula, _ := d[FieldFormula].(string)
	return formula
}

// SeedFields returns the fields seeded into a new trigger override for the kind
func SeedFields(kind EffectKind) []string {
	fields := seedFields[kind]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// SeedOverride builds the initial override for a trigger from the base settings,
// filling every seeded field the base lacks from the kind defaults.
func SeedOverride(kind EffectKind, base Settings) Settings {
	defaults := kindDefaults[kind]
	seeded := Settings{}
	for _, field := range seedFields[kind] {
		if base.Has(field) {
			seeded[field] = CloneValue(base[field])
			continue
		}
		seeded[field] = CloneValue(defaults[field])
	}
	return seeded
}
