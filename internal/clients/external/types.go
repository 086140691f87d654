package external

// SRDSpell is the subset of an SRD spell the wizard can seed from
type SRDSpell struct {
	Key           string
	Name          string
	Level         int
	School        string
	CastingTime   string
	Range         string
	Duration      string
	Concentration bool
	Ritual        bool

	// DamageDice is the damage at the spell's base slot level, e.g. "8d6"
	DamageDice string
	// DamageType is the lowercased SRD damage type, e.g. "fire"
	DamageType string

	// SaveAbility is the lowercased saving throw ability abbreviation, e.g. "dex"
	SaveAbility string
	SaveSuccess string
}

// HasDamage reports whether the SRD spell carries base damage dice
func (s *SRDSpell) HasDamage() bool {
	return s != nil && s.DamageDice != ""
}

// HasSave reports whether the SRD spell calls for a saving throw
func (s *SRDSpell) HasSave() bool {
	return s != nil && s.SaveAbility != ""
}
