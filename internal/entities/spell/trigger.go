package spell

// LogicType combines the triggers of a compound set
type LogicType string

// Logic types
const (
	LogicAnd LogicType = "AND"
	LogicOr  LogicType = "OR"
)

// Valid reports whether the logic type is AND or OR
func (l LogicType) Valid() bool {
	return l == LogicAnd || l == LogicOr
}

// TriggerDescriptor is a read-only catalog entry describing a trigger condition
type TriggerDescriptor struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	Category       string   `json:"category" yaml:"category"`
	ParameterNames []string `json:"parameterNames" yaml:"parameters"`
	// Phrase is the English clause template used when describing an instance
	Phrase string `json:"phrase,omitempty" yaml:"phrase"`
}

// TriggerInstance is a trigger picked from the catalog with user supplied parameters
type TriggerInstance struct {
	TriggerID  string         `json:"triggerId"`
	Category   string         `json:"category"`
	Parameters map[string]any `json:"parameters"`
}

// Clone returns a deep copy of the instance
func (t TriggerInstance) Clone() TriggerInstance {
	params := make(map[string]any, len(t.Parameters))
	for k, v := range t.Parameters {
		params[k] = CloneValue(v)
	}
	return TriggerInstance{
		TriggerID:  t.TriggerID,
		Category:   t.Category,
		Parameters: params,
	}
}

// CompoundTriggerSet combines trigger instances under a single logic type
type CompoundTriggerSet struct {
	LogicType LogicType         `json:"logicType"`
	Triggers  []TriggerInstance `json:"triggers"`
}

// Clone returns a deep copy of the set
func (c CompoundTriggerSet) Clone() CompoundTriggerSet {
	out := CompoundTriggerSet{LogicType: c.LogicType}
	if c.Triggers != nil {
		out.Triggers = make([]TriggerInstance, len(c.Triggers))
		for i, t := range c.Triggers {
			out.Triggers[i] = t.Clone()
		}
	}
	return out
}

// Logic returns the set's logic type, AND when unset
func (c CompoundTriggerSet) Logic() LogicType {
	if c.LogicType.Valid() {
		return c.LogicType
	}
	return LogicAnd
}

// Has reports whether a trigger with the ID is part of the set
func (c CompoundTriggerSet) Has(triggerID string) bool {
	for _, t := range c.Triggers {
		if t.TriggerID == triggerID {
			return true
		}
	}
	return false
}

// TriggerMode describes how a spell is activated
type TriggerMode string

// Trigger modes
const (
	TriggerModeManual      TriggerMode = "manual"
	TriggerModeTriggered   TriggerMode = "triggered"
	TriggerModeConditional TriggerMode = "conditional"
)

// TriggerRole is the activation role a spell plays
type TriggerRole struct {
	Mode TriggerMode `json:"mode"`
	// RequireAllEffects makes every effect wait for its own triggers as well as the global ones
	RequireAllEffects bool `json:"requireAllEffects"`
}

// TriggerConfig groups every trigger attached to a spell
type TriggerConfig struct {
	GlobalTriggers CompoundTriggerSet            `json:"globalTriggers"`
	EffectTriggers map[string]CompoundTriggerSet `json:"effectTriggers"`
	Role           TriggerRole                   `json:"role"`
}

// Clone returns a deep copy of the trigger configuration
func (c TriggerConfig) Clone() TriggerConfig {
	out := TriggerConfig{
		GlobalTriggers: c.GlobalTriggers.Clone(),
		Role:           c.Role,
	}
	if c.EffectTriggers != nil {
		out.EffectTriggers = make(map[string]CompoundTriggerSet, len(c.EffectTriggers))
		for k, v := range c.EffectTriggers {
			out.EffectTriggers[k] = v.Clone()
		}
	}
	return out
}
