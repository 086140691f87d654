package spell

// ActionType names a dispatched spell update
type ActionType string

// Action types accepted by the spell reducer
const (
	ActionUpdateTriggerConfig     ActionType = "UPDATE_TRIGGER_CONFIG"
	ActionUpdateEffectTrigger     ActionType = "UPDATE_EFFECT_TRIGGER"
	ActionUpdateConditionalEffect ActionType = "UPDATE_CONDITIONAL_EFFECT"
	ActionUpdateTriggerRole       ActionType = "UPDATE_TRIGGER_ROLE"
)

// Action is a typed update dispatched against a spell document.
// Only the fields relevant to the action type are read.
type Action struct {
	Type       ActionType `json:"type"`
	EffectType string     `json:"effectType,omitempty"`

	// Triggers replaces a compound set for UPDATE_TRIGGER_CONFIG and UPDATE_EFFECT_TRIGGER
	Triggers *CompoundTriggerSet `json:"triggers,omitempty"`

	// Conditional replaces the conditional layer for UPDATE_CONDITIONAL_EFFECT
	Conditional *ConditionalEffectConfig `json:"conditional,omitempty"`

	// Role replaces the trigger role for UPDATE_TRIGGER_ROLE
	Role *TriggerRole `json:"role,omitempty"`
}
