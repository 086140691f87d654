package triggers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	"github.com/KirkDiggler/rpg-spellwizard/internal/triggers"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *triggers.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = triggers.Default()
}

func (s *CatalogTestSuite) TestEmbeddedCatalogLoads() {
	all := s.catalog.All()
	s.NotEmpty(all)

	for _, d := range all {
		s.NotEmpty(d.ID)
		s.NotEmpty(d.Name)
		s.NotEmpty(d.Category)
		s.NotEmpty(d.Phrase, "trigger %s has no phrase", d.ID)
		s.NotNil(d.ParameterNames)
	}

	s.Equal(
		[]string{"combat", "environment", "health", "movement", "spell", "status", "timing"},
		s.catalog.Categories(),
	)
}

func (s *CatalogTestSuite) TestGet() {
	d, ok := s.catalog.Get("health_threshold")
	s.Require().True(ok)
	s.Equal("Health Threshold", d.Name)
	s.Equal("health", d.Category)
	s.Equal([]string{"percentage", "comparison"}, d.ParameterNames)

	_, ok = s.catalog.Get("does_not_exist")
	s.False(ok)
}

func (s *CatalogTestSuite) TestGetReturnsCopy() {
	d, _ := s.catalog.Get("health_threshold")
	d.ParameterNames[0] = "tampered"

	again, _ := s.catalog.Get("health_threshold")
	s.Equal("percentage", again.ParameterNames[0])
}

func (s *CatalogTestSuite) TestByCategory() {
	timing := s.catalog.ByCategory("timing")
	s.NotEmpty(timing)
	for _, d := range timing {
		s.Equal("timing", d.Category)
	}

	s.Len(s.catalog.ByCategory(""), len(s.catalog.All()))
	s.Empty(s.catalog.ByCategory("nope"))
}

func (s *CatalogTestSuite) TestNewInstanceUsesParameterDefaults() {
	inst, ok := s.catalog.NewInstance("resource_threshold")
	s.Require().True(ok)

	s.Equal("resource_threshold", inst.TriggerID)
	s.Equal("health", inst.Category)
	s.Equal(map[string]any{
		"resource_type": "mana",
		"percentage":    float64(50),
		"comparison":    "below",
	}, inst.Parameters)

	_, ok = s.catalog.NewInstance("does_not_exist")
	s.False(ok)
}

func (s *CatalogTestSuite) TestDefaultParameterValueUnknownName() {
	s.Equal("", s.catalog.DefaultParameterValue("mystery"))
	s.Equal(float64(30), s.catalog.DefaultParameterValue("distance"))
}

func (s *CatalogTestSuite) TestDescribe() {
	testCases := []struct {
		name        string
		instance    spell.TriggerInstance
		perspective triggers.Perspective
		expected    string
	}{
		{
			name: "health threshold self",
			instance: spell.TriggerInstance{
				TriggerID:  "health_threshold",
				Parameters: map[string]any{"percentage": float64(50), "comparison": "below"},
			},
			perspective: triggers.PerspectiveSelf,
			expected:    "When my health falls below 50%",
		},
		{
			name: "health threshold target above",
			instance: spell.TriggerInstance{
				TriggerID:  "health_threshold",
				Parameters: map[string]any{"percentage": float64(75), "comparison": "above"},
			},
			perspective: triggers.PerspectiveTarget,
			expected:    "When the target's health rises above 75%",
		},
		{
			name: "verb agreement for ally",
			instance: spell.TriggerInstance{
				TriggerID:  "damage_taken",
				Parameters: map[string]any{"amount": float64(12), "damage_type": "fire"},
			},
			perspective: triggers.PerspectiveAlly,
			expected:    "When an ally takes at least 12 fire damage",
		},
		{
			name: "any damage type is omitted",
			instance: spell.TriggerInstance{
				TriggerID:  "damage_taken",
				Parameters: map[string]any{"amount": float64(10), "damage_type": "any"},
			},
			perspective: triggers.PerspectiveSelf,
			expected:    "When I take at least 10 damage",
		},
		{
			name:        "missing parameters use defaults",
			instance:    spell.TriggerInstance{TriggerID: "round_interval"},
			perspective: triggers.PerspectiveSelf,
			expected:    "Every 2 rounds",
		},
		{
			name:        "object pronoun",
			instance:    spell.TriggerInstance{TriggerID: "attack_missed"},
			perspective: triggers.PerspectiveSelf,
			expected:    "When an attack against me misses",
		},
		{
			name:        "unknown trigger",
			instance:    spell.TriggerInstance{TriggerID: "moon_phase"},
			perspective: triggers.PerspectiveSelf,
			expected:    triggers.FallbackPhrase,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, s.catalog.Describe(tc.instance, tc.perspective))
		})
	}
}

func (s *CatalogTestSuite) TestDescribeSet() {
	set := spell.CompoundTriggerSet{
		LogicType: spell.LogicOr,
		Triggers: []spell.TriggerInstance{
			{TriggerID: "critical_hit"},
			{TriggerID: "turn_start"},
		},
	}

	s.Equal(
		"When the target lands a critical hit or at the start of the target's turn",
		s.catalog.DescribeSet(set, triggers.PerspectiveTarget),
	)

	set.LogicType = spell.LogicAnd
	set.Triggers = []spell.TriggerInstance{
		{TriggerID: "turn_start"},
		{TriggerID: "critical_hit"},
	}
	s.Equal(
		"At the start of my turn and when I land a critical hit",
		s.catalog.DescribeSet(set, triggers.PerspectiveSelf),
	)

	s.Equal("", s.catalog.DescribeSet(spell.CompoundTriggerSet{}, triggers.PerspectiveSelf))
}

func TestParsePerspective(t *testing.T) {
	assert.Equal(t, triggers.PerspectiveTarget, triggers.ParsePerspective("Target"))
	assert.Equal(t, triggers.PerspectiveAlly, triggers.ParsePerspective(" ally "))
	assert.Equal(t, triggers.PerspectiveSelf, triggers.ParsePerspective("enemy"))
	assert.Equal(t, triggers.PerspectiveSelf, triggers.ParsePerspective(""))
}

func TestLoadRejectsBadCatalogs(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{name: "not yaml", yaml: "triggers: [::"},
		{name: "missing id", yaml: "triggers:\n  - name: x\n    category: combat\n"},
		{name: "missing category", yaml: "triggers:\n  - id: x\n"},
		{name: "duplicate id", yaml: "triggers:\n  - id: x\n    category: a\n  - id: x\n    category: b\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := triggers.Load([]byte(tc.yaml))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}
