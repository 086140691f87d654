package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	"github.com/KirkDiggler/rpg-spellwizard/internal/schema"
	"github.com/KirkDiggler/rpg-spellwizard/internal/testutils"
)

func TestValidateSpellJSON(t *testing.T) {
	t.Run("stored spell is valid", func(t *testing.T) {
		data, err := json.Marshal(testutils.NewTestSpell("spell_1", "player_1"))
		require.NoError(t, err)
		assert.NoError(t, schema.ValidateSpellJSON(data))
	})

	testCases := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `{"name":`},
		{name: "missing name", doc: `{"effectTypes":[],"effects":{}}`},
		{name: "empty name", doc: `{"name":"","effectTypes":[],"effects":{}}`},
		{name: "duplicate effect types", doc: `{"name":"x","effectTypes":["damage","damage"],"effects":{}}`},
		{name: "bad logic type", doc: `{"name":"x","effectTypes":[],"effects":{},"triggerConfig":{"globalTriggers":{"logicType":"XOR"}}}`},
		{name: "trigger without id", doc: `{"name":"x","effectTypes":[],"effects":{},"triggerConfig":{"globalTriggers":{"triggers":[{"category":"combat"}]}}}`},
		{name: "numeric formula", doc: `{"name":"x","effectTypes":["damage"],"effects":{"damage":{"formula":3}}}`},
		{name: "bad role", doc: `{"name":"x","effectTypes":[],"effects":{},"triggerConfig":{"role":{"mode":"always"}}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := schema.ValidateSpellJSON([]byte(tc.doc))
			assert.True(t, errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}
