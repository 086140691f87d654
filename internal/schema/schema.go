// Package schema validates spell documents arriving from outside the service
package schema

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

const spellSchemaURL = "https://spellwizard.local/schemas/spell.schema.json"

//go:embed spell.schema.json
var spellSchemaJSON string

var (
	spellSchemaOnce sync.Once
	spellSchema     *jsonschema.Schema
)

// SpellSchema returns the compiled spell document schema
func SpellSchema() *jsonschema.Schema {
	spellSchemaOnce.Do(func() {
		spellSchema = jsonschema.MustCompileString(spellSchemaURL, spellSchemaJSON)
	})
	return spellSchema
}

// ValidateSpellJSON checks a raw spell document against the schema.
// Failures are InvalidArgument with the schema violation as the message.
func ValidateSpellJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "spell document is not valid JSON")
	}

	if err := SpellSchema().Validate(doc); err != nil {
		return errors.InvalidArgumentf("spell document failed validation: %v", err)
	}
	return nil
}
