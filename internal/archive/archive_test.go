package archive_test

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-spellwizard/internal/archive"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	"github.com/KirkDiggler/rpg-spellwizard/internal/testutils"
)

func compress(t *testing.T, raw string) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write([]byte(raw))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	return buf.Bytes()
}

func TestPackUnpack(t *testing.T) {
	original := testutils.NewTestSpell("spell_1", "player_1")

	blob, err := archive.Pack(original)
	require.NoError(t, err)

	got, err := archive.Unpack(blob)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestUnpackRejects(t *testing.T) {
	testCases := []struct {
		name string
		blob func(t *testing.T) []byte
	}{
		{name: "empty", blob: func(*testing.T) []byte { return nil }},
		{name: "not zstd", blob: func(*testing.T) []byte { return []byte("plain text") }},
		{name: "wrong format", blob: func(t *testing.T) []byte {
			return compress(t, `{"format":"other","version":1,"spell":{}}`)
		}},
		{name: "wrong version", blob: func(t *testing.T) []byte {
			return compress(t, `{"format":"spellwizard.spell","version":9,"spell":{}}`)
		}},
		{name: "invalid document", blob: func(t *testing.T) []byte {
			return compress(t, `{"format":"spellwizard.spell","version":1,"spell":{"name":""}}`)
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := archive.Unpack(tc.blob(t))
			assert.True(t, errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}
