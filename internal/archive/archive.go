// Package archive packs spell documents into portable zstd-compressed blobs
package archive

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	"github.com/KirkDiggler/rpg-spellwizard/internal/schema"
)

const (
	// Format identifies spell archives
	Format = "spellwizard.spell"
	// Version is the archive layout version written by Pack
	Version = 1

	// MaxDecodedSize bounds the decompressed size of an archive
	MaxDecodedSize = 1 << 20
)

type envelope struct {
	Format  string          `json:"format"`
	Version int             `json:"version"`
	Spell   json.RawMessage `json:"spell"`
}

// Pack serializes a spell into a compressed archive
func Pack(s *spell.Spell) ([]byte, error) {
	if s == nil {
		return nil, errors.InvalidArgument("spell is required")
	}

	doc, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal spell")
	}
	raw, err := json.Marshal(envelope{Format: Format, Version: Version, Spell: doc})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal archive")
	}

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create zstd encoder")
	}
	if _, err := enc.Write(raw); err != nil {
		_ = enc.Close()
		return nil, errors.Wrap(err, "failed to compress archive")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to compress archive")
	}
	return buf.Bytes(), nil
}

// Unpack decompresses an archive, validates the embedded document and decodes it.
// Malformed archives are InvalidArgument.
func Unpack(blob []byte) (*spell.Spell, error) {
	if len(blob) == 0 {
		return nil, errors.InvalidArgument("archive is empty")
	}

	dec, err := zstd.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "archive is not zstd")
	}
	defer dec.Close()

	raw, err := io.ReadAll(io.LimitReader(dec, MaxDecodedSize+1))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decompress archive")
	}
	if len(raw) > MaxDecodedSize {
		return nil, errors.InvalidArgumentf("archive exceeds %d bytes", MaxDecodedSize)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "archive envelope is malformed")
	}
	if env.Format != Format {
		return nil, errors.InvalidArgumentf("unexpected archive format %q", env.Format)
	}
	if env.Version != Version {
		return nil, errors.InvalidArgumentf("unsupported archive version %d", env.Version)
	}

	if err := schema.ValidateSpellJSON(env.Spell); err != nil {
		return nil, err
	}

	var s spell.Spell
	if err := json.Unmarshal(env.Spell, &s); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode spell")
	}
	return &s, nil
}
