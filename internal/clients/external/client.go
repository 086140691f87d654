// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-spellwizard/internal/clients/external Client

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

// Client fetches reference spells from the SRD
type Client interface {
	// GetSpell fetches a spell by SRD key (e.g. "fire-bolt")
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.Unavailable when the SRD cannot be reached
	GetSpell(ctx context.Context, key string) (*SRDSpell, error)
}

// spellSource is the slice of dnd5e.Interface this client uses
type spellSource interface {
	GetSpell(key string) (*entities.Spell, error)
}

type client struct {
	source spellSource
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &client{source: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)}, nil
}

func newWithSource(source spellSource) Client {
	return &client{source: source}
}

func (c *client) GetSpell(_ context.Context, key string) (*SRDSpell, error) {
	apiKey := toAPIKey(key)
	if apiKey == "" {
		return nil, errors.InvalidArgument("srd spell key is required")
	}

	slog.Debug("Fetching SRD spell", "key", apiKey)
	spell, err := c.source.GetSpell(apiKey)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to fetch srd spell "+apiKey)
	}
	if spell == nil {
		return nil, errors.NotFoundf("srd spell %s not found", apiKey)
	}

	return convertSpell(spell), nil
}

// toAPIKey accepts "Fire Bolt", "fire_bolt" or "fire-bolt"
func toAPIKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	return strings.Trim(key, "-")
}

func convertSpell(spell *entities.Spell) *SRDSpell {
	out := &SRDSpell{
		Key:           spell.Key,
		Name:          spell.Name,
		Level:         spell.SpellLevel,
		CastingTime:   spell.CastingTime,
		Range:         spell.Range,
		Duration:      spell.Duration,
		Concentration: spell.Concentration,
		Ritual:        spell.Ritual,
	}
	if spell.SpellSchool != nil {
		out.School = spell.SpellSchool.Name
	}
	if spell.SpellDamage != nil {
		if spell.SpellDamage.SpellDamageType != nil {
			out.DamageType = strings.ToLower(spell.SpellDamage.SpellDamageType.Name)
		}
		if spell.SpellDamage.SpellDamageAtSlotLevel != nil {
			out.DamageDice = baseDamage(spell.SpellLevel, spell.SpellDamage.SpellDamageAtSlotLevel)
		}
	}
	if spell.DC != nil {
		if spell.DC.DCType != nil {
			out.SaveAbility = strings.ToLower(spell.DC.DCType.Name)
		}
		out.SaveSuccess = spell.DC.DCSuccess
	}
	return out
}

// baseDamage returns the damage dice at the spell's lowest castable slot
func baseDamage(level int, slots *entities.SpellDamageAtSlotLevel) string {
	byLevel := []string{
		slots.FirstLevel, slots.FirstLevel, slots.SecondLevel, slots.ThirdLevel, slots.FourthLevel,
		slots.FifthLevel, slots.SixthLevel, slots.SeventhLevel, slots.EighthLevel, slots.NinthLevel,
	}
	if level < 0 || level >= len(byLevel) {
		return ""
	}
	return byLevel[level]
}
