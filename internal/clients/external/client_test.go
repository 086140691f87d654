package external

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

type mockSpellSource struct {
	mock.Mock
}

func (m *mockSpellSource) GetSpell(key string) (*entities.Spell, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Spell), args.Error(1)
}

func TestGetSpell(t *testing.T) {
	source := new(mockSpellSource)
	source.On("GetSpell", "fire-bolt").Return(&entities.Spell{
		Key:           "fire-bolt",
		Name:          "Fire Bolt",
		SpellLevel:    0,
		CastingTime:   "1 action",
		Range:         "120 feet",
		Duration:      "Instantaneous",
		Concentration: false,
	}, nil)

	c := newWithSource(source)
	got, err := c.GetSpell(context.Background(), "Fire Bolt")
	require.NoError(t, err)

	assert.Equal(t, "fire-bolt", got.Key)
	assert.Equal(t, "Fire Bolt", got.Name)
	assert.Equal(t, "120 feet", got.Range)
	assert.False(t, got.HasDamage())
	assert.False(t, got.HasSave())
	source.AssertExpectations(t)
}

func TestGetSpellErrors(t *testing.T) {
	t.Run("empty key", func(t *testing.T) {
		_, err := newWithSource(new(mockSpellSource)).GetSpell(context.Background(), "  ")
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("upstream failure", func(t *testing.T) {
		source := new(mockSpellSource)
		source.On("GetSpell", "fireball").Return(nil, stderrors.New("connection refused"))

		_, err := newWithSource(source).GetSpell(context.Background(), "fireball")
		assert.True(t, errors.IsUnavailable(err))
	})

	t.Run("nil spell", func(t *testing.T) {
		source := new(mockSpellSource)
		source.On("GetSpell", "fireball").Return(nil, nil)

		_, err := newWithSource(source).GetSpell(context.Background(), "fireball")
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestToAPIKey(t *testing.T) {
	assert.Equal(t, "fire-bolt", toAPIKey("Fire Bolt"))
	assert.Equal(t, "acid-arrow", toAPIKey("acid_arrow"))
	assert.Equal(t, "fireball", toAPIKey(" fireball "))
}

func TestBaseDamage(t *testing.T) {
	slots := &entities.SpellDamageAtSlotLevel{
		FirstLevel: "1d10",
		ThirdLevel: "8d6",
	}
	assert.Equal(t, "1d10", baseDamage(0, slots))
	assert.Equal(t, "1d10", baseDamage(1, slots))
	assert.Equal(t, "8d6", baseDamage(3, slots))
	assert.Equal(t, "", baseDamage(10, slots))
}
