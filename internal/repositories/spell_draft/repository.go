// Package spelldraft defines the interface for spell document persistence
package spelldraft

//go:generate mockgen -destination=mock/mock_repository.go -package=spelldraftmock github.com/KirkDiggler/rpg-spellwizard/internal/repositories/spell_draft Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

// Repository defines the interface for spell persistence.
// Every operation stores and returns the whole document; callers own concurrency.
type Repository interface {
	// Create stores a new spell
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a spell by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the spell doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing spell
	// Returns errors.NotFound if the spell doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a spell and its owner index entry
	// Returns errors.NotFound if the spell doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner returns an owner's spells ordered by creation time
	// Returns errors.InvalidArgument for empty owner IDs
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// CreateInput defines the input for creating a spell
type CreateInput struct {
	Spell *spell.Spell
}

// CreateOutput defines the output for creating a spell
type CreateOutput struct {
	Spell *spell.Spell
}

// GetInput defines the input for getting a spell
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a spell
type GetOutput struct {
	Spell *spell.Spell
}

// UpdateInput defines the input for updating a spell
type UpdateInput struct {
	Spell *spell.Spell
}

// UpdateOutput defines the output for updating a spell
type UpdateOutput struct {
	Spell *spell.Spell
}

// DeleteInput defines the input for deleting a spell
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a spell
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing an owner's spells
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing an owner's spells
type ListByOwnerOutput struct {
	Spells []*spell.Spell
}

const (
	errSpellNil     = "spell cannot be nil"
	errSpellIDEmpty = "spell ID cannot be empty"
	errOwnerIDEmpty = "owner ID cannot be empty"
)

func validateSpell(s *spell.Spell) error {
	if s == nil {
		return errors.InvalidArgument(errSpellNil)
	}
	if s.ID == "" {
		return errors.InvalidArgument(errSpellIDEmpty)
	}
	if s.OwnerID == "" {
		return errors.InvalidArgument(errOwnerIDEmpty)
	}
	return nil
}
