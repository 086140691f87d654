package spelldraft

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-spellwizard/internal/redis"
)

const ownerKeyPrefix = "spell:owner:"

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed spell repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

// spellKey keys documents by entity type so the layout is spell:{id}
func spellKey(id string) string {
	return spell.EntityType + ":" + id
}

func ownerKey(ownerID string) string {
	return ownerKeyPrefix + ownerID
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSpell(input.Spell); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Spell)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal spell")
	}

	key := spellKey(input.Spell.GetID())
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create spell")
	}
	if !created {
		return nil, errors.AlreadyExistsf("spell with ID %s already exists", input.Spell.ID)
	}

	if err := r.client.SAdd(ctx, ownerKey(input.Spell.OwnerID), input.Spell.ID).Err(); err != nil {
		if delErr := r.client.Del(ctx, key).Err(); delErr != nil {
			slog.Warn("Failed to roll back spell document", "spell_id", input.Spell.ID, "error", delErr)
		}
		return nil, errors.Wrap(err, "failed to index spell")
	}

	return &CreateOutput{Spell: input.Spell.Clone()}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	result, err := r.client.Get(ctx, spellKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("spell with ID %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get spell")
	}

	var s spell.Spell
	if err := json.Unmarshal(result, &s); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal spell")
	}

	return &GetOutput{Spell: &s}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSpell(input.Spell); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Spell.ID})
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Spell)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal spell")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, spellKey(input.Spell.ID), data, 0)
	if existing.Spell.OwnerID != input.Spell.OwnerID {
		pipe.SRem(ctx, ownerKey(existing.Spell.OwnerID), input.Spell.ID)
		pipe.SAdd(ctx, ownerKey(input.Spell.OwnerID), input.Spell.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to update spell")
	}

	return &UpdateOutput{Spell: input.Spell.Clone()}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, spellKey(input.ID))
	pipe.SRem(ctx, ownerKey(existing.Spell.OwnerID), input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete spell")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, ownerKey(input.OwnerID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner spells")
	}
	if len(ids) == 0 {
		return &ListByOwnerOutput{Spells: []*spell.Spell{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = spellKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load owner spells")
	}

	spells := make([]*spell.Spell, 0, len(values))
	var stale []any
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var s spell.Spell
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal spell %s", ids[i])
		}
		spells = append(spells, &s)
	}

	// index entries can outlive their documents; drop them
	if len(stale) > 0 {
		if err := r.client.SRem(ctx, ownerKey(input.OwnerID), stale...).Err(); err != nil {
			slog.Warn("Failed to drop stale spell index entries",
				"owner_id", input.OwnerID, "count", len(stale), "error", err)
		}
	}

	sortSpells(spells)
	return &ListByOwnerOutput{Spells: spells}, nil
}

func sortSpells(spells []*spell.Spell) {
	sort.Slice(spells, func(i, j int) bool {
		if spells[i].CreatedAt != spells[j].CreatedAt {
			return spells[i].CreatedAt < spells[j].CreatedAt
		}
		return spells[i].ID < spells[j].ID
	})
}
