package spelldraft_test

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-spellwizard/internal/redis"
	spelldraft "github.com/KirkDiggler/rpg-spellwizard/internal/repositories/spell_draft"
	"github.com/KirkDiggler/rpg-spellwizard/internal/testutils"
)

func TestRedisKeyLayout(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(t)
	repo := spelldraft.NewRedisRepository(client)

	_, err := repo.Create(ctx, spelldraft.CreateInput{Spell: testutils.NewTestSpell("spell_1", "player_1")})
	require.NoError(t, err)

	assert.True(t, mr.Exists("spell:spell_1"))
	members, err := mr.Members("spell:owner:player_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"spell_1"}, members)
}

func TestRedisListDropsStaleIndexEntries(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(t)
	repo := spelldraft.NewRedisRepository(client)

	_, err := repo.Create(ctx, spelldraft.CreateInput{Spell: testutils.NewTestSpell("spell_1", "player_1")})
	require.NoError(t, err)
	_, err = mr.SAdd("spell:owner:player_1", "spell_gone")
	require.NoError(t, err)

	out, err := repo.ListByOwner(ctx, spelldraft.ListByOwnerInput{OwnerID: "player_1"})
	require.NoError(t, err)
	require.Len(t, out.Spells, 1)

	members, err := mr.Members("spell:owner:player_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"spell_1"}, members)
}

func TestRedisConcurrentCreateSameID(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(t)
	repo := spelldraft.NewRedisRepository(client)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(ctx, spelldraft.CreateInput{Spell: testutils.NewTestSpell("spell_1", "player_1")})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.IsAlreadyExists(err), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	members, err := mr.Members("spell:owner:player_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"spell_1"}, members)
}

// sremFailingClient fails every SRem and passes other commands through
type sremFailingClient struct {
	redisclient.Client
}

func (c sremFailingClient) SRem(ctx context.Context, _ string, _ ...interface{}) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	cmd.SetErr(stderrors.New("connection reset"))
	return cmd
}

func TestRedisListKeepsResultsWhenIndexCleanupFails(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(t)
	repo := spelldraft.NewRedisRepository(sremFailingClient{Client: client})

	_, err := repo.Create(ctx, spelldraft.CreateInput{Spell: testutils.NewTestSpell("spell_1", "player_1")})
	require.NoError(t, err)
	_, err = mr.SAdd("spell:owner:player_1", "spell_gone")
	require.NoError(t, err)

	out, err := repo.ListByOwner(ctx, spelldraft.ListByOwnerInput{OwnerID: "player_1"})
	require.NoError(t, err)
	require.Len(t, out.Spells, 1)
	assert.Equal(t, "spell_1", out.Spells[0].ID)

	members, err := mr.Members("spell:owner:player_1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"spell_1", "spell_gone"}, members)
}
