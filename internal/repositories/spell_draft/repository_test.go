package spelldraft_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	spelldraft "github.com/KirkDiggler/rpg-spellwizard/internal/repositories/spell_draft"
	"github.com/KirkDiggler/rpg-spellwizard/internal/testutils"
)

// RepositoryTestSuite runs the same behavior checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() spelldraft.Repository
	repo    spelldraft.Repository
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = s.newRepo()
	s.ctx = context.Background()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{newRepo: func() spelldraft.Repository {
		client, _ := testutils.CreateTestRedisClient(t)
		return spelldraft.NewRedisRepository(client)
	}})
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{newRepo: func() spelldraft.Repository {
		db, err := spelldraft.OpenSQLite(":memory:")
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		t.Cleanup(func() { _ = db.Close() })
		return spelldraft.NewSQLiteRepository(db)
	}})
}

func (s *RepositoryTestSuite) createSpell(id, owner string, createdAt int64) *spell.Spell {
	sp := testutils.NewTestSpell(id, owner)
	sp.CreatedAt = createdAt
	sp.UpdatedAt = createdAt
	_, err := s.repo.Create(s.ctx, spelldraft.CreateInput{Spell: sp})
	s.Require().NoError(err)
	return sp
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	created := s.createSpell("spell_1", "player_1", 100)

	out, err := s.repo.Get(s.ctx, spelldraft.GetInput{ID: "spell_1"})
	s.Require().NoError(err)
	s.Equal(created, out.Spell)
}

func (s *RepositoryTestSuite) TestCreateValidation() {
	testCases := []struct {
		name  string
		spell *spell.Spell
	}{
		{name: "nil spell", spell: nil},
		{name: "missing id", spell: &spell.Spell{OwnerID: "player_1"}},
		{name: "missing owner", spell: &spell.Spell{ID: "spell_1"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, spelldraft.CreateInput{Spell: tc.spell})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RepositoryTestSuite) TestCreateDuplicate() {
	s.createSpell("spell_1", "player_1", 100)

	_, err := s.repo.Create(s.ctx, spelldraft.CreateInput{Spell: testutils.NewTestSpell("spell_1", "player_1")})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, spelldraft.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, spelldraft.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestUpdate() {
	sp := s.createSpell("spell_1", "player_1", 100)

	sp.Name = "Renamed"
	sp.Effects["damage"] = spell.Settings{spell.FieldFormula: "2d6 + INT"}
	sp.UpdatedAt = 200
	_, err := s.repo.Update(s.ctx, spelldraft.UpdateInput{Spell: sp})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, spelldraft.GetInput{ID: "spell_1"})
	s.Require().NoError(err)
	s.Equal("Renamed", out.Spell.Name)
	s.Equal("2d6 + INT", out.Spell.Effects["damage"].String(spell.FieldFormula, ""))
	s.Equal(int64(100), out.Spell.CreatedAt)
	s.Equal(int64(200), out.Spell.UpdatedAt)
}

func (s *RepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, spelldraft.UpdateInput{Spell: testutils.NewTestSpell("spell_9", "player_1")})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestUpdateMovesOwner() {
	sp := s.createSpell("spell_1", "player_1", 100)
	sp.OwnerID = "player_2"
	_, err := s.repo.Update(s.ctx, spelldraft.UpdateInput{Spell: sp})
	s.Require().NoError(err)

	first, err := s.repo.ListByOwner(s.ctx, spelldraft.ListByOwnerInput{OwnerID: "player_1"})
	s.Require().NoError(err)
	s.Empty(first.Spells)

	second, err := s.repo.ListByOwner(s.ctx, spelldraft.ListByOwnerInput{OwnerID: "player_2"})
	s.Require().NoError(err)
	s.Len(second.Spells, 1)
}

func (s *RepositoryTestSuite) TestDelete() {
	s.createSpell("spell_1", "player_1", 100)

	_, err := s.repo.Delete(s.ctx, spelldraft.DeleteInput{ID: "spell_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, spelldraft.GetInput{ID: "spell_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, spelldraft.DeleteInput{ID: "spell_1"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.ListByOwner(s.ctx, spelldraft.ListByOwnerInput{OwnerID: "player_1"})
	s.Require().NoError(err)
	s.Empty(list.Spells)
}

func (s *RepositoryTestSuite) TestListByOwner() {
	s.createSpell("spell_b", "player_1", 200)
	s.createSpell("spell_a", "player_1", 100)
	s.createSpell("spell_c", "player_1", 200)
	s.createSpell("spell_x", "player_2", 50)

	out, err := s.repo.ListByOwner(s.ctx, spelldraft.ListByOwnerInput{OwnerID: "player_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Spells, 3)
	s.Equal("spell_a", out.Spells[0].ID)
	s.Equal("spell_b", out.Spells[1].ID)
	s.Equal("spell_c", out.Spells[2].ID)

	empty, err := s.repo.ListByOwner(s.ctx, spelldraft.ListByOwnerInput{OwnerID: "nobody"})
	s.Require().NoError(err)
	s.NotNil(empty.Spells)
	s.Empty(empty.Spells)

	_, err = s.repo.ListByOwner(s.ctx, spelldraft.ListByOwnerInput{})
	s.True(errors.IsInvalidArgument(err))
}
