package spelldraft

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS spells (
  id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL,
  name TEXT NOT NULL,
  document TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS spells_owner_idx ON spells(owner_id, created_at);
`

// OpenSQLite opens the spell database at path and ensures the schema exists.
// ":memory:" gives a private in-memory database.
func OpenSQLite(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	// one connection keeps writes serialized and :memory: shared
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply sqlite schema")
	}
	return db, nil
}

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a spell repository on an opened database
func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSpell(input.Spell); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Spell)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal spell")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO spells (id, owner_id, name, document, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		input.Spell.ID, input.Spell.OwnerID, input.Spell.Name, string(data),
		input.Spell.CreatedAt, input.Spell.UpdatedAt,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, errors.AlreadyExistsf("spell with ID %s already exists", input.Spell.ID)
		}
		return nil, errors.Wrap(err, "failed to create spell")
	}

	return &CreateOutput{Spell: input.Spell.Clone()}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	var document string
	err := r.db.QueryRowContext(ctx, `SELECT document FROM spells WHERE id = ?`, input.ID).Scan(&document)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("spell with ID %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get spell")
	}

	var s spell.Spell
	if err := json.Unmarshal([]byte(document), &s); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal spell")
	}
	return &GetOutput{Spell: &s}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSpell(input.Spell); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Spell)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal spell")
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE spells SET owner_id = ?, name = ?, document = ?, updated_at = ? WHERE id = ?`,
		input.Spell.OwnerID, input.Spell.Name, string(data), input.Spell.UpdatedAt, input.Spell.ID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update spell")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, errors.NotFoundf("spell with ID %s not found", input.Spell.ID)
	}

	return &UpdateOutput{Spell: input.Spell.Clone()}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM spells WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete spell")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, errors.NotFoundf("spell with ID %s not found", input.ID)
	}
	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT document FROM spells WHERE owner_id = ? ORDER BY created_at, id`, input.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner spells")
	}
	defer func() { _ = rows.Close() }()

	spells := []*spell.Spell{}
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return nil, errors.Wrap(err, "failed to scan spell")
		}
		var s spell.Spell
		if err := json.Unmarshal([]byte(document), &s); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal spell")
		}
		spells = append(spells, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate spells")
	}

	return &ListByOwnerOutput{Spells: spells}, nil
}

func isConstraintViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if !stderrors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}
