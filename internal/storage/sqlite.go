package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS summaries (
			hash TEXT PRIMARY KEY,
			module TEXT,
			model TEXT,
			description TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_module ON summaries(module);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the cached description for a content hash.
func (s *SQLiteStore) Get(ctx context.Context, hash string) (string, bool, error) {
	var description string
	err := s.db.QueryRowContext(ctx,
		"SELECT description FROM summaries WHERE hash = ?", hash,
	).Scan(&description)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query summary: %w", err)
	}
	return description, true, nil
}

// Put stores or replaces the description for a content hash.
func (s *SQLiteStore) Put(ctx context.Context, hash, module, model, description string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO summaries (hash, module, model, description)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(hash) DO UPDATE SET
			module=excluded.module,
			model=excluded.model,
			description=excluded.description
	`, hash, module, model, description)
	if err != nil {
		return fmt.Errorf("failed to store summary: %w", err)
	}
	return nil
}
