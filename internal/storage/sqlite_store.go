package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jordanwest/daykeep/internal/constants"
	"github.com/jordanwest/daykeep/internal/store"
)

// SQLiteStore keeps the state blob in a single-row key-value table. SQLite
// buys atomic writes and cheap backups (VACUUM INTO) over the plain JSON
// file; the blob layout is identical.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	// Seed the default state only when no blob exists yet.
	var count int
	row := s.db.QueryRow(`SELECT COUNT(*) FROM kv WHERE key = ?`, constants.StorageKey)
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect storage: %w", err)
	}
	if count == 0 {
		if err := s.Save(store.NewState()); err != nil {
			return fmt.Errorf("failed to save default state: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Load reads the state blob. An absent row (fresh database) yields the
// default state; an unparsable blob is logged and also yields defaults.
func (s *SQLiteStore) Load() (store.State, error) {
	if err := s.open(); err != nil {
		return store.State{}, err
	}

	var data []byte
	row := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, constants.StorageKey)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.NewState(), nil
		}
		return store.State{}, fmt.Errorf("failed to read storage: %w", err)
	}

	return decodeState(data, s.path), nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) Save(state store.State) error {
	if err := s.open(); err != nil {
		return err
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		constants.StorageKey, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Clear() error {
	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, constants.StorageKey); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// DB exposes the underlying handle for maintenance operations (backups).
func (s *SQLiteStore) DB() (*sql.DB, error) {
	if err := s.open(); err != nil {
		return nil, err
	}
	return s.db, nil
}
