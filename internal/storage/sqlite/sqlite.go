// Package sqlite provides a SQLite-backed implementation of the
// storage.SessionStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/splitmate/splitmate/internal/models"
	"github.com/splitmate/splitmate/internal/storage"
)

// Ensure Store implements storage.SessionStore
var _ storage.SessionStore = (*Store)(nil)

// Store implements storage.SessionStore using SQLite. Session payloads are
// sealed at rest; see seal.go.
type Store struct {
	db  *sql.DB
	key []byte
}

// New creates a Store at the given database path. It creates the parent
// directories, runs migrations, and loads (or creates) the device secret kept
// alongside the database.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	secret, err := loadDeviceSecret(filepath.Join(dir, "device.secret"))
	if err != nil {
		db.Close()
		return nil, err
	}
	key, err := deriveKey(secret)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, key: key}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the cached session.
func (s *Store) Save(ctx context.Context, session *models.Session) error {
	plaintext, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	sealed, err := seal(s.key, plaintext)
	if err != nil {
		return fmt.Errorf("failed to seal session: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, payload, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		sealed, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns the cached session, or storage.ErrNoSession when none exists.
func (s *Store) Load(ctx context.Context) (*models.Session, error) {
	var sealed []byte
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM sessions WHERE id = 1").Scan(&sealed)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	plaintext, err := unseal(s.key, sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal session: %w", err)
	}

	session := &models.Session{}
	if err := json.Unmarshal(plaintext, session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return session, nil
}

// Clear removes the cached session.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
