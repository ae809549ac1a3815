// Package storage provides abstractions for the local session cache.
//
// The cache holds exactly one thing: the last session returned by the auth
// API, so the app can restore it on the next launch. No domain entity is ever
// cached; groups and expenses are re-fetched every time a screen mounts.
package storage

import (
	"context"
	"errors"

	"github.com/splitmate/splitmate/internal/models"
)

// ErrNoSession is returned by Load when no session is cached.
var ErrNoSession = errors.New("no cached session")

// SessionStore persists the current session between launches. Implementations
// must treat the cache as disposable: corruption is reported as an error and
// the caller falls back to the signed-out state.
type SessionStore interface {
	// Save replaces the cached session.
	Save(ctx context.Context, session *models.Session) error

	// Load returns the cached session, or ErrNoSession when none exists.
	Load(ctx context.Context) (*models.Session, error)

	// Clear removes the cached session. Clearing an empty cache is not an
	// error.
	Clear(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
