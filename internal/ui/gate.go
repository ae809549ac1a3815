package ui

import (
	"context"
	"sync"

	"github.com/splitmate/splitmate/internal/session"
)

// Gate decides which navigation stack is active.
//
// It restores the cached session once on Start; the loading state covers
// exactly that window, during which nothing renders. After that it reads the
// manager's live session on every check: sign-in and sign-out update the
// manager before they return, so the app loop always sees a transition on the
// iteration right after the screen that caused it. A failed restore is
// indistinguishable from "not authenticated".
type Gate struct {
	sessions *session.Manager

	mu      sync.Mutex
	loading bool
}

// NewGate creates a Gate over the given session manager.
func NewGate(sessions *session.Manager) *Gate {
	return &Gate{sessions: sessions, loading: true}
}

// Start restores the cached session. The manager announces the outcome to its
// subscribers on its own.
func (g *Gate) Start(ctx context.Context) {
	g.sessions.Restore(ctx)

	g.mu.Lock()
	g.loading = false
	g.mu.Unlock()
}

// Loading reports whether the initial restore is still pending.
func (g *Gate) Loading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loading
}

// Authenticated reports the derived boolean the router keys on.
func (g *Gate) Authenticated() bool {
	if g.Loading() {
		return false
	}
	return g.sessions.Current() != nil
}
