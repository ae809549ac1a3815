// Package session tracks the current authentication state and notifies
// observers when it changes.
//
// The manager is the client-side projection of the remote auth API: it signs
// in, signs up, and signs out through it, restores the cached session once at
// startup, and delivers every state transition to subscribers on a single
// dedicated goroutine. Credential checking itself is entirely the remote
// service's job.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/splitmate/splitmate/internal/backend"
	"github.com/splitmate/splitmate/internal/models"
	"github.com/splitmate/splitmate/internal/storage"
)

// ErrNotSignedIn is returned by operations that require a session when there
// is none.
var ErrNotSignedIn = errors.New("not signed in")

// Manager owns the current session and its change notifications.
type Manager struct {
	api   *backend.Client
	store storage.SessionStore

	mu        sync.Mutex
	current   *models.Session
	listeners map[int]func(*models.Session)
	nextID    int

	notify chan *models.Session
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewManager creates a Manager and starts its notification goroutine. Call
// Close when done with it.
func NewManager(api *backend.Client, store storage.SessionStore) *Manager {
	m := &Manager{
		api:       api,
		store:     store,
		listeners: make(map[int]func(*models.Session)),
		notify:    make(chan *models.Session, 8),
		done:      make(chan struct{}),
	}
	m.wg.Add(1)
	go m.deliver()
	return m
}

// Close stops notification delivery. Pending transitions are dropped.
func (m *Manager) Close() {
	close(m.done)
	m.wg.Wait()
}

// deliver is the single callback path: transitions are handed to listeners in
// order, one at a time.
func (m *Manager) deliver() {
	defer m.wg.Done()
	for {
		select {
		case session := <-m.notify:
			m.mu.Lock()
			fns := make([]func(*models.Session), 0, len(m.listeners))
			for _, fn := range m.listeners {
				fns = append(fns, fn)
			}
			m.mu.Unlock()
			for _, fn := range fns {
				fn(session)
			}
		case <-m.done:
			return
		}
	}
}

func (m *Manager) emit(session *models.Session) {
	select {
	case m.notify <- session:
	case <-m.done:
	}
}

// Subscription is a handle for one registered listener.
type Subscription struct {
	m  *Manager
	id int
}

// Unsubscribe releases the listener. Safe to call once per subscription.
func (s *Subscription) Unsubscribe() {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.listeners, s.id)
}

// Subscribe registers a listener for session transitions. The listener
// receives the new session, or nil on sign-out, on the manager's delivery
// goroutine. Callers must Unsubscribe on teardown.
func (m *Manager) Subscribe(fn func(*models.Session)) *Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return &Subscription{m: m, id: id}
}

// Current returns the session, or nil when signed out.
func (m *Manager) Current() *models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Token returns the current access token, or empty when signed out.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ""
	}
	return m.current.AccessToken
}

// Restore loads the cached session once at startup. An expired session is
// refreshed through the auth API when a refresh token is cached. Any failure
// along the way means signed out; restore never reports an error because the
// login screen is the recovery path for every one of them.
func (m *Manager) Restore(ctx context.Context) *models.Session {
	cached, err := m.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSession) {
			slog.Warn("failed to load cached session", "error", err)
		}
		return nil
	}

	if _, err := backend.ParseClaims(cached.AccessToken); err != nil {
		slog.Warn("cached session is malformed, discarding", "error", err)
		m.discard(ctx)
		return nil
	}

	if cached.Expired(time.Now()) {
		if cached.RefreshToken == "" {
			m.discard(ctx)
			return nil
		}
		refreshed, err := m.api.RefreshSession(ctx, cached.RefreshToken)
		if err != nil {
			slog.Warn("failed to refresh cached session", "error", err)
			m.discard(ctx)
			return nil
		}
		cached = refreshed
		m.persist(ctx, cached)
	}

	m.mu.Lock()
	m.current = cached
	m.mu.Unlock()
	m.emit(cached)
	return cached
}

// SignIn submits credentials to the auth API. On success the session is
// stored, cached, and announced to subscribers; the caller performs no
// navigation of its own. On failure the error carries the server's message.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	session, err := m.api.SignInWithPassword(ctx, email, password)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	m.persist(ctx, session)
	m.emit(session)

	slog.Info("signed in", "user_id", session.User.ID)
	return nil
}

// SignUp submits a registration request. The service requires email
// confirmation before sign-in, so no session is created here.
func (m *Manager) SignUp(ctx context.Context, email, password string) error {
	return m.api.SignUp(ctx, email, password)
}

// SignOut revokes the session remotely and clears it locally. A failed
// revocation is logged but the local state is cleared regardless; the user
// asked to leave.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	session := m.current
	m.current = nil
	m.mu.Unlock()

	if session == nil {
		return nil
	}

	if err := m.api.SignOut(ctx, session.AccessToken); err != nil {
		slog.Warn("failed to revoke session", "error", err)
	}
	m.discard(ctx)
	m.emit(nil)

	slog.Info("signed out", "user_id", session.User.ID)
	return nil
}

// User fetches the account behind the current session from the auth API.
func (m *Manager) User(ctx context.Context) (*models.User, error) {
	token := m.Token()
	if token == "" {
		return nil, ErrNotSignedIn
	}
	return m.api.GetUser(ctx, token)
}

func (m *Manager) persist(ctx context.Context, session *models.Session) {
	if err := m.store.Save(ctx, session); err != nil {
		// Not fatal: the session still works for this run.
		slog.Warn("failed to cache session", "error", err)
	}
}

func (m *Manager) discard(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		slog.Warn("failed to clear cached session", "error", err)
	}
}
