package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/splitmate/splitmate/internal/backend"
	"github.com/splitmate/splitmate/internal/models"
	"github.com/splitmate/splitmate/internal/storage"
)

// memStore is an in-memory storage.SessionStore for tests.
type memStore struct {
	mu      sync.Mutex
	session *models.Session
}

var _ storage.SessionStore = (*memStore)(nil)

func (s *memStore) Save(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return nil
}

func (s *memStore) Load(_ context.Context) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, storage.ErrNoSession
	}
	return s.session, nil
}

func (s *memStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

func (s *memStore) Close() error { return nil }

func (s *memStore) get() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func testToken(t *testing.T, userID string, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("remote-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

// authServer serves the auth routes the manager touches.
func authServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			userID := "u1"
			if r.URL.Query().Get("grant_type") == "refresh_token" {
				userID = "u1-refreshed"
			}
			json.NewEncoder(w).Encode(map[string]any{
				"access_token":  testToken(t, userID, time.Now().Add(time.Hour)),
				"token_type":    "bearer",
				"expires_at":    time.Now().Add(time.Hour).Unix(),
				"refresh_token": "refresh-next",
				"user":          map[string]string{"id": userID, "email": "user@example.com"},
			})
		case "/auth/v1/signup":
			json.NewEncoder(w).Encode(map[string]any{"id": "u2", "email": "new@example.com"})
		case "/auth/v1/logout":
			w.WriteHeader(http.StatusNoContent)
		case "/auth/v1/user":
			json.NewEncoder(w).Encode(map[string]string{"id": "u1", "email": "user@example.com"})
		default:
			http.NotFound(w, r)
		}
	}))
}

func waitForSession(t *testing.T, ch <-chan *models.Session) *models.Session {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for session notification")
		return nil
	}
}

func TestRestoreNoCachedSession(t *testing.T) {
	m := NewManager(backend.New("http://localhost:0", "anon", nil), &memStore{})
	defer m.Close()

	if got := m.Restore(context.Background()); got != nil {
		t.Errorf("Restore() = %+v, want nil", got)
	}
	if m.Current() != nil {
		t.Error("Current() should be nil after empty restore")
	}
}

func TestRestoreValidSession(t *testing.T) {
	store := &memStore{session: &models.Session{
		AccessToken: testToken(t, "u1", time.Now().Add(time.Hour)),
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
		User:        models.User{ID: "u1"},
	}}
	m := NewManager(backend.New("http://localhost:0", "anon", nil), store)
	defer m.Close()

	ch := make(chan *models.Session, 1)
	sub := m.Subscribe(func(s *models.Session) { ch <- s })
	defer sub.Unsubscribe()

	if got := m.Restore(context.Background()); got == nil {
		t.Fatal("Restore() = nil, want session")
	}
	if s := waitForSession(t, ch); s == nil || s.User.ID != "u1" {
		t.Errorf("notified session = %+v", s)
	}
}

func TestRestoreExpiredSessionRefreshes(t *testing.T) {
	server := authServer(t)
	defer server.Close()

	store := &memStore{session: &models.Session{
		AccessToken:  testToken(t, "u1", time.Now().Add(-time.Hour)),
		ExpiresAt:    time.Now().Add(-time.Hour).Unix(),
		RefreshToken: "refresh-old",
		User:         models.User{ID: "u1"},
	}}
	m := NewManager(backend.New(server.URL, "anon", nil), store)
	defer m.Close()

	restored := m.Restore(context.Background())
	if restored == nil {
		t.Fatal("Restore() = nil, want refreshed session")
	}
	if restored.User.ID != "u1-refreshed" {
		t.Errorf("user id = %s, want u1-refreshed", restored.User.ID)
	}
	if cached := store.get(); cached == nil || cached.RefreshToken != "refresh-next" {
		t.Errorf("refreshed session not persisted: %+v", cached)
	}
}

func TestRestoreExpiredWithoutRefreshToken(t *testing.T) {
	store := &memStore{session: &models.Session{
		AccessToken: testToken(t, "u1", time.Now().Add(-time.Hour)),
		ExpiresAt:   time.Now().Add(-time.Hour).Unix(),
	}}
	m := NewManager(backend.New("http://localhost:0", "anon", nil), store)
	defer m.Close()

	if got := m.Restore(context.Background()); got != nil {
		t.Errorf("Restore() = %+v, want nil", got)
	}
	if store.get() != nil {
		t.Error("stale session should be cleared")
	}
}

func TestSignInPersistsAndNotifies(t *testing.T) {
	server := authServer(t)
	defer server.Close()

	store := &memStore{}
	m := NewManager(backend.New(server.URL, "anon", nil), store)
	defer m.Close()

	ch := make(chan *models.Session, 1)
	sub := m.Subscribe(func(s *models.Session) { ch <- s })
	defer sub.Unsubscribe()

	if err := m.SignIn(context.Background(), "user@example.com", "hunter22"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if s := waitForSession(t, ch); s == nil || s.User.ID != "u1" {
		t.Errorf("notified session = %+v", s)
	}
	if store.get() == nil {
		t.Error("session not persisted")
	}
	if m.Token() == "" {
		t.Error("Token() empty after sign-in")
	}
}

func TestSignInFailureKeepsSignedOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	}))
	defer server.Close()

	store := &memStore{}
	m := NewManager(backend.New(server.URL, "anon", nil), store)
	defer m.Close()

	err := m.SignIn(context.Background(), "user@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Invalid login credentials" {
		t.Errorf("error = %q, want server message verbatim", err.Error())
	}
	if m.Current() != nil || store.get() != nil {
		t.Error("failed sign-in must not create a session")
	}
}

func TestSignUpCreatesNoSession(t *testing.T) {
	server := authServer(t)
	defer server.Close()

	m := NewManager(backend.New(server.URL, "anon", nil), &memStore{})
	defer m.Close()

	if err := m.SignUp(context.Background(), "new@example.com", "hunter22"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if m.Current() != nil {
		t.Error("sign-up must not create a session")
	}
}

func TestSignOutClearsAndNotifies(t *testing.T) {
	server := authServer(t)
	defer server.Close()

	store := &memStore{}
	m := NewManager(backend.New(server.URL, "anon", nil), store)
	defer m.Close()

	if err := m.SignIn(context.Background(), "user@example.com", "hunter22"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	ch := make(chan *models.Session, 2)
	sub := m.Subscribe(func(s *models.Session) { ch <- s })
	defer sub.Unsubscribe()

	if err := m.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	// The subscriber may still see the earlier sign-in event; wait for the
	// nil transition.
	deadline := time.After(2 * time.Second)
wait:
	for {
		select {
		case s := <-ch:
			if s == nil {
				break wait
			}
		case <-deadline:
			t.Fatal("timed out waiting for sign-out notification")
		}
	}
	if m.Current() != nil || store.get() != nil {
		t.Error("session should be cleared")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	server := authServer(t)
	defer server.Close()

	m := NewManager(backend.New(server.URL, "anon", nil), &memStore{})
	defer m.Close()

	var count int
	var mu sync.Mutex
	sub := m.Subscribe(func(*models.Session) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	barrier := make(chan *models.Session, 2)
	barrierSub := m.Subscribe(func(s *models.Session) { barrier <- s })
	defer barrierSub.Unsubscribe()

	if err := m.SignIn(context.Background(), "user@example.com", "hunter22"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	waitForSession(t, barrier)

	sub.Unsubscribe()
	if err := m.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	// Delivery is ordered on one goroutine: once the barrier sees the
	// sign-out event, the released listener would have seen it too.
	waitForSession(t, barrier)

	mu.Lock()
	defer mu.Unlock()
	if count != 1 {
		t.Errorf("listener fired %d times after unsubscribe, want 1", count)
	}
}
