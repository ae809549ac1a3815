package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/splitmate/splitmate/internal/models"
)

func TestSignInWithPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("path = %s, want /auth/v1/token", r.URL.Path)
		}
		if got := r.URL.Query().Get("grant_type"); got != "password" {
			t.Errorf("grant_type = %s, want password", got)
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Errorf("apikey = %s, want anon-key", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("X-Request-ID header missing")
		}

		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if creds.Email != "user@example.com" || creds.Password != "hunter22" {
			t.Errorf("credentials = %+v", creds)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "token-abc",
			"token_type":    "bearer",
			"expires_in":    3600,
			"refresh_token": "refresh-xyz",
			"user":          map[string]string{"id": "u1", "email": "user@example.com"},
		})
	}))
	defer server.Close()

	c := New(server.URL, "anon-key", nil)
	session, err := c.SignInWithPassword(context.Background(), "user@example.com", "hunter22")
	if err != nil {
		t.Fatalf("SignInWithPassword() error = %v", err)
	}
	if session.AccessToken != "token-abc" {
		t.Errorf("access token = %s", session.AccessToken)
	}
	if session.User.ID != "u1" {
		t.Errorf("user id = %s", session.User.ID)
	}
	if session.ExpiresAt == 0 {
		t.Error("ExpiresAt not derived from expires_in")
	}
}

func TestSignInErrorMessageVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	}))
	defer server.Close()

	c := New(server.URL, "anon-key", nil)
	_, err := c.SignInWithPassword(context.Background(), "user@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.Status)
	}
	if apiErr.Error() != "Invalid login credentials" {
		t.Errorf("message = %q, want server message verbatim", apiErr.Error())
	}
}

func TestAuthErrorMsgShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"code":422,"msg":"Password should be at least 6 characters"}`))
	}))
	defer server.Close()

	c := New(server.URL, "anon-key", nil)
	err := c.SignUp(context.Background(), "user@example.com", "x")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Error() != "Password should be at least 6 characters" {
		t.Errorf("message = %q", apiErr.Error())
	}
}

func TestQueryGetFiltersAndOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/expenses" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("select"); got != "*" {
			t.Errorf("select = %s, want *", got)
		}
		if got := q.Get("group_id"); got != "eq.g1" {
			t.Errorf("group_id = %s, want eq.g1", got)
		}
		if got := q.Get("order"); got != "created_at.desc" {
			t.Errorf("order = %s, want created_at.desc", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer user-token" {
			t.Errorf("authorization = %s", got)
		}
		w.Write([]byte(`[{"id":"e1","description":"Dinner","amount":12,"group_id":"g1"}]`))
	}))
	defer server.Close()

	c := New(server.URL, "anon-key", nil)
	var expenses []models.Expense
	err := c.From("expenses").
		Auth("user-token").
		Select("*").
		Eq("group_id", "g1").
		Order("created_at", Descending).
		Get(context.Background(), &expenses)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(expenses) != 1 || expenses[0].Description != "Dinner" {
		t.Errorf("expenses = %+v", expenses)
	}
}

func TestInsertReturningSingle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Prefer"); got != "return=representation" {
			t.Errorf("Prefer = %s, want return=representation", got)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.pgrst.object+json" {
			t.Errorf("Accept = %s", got)
		}
		if got := r.URL.Query().Get("select"); got != "id, name" {
			t.Errorf("select = %s, want id, name", got)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"g1","name":"Trip"}`))
	}))
	defer server.Close()

	c := New(server.URL, "anon-key", nil)
	var group models.Group
	err := c.From("groups").
		Auth("user-token").
		Select("id, name").
		Single().
		Insert(context.Background(), map[string]string{"name": "Trip", "owner": "u1"}, &group)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if group.ID != "g1" || group.Name != "Trip" {
		t.Errorf("group = %+v", group)
	}
}

func TestInsertMinimal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Prefer"); got != "return=minimal" {
			t.Errorf("Prefer = %s, want return=minimal", got)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := New(server.URL, "anon-key", nil)
	err := c.From("group_members").
		Auth("user-token").
		Insert(context.Background(), models.Membership{GroupID: "g1", UserID: "u1"}, nil)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
}
