package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/splitmate/splitmate/internal/models"
)

// credentials is the request body for the password grant and signup routes.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInWithPassword exchanges email and password for a session. A failed
// attempt returns an *APIError whose message is the server's verbatim reason.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*models.Session, error) {
	query := url.Values{"grant_type": []string{"password"}}

	var session models.Session
	err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, nil, "", credentials{Email: email, Password: password}, &session)
	if err != nil {
		return nil, err
	}

	fillExpiry(&session)
	return &session, nil
}

// RefreshSession exchanges a refresh token for a new session. Refresh tokens
// are single use; the caller must persist the returned session.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*models.Session, error) {
	query := url.Values{"grant_type": []string{"refresh_token"}}
	body := struct {
		RefreshToken string `json:"refresh_token"`
	}{RefreshToken: refreshToken}

	var session models.Session
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, nil, "", body, &session); err != nil {
		return nil, err
	}

	fillExpiry(&session)
	return &session, nil
}

// SignUp registers a new account. The service requires email confirmation
// before the first sign-in, so no session is returned.
func (c *Client) SignUp(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/signup", nil, nil, "", credentials{Email: email, Password: password}, nil)
}

// SignOut revokes the session behind the given access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, nil, accessToken, nil, nil)
}

// GetUser fetches the account behind the given access token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, nil, accessToken, nil, &user); err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return &user, nil
}

// fillExpiry derives expires_at for deployments that only send expires_in.
func fillExpiry(s *models.Session) {
	if s.ExpiresAt == 0 && s.ExpiresIn > 0 {
		s.ExpiresAt = time.Now().Unix() + s.ExpiresIn
	}
}
