package models

import "time"

// Session is the token bundle returned by the auth API's password and refresh
// grants. It is the only state the client persists between launches (sealed,
// in the local cache).
type Session struct {
	// AccessToken is the bearer token presented on every authenticated call.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer" for this service.
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds at issue time.
	ExpiresIn int64 `json:"expires_in"`

	// ExpiresAt is the Unix timestamp the access token expires at. Older
	// deployments omit it; see Expired.
	ExpiresAt int64 `json:"expires_at"`

	// RefreshToken exchanges for a fresh session when the access token
	// expires. Single use.
	RefreshToken string `json:"refresh_token"`

	// User is the account this session authenticates.
	User User `json:"user"`
}

// Expired reports whether the access token's expiry has passed. Sessions
// without an expiry are treated as live; the remote service still rejects a
// stale token and the failure surfaces on the first call.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt != 0 && now.Unix() >= s.ExpiresAt
}
