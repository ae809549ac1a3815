package models

// User represents the account behind the current session.
//
// The client never persists users; the remote service owns the account. Only
// the fields the screens need are decoded.
type User struct {
	// ID is the opaque identifier assigned by the remote service (UUID format).
	ID string `json:"id"`

	// Email is the address the user signed up with. The home screen greets
	// with its local part.
	Email string `json:"email"`
}
