package models

// Group represents a named collection of users sharing expenses.
//
// Groups are created through the new-group flow and read-only everywhere
// else. The server assigns the id.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name, non-empty after trimming. The list and
	// detail screens substitute a fallback label when the server returns
	// null.
	Name string `json:"name"`

	// Owner is the user id of the creator.
	Owner string `json:"owner,omitempty"`
}

// Membership records that a user belongs to a group. Created alongside the
// group for its owner; otherwise only used to filter the groups visible to
// the current user.
type Membership struct {
	// GroupID is the group side of the association.
	GroupID string `json:"group_id"`

	// UserID is the member's user id.
	UserID string `json:"user_id"`
}
