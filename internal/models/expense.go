package models

// Expense represents a single recorded cost attributed to a group.
//
// Expenses are read-only in this client; rows are created elsewhere. The
// timestamp and payer columns are nullable on the server, hence the pointers.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// Description is the human-readable label for the cost.
	Description string `json:"description"`

	// Amount is the non-negative cost. Malformed values decode to zero.
	Amount Amount `json:"amount"`

	// CreatedAt is the RFC 3339 creation timestamp, or nil when the row
	// predates the column.
	CreatedAt *string `json:"created_at"`

	// UserID is the paying user's id, or nil when unknown.
	UserID *string `json:"user_id"`

	// GroupID is the owning group.
	GroupID string `json:"group_id"`
}
