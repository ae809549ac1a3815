package service

import (
	"context"

	"github.com/splitmate/splitmate/internal/backend"
	"github.com/splitmate/splitmate/internal/models"
	"github.com/splitmate/splitmate/internal/session"
)

// ExpenseService reads the expenses recorded for a group. Expenses are
// read-only in this client.
type ExpenseService struct {
	api      *backend.Client
	sessions *session.Manager
}

// NewExpenseService creates an ExpenseService bound to the given backend and
// session manager.
func NewExpenseService(api *backend.Client, sessions *session.Manager) *ExpenseService {
	return &ExpenseService{api: api, sessions: sessions}
}

// ListExpenses returns the group's expenses, newest first. The ordering comes
// from the service; callers render rows as returned.
func (s *ExpenseService) ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.api.From("expenses").
		Auth(s.sessions.Token()).
		Select("*").
		Eq("group_id", groupID).
		Order("created_at", backend.Descending).
		Get(ctx, &expenses)
	if err != nil {
		return nil, err
	}
	return expenses, nil
}
