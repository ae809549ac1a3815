package ui

import (
	"context"
	"log/slog"

	"github.com/splitmate/splitmate/internal/models"
	"github.com/splitmate/splitmate/internal/service"
	"github.com/splitmate/splitmate/internal/theme"
)

// GroupScreen shows one group's expenses, newest first, with a running total.
type GroupScreen struct {
	term     *Terminal
	expenses ExpenseLister
	params   Params
}

// NewGroupScreen creates the detail screen for the group in params.
func NewGroupScreen(term *Terminal, expenses ExpenseLister, params Params) *GroupScreen {
	return &GroupScreen{term: term, expenses: expenses, params: params}
}

// Run fetches the expenses, renders, and handles one input. Fetch failures
// are logged only; the screen falls back to an empty list.
func (s *GroupScreen) Run(ctx context.Context) navAction {
	s.term.Println(theme.Muted("Loading expenses..."))

	expenses, err := s.expenses.ListExpenses(ctx, s.params.GroupID)
	if err != nil {
		slog.Warn("failed to load expenses", "group_id", s.params.GroupID, "error", err)
		expenses = nil
	}

	s.render(expenses)

	input, err := s.term.Prompt("[b] Back  [r] Refresh  [q] Quit", "b")
	if err != nil {
		return quit()
	}
	switch input {
	case "r":
		return stay()
	case "q":
		return quit()
	default:
		return pop()
	}
}

func (s *GroupScreen) render(expenses []models.Expense) {
	name := s.params.GroupName
	if name == "" {
		name = service.FallbackGroupName
	}

	s.term.Println()
	s.term.Println(theme.Emphasis(name))
	s.term.Println(theme.Muted("Shared expense log for this group."))
	s.term.Println()

	total := models.TotalAmount(expenses)
	s.term.Println(theme.Bold("Group summary"))
	s.term.Printf("  Total spent: %s\n", theme.Emphasis(total.StringFixed(2)+" €"))
	s.term.Println(theme.Muted("  A per-participant breakdown can come later."))
	s.term.Println()

	s.term.Println(theme.Bold("Expenses"))
	if len(expenses) == 0 {
		s.term.Println(theme.Muted("  No expenses yet. Add the group's first expense to start keeping track."))
		s.term.Println()
		return
	}

	// Rows render in the order the service returned them; no client-side sort.
	for _, e := range expenses {
		s.term.Printf("  %s\n", e.Description)
		s.term.Printf("    %s · %s · %s\n",
			theme.Muted(formatDate(e.CreatedAt)),
			theme.Muted(formatPayer(e.UserID)),
			theme.Emphasis(e.Amount.StringFixed(2)+" €"),
		)
	}
	s.term.Println()
}
