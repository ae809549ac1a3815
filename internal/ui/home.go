package ui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/splitmate/splitmate/internal/models"
	"github.com/splitmate/splitmate/internal/theme"
)

// Placeholder figures, not computed from data. The real summary needs the
// per-participant balance breakdown, which is not wired up yet.
const (
	placeholderYouOwe  = "120.50 €"
	placeholderOwedYou = "85.00 €"
)

// HomeScreen greets the user and lists their groups.
type HomeScreen struct {
	term   *Terminal
	auth   Authenticator
	groups GroupDirectory
}

// NewHomeScreen creates the home screen.
func NewHomeScreen(term *Terminal, auth Authenticator, groups GroupDirectory) *HomeScreen {
	return &HomeScreen{term: term, auth: auth, groups: groups}
}

// Run fetches the user and their groups, renders, and handles one input.
// Fetch failures degrade to an anonymous greeting and an empty list; there is
// no error UI on this screen.
func (s *HomeScreen) Run(ctx context.Context) navAction {
	var email string
	if user, err := s.auth.User(ctx); err != nil {
		slog.Warn("failed to resolve current user", "error", err)
	} else {
		email = user.Email
	}

	groups, err := s.groups.ListGroups(ctx)
	if err != nil {
		slog.Warn("failed to load groups", "error", err)
		groups = nil
	}

	s.render(email, groups)

	input, err := s.term.Prompt("Choose", "")
	if err != nil {
		return quit()
	}

	switch input {
	case "n":
		return push(RouteNewGroup, Params{})
	case "g", "a":
		// Inert quick actions, kept for parity with the layout.
		return stay()
	case "o":
		if err := s.auth.SignOut(ctx); err != nil {
			s.term.Alert("Sign out failed", err.Error())
		}
		return stay()
	case "q":
		return quit()
	}

	if n, convErr := strconv.Atoi(input); convErr == nil && n >= 1 && n <= len(groups) {
		g := groups[n-1]
		return push(RouteGroup, Params{GroupID: g.ID, GroupName: g.Name})
	}
	return stay()
}

func (s *HomeScreen) render(email string, groups []models.Group) {
	s.term.Println()
	s.term.Printf("%s %s\n", theme.Emphasis("Splitmate"), theme.Muted("BETA"))

	greeting := "Hi"
	if email != "" {
		greeting += ", " + strings.SplitN(email, "@", 2)[0]
	}
	s.term.Println(theme.Bold(greeting + " 👋"))
	s.term.Println(theme.Muted("Your shared expenses at a glance."))
	s.term.Println()

	s.term.Println(theme.Bold("Quick summary"))
	s.term.Printf("  You owe      %s\n", theme.Danger(placeholderYouOwe))
	s.term.Printf("  You are owed %s\n", theme.Emphasis(placeholderOwedYou))
	s.term.Println(theme.Muted("  These figures are examples; they are not connected to your groups yet."))
	s.term.Println()

	s.term.Println(theme.Bold("Your groups"))
	if len(groups) == 0 {
		s.term.Println(theme.Muted("  You do not belong to any group yet."))
	} else {
		for i, g := range groups {
			s.term.Printf("  %s %s %s\n", theme.Primary("["+strconv.Itoa(i+1)+"]"), g.Name, theme.Muted("view expenses →"))
		}
	}
	s.term.Println()

	s.term.Println(theme.Bold("Quick actions"))
	s.term.Printf("  %s New group   [g] View groups   [a] Activity\n", theme.Primary("[n]"))
	s.term.Println()

	s.term.Println(theme.Bold("Recent activity"))
	s.term.Println(theme.Muted("  Nothing here yet. Create a group and add your first expense to see activity."))
	s.term.Println()

	s.term.Printf("%s Sign out   [q] Quit\n", theme.Muted("[o]"))
}
