package ui

import (
	"context"
	"errors"

	"github.com/splitmate/splitmate/internal/service"
	"github.com/splitmate/splitmate/internal/theme"
)

// CreateGroupScreen collects a group name and runs the creation flow.
type CreateGroupScreen struct {
	term   *Terminal
	groups GroupDirectory
}

// NewCreateGroupScreen creates the group-creation screen.
func NewCreateGroupScreen(term *Terminal, groups GroupDirectory) *CreateGroupScreen {
	return &CreateGroupScreen{term: term, groups: groups}
}

// Run handles one creation attempt. On success it replaces this screen with
// the group's detail view, so "back" from there skips the form. A failed
// group insert aborts with the server's message; a failed membership insert
// warns and proceeds.
func (s *CreateGroupScreen) Run(ctx context.Context) navAction {
	s.term.Println()
	s.term.Println(theme.Emphasis("New group"))
	s.term.Println(theme.Muted("Create a group to share expenses with your friends."))
	s.term.Println()

	// Empty input cancels, so any non-empty string is a usable group name.
	name, err := s.term.Prompt("Group name (leave empty to go back)", "")
	if err != nil {
		return quit()
	}
	if name == "" {
		return pop()
	}

	s.term.Println(theme.Muted("Creating group..."))
	result, err := s.groups.CreateGroup(ctx, name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyName) {
			s.term.Alert("Name required", "Enter a name for the group.")
		} else {
			s.term.Alert("Could not create group", err.Error())
		}
		return stay()
	}

	if result.MembershipErr != nil {
		s.term.Alert("Group created, but...",
			"Adding you as a member failed. You can add yourself manually.")
	}

	groupName := result.Group.Name
	if groupName == "" {
		groupName = service.FallbackGroupName
	}
	return replaceWith(RouteGroup, Params{GroupID: result.Group.ID, GroupName: groupName})
}
