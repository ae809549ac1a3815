// Package ui implements the terminal screens and the navigation between
// them.
//
// Each screen follows the same pattern as the product it renders for: fetch
// on entry, render the result, read one input, hand a navigation action back
// to the app loop. There is no cancellation and no shared cache between
// screens; re-entering a screen re-fetches.
package ui

import (
	"context"

	"github.com/splitmate/splitmate/internal/models"
	"github.com/splitmate/splitmate/internal/service"
)

// Authenticator is the slice of the session manager the screens use.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	User(ctx context.Context) (*models.User, error)
}

// GroupDirectory lists and creates groups for the current user.
type GroupDirectory interface {
	CreateGroup(ctx context.Context, name string) (*service.CreateGroupResult, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
}

// ExpenseLister reads a group's expenses.
type ExpenseLister interface {
	ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error)
}

// navKind says what the app loop should do with the stack after a screen
// returns.
type navKind int

const (
	navStay navKind = iota
	navPush
	navReplace
	navPop
	navQuit
)

type navAction struct {
	kind   navKind
	route  Route
	params Params
}

func stay() navAction { return navAction{kind: navStay} }

func push(r Route, p Params) navAction {
	return navAction{kind: navPush, route: r, params: p}
}

func replaceWith(r Route, p Params) navAction {
	return navAction{kind: navReplace, route: r, params: p}
}

func pop() navAction { return navAction{kind: navPop} }

func quit() navAction { return navAction{kind: navQuit} }

// screen is one renderable unit. Run blocks for one fetch-render-input cycle.
type screen interface {
	Run(ctx context.Context) navAction
}
