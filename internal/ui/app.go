package ui

import (
	"context"

	"github.com/splitmate/splitmate/internal/session"
)

// App owns the gate, the two navigation stacks, and the screen loop.
type App struct {
	term     *Terminal
	gate     *Gate
	auth     Authenticator
	groups   GroupDirectory
	expenses ExpenseLister

	// The login screen stays mounted across failed attempts so the form
	// keeps its values; every other screen is remounted per visit and
	// re-fetches.
	login *LoginScreen
}

// New wires the app from its dependencies.
func New(term *Terminal, sessions *session.Manager, groups GroupDirectory, expenses ExpenseLister) *App {
	return &App{
		term:     term,
		gate:     NewGate(sessions),
		auth:     sessions,
		groups:   groups,
		expenses: expenses,
		login:    NewLoginScreen(term, sessions),
	}
}

// Run drives the screen loop until the user quits or input ends. Nothing
// renders until the gate's initial restore resolves; after that the gate's
// boolean picks the stack, and every transition rebuilds it at its root.
func (a *App) Run(ctx context.Context) error {
	a.gate.Start(ctx)

	authed := a.gate.Authenticated()
	stack := a.stackFor(authed)

	for {
		if now := a.gate.Authenticated(); now != authed {
			authed = now
			stack = a.stackFor(authed)
		}

		action := a.screenFor(stack.Current()).Run(ctx)
		switch action.kind {
		case navPush:
			stack.Push(action.route, action.params)
		case navReplace:
			stack.Replace(action.route, action.params)
		case navPop:
			stack.Pop()
		case navQuit:
			return nil
		}
	}
}

func (a *App) stackFor(authed bool) *Stack {
	if authed {
		return NewStack(RouteHome)
	}
	return NewStack(RouteLogin)
}

func (a *App) screenFor(frame Frame) screen {
	switch frame.Route {
	case RouteHome:
		return NewHomeScreen(a.term, a.auth, a.groups)
	case RouteGroup:
		return NewGroupScreen(a.term, a.expenses, frame.Params)
	case RouteNewGroup:
		return NewCreateGroupScreen(a.term, a.groups)
	default:
		return a.login
	}
}
