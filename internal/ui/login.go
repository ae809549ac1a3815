package ui

import (
	"context"
	"strings"

	"github.com/common-nighthawk/go-figure"

	"github.com/splitmate/splitmate/internal/theme"
)

// LoginScreen collects credentials and forwards them to the auth API.
//
// It stays mounted for the whole unauthenticated stack, so a failed attempt
// keeps the form populated. Submission never navigates: the gate observes the
// session change and switches stacks on its own.
type LoginScreen struct {
	term *Terminal
	auth Authenticator

	email    string
	password string
}

// NewLoginScreen creates the login screen.
func NewLoginScreen(term *Terminal, auth Authenticator) *LoginScreen {
	return &LoginScreen{term: term, auth: auth}
}

// Run renders the form and handles one submission.
func (s *LoginScreen) Run(ctx context.Context) navAction {
	figure.Write(s.term.out, figure.NewFigure("Splitmate", "", true))
	s.term.Println(theme.Muted("Share expenses with your friends, the easy way."))
	s.term.Println()

	email, err := s.term.Prompt("Email", s.email)
	if err != nil {
		return quit()
	}
	password, err := s.term.Prompt("Password", s.password)
	if err != nil {
		return quit()
	}
	s.email, s.password = strings.TrimSpace(email), password

	choice, err := s.term.Prompt(theme.Primary("[1]")+" Sign in  "+theme.Primary("[2]")+" Create account  [q] Quit", "1")
	if err != nil {
		return quit()
	}

	switch choice {
	case "1":
		s.term.Println(theme.Muted("Signing in..."))
		if err := s.auth.SignIn(ctx, s.email, s.password); err != nil {
			s.term.Alert("Login error", err.Error())
		}
		return stay()
	case "2":
		s.term.Println(theme.Muted("Creating account..."))
		if err := s.auth.SignUp(ctx, s.email, s.password); err != nil {
			s.term.Alert("Signup error", err.Error())
			return stay()
		}
		s.term.Alert("Check your email", "Confirm your account, then sign in.")
		return stay()
	case "q":
		return quit()
	default:
		return stay()
	}
}
