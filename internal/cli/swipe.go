package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkravets/sparkle/internal/tui"
)

// teaRun is a test seam around the bubbletea runtime.
var teaRun = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Swipe opens the full-screen discovery view. It requires a signed-in
// session; the discovery queue itself survives leaving and re-entering the
// view, so a half-swiped page is not refetched.
func (a *App) Swipe(ctx context.Context) {
	if !a.isLoggedIn() {
		printlnFn("Sign in first")
		return
	}
	if err := teaRun(tui.NewModel(ctx, a.engine)); err != nil {
		printlnFn("error: " + err.Error())
	}
	// A 401 may have ended the session while the view was open.
	if !a.isLoggedIn() {
		if msg := a.session.Snapshot().Err; msg != "" {
			printlnFn(msg)
		}
	}
}
