package cli

import (
	"context"
	"fmt"

	"github.com/mkravets/sparkle/internal/api"
)

// Matches fetches and prints the mutual-match list, newest first.
func (a *App) Matches(ctx context.Context) {
	if !a.isLoggedIn() {
		printlnFn("Sign in first")
		return
	}

	list, err := a.matches.List(ctx)
	if err != nil {
		printlnFn("Failed to load matches: " + api.Message(err, "backend unavailable"))
		return
	}
	if len(list) == 0 {
		printlnFn("No matches yet. Keep swiping!")
		return
	}

	printlnFn(fmt.Sprintf("%d match(es):", len(list)))
	for _, m := range list {
		w := m.MatchedWith
		line := fmt.Sprintf("  %s (user %d) · matched %s", w.DisplayName, w.UserID, m.CreatedAt.Format("2006-01-02"))
		if w.FavoriteJoke != nil && *w.FavoriteJoke != "" {
			line += "\n    " + *w.FavoriteJoke
		}
		printlnFn(line)
	}
}
