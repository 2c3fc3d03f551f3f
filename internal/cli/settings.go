package cli

import (
	"context"

	"github.com/mkravets/sparkle/internal/api"
)

// Settings shows visibility state and lets the user close or reopen their
// profile. After a change the discovery queue is refreshed by the settings
// service, so the next swipe session reflects the new visibility.
func (a *App) Settings(ctx context.Context) {
	if !a.isLoggedIn() {
		printlnFn("Sign in first")
		return
	}

	p, err := a.profiles.Get(ctx)
	if err != nil {
		printlnFn("Failed to load settings: " + api.Message(err, "backend unavailable"))
		return
	}

	if p.IsActive {
		printlnFn("Your profile is currently visible in the feed.")
		answer, err := GetSimpleText(a.reader, "Hide it? (yes/no)", a.out)
		if err != nil || answer != "yes" {
			return
		}
		v, err := a.settings.CloseProfile(ctx)
		if err != nil {
			printlnFn("Failed: " + api.Message(err, "backend unavailable"))
			return
		}
		printlnFn(v.Message)
		return
	}

	printlnFn("Your profile is currently hidden from the feed.")
	answer, err := GetSimpleText(a.reader, "Make it visible again? (yes/no)", a.out)
	if err != nil || answer != "yes" {
		return
	}
	v, err := a.settings.ReopenProfile(ctx)
	if err != nil {
		printlnFn("Failed: " + api.Message(err, "backend unavailable"))
		return
	}
	printlnFn(v.Message)
}
