package cli

import (
	"context"
	"fmt"

	"github.com/mkravets/sparkle/internal/api"
	"github.com/mkravets/sparkle/internal/forms"
	"github.com/mkravets/sparkle/internal/models"
)

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Profile prints the current user's own profile.
func (a *App) Profile(ctx context.Context) {
	if !a.isLoggedIn() {
		printlnFn("Sign in first")
		return
	}

	p, err := a.profiles.Get(ctx)
	if err != nil {
		printlnFn("Failed to load profile: " + api.Message(err, "backend unavailable"))
		return
	}

	printlnFn("Display name:  " + p.DisplayName)
	if p.Gender != nil {
		printlnFn("Gender:        " + string(*p.Gender))
	}
	printlnFn("Avatar URL:    " + deref(p.AvatarURL))
	printlnFn("Bio:           " + deref(p.Bio))
	printlnFn("Hobbies:       " + deref(p.Hobbies))
	printlnFn("Favorite joke: " + deref(p.FavoriteJoke))
	visibility := "visible in feed"
	if !p.IsActive {
		visibility = "hidden from feed"
	}
	printlnFn("Visibility:    " + visibility)
}

// EditProfile walks through each editable field. Enter keeps the current
// value, "-" clears it, anything else replaces it. Only touched fields are
// sent to the backend.
func (a *App) EditProfile(ctx context.Context) {
	if !a.isLoggedIn() {
		printlnFn("Sign in first")
		return
	}

	current, err := a.profiles.Get(ctx)
	if err != nil {
		printlnFn("Failed to load profile: " + api.Message(err, "backend unavailable"))
		return
	}

	var form forms.ProfileForm
	fields := []struct {
		label   string
		current string
		dst     **string
	}{
		{"Display name", current.DisplayName, &form.DisplayName},
		{"Gender (male/female/other/prefer_not_to_say)", genderString(current.Gender), &form.Gender},
		{"Avatar URL", deref(current.AvatarURL), &form.AvatarURL},
		{"Bio", deref(current.Bio), &form.Bio},
		{"Hobbies", deref(current.Hobbies), &form.Hobbies},
		{"Favorite joke", deref(current.FavoriteJoke), &form.FavoriteJoke},
	}
	for _, f := range fields {
		v, err := GetOptionalField(a.reader, f.label, f.current, a.out)
		if err != nil {
			printlnFn("error: " + err.Error())
			return
		}
		*f.dst = v
	}

	update, err := forms.Profile(form)
	if err != nil {
		printlnFn("error: " + err.Error())
		return
	}
	if update.IsZero() {
		printlnFn("Nothing changed")
		return
	}

	updated, err := a.profiles.Update(ctx, update)
	if err != nil {
		printlnFn("Update failed: " + a.profiles.Snapshot().Err)
		return
	}
	printlnFn(fmt.Sprintf("Profile saved (display name: %s)", updated.DisplayName))
}

func genderString(g *models.Gender) string {
	if g == nil {
		return ""
	}
	return string(*g)
}
