// Package forms validates user input before it reaches the core components.
// Everything here runs client-side and never touches the network: by the
// time a request struct leaves this package, the session manager and
// services can assume its fields are well-formed.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mkravets/sparkle/internal/models"
)

var formValidator = validator.New()

// LoginForm is raw sign-in input.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterForm is raw account-creation input. Bounds mirror the backend's.
type RegisterForm struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=3,max=100"`
	Password string `validate:"required,min=6,max=100"`
}

// ProfileForm is raw profile-editor input. Nil fields were left untouched
// by the user; non-nil empty strings are deliberate clears and skip the
// content checks.
type ProfileForm struct {
	DisplayName  *string `validate:"omitempty,min=1,max=255"`
	Gender       *string `validate:"omitempty,oneof=male female other prefer_not_to_say"`
	AvatarURL    *string `validate:"omitempty,url,max=500"`
	Bio          *string `validate:"omitempty,max=1000"`
	Hobbies      *string `validate:"omitempty,max=1000"`
	FavoriteJoke *string `validate:"omitempty,max=500"`
}

// Login validates and converts sign-in input.
func Login(f LoginForm) (models.LoginRequest, error) {
	if err := check(f); err != nil {
		return models.LoginRequest{}, err
	}
	return models.LoginRequest{Email: strings.TrimSpace(f.Email), Password: f.Password}, nil
}

// Register validates and converts account-creation input.
func Register(f RegisterForm) (models.RegisterRequest, error) {
	if err := check(f); err != nil {
		return models.RegisterRequest{}, err
	}
	return models.RegisterRequest{
		Email:    strings.TrimSpace(f.Email),
		Username: strings.TrimSpace(f.Username),
		Password: f.Password,
	}, nil
}

// Profile validates and converts profile-editor input. Explicit empty
// values pass through so the caller can clear fields; the omitempty rules
// only apply to non-empty content.
func Profile(f ProfileForm) (models.ProfileUpdate, error) {
	checkable := f
	// An empty string is a clear request, not content to validate.
	for _, p := range []**string{&checkable.DisplayName, &checkable.Gender, &checkable.AvatarURL,
		&checkable.Bio, &checkable.Hobbies, &checkable.FavoriteJoke} {
		if *p != nil && **p == "" {
			*p = nil
		}
	}
	if err := check(checkable); err != nil {
		return models.ProfileUpdate{}, err
	}
	// A display name cannot be cleared, only replaced, and the backend has
	// no "no gender" value to clear to.
	if f.DisplayName != nil && *f.DisplayName == "" {
		return models.ProfileUpdate{}, errors.New("display_name cannot be empty")
	}
	if f.Gender != nil && *f.Gender == "" {
		return models.ProfileUpdate{}, errors.New("gender cannot be cleared, pick a value instead")
	}

	update := models.ProfileUpdate{
		DisplayName:  f.DisplayName,
		AvatarURL:    f.AvatarURL,
		Bio:          f.Bio,
		Hobbies:      f.Hobbies,
		FavoriteJoke: f.FavoriteJoke,
	}
	if f.Gender != nil {
		g := models.Gender(*f.Gender)
		update.Gender = &g
	}
	return update, nil
}

// check runs the validator and rewrites the first violation into a message
// fit for an inline form error.
func check(v any) error {
	err := formValidator.Struct(v)
	if err == nil {
		return nil
	}
	var violations validator.ValidationErrors
	if errors.As(err, &violations) && len(violations) > 0 {
		first := violations[0]
		field := strings.ToLower(first.Field())
		switch first.Tag() {
		case "required":
			return fmt.Errorf("%s is required", field)
		case "email":
			return errors.New("invalid email format")
		case "min":
			return fmt.Errorf("%s must be at least %s characters", field, first.Param())
		case "max":
			return fmt.Errorf("%s must be at most %s characters", field, first.Param())
		case "url":
			return fmt.Errorf("%s must be a valid URL", field)
		case "oneof":
			return fmt.Errorf("%s must be one of: %s", field, first.Param())
		default:
			return fmt.Errorf("invalid %s", field)
		}
	}
	return errors.New("invalid input")
}
