package models

import "time"

// Gender enumerates the values the backend accepts for a profile's gender.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

// Profile is the current user's own profile as returned by /profile/me.
type Profile struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	DisplayName  string    `json:"display_name"`
	Gender       *Gender   `json:"gender,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Hobbies      *string   `json:"hobbies,omitempty"`
	FavoriteJoke *string   `json:"favorite_joke,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile is another user's profile as returned by
// /profile/profiles/{userId}; it carries only publicly visible fields.
type PublicProfile struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Gender      *Gender   `json:"gender,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	Hobbies     *string   `json:"hobbies,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfileUpdate is the payload for PUT /profile/me.
//
// Every field is a pointer: a nil field is omitted from the request and the
// backend leaves that field unchanged; a non-nil pointer to the empty string
// (or empty value) is sent and clears the field. Callers that want to clear
// a field must set an explicit empty value, never rely on omission.
type ProfileUpdate struct {
	DisplayName  *string `json:"display_name,omitempty"`
	Gender       *Gender `json:"gender,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Hobbies      *string `json:"hobbies,omitempty"`
	FavoriteJoke *string `json:"favorite_joke,omitempty"`
}

// IsZero reports whether the update carries no fields at all.
func (u ProfileUpdate) IsZero() bool {
	return u.DisplayName == nil && u.Gender == nil && u.AvatarURL == nil &&
		u.Bio == nil && u.Hobbies == nil && u.FavoriteJoke == nil
}

// ProfileVisibility is the result of the close-profile / reopen-profile
// settings calls.
type ProfileVisibility struct {
	Success  bool   `json:"success"`
	IsActive bool   `json:"is_active"`
	Message  string `json:"message"`
}
