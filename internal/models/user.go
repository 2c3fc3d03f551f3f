// Package models defines the wire types exchanged with the Sparkle backend.
// Field names follow the backend's JSON contract; optional fields use
// pointers so "absent" and "explicitly empty" stay distinguishable.
package models

import "time"

// User is the authenticated account identity as returned by /auth/me
// and embedded in auth responses.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest carries credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries account-creation credentials for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and register: the created/authenticated
// user plus the session token that authorizes subsequent calls.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// MessageResponse is the generic `{"message": ...}` envelope used by
// endpoints that have nothing else to say (logout, skip).
type MessageResponse struct {
	Message string `json:"message"`
}
