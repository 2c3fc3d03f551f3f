package api

import (
	"context"
	"net/http"

	"github.com/mkravets/sparkle/internal/models"
)

// Login exchanges credentials for a session token and the user record.
// The caller (session manager) is responsible for storing the token.
func (c *Client) Login(ctx context.Context, creds models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns the same shape as Login.
func (c *Client) Register(ctx context.Context, payload models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", payload, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the user the stored token belongs to.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout invalidates the server-side session. It does not touch the stored
// token; the session manager clears it regardless of this call's outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, true)
}
