package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mkravets/sparkle/internal/models"
)

// MyProfile fetches the current user's own profile.
func (c *Client) MyProfile(ctx context.Context) (*models.Profile, error) {
	var resp models.Profile
	if err := c.do(ctx, http.MethodGet, "/profile/me", nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile applies a partial update and returns the resulting profile.
// Nil fields in update are omitted from the request body and left unchanged
// server-side; non-nil empty values clear their field.
func (c *Client) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	var resp models.Profile
	if err := c.do(ctx, http.MethodPut, "/profile/me", update, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PublicProfile fetches another user's public profile by user id.
func (c *Client) PublicProfile(ctx context.Context, userID int64) (*models.PublicProfile, error) {
	var resp models.PublicProfile
	path := fmt.Sprintf("/profile/profiles/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CloseProfile hides the current user's profile from everyone's feed.
func (c *Client) CloseProfile(ctx context.Context) (*models.ProfileVisibility, error) {
	var resp models.ProfileVisibility
	if err := c.do(ctx, http.MethodPost, "/settings/close-profile", nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReopenProfile makes a previously closed profile visible again.
func (c *Client) ReopenProfile(ctx context.Context) (*models.ProfileVisibility, error) {
	var resp models.ProfileVisibility
	if err := c.do(ctx, http.MethodPost, "/settings/reopen-profile", nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}
