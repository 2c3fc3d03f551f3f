package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mkravets/sparkle/internal/models"
)

// Feed fetches one page of swipeable candidates. page is 1-based.
func (c *Client) Feed(ctx context.Context, page, size int) (*models.FeedPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var resp models.FeedPage
	if err := c.do(ctx, http.MethodGet, pathWithQuery("/feed", q), nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Like records a like for the candidate identified by userID and reports
// whether the like was mutual.
func (c *Client) Like(ctx context.Context, userID int64) (*models.LikeResult, error) {
	var resp models.LikeResult
	path := fmt.Sprintf("/feed/%d/like", userID)
	if err := c.do(ctx, http.MethodPost, path, nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Skip tells the backend the candidate was passed over. Purely advisory:
// callers treat failures as non-fatal.
func (c *Client) Skip(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/feed/%d/skip", userID)
	return c.do(ctx, http.MethodPost, path, nil, nil, true)
}

// Matches fetches every confirmed mutual match for the current user.
func (c *Client) Matches(ctx context.Context) (*models.MatchList, error) {
	var resp models.MatchList
	if err := c.do(ctx, http.MethodGet, "/feed/matches", nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}
