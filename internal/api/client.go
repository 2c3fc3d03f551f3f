// Package api implements the HTTP client for the Sparkle backend.
//
// The client owns the transport-level concerns every call shares: base URL,
// request timeout, JSON encoding, the bearer token header, a per-request
// X-Request-ID, and the global 401 handler. Service packages (session,
// discovery, profile, ...) call the typed endpoint methods and never touch
// http directly.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/sparkle/internal/logging"
	"github.com/mkravets/sparkle/internal/token"
)

// errorEnvelope is the backend's error body: {"detail": "..."}.
type errorEnvelope struct {
	Detail string `json:"detail"`
}

// Client is the shared HTTP client for all backend calls.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  token.Store
	log     logging.Logger

	// onUnauthorized runs after any 401 response, once the stored token
	// has been cleared. The session manager registers itself here so a
	// 401 from any component forces the session into Unauthenticated.
	onUnauthorized func()
}

// New creates a Client. baseURL must include the scheme; a trailing slash is
// tolerated. timeout bounds every request (there is no per-call override:
// a timeout surfaces as an ordinary failure, never a retry).
func New(baseURL string, timeout time.Duration, tokens token.Store, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// SetUnauthorizedHook registers the callback invoked on any 401 response.
// Must be called during wiring, before the client is shared.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// do issues one request and decodes the JSON response into out (when out is
// non-nil). authed controls whether the stored bearer token is attached.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, authed bool) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authed {
		if t := c.tokens.Get(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.handleErrorResponse(ctx, method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// handleErrorResponse converts a non-2xx response into an *Error. A 401
// additionally clears the stored token and fires the unauthorized hook;
// this is the single place the forced-sign-out side effect lives.
func (c *Client) handleErrorResponse(ctx context.Context, method, path string, resp *http.Response) error {
	var envelope errorEnvelope
	// Error bodies are best-effort JSON; a malformed body still yields a
	// usable *Error with the status code alone.
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&envelope)

	apiErr := &Error{Status: resp.StatusCode, Detail: envelope.Detail}

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	c.log.Warn(ctx, "backend error", "method", method, "path", path,
		"status", resp.StatusCode, "detail", envelope.Detail)
	return fmt.Errorf("%s %s: %w", method, path, apiErr)
}

func pathWithQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
