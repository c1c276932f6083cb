// Package api is the sole channel to the portfolio backend. It attaches
// the bearer token to every outgoing request, normalizes error payloads,
// and turns a 401 into a forced logout through a caller-provided hook.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultBaseURL is used when no backend address is configured.
const DefaultBaseURL = "http://localhost:3001"

// Error is the backend's error payload, carried verbatim to the user.
type Error struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error (status %d)", e.StatusCode)
	}
	return e.Message
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Client talks to the backend REST API. The zero value is not usable, use
// New.
type Client struct {
	base  *url.URL
	http  *http.Client
	token string

	// onUnauthorized is invoked on any 401 response, before the error is
	// returned. The session layer uses it to wipe the persisted session.
	onUnauthorized func()
}

// New creates a client for the given base URL (DefaultBaseURL when empty).
func New(baseURL string) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", baseURL, err)
	}
	return &Client{base: base, http: new(http.Client)}, nil
}

// SetToken sets the bearer token attached to every subsequent request. An
// empty token means unauthenticated.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current bearer token.
func (c *Client) Token() string { return c.token }

// OnUnauthorized registers the hook invoked when the backend answers 401.
func (c *Client) OnUnauthorized(fn func()) { c.onUnauthorized = fn }

// do performs one round-trip: marshals body (when non-nil), attaches the
// bearer token, and unmarshals the JSON response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	addr := c.base.JoinPath(path)
	if len(query) > 0 {
		addr.RawQuery = query.Encode()
	}

	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cannot encode request for %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, addr.String(), payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// A 401 is a fatal session failure, not a retryable call error.
		c.token = ""
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return decodeError(resp.StatusCode, content)
	}
	if resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, content)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("cannot decode %s %s response: %w", method, path, err)
	}
	return nil
}

// decodeError extracts the human-readable message from an error body. The
// backend usually answers {message, statusCode} but validation failures
// carry message as an array of strings, so the extraction is shape
// tolerant.
func decodeError(status int, body []byte) *Error {
	apiErr := &Error{StatusCode: status}

	var jobj any
	if err := json.Unmarshal(body, &jobj); err == nil {
		if jval, err := jsonpath.Get("$.message", jobj); err == nil {
			switch v := jval.(type) {
			case string:
				apiErr.Message = v
			case []any:
				var parts []string
				for _, item := range v {
					if s, ok := item.(string); ok {
						parts = append(parts, s)
					}
				}
				apiErr.Message = strings.Join(parts, "; ")
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
