// Package apiclient talks to the task-assignment API: the unauthenticated
// auth endpoints and the bearer-authenticated executor with refresh-and-retry.
package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

// DefaultTimeout is the per-request timeout.
const DefaultTimeout = 30 * time.Second

// Client resolves relative endpoint paths against a base URL and sends JSON requests.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *slog.Logger
}

// New creates a client with its own http.Client bounded by timeout.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout}, logger)
}

// NewWithHTTPClient creates a client around an existing http.Client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	// Relative paths resolve under the last segment only when it ends in a slash.
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url: %q", baseURL)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{base: base, http: httpClient, logger: logger}, nil
}

// response is a fully read HTTP response.
type response struct {
	status int
	body   []byte

	// apiErr is set for non-2xx statuses.
	apiErr error
}

func (r *response) ok() bool {
	return r.apiErr == nil
}

// unauthorized reports a 401 or 403.
func (r *response) unauthorized() bool {
	var gerr *googleapi.Error
	if !errors.As(r.apiErr, &gerr) {
		return false
	}
	return gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden
}

// send issues one request. A nil token sends no Authorization header.
func (c *Client) send(ctx context.Context, method, path string, body []byte, token *oauth2.Token, requestID string) (*response, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	target := c.base.ResolveReference(ref).String()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}
	if token != nil {
		token.SetAuthHeader(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return &response{status: resp.StatusCode, apiErr: err}, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return &response{status: resp.StatusCode, body: data}, nil
}

// isEmpty reports a body that carries no JSON value.
func isEmpty(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
