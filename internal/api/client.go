// Package api is the HTTP client for the remote Vita REST API.
//
// All business logic lives server-side; this package only shapes requests
// and decodes responses. Outgoing calls pass through an authenticating
// transport that attaches the bearer token and transparently refreshes it
// when expired (see transport.go).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/me/vita/internal/credstore"
	"github.com/me/vita/internal/session"
	"github.com/me/vita/internal/token"
)

// Client communicates with the Vita server API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      credstore.Store
	session    *session.Session
	logger     *slog.Logger

	// refreshGroup collapses concurrent refresh attempts into a single
	// network call; late arrivals wait for the in-flight result.
	refreshGroup singleflight.Group
}

// New creates a Vita API client with connection pooling. The session is
// hydrated with the store's cached profile snapshot, if any.
func New(baseURL string, store credstore.Store, logger *slog.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		session: session.Hydrate(store.LoadUser()),
		logger:  logger.With("component", "api"),
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	c.httpClient = &http.Client{
		Timeout:   30 * time.Second,
		Transport: &authTransport{client: c, base: transport},
	}

	return c
}

// Session returns the client's session state.
func (c *Client) Session() *session.Session {
	return c.session
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HasValidToken reports whether a non-expired access token is stored.
// Used by navigation guards to admit a user whose token was just
// refreshed but whose profile reload has not resolved yet.
func (c *Client) HasValidToken() bool {
	tok := c.store.AccessToken()
	return tok != "" && !token.IsExpired(tok)
}

// do executes an HTTP request against the API and decodes the response
// body into out (which may be nil for empty responses).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", "req_"+uuid.New().String()[:8])

	c.logger.Debug("request", "method", method, "url", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A refresh failure inside the transport surfaces here; keep
		// it intact so callers see the refresh error, not a wrapper.
		if unwrapped := unwrapURLError(err); unwrapped != nil {
			return unwrapped
		}
		return &Error{Status: 0, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.handleErrorResponse(req, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// handleErrorResponse turns a non-2xx response into an *Error and applies
// the 401 side effect: any unauthorized response on a protected call
// forces a logout. Public endpoints (login, register, refresh) surface
// their 401 to the caller untouched.
func (c *Client) handleErrorResponse(req *http.Request, resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	var errBody struct {
		Detail string `json:"detail"`
	}
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &errBody); err == nil {
		apiErr.Detail = errBody.Detail
	}

	if apiErr.IsUnauthorized() && !isPublicPath(req.URL.Path) {
		c.logger.Info("unauthorized response, clearing session", "path", req.URL.Path)
		c.forceLogout(req.Context())
	}

	return apiErr
}

// forceLogout clears both the durable credentials and the in-memory
// session. Errors from the store are logged and swallowed: a failed
// cleanup must not mask the original auth failure.
func (c *Client) forceLogout(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.logger.Warn("clear credentials failed", "error", err)
	}
	c.session.Clear()
}

// unwrapURLError digs the pipeline's own errors out of the *url.Error
// that http.Client wraps them in.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return nil
	}
	var apiErr *Error
	if errors.As(urlErr.Err, &apiErr) {
		return apiErr
	}
	if errors.Is(urlErr.Err, ErrNotAuthenticated) {
		return urlErr.Err
	}
	return nil
}
