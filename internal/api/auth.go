package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/me/vita/internal/token"
	"github.com/me/vita/pkg/model"
)

// Login authenticates with email and password. On success the token pair
// is persisted and the profile is fetched and cached; on failure the
// error propagates with no change to stored credentials or session.
func (c *Client) Login(ctx context.Context, email, password string) (*model.UserProfile, error) {
	var pair model.TokenPair
	body := model.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &pair); err != nil {
		return nil, err
	}

	if err := c.store.SaveTokens(ctx, pair); err != nil {
		return nil, err
	}

	user, err := c.LoadProfile(ctx)
	if err != nil {
		return nil, err
	}

	c.logger.Info("logged in", "email", email)
	return user, nil
}

// Register creates a new account. It does not log the new user in.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// LoadProfile fetches the authenticated user's profile and caches it in
// the session and the credential store. Failures have no side effects on
// tokens.
func (c *Client) LoadProfile(ctx context.Context) (*model.UserProfile, error) {
	var user model.UserProfile
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}

	c.session.Set(&user)
	if err := c.store.SaveUser(ctx, &user); err != nil {
		c.logger.Warn("cache profile failed", "error", err)
	}
	return &user, nil
}

// Refresh exchanges the stored refresh token for a new token pair. With
// no refresh token stored it fails immediately without a network call.
// Any failure clears the session and all stored credentials before the
// error propagates: a failed refresh is unrecoverable and forces
// re-authentication.
func (c *Client) Refresh(ctx context.Context) (model.TokenPair, error) {
	return c.refreshTokens(ctx)
}

// refreshTokens is the single-flight entry point used by both Refresh
// and the transport. Concurrent callers that each discover an expired
// token share one refresh call instead of racing their own.
func (c *Client) refreshTokens(ctx context.Context) (model.TokenPair, error) {
	v, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		return c.doRefresh(ctx)
	})
	if err != nil {
		return model.TokenPair{}, err
	}
	return v.(model.TokenPair), nil
}

func (c *Client) doRefresh(ctx context.Context) (model.TokenPair, error) {
	refresh := c.store.RefreshToken()
	if refresh == "" {
		c.forceLogout(ctx)
		return model.TokenPair{}, ErrNotAuthenticated
	}

	var pair model.TokenPair
	body := model.RefreshRequest{RefreshToken: refresh}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, body, &pair); err != nil {
		c.logger.Info("token refresh failed, clearing session", "error", err)
		c.forceLogout(ctx)
		return model.TokenPair{}, err
	}

	// Persist before anyone dispatches with the new token.
	if err := c.store.SaveTokens(ctx, pair); err != nil {
		c.forceLogout(ctx)
		return model.TokenPair{}, err
	}

	c.logger.Debug("access token refreshed")
	return pair, nil
}

// Logout clears stored credentials and the session.
func (c *Client) Logout(ctx context.Context) error {
	err := c.store.Clear(ctx)
	c.session.Clear()
	c.logger.Info("logged out")
	return err
}

// Initialize hydrates the session at process start.
//
// With no stored token the session stays empty. With a fresh token the
// profile is re-fetched; a 401 clears the session (the response handler
// already does this), while any other failure keeps the cached profile
// so a transient network error does not log the user out. With an
// expired token a refresh is attempted; on success the profile is
// reloaded, on failure the session ends cleared.
func (c *Client) Initialize(ctx context.Context) {
	tok := c.store.AccessToken()
	if tok == "" {
		return
	}

	if !token.IsExpired(tok) {
		if _, err := c.LoadProfile(ctx); err != nil {
			var apiErr *Error
			if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
				c.logger.Info("stored token rejected, session cleared")
			} else {
				c.logger.Warn("profile reload failed, keeping cached profile", "error", err)
			}
		}
		return
	}

	if _, err := c.refreshTokens(ctx); err != nil {
		c.logger.Info("session expired", "error", err)
		return
	}
	if _, err := c.LoadProfile(ctx); err != nil {
		c.logger.Warn("profile reload after refresh failed", "error", err)
	}
}
