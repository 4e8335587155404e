package backend

import (
	"context"
	"net/http"

	"github.com/spec-kit/pawnshop-gateway/internal/domain"
)

// LoginResult is the upstream response to a credential exchange.
type LoginResult struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Profile builds the session profile cached alongside the token.
func (r LoginResult) Profile() domain.Profile {
	return domain.Profile{Username: r.Username, Email: r.Email}
}

// Login exchanges user credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new user account upstream and returns its login result.
func (c *Client) Register(ctx context.Context, username, email, password string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminLogin exchanges admin credentials for an admin-scoped bearer token.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateToken confirms a user token is still accepted upstream.
func (c *Client) ValidateToken(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/api/auth/validate", token, nil, nil)
}

// ValidateAdmin confirms an admin token still grants admin access.
func (c *Client) ValidateAdmin(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/api/admin/validate", token, nil, nil)
}

// Logout tears down the upstream session. Callers clear local storage
// regardless of the outcome.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
}
