package api

import (
	"context"
	"net/http"

	"github.com/etnz/cryptofolio"
)

// LoginRequest is the credentials payload for /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for /auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginResponse carries the bearer token and the authenticated identity.
type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	User        cryptofolio.User `json:"user"`
}

// Login exchanges credentials for a bearer token. It does not store the
// token, that is the session store's business.
func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp)
	return resp, err
}

// Register creates an account and returns the created identity.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (cryptofolio.User, error) {
	var user cryptofolio.User
	err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &user)
	return user, err
}
