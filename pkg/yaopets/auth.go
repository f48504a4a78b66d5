package yaopets

import (
	"context"
	"encoding/json"
	"net/url"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	body, err := c.post(ctx, "/auth/register", req)
	if err != nil {
		return nil, err
	}
	return decodeSession(body)
}

func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body, err := c.post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	return decodeSession(body)
}

// GoogleCallback finishes an OAuth login with the provider's code.
func (c *Client) GoogleCallback(ctx context.Context, code string) (*Session, error) {
	body, err := c.get(ctx, "/auth/google/callback", url.Values{"code": {code}})
	if err != nil {
		return nil, err
	}
	return decodeSession(body)
}

// Me returns the user behind the current bearer token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	body, err := c.get(ctx, "/me", nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord[User](body)
}

func decodeSession(body []byte) (*Session, error) {
	var envelope struct {
		User        json.RawMessage `json:"user"`
		AccessToken string          `json:"accessToken"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	u, err := decodeRecord[User](envelope.User)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, AccessToken: envelope.AccessToken}, nil
}
