// Package oauth exchanges Google authorization codes for verified user
// identities. Only the code-for-token exchange and the userinfo lookup live
// here; session issuance stays in the auth service.
package oauth

import (
	"context"
	"fmt"

	"resty.dev/v3"
)

const (
	defaultTokenURL    = "https://oauth2.googleapis.com/token"
	defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type GoogleClient struct {
	client       *resty.Client
	tokenURL     string
	userInfoURL  string
	clientID     string
	clientSecret string
	redirectURL  string
}

func NewGoogleClient(clientID, clientSecret, redirectURL string) *GoogleClient {
	return &GoogleClient{
		client:       resty.New(),
		tokenURL:     defaultTokenURL,
		userInfoURL:  defaultUserInfoURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURL:  redirectURL,
	}
}

// WithEndpoints overrides the Google endpoints, used by tests.
func (g *GoogleClient) WithEndpoints(tokenURL, userInfoURL string) *GoogleClient {
	g.tokenURL = tokenURL
	g.userInfoURL = userInfoURL
	return g
}

func (g *GoogleClient) Close() error {
	return g.client.Close()
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type UserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Exchange trades an authorization code for the user's Google identity.
func (g *GoogleClient) Exchange(ctx context.Context, code string) (*UserInfo, error) {
	res, err := g.client.R().
		WithContext(ctx).
		SetFormData(map[string]string{
			"code":          code,
			"client_id":     g.clientID,
			"client_secret": g.clientSecret,
			"redirect_uri":  g.redirectURL,
			"grant_type":    "authorization_code",
		}).
		SetResult(&tokenResp{}).
		Post(g.tokenURL)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("google token exchange: status %d", res.StatusCode())
	}
	token := res.Result().(*tokenResp)

	ures, err := g.client.R().
		WithContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&UserInfo{}).
		Get(g.userInfoURL)
	if err != nil {
		return nil, err
	}
	if ures.IsError() {
		return nil, fmt.Errorf("google userinfo: status %d", ures.StatusCode())
	}

	info := ures.Result().(*UserInfo)
	if info.Email == "" {
		return nil, fmt.Errorf("google userinfo: no email in response")
	}
	return info, nil
}
