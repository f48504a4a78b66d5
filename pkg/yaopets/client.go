// Package yaopets is the typed API client for the YaoPets backend. It owns
// the normalization boundary: whatever shape the server answers with (bare
// arrays or wrapped objects, `id` or `_id`), callers get stable types.
package yaopets

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"

	"resty.dev/v3"
)

type Client struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		client: resty.New().SetBaseURL(baseURL),
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

// SetToken attaches a bearer token to every subsequent request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken drops the bearer token, returning the client to anonymous use.
func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) r(ctx context.Context) *resty.Request {
	req := c.client.R().WithContext(ctx)
	c.mu.RLock()
	if c.token != "" {
		req.SetAuthToken(c.token)
	}
	c.mu.RUnlock()
	return req
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) check(res *resty.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	body := res.Bytes()
	if res.IsError() {
		apiErr := &APIError{Status: res.StatusCode()}
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			apiErr.Message = eb.Error
		}
		return nil, apiErr
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req := c.r(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	return c.check(req.Get(path))
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	req := c.r(ctx)
	if body != nil {
		req.SetBody(body)
	}
	return c.check(req.Post(path))
}

func (c *Client) patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.check(c.r(ctx).SetBody(body).Patch(path))
}

func (c *Client) delete(ctx context.Context, path string) ([]byte, error) {
	return c.check(c.r(ctx).Delete(path))
}
