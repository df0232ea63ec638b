// Package backend is the HTTP client for the remote hotel backend. Every
// endpoint answers with the shared envelope {success, data} and failures
// are either transport errors, non-2xx statuses, or success=false bodies;
// all three surface as plain errors here.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	hc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: hc, logger: logger}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	var env envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&env).
		SetError(&env).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return c.unwrap("GET", path, resp, &env, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var env envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&env).
		SetError(&env).
		Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	return c.unwrap("POST", path, resp, &env, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	var env envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&env).
		SetError(&env).
		Put(path)
	if err != nil {
		return fmt.Errorf("PUT %s: %w", path, err)
	}
	return c.unwrap("PUT", path, resp, &env, out)
}

func (c *Client) unwrap(method, path string, resp *resty.Response, env *envelope, out any) error {
	if resp.IsError() {
		msg := env.Error
		if msg == "" {
			msg = resp.Status()
		}
		c.logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.String("error", msg),
		)
		return fmt.Errorf("%s %s: backend error: %s", method, path, msg)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "success=false"
		}
		return fmt.Errorf("%s %s: backend rejected request: %s", method, path, msg)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s %s: decode data: %w", method, path, err)
	}
	return nil
}
