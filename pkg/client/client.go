// Package client is the typed Go consumer of the shoplist API. Calls
// never return transport errors to the caller: a request that fails on
// the wire yields a nil response, and a request the server rejected
// yields the server's envelope with Success false. Callers branch on
// the Success flag, not on returned errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avargas/shoplist-backend/pkg/logger"
)

const defaultTimeout = 15 * time.Second

// Response mirrors the server envelope, keeping data raw so callers
// can decode it into the type they expect.
type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DecodeData unmarshals the data payload into dest.
func (r *Response) DecodeData(dest any) error {
	if r == nil || len(r.Data) == 0 {
		return fmt.Errorf("no data to decode")
	}
	return json.Unmarshal(r.Data, dest)
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Client talks to a shoplist API server.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *logger.Logger
}

// New validates the options and builds a client.
func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		token:   strings.TrimSpace(opts.Token),
		http:    httpClient,
		logger:  opts.Logger,
	}, nil
}

// SetToken swaps the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// do issues the request and parses the envelope. Any failure along the
// way is logged and collapsed into a nil response.
func (c *Client) do(ctx context.Context, method, path string, body any) *Response {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			c.warn(ctx, "encode request body", err)
			return nil
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		c.warn(ctx, "build request", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.warn(ctx, "request failed", err)
		return nil
	}
	defer resp.Body.Close()

	var envelope Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.warn(ctx, "decode response", err)
		return nil
	}
	return &envelope
}

func (c *Client) warn(ctx context.Context, msg string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Warn(c.logger.WithField(ctx, "error", err.Error()), "client: "+msg)
}
