// Package client talks to the Irys Gallery API rooted at a base URL,
// by default config.APIBaseURL.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/zagvozdeen/irys-gallery/config"
	"github.com/zagvozdeen/irys-gallery/internal/gallery"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient uses hc for requests. A nil hc keeps the default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the request timeout on a copy of the current client,
// so a shared client passed to WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default returns a client for the API base URL selected at process start.
func Default(opts ...Option) *Client {
	return New(config.APIBaseURL, opts...)
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	_, err := c.do(ctx, http.MethodGet, "health", nil, nil, &h)
	return h, err
}

// ConnectWallet returns the user for wallet; created is true when the API
// registered it by this call.
func (c *Client) ConnectWallet(ctx context.Context, wallet string) (gallery.User, bool, error) {
	var resp struct {
		User gallery.User `json:"user"`
	}
	body := map[string]string{"wallet_address": wallet}
	status, err := c.do(ctx, http.MethodPost, "users/connect", nil, body, &resp)
	if err != nil {
		return gallery.User{}, false, err
	}
	return resp.User, status == http.StatusCreated, nil
}

func (c *Client) ListArtworks(ctx context.Context, q gallery.ArtworkQuery) ([]gallery.Artwork, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	var resp struct {
		Artworks []gallery.Artwork `json:"artworks"`
	}
	if _, err := c.do(ctx, http.MethodGet, "artworks", params, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Artworks, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, in, out any) (int, error) {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return 0, fmt.Errorf("failed to join url: %w", err)
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var e struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&e) == nil {
			apiErr.Message = e.Error
		}
		return resp.StatusCode, apiErr
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, nil
}
