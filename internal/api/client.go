package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rabbinur71/quickbite-frontend/internal/localstore"
)

// TokenKey is where the admin bearer token lives in the durable store.
const TokenKey = "quickbite_token"

const requestTimeout = 10 * time.Second

// RequestError carries the backend's error text for any non-2xx or failed
// call. Message falls back to a per-operation default when the backend gave
// none.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Client wraps the upstream REST backend. Every request carries the stored
// bearer token when one exists. A single unauthorized hook, registered once,
// fires on any 401/403 after the stored token has been erased; session
// invalidation is centralized here rather than scattered per call site.
type Client struct {
	baseURL        string
	http           *http.Client
	store          localstore.Store
	onUnauthorized func()
}

func NewClient(baseURL string, store localstore.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: requestTimeout,
		},
		store: store,
	}
}

// OnUnauthorized registers the 401/403 hook. Called once at wiring time.
func (c *Client) OnUnauthorized(hook func()) {
	c.onUnauthorized = hook
}

// Token returns the stored bearer token, or "" when none is stored.
func (c *Client) Token(ctx context.Context) string {
	token, err := c.store.Get(ctx, TokenKey)
	if err != nil {
		return ""
	}
	return string(token)
}

// SetToken persists the bearer token for subsequent requests.
func (c *Client) SetToken(ctx context.Context, token string) error {
	return c.store.Set(ctx, TokenKey, []byte(token))
}

// ClearToken erases the stored bearer token.
func (c *Client) ClearToken(ctx context.Context) error {
	return c.store.Delete(ctx, TokenKey)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, fallback string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &RequestError{Message: fallback}
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Message: fallback}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		_ = c.ClearToken(ctx)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fallback
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
			message = payload.Error
		}
		return &RequestError{Status: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &RequestError{Status: resp.StatusCode, Message: fallback}
		}
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path, fallback string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, "", nil, fallback, out)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}, fallback string, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return &RequestError{Message: fallback}
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(encoded), fallback, out)
}

// PostMultipart forwards an already-encoded multipart body, used by the admin
// create flows where images travel alongside the fields.
func (c *Client) PostMultipart(ctx context.Context, path, contentType string, body io.Reader, fallback string, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, contentType, body, fallback, out)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}, fallback string, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return &RequestError{Message: fallback}
	}
	return c.do(ctx, http.MethodPut, path, "application/json", bytes.NewReader(encoded), fallback, out)
}

func (c *Client) Delete(ctx context.Context, path, fallback string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, fallback, out)
}

// Health pings the backend's health endpoint.
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := c.Get(ctx, "/health", "Backend is not responding", &out); err != nil {
		return nil, err
	}
	return out, nil
}
