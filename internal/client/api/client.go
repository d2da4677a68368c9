// Package api implements the HTTP client for the hosted data and auth
// backend. The backend exposes per-table REST operations with
// query-string filters; per-user isolation is enforced server-side.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/momentumos/momentum/pkg/api"
)

//go:generate go tool moq -out client_mock.go . ClientAPI

// ClientAPI is the remote data client surface consumed by the sync and
// data services.
type ClientAPI interface {
	// Insert adds rows to a table.
	Insert(ctx context.Context, table string, rows any) error

	// Update patches the row with the given id.
	Update(ctx context.Context, table, id string, patch any) error

	// Delete removes the row with the given id.
	Delete(ctx context.Context, table, id string) error

	// Upsert inserts the row, merging on conflict over the given columns.
	Upsert(ctx context.Context, table string, row any, conflictKeys []string) error

	// Select reads filtered, ordered rows into dest (a pointer to a slice).
	Select(ctx context.Context, table string, q Query, dest any) error

	// Login exchanges credentials for tokens via the hosted auth service.
	Login(ctx context.Context, email, password string) (*api.TokenResponse, error)

	// SignUp registers a new user.
	SignUp(ctx context.Context, email, password string) (*api.TokenResponse, error)

	// Healthz probes backend reachability. Used as the connectivity signal.
	Healthz(ctx context.Context) error

	// SetToken installs the bearer token sent with data requests.
	SetToken(token string)
}

// Client is the HTTP implementation of ClientAPI.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	token      string
}

var _ ClientAPI = (*Client)(nil)

// NewClient creates an API client for the given backend URL. apiKey is
// the project's public API key, sent with every request.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry auth headers across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken installs the bearer token used for data requests. Called once
// after login or session restore, before any concurrent use.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Insert adds rows to a table.
func (c *Client) Insert(ctx context.Context, table string, rows any) error {
	path := fmt.Sprintf("/rest/v1/%s", table)
	if err := c.doRequest(ctx, http.MethodPost, path, nil, rows, nil); err != nil {
		return fmt.Errorf("insert into %s failed: %w", table, err)
	}
	return nil
}

// Update patches the row with the given id.
func (c *Client) Update(ctx context.Context, table, id string, patch any) error {
	path := fmt.Sprintf("/rest/v1/%s?%s", table, Query{Filters: []Filter{Eq("id", id)}}.Encode())
	if err := c.doRequest(ctx, http.MethodPatch, path, nil, patch, nil); err != nil {
		return fmt.Errorf("update %s failed: %w", table, err)
	}
	return nil
}

// Delete removes the row with the given id.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	path := fmt.Sprintf("/rest/v1/%s?%s", table, Query{Filters: []Filter{Eq("id", id)}}.Encode())
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete from %s failed: %w", table, err)
	}
	return nil
}

// Upsert inserts the row, merging on conflict over the given columns.
func (c *Client) Upsert(ctx context.Context, table string, row any, conflictKeys []string) error {
	path := fmt.Sprintf("/rest/v1/%s", table)
	if len(conflictKeys) > 0 {
		path += "?on_conflict=" + strings.Join(conflictKeys, ",")
	}
	headers := map[string]string{"Prefer": "resolution=merge-duplicates"}
	if err := c.doRequest(ctx, http.MethodPost, path, headers, row, nil); err != nil {
		return fmt.Errorf("upsert into %s failed: %w", table, err)
	}
	return nil
}

// Select reads filtered, ordered rows into dest.
func (c *Client) Select(ctx context.Context, table string, q Query, dest any) error {
	path := fmt.Sprintf("/rest/v1/%s", table)
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, dest); err != nil {
		return fmt.Errorf("select from %s failed: %w", table, err)
	}
	return nil
}

// Login exchanges credentials for tokens.
func (c *Client) Login(ctx context.Context, email, password string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	req := api.Credentials{Email: email, Password: password}
	err := c.doRequest(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// SignUp registers a new user.
func (c *Client) SignUp(ctx context.Context, email, password string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	req := api.Credentials{Email: email, Password: password}
	err := c.doRequest(ctx, http.MethodPost, "/auth/v1/signup", nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("signup request failed: %w", err)
	}
	return &resp, nil
}

// Healthz probes backend reachability.
func (c *Client) Healthz(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodGet, "/auth/v1/health", nil, nil, nil)
}

// doRequest performs one HTTP round-trip. Non-2xx responses become
// StatusErrors so callers can classify retryable vs terminal failures.
func (c *Client) doRequest(ctx context.Context, method, path string, headers map[string]string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Text() != "" {
			return &StatusError{Code: resp.StatusCode, Message: errResp.Text()}
		}
		return &StatusError{Code: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
