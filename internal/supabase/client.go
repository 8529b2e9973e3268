// Package supabase is a thin PostgREST client, just enough surface for the
// founder-hub tables this client reads and writes directly.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrRequestFailed wraps every non-2xx PostgREST response.
var ErrRequestFailed = errors.New("supabase request failed")

// Client talks to a Supabase project's REST endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	anonKey    string
}

// New creates a Client for a project URL like "https://proj.supabase.co".
func New(httpClient *http.Client, projectURL, anonKey string) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	u, err := url.Parse(strings.TrimRight(projectURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing supabase URL %q: %w", projectURL, err)
	}

	return &Client{httpClient: httpClient, baseURL: u, anonKey: anonKey}, nil
}

// Select reads rows from a table. Query holds PostgREST filters ("select",
// "order", "id=eq.x" style pairs).
func (c *Client) Select(ctx context.Context, table string, query url.Values, dest any) error {
	req, err := c.newRequest(ctx, http.MethodGet, table, query, nil)
	if err != nil {
		return err
	}
	return c.do(req, dest)
}

// Insert writes rows to a table and decodes the representation the server
// returns into dest (pass nil to discard it).
func (c *Client) Insert(ctx context.Context, table string, rows, dest any) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding %s rows: %w", table, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, table, nil, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")
	return c.do(req, dest)
}

// Delete removes the rows matched by query.
func (c *Client) Delete(ctx context.Context, table string, query url.Values) error {
	req, err := c.newRequest(ctx, http.MethodDelete, table, query, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) newRequest(ctx context.Context, method, table string, query url.Values, body io.Reader) (*http.Request, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/rest/v1/" + table
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", table, err)
	}

	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%w: %d: %s", ErrRequestFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decoding %s response: %w", req.URL.Path, err)
	}
	return nil
}
