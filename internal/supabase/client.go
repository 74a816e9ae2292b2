// Package supabase provides a thin Supabase PostgREST client covering the
// handful of operations this service needs: table reads and writes plus
// stored-procedure calls. Filters are passed as already-encoded PostgREST
// query strings (e.g. "id=eq.42&select=credits").
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client performs Supabase REST calls against a single project.
type Client struct {
	restURL string
	apiKey  string
	http    *http.Client
}

// New creates a client for the given project URL and API key.
func New(projectURL, apiKey string) (*Client, error) {
	if projectURL == "" {
		return nil, fmt.Errorf("supabase project URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("supabase API key is required")
	}
	return &Client{
		restURL: strings.TrimRight(projectURL, "/") + "/rest/v1",
		apiKey:  apiKey,
		http:    http.DefaultClient,
	}, nil
}

// Select performs a GET on a table and decodes the row set into dest.
func (c *Client) Select(ctx context.Context, table, query string, dest interface{}) error {
	body, err := c.do(ctx, http.MethodGet, c.tableURL(table, query), nil, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dest)
}

// Insert performs a POST insert into a table. When dest is non-nil the
// inserted representation is requested and decoded into it.
func (c *Client) Insert(ctx context.Context, table string, record interface{}, dest interface{}) error {
	headers := map[string]string{}
	if dest != nil {
		headers["Prefer"] = "return=representation"
	}
	body, err := c.do(ctx, http.MethodPost, c.tableURL(table, ""), record, headers)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return json.Unmarshal(body, dest)
}

// Update performs a PATCH on the rows matched by query.
func (c *Client) Update(ctx context.Context, table, query string, patch interface{}) error {
	_, err := c.do(ctx, http.MethodPatch, c.tableURL(table, query), patch, nil)
	return err
}

// Delete removes the rows matched by query.
func (c *Client) Delete(ctx context.Context, table, query string) error {
	_, err := c.do(ctx, http.MethodDelete, c.tableURL(table, query), nil, nil)
	return err
}

// RPC calls a Postgres function exposed through PostgREST and decodes the
// result into dest when dest is non-nil.
func (c *Client) RPC(ctx context.Context, fn string, args interface{}, dest interface{}) error {
	body, err := c.do(ctx, http.MethodPost, c.restURL+"/rpc/"+url.PathEscape(fn), args, nil)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return json.Unmarshal(body, dest)
}

func (c *Client) tableURL(table, query string) string {
	u := c.restURL + "/" + url.PathEscape(table)
	if query != "" {
		u += "?" + query
	}
	return u
}

func (c *Client) do(ctx context.Context, method, rawURL string, payload interface{}, headers map[string]string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("supabase: %s %s returned %d: %s", method, rawURL, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
