// Package fetcher provides cached, rate-limited access to the remote
// read-only services: the PLC directory, the AppView, and the account's
// personal data server.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client wraps an http.Client with a per-run response cache. Every read
// goes through GetJSON, so a repeated identical URL within one run costs
// at most one network round trip. The cache has no TTL and no eviction;
// a fresh Client is created per pipeline run.
//
// Access is sequential within a run (collections, windows, and pages are
// retrieved one at a time), so the cache map needs no locking. Parallel
// retrieval would require per-key locking or single-flight first.
type Client struct {
	http  *http.Client
	cache map[string][]byte

	// OnPage, when set, is invoked after each completed network request.
	// Cache hits do not count; they are not new work.
	OnPage func()
}

// NewClient creates a Client for one pipeline run. A nil httpClient gets
// a default client with the rate-limited transport.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Transport: &RateLimitTransport{}}
	}
	return &Client{
		http:  httpClient,
		cache: make(map[string][]byte),
	}
}

// GetJSON fetches url and decodes the response body into out, serving
// repeated URLs from the run cache.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	if body, ok := c.cache[url]; ok {
		return json.Unmarshal(body, out)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", url, err)
	}

	c.cache[url] = body
	if c.OnPage != nil {
		c.OnPage()
	}
	return json.Unmarshal(body, out)
}
