// Package upstream is a typed HTTP client for the marketplace REST API. The
// backend itself is a black box; this package only shapes requests, decodes
// responses and classifies failures.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the marketplace API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
}

// NewClient creates a client with a fixed request timeout. The timeout is the
// only cancellation boundary; callers pass a context for anything stricter.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// WithAuthToken returns a copy of the client that sends a bearer token.
// Without a token the session is a guest session and some endpoints answer 401.
func (c *Client) WithAuthToken(token string) *Client {
	clone := *c
	clone.authToken = token
	return &clone
}

// get issues a GET and returns the response for the caller to inspect the
// status. Transport failures come back classified as network errors.
func (c *Client) get(ctx context.Context, op, path string, query url.Values) (*http.Response, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("upstream: invalid url for %s: %w", op, err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("upstream: building %s request: %w", op, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(op, err)
	}
	return resp, nil
}

// post issues a POST with a JSON body.
func (c *Client) post(ctx context.Context, op, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("upstream: encoding %s body: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("upstream: building %s request: %w", op, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(op, err)
	}
	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
}

// decode drains and closes the body after unmarshalling into out.
func decode(resp *http.Response, op string, out any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("upstream: decoding %s response: %w", op, err)
	}
	return nil
}

// discard closes an unwanted response body.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
