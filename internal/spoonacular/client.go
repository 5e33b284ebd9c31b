// Package spoonacular is a small client for the Spoonacular ingredient
// autocomplete endpoint.
package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pantrypick/internal/domain"
)

// maxErrorBody bounds how much of a failed response is read for its message
const maxErrorBody = 64 << 10

// Client calls GET <endpoint>?apiKey=<key>&query=<q>&number=<n>
type Client struct {
	endpoint *url.URL
	apiKey   string
	http     *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets a per-request timeout on the default http.Client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Timeout: d, Transport: c.http.Transport}
		}
	}
}

// New creates a client. The endpoint must be an absolute URL.
func New(endpoint, apiKey string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: must be absolute", endpoint)
	}

	c := &Client{
		endpoint: u,
		apiKey:   apiKey,
		http:     &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Autocomplete returns up to number suggestions for query, in API order
func (c *Client) Autocomplete(ctx context.Context, query string, number int) ([]domain.Suggestion, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(query, number), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", c.redactErr(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: c.redactErr(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, readAPIError(resp)
	}

	var suggestions []domain.Suggestion
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&suggestions); err != nil {
		return nil, &ParseError{Err: err}
	}
	// the array must be the whole body
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON array")
		}
		return nil, &ParseError{Err: err}
	}
	if suggestions == nil {
		// "null" decodes cleanly but is not a list
		return nil, &ParseError{Err: errors.New("expected a JSON array, got null")}
	}
	return suggestions, nil
}

func (c *Client) requestURL(query string, number int) string {
	u := *c.endpoint
	q := u.Query()
	q.Set("apiKey", c.apiKey)
	q.Set("query", query)
	q.Set("number", strconv.Itoa(number))
	u.RawQuery = q.Encode()
	return u.String()
}

// Redact removes the API key from s
func (c *Client) Redact(s string) string {
	if c.apiKey == "" {
		return s
	}
	s = strings.ReplaceAll(s, url.QueryEscape(c.apiKey), "REDACTED")
	return strings.ReplaceAll(s, c.apiKey, "REDACTED")
}

// redactErr strips the key from the URL carried by *url.Error
func (c *Client) redactErr(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = c.Redact(uerr.URL)
	}
	return err
}

func readAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload struct {
		Status  string `json:"status"`
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}
	return apiErr
}
