// Package client is the typed HTTP client for the Moodify API: a
// dispatcher that decorates outbound requests with the stored bearer
// token, plus thin resource clients shaping each domain operation into a
// request. No business logic lives here; authorization is enforced by
// the backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/moodify/moodctl/session"
)

// DefaultBaseURL is used when no API address is configured.
const DefaultBaseURL = "http://localhost:8080/api"

const requestIDHeader = "X-Request-ID"

// Config configures a Client. Zero fields get defaults in New.
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:8080/api. Empty
	// falls back to DefaultBaseURL with a logged warning.
	BaseURL string
	// HTTPClient is the underlying transport. Defaults to
	// http.DefaultClient; no extra timeout is layered on top.
	HTTPClient *http.Client
	// Sessions supplies the current session at dispatch time. Required.
	Sessions session.Store
	Logger   zerolog.Logger
}

// Client issues requests against the Moodify API. Every request carries
// an Authorization header iff a session exists at dispatch time; the
// outcome of the transport is propagated to the caller unchanged.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions session.Store
	log      zerolog.Logger
}

// New builds a Client from cfg, applying documented defaults.
func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
		cfg.Logger.Warn().
			Str("fallback", DefaultBaseURL).
			Msg("no API base URL configured, using localhost fallback")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:  strings.TrimRight(base, "/"),
		http:     httpClient,
		sessions: cfg.Sessions,
		log:      cfg.Logger,
	}
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do shapes and dispatches one request. Non-2xx responses become
// *APIError with the server message decoded at this boundary; transport
// failures are returned as-is. out may be nil for operations whose
// response body is ignored.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	sess, ok := c.sessions.Current()
	if ok {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Bool("authenticated", ok).
		Msg("dispatching request")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &APIError{
			Status:    resp.StatusCode,
			Message:   decodeErrorMessage(resp.Body),
			RequestID: requestID,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// decodeErrorMessage pulls the server message out of an error body. The
// backend uses "message"; "error" is accepted for compatibility with its
// framework-level responses.
func decodeErrorMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// pageQuery shapes the shared pagination parameters: page is zero-based,
// size must be positive. Values out of range fall back to the defaults
// (page 0, size DefaultPageSize).
func pageQuery(page, size int) url.Values {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}

// DefaultPageSize is the page size used when the caller passes a
// non-positive size.
const DefaultPageSize = 10
