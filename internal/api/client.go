// Package api wraps the backend REST surface. One client type per
// resource, all sharing a single explicit Client that applies the base
// URL, bearer credential, timeouts and the error policy for non-2xx
// responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// TokenSource supplies the current session token; "" means logged out.
// The storage package's Store satisfies this.
type TokenSource interface {
	Token() string
}

// Error is a failure with a human-readable message, either taken from the
// server's error payload or a client-side fallback. Status is 0 for
// failures that never reached the server.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Client is the shared HTTP client. It is constructed once at startup and
// passed to every resource client; there is no package-level singleton.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  TokenSource
	logger  *zap.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL        string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	Tokens         TokenSource
	Logger         *zap.Logger
}

// NewClient creates the shared HTTP client.
func NewClient(opts Options) *Client {
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 15 * time.Second
	}
	if opts.RequestTimeout == 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Client{
		http: &http.Client{
			Timeout: opts.RequestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: opts.ConnectTimeout,
				}).DialContext,
			},
		},
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		tokens:  opts.Tokens,
		logger:  opts.Logger,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends one request and returns the raw response body. Any HTTP status
// >= 400 is converted into an *Error carrying the server's message field
// when the body parses, or a generic "Request failed (<status>)"
// otherwise, so every caller's failure path sees a consistent string.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	return c.send(req)
}

// doMultipart sends one multipart upload request.
func (c *Client) doMultipart(ctx context.Context, path, field, filename string, file io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	return c.send(req)
}

func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, statusError(resp.StatusCode, raw)
	}
	return raw, nil
}

// statusError extracts the server's message from an error body. The body
// content is otherwise ignored: a >= 400 status is always a failure.
func statusError(status int, raw []byte) *Error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return &Error{Status: status, Message: body.Message}
	}
	return &Error{Status: status, Message: fmt.Sprintf("Request failed (%d)", status)}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
