// Package backend implements the HTTP adapters for the remote job-board
// REST API. A shared Client owns bearer injection and the cross-cutting
// unauthorized hook; the typed API adapters build on it.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
)

// Client is the shared HTTP client for all backend adapters. When a token
// source is set, every request carries "Authorization: Bearer <token>". Any
// 401 reply fires the unauthorized hook before the error is returned,
// regardless of which adapter issued the request.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	log            zerolog.Logger
	tokenSource    func() string
	onUnauthorized func()
}

func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// SetTokenSource installs the bearer-token supplier, consulted on every
// request. A nil source or an empty token leaves the request anonymous.
func (c *Client) SetTokenSource(fn func() string) { c.tokenSource = fn }

// SetUnauthorizedHook installs the callback fired whenever any request
// comes back 401. The session lifecycle owner subscribes here to invalidate
// its state.
func (c *Client) SetUnauthorizedHook(fn func()) { c.onUnauthorized = fn }

// errorEnvelope covers the two failure body shapes the backend emits.
type errorEnvelope struct {
	Message string `json:"message"`
	ErrText string `json:"error"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, query, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failure(req, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}

func (c *Client) failure(req *http.Request, resp *http.Response) error {
	var envelope errorEnvelope
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(raw, &envelope)

	msg := envelope.Message
	if msg == "" {
		msg = envelope.ErrText
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Msg("backend request failed")

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	return &domain.APIError{StatusCode: resp.StatusCode, Message: msg}
}

// upload posts a single file as multipart form data under the "file" field.
func (c *Client) upload(ctx context.Context, path, filename string, content io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("read upload content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, out)
}
