// Package backend is the shared HTTP client of the association REST service.
// Every call carries the bearer token of the console user found in the
// request context.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"association-console/pkg/metrics"
	"association-console/pkg/utils"
)

// Client talks to the association REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	logger     *zap.Logger

	// staticToken is used when the context carries none (CLI usage).
	staticToken string
}

type Option func(*Client)

// WithHTTPClient replaces the default client, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithStaticToken sets the token used when the context has no token.
func WithStaticToken(token string) Option {
	return func(c *Client) { c.staticToken = token }
}

// New builds a client. timeout bounds a whole JSON or multipart exchange,
// but only the wait for the response headers of a download: file bodies
// stream for as long as the console request lives.
func New(baseURL string, timeout time.Duration, logger *zap.Logger, opts ...Option) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = timeout

	c := &Client{
		httpClient: &http.Client{Transport: transport},
		baseURL:    baseURL,
		timeout:    timeout,
		logger:     logger.Named("backend_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// exchangeContext bounds a call whose body is read in full before returning.
func (c *Client) exchangeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// do sends one request and returns the response when the status is 2xx.
// The caller closes the body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	token, err := utils.GetTokenFromCtx(ctx)
	if err != nil {
		token = c.staticToken
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if rid := utils.GetRequestIDFromCtx(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	status := "error"
	if resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	metrics.BackendRequestDuration.WithLabelValues(method, routeLabel(path), status).Observe(time.Since(start).Seconds())

	if err != nil {
		c.logger.Error("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		backendErr := decodeError(resp, method, path)
		c.logger.Warn("backend answered with an error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", backendErr.Message),
			zap.Any("fields", backendErr.Fields),
		)
		return nil, backendErr
	}

	c.logger.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)
	return resp, nil
}

// decodeJSON reads a successful response into out. An empty body or a nil
// out is not an error.
func decodeJSON(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

var numericSegment = regexp.MustCompile(`/[0-9]+(/|$)`)

// routeLabel keeps metric cardinality low: /dons/42 -> /dons/:id
func routeLabel(path string) string {
	for numericSegment.MatchString(path) {
		path = numericSegment.ReplaceAllString(path, "/:id$1")
	}
	return path
}
