// Package apiclient talks to the HR REST API. Every collection follows the
// same contract: GET {prefix}/{resource}/all, GET/PUT/DELETE
// {prefix}/{resource}/{id} and POST {prefix}/{resource}/create, with bodies
// wrapped in a {success, message, data} envelope.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
	"github.com/noah-isme/hr-portal/pkg/middleware/requestid"
)

const maxBodyBytes = 10 << 20

// Config locates the backend.
type Config struct {
	BaseURL   string
	APIPrefix string
	Timeout   time.Duration
	Token     string
}

// Observer receives one call per finished backend request. status is 0 when
// the request never got a response.
type Observer interface {
	ObserveUpstream(resource, method string, status int, duration time.Duration)
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver reports request outcomes, typically to metrics.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// Client performs envelope-aware calls against the backend.
type Client struct {
	base     string
	token    string
	http     *http.Client
	logger   *zap.Logger
	observer Observer
}

// New validates cfg and builds a client.
func New(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("backend base url is required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q", cfg.BaseURL)
	}
	if prefix := strings.Trim(cfg.APIPrefix, "/"); prefix != "" {
		base += "/" + prefix
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		base:   base,
		token:  cfg.Token,
		http:   &http.Client{Timeout: timeout},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the resolved collection root, prefix included.
func (c *Client) BaseURL() string { return c.base }

// List fetches every record of resource into out.
func (c *Client) List(ctx context.Context, resource string, out interface{}) error {
	return c.do(ctx, http.MethodGet, resource, "all", nil, out)
}

// Get fetches a single record.
func (c *Client) Get(ctx context.Context, resource, id string, out interface{}) error {
	return c.do(ctx, http.MethodGet, resource, url.PathEscape(id), nil, out)
}

// Create posts a new record. out may be nil.
func (c *Client) Create(ctx context.Context, resource string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, resource, "create", body, out)
}

// Update replaces a record. out may be nil.
func (c *Client) Update(ctx context.Context, resource, id string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, resource, url.PathEscape(id), body, out)
}

// Delete removes a record.
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	return c.do(ctx, http.MethodDelete, resource, url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, resource, path string, body, out interface{}) error {
	endpoint := c.base + "/" + url.PathEscape(resource) + "/" + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build backend request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.HeaderKey, id)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(resource, method, 0, start)
		c.logger.Warn("backend request failed", zap.String("method", method), zap.String("resource", resource), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, fmt.Sprintf("%s service unavailable", resource))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	c.observe(resource, method, resp.StatusCode, start)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, fmt.Sprintf("read %s response", resource))
	}

	if err := decode(resp.StatusCode, raw, out); err != nil {
		c.logger.Warn("backend request rejected",
			zap.String("method", method),
			zap.String("resource", resource),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return err
	}
	c.logger.Debug("backend request", zap.String("method", method), zap.String("resource", resource), zap.Int("status", resp.StatusCode), zap.Duration("duration", time.Since(start)))
	return nil
}

func (c *Client) observe(resource, method string, status int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveUpstream(resource, method, status, time.Since(start))
	}
}
