package countries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RegionAll is the sentinel region meaning "no region narrowing".
const RegionAll = "All"

// Client issues read requests against the country-data service. It is
// stateless and safe for concurrent use; the underlying http.Client is
// shared for connection pooling.
type Client struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client, e.g. for tests or custom
// transports. Nil clients are ignored.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithBaseURL points the client at a different service instance.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithLogger sets the logger for transport diagnostics
func WithLogger(log *slog.Logger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a gateway client for the public country-data service.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultConfig().BaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = slog.Default()
	}

	return c
}

// NewClientFromConfig creates a client from the provided Config.
func NewClientFromConfig(cfg Config, opts ...ClientOption) *Client {
	configOpts := []ClientOption{WithBaseURL(cfg.BaseURL)}
	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}
	configOpts = append(configOpts, opts...)
	return NewClient(configOpts...)
}

// All fetches every country the service knows about.
func (c *Client) All(ctx context.Context) ([]Country, error) {
	var out []Country
	if err := c.getJSON(ctx, "/all", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ByName fetches countries matching a partial or full common name. A service
// 404 means "no match" and yields an empty slice, not an error.
func (c *Client) ByName(ctx context.Context, name string) ([]Country, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyArgument
	}

	var out []Country
	err := c.getJSON(ctx, "/name/"+url.PathEscape(name), &out)
	if err != nil {
		if errors.Is(err, errStatusNotFound) {
			return []Country{}, nil
		}
		return nil, err
	}
	return out, nil
}

// ByRegion fetches all countries of a region. The sentinel RegionAll
// delegates to All, so callers can pass the UI's region selector through
// unchanged.
func (c *Client) ByRegion(ctx context.Context, region string) ([]Country, error) {
	if strings.TrimSpace(region) == "" {
		return nil, ErrEmptyArgument
	}
	if region == RegionAll {
		return c.All(ctx)
	}

	var out []Country
	if err := c.getJSON(ctx, "/region/"+url.PathEscape(region), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ByCode fetches a single country by its cca3 code. The service responds
// with a one-element array, which is unwrapped here.
func (c *Client) ByCode(ctx context.Context, code string) (*Country, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyArgument
	}

	var out []Country
	err := c.getJSON(ctx, "/alpha/"+url.PathEscape(code), &out)
	if err != nil {
		if errors.Is(err, errStatusNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

// errStatusNotFound is internal: ByName and ByCode translate it into their
// own contracts; it never escapes the package.
var errStatusNotFound = errors.New("countries.status_not_found")

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Join(ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("countries: request failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return errors.Join(ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errStatusNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		c.log.Warn("countries: unexpected status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return errors.Join(ErrFetchFailed, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Join(ErrFetchFailed, err)
	}
	return nil
}
