package userapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Profile is the user record the service returns on successful auth calls.
// Token is present on login/register responses; profile-only fetches may
// omit it.
type Profile struct {
	Token          string `json:"token,omitempty"`
	Email          string `json:"email"`
	Name           string `json:"name,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// envelope is the service's uniform response wrapper.
type envelope struct {
	Data    *Profile `json:"data"`
	Message string   `json:"message,omitempty"`
}

// RegisterInput carries the payload for account creation. Password must be
// raw; the client applies the transport encoding itself, exactly once.
type RegisterInput struct {
	Email          string
	Name           string
	Password       string
	ProfilePicture string
}

// Client talks to the external user/auth service.
type Client struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client. This is where the
// Authenticator is wired in: pass a client whose Transport is an
// *Authenticator and every call carries the cached session token.
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

// NewClient creates a user/auth service client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultConfig().BaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
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
	configOpts = append(configOpts, opts...)
	return NewClient(configOpts...)
}

// Login exchanges credentials for a token-bearing profile. The password is
// transport-encoded here; callers pass it raw. Exactly one request is
// issued; there are no automatic retries.
func (c *Client) Login(ctx context.Context, email, password string) (*Profile, error) {
	payload := map[string]string{
		"email":    email,
		"password": EncodePassword(password),
	}

	profile, err := c.postJSON(ctx, "/auth/v1/login", payload)
	if err != nil {
		return nil, err
	}
	if profile.Token == "" {
		return nil, ErrMissingToken
	}
	return profile, nil
}

// Register creates an account and returns the token-bearing profile, which
// callers treat as an immediate login.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*Profile, error) {
	payload := map[string]string{
		"email":          input.Email,
		"password":       EncodePassword(input.Password),
		"name":           input.Name,
		"profilePicture": input.ProfilePicture,
	}

	profile, err := c.postJSON(ctx, "/auth/v1/register", payload)
	if err != nil {
		return nil, err
	}
	if profile.Token == "" {
		return nil, ErrMissingToken
	}
	return profile, nil
}

// UserByEmail fetches a profile. The service requires authentication, which
// the Authenticator transport provides when a session is cached.
func (c *Client) UserByEmail(ctx context.Context, email string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/users/v1/get-by-id/"+url.PathEscape(email), nil)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*Profile, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Profile, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("userapi: request failed",
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	var env envelope
	// The envelope is best-effort on error statuses; the message may be
	// absent and that's fine.
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if env.Data == nil {
		return nil, ErrEmptyResponse
	}
	return env.Data, nil
}
