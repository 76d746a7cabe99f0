package userapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/countrykit/pkg/session"
)

// SessionSource yields the current session record, or nil when absent. The
// lookup must be local and synchronous - never a network call - because it
// sits on the hot path of every outgoing request. *session.Manager satisfies
// this interface.
type SessionSource interface {
	Get(ctx context.Context) *session.Record
}

// Authenticator is an http.RoundTripper that decorates outgoing requests
// with the cached session credential. When a record with a token is present
// and the request does not already carry an explicit Authorization header,
// the token is attached as-is (the service expects the bare token, not a
// Bearer prefix). With no session, the request proceeds unauthenticated;
// rejecting it is the remote service's job.
//
// Every request is also stamped with an X-Request-ID for log correlation,
// unless the caller set one.
type Authenticator struct {
	sessions SessionSource
	next     http.RoundTripper
}

// NewAuthenticator wraps next (or http.DefaultTransport when nil) with
// credential attachment from the given session source.
func NewAuthenticator(sessions SessionSource, next http.RoundTripper) *Authenticator {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Authenticator{sessions: sessions, next: next}
}

// RoundTrip implements http.RoundTripper. The request is cloned before
// mutation, per the RoundTripper contract.
func (a *Authenticator) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())

	if out.Header.Get("X-Request-ID") == "" {
		out.Header.Set("X-Request-ID", uuid.NewString())
	}

	if out.Header.Get("Authorization") == "" && a.sessions != nil {
		if rec := a.sessions.Get(out.Context()); rec != nil && rec.Token != "" {
			out.Header.Set("Authorization", rec.Token)
		}
	}

	return a.next.RoundTrip(out)
}

// AuthenticatedHTTPClient is a convenience constructor for an *http.Client
// whose transport attaches session credentials.
func AuthenticatedHTTPClient(sessions SessionSource) *http.Client {
	return &http.Client{Transport: NewAuthenticator(sessions, nil)}
}
