package userapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/countrykit/pkg/session"
	"github.com/dmitrymomot/countrykit/pkg/userapi"
)

// staticSessions is a SessionSource pinned to one record.
type staticSessions struct {
	rec *session.Record
}

func (s staticSessions) Get(ctx context.Context) *session.Record { return s.rec }

func recordingServer(t *testing.T) (*httptest.Server, *http.Header) {
	t.Helper()

	var seen http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		w.Write([]byte(`{"data":{"email":"a@b.com"}}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestAuthenticatorAttachesToken(t *testing.T) {
	srv, seen := recordingServer(t)

	hc := userapi.AuthenticatedHTTPClient(staticSessions{rec: &session.Record{Token: "tok-9", Email: "a@b.com"}})
	resp, err := hc.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "tok-9", seen.Get("Authorization"))
	assert.NotEmpty(t, seen.Get("X-Request-ID"))
}

func TestAuthenticatorNoSessionPassthrough(t *testing.T) {
	srv, seen := recordingServer(t)

	hc := userapi.AuthenticatedHTTPClient(staticSessions{rec: nil})

	assert.NotPanics(t, func() {
		resp, err := hc.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
	})

	assert.Empty(t, seen.Get("Authorization"))
}

func TestAuthenticatorRespectsExplicitHeader(t *testing.T) {
	srv, seen := recordingServer(t)

	hc := userapi.AuthenticatedHTTPClient(staticSessions{rec: &session.Record{Token: "cached", Email: "a@b.com"}})

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "explicit")

	resp, err := hc.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "explicit", seen.Get("Authorization"))
}

func TestAuthenticatorDoesNotMutateOriginalRequest(t *testing.T) {
	srv, _ := recordingServer(t)

	hc := userapi.AuthenticatedHTTPClient(staticSessions{rec: &session.Record{Token: "tok", Email: "a@b.com"}})

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := hc.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, req.Header.Get("Authorization"))
	assert.Empty(t, req.Header.Get("X-Request-ID"))
}

func TestAuthenticatorWithManager(t *testing.T) {
	ctx := context.Background()
	manager := session.New(session.WithTTL(time.Hour))
	manager.Put(ctx, &session.Record{Token: "managed", Email: "a@b.com"})

	srv, seen := recordingServer(t)

	hc := userapi.AuthenticatedHTTPClient(manager)
	resp, err := hc.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "managed", seen.Get("Authorization"))
}
