package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/countrykit/pkg/session"
	"github.com/dmitrymomot/countrykit/pkg/userapi"
)

// Status is the authentication state of the app.
type Status string

const (
	StatusUnauthenticated Status = "unauthenticated"
	StatusAuthenticated   Status = "authenticated"
)

// Redirect tells the view layer where to navigate after a transition. The
// flow owns no navigation itself.
type Redirect string

const (
	RedirectNone  Redirect = ""
	RedirectLogin Redirect = "login"
	RedirectHome  Redirect = "home"
)

// UserClient is the slice of the user/auth service this flow needs.
// *userapi.Client satisfies it.
type UserClient interface {
	Login(ctx context.Context, email, password string) (*userapi.Profile, error)
	Register(ctx context.Context, input userapi.RegisterInput) (*userapi.Profile, error)
	UserByEmail(ctx context.Context, email string) (*userapi.Profile, error)
}

// Flow is the state machine over the single current-user variable:
// bootstrap, login, register and logout transitions between authenticated
// and unauthenticated. Failed transitions never mutate session state; the
// structured error tells the view what to render.
type Flow struct {
	sessions *session.Manager
	users    UserClient
	log      *slog.Logger

	status  Status
	current *session.Record
}

// Option configures the Flow.
type Option func(*Flow)

// WithLogger sets the logger for transition diagnostics
func WithLogger(log *slog.Logger) Option {
	return func(f *Flow) {
		if log != nil {
			f.log = log
		}
	}
}

// NewFlow creates an unauthenticated flow over the given session manager and
// user service client.
func NewFlow(sessions *session.Manager, users UserClient, opts ...Option) *Flow {
	f := &Flow{
		sessions: sessions,
		users:    users,
		status:   StatusUnauthenticated,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.log == nil {
		f.log = slog.Default()
	}

	return f
}

// Status returns the current authentication state.
func (f *Flow) Status() Status {
	return f.status
}

// CurrentUser returns the session record of the authenticated user, or nil.
func (f *Flow) CurrentUser() *session.Record {
	return f.current
}

// Bootstrap runs the app-start transition: a cached session is revalidated
// against the user service before it is trusted again. The fetched profile
// must belong to the cached email - a token for one account must not be
// re-trusted on the strength of another account's profile - and on success
// the session is rewritten with a fresh expiry. Any failure degrades to
// unauthenticated; the cached blob is left for the next start to retry.
func (f *Flow) Bootstrap(ctx context.Context) Redirect {
	rec := f.sessions.Get(ctx)
	if rec == nil || rec.Token == "" {
		f.status = StatusUnauthenticated
		f.current = nil
		return RedirectLogin
	}

	profile, err := f.users.UserByEmail(ctx, rec.Email)
	if err != nil {
		f.log.Warn("auth: session revalidation failed", slog.String("error", err.Error()))
		f.status = StatusUnauthenticated
		f.current = nil
		return RedirectLogin
	}

	if !strings.EqualFold(profile.Email, rec.Email) {
		f.log.Warn("auth: revalidated profile does not match cached session",
			slog.String("cached", rec.Email),
			slog.String("fetched", profile.Email),
		)
		f.status = StatusUnauthenticated
		f.current = nil
		return RedirectLogin
	}

	f.sessions.Put(ctx, rec)
	f.current = f.sessions.Get(ctx)
	f.status = StatusAuthenticated
	return RedirectHome
}

// Login validates the credentials locally, then issues exactly one service
// call. On success the session is written and the flow becomes
// authenticated; on any failure session state is untouched and the error is
// returned for the view to present. There are no automatic retries.
func (f *Flow) Login(ctx context.Context, input LoginInput) (Redirect, error) {
	if err := input.Validate(); err != nil {
		return RedirectNone, err
	}

	if input.Remember {
		// Accepted but deliberately without effect on TTL or storage.
		f.log.Debug("auth: remember-me requested", slog.String("email", input.Email))
	}

	profile, err := f.users.Login(ctx, input.Email, input.Password)
	if err != nil {
		return RedirectNone, err
	}

	f.adopt(ctx, profile)
	return RedirectHome, nil
}

// Register validates the form locally, then issues exactly one service
// call. A successful registration is an immediate login: the session is
// written without further confirmation.
func (f *Flow) Register(ctx context.Context, input RegisterInput) (Redirect, error) {
	if err := input.Validate(); err != nil {
		return RedirectNone, err
	}

	profile, err := f.users.Register(ctx, userapi.RegisterInput{
		Email:          input.Email,
		Name:           input.Name,
		Password:       input.Password,
		ProfilePicture: input.ProfilePicture,
	})
	if err != nil {
		return RedirectNone, err
	}

	f.adopt(ctx, profile)
	return RedirectHome, nil
}

// Logout clears the in-memory user and the session store. It always
// succeeds; there is no remote call to fail.
func (f *Flow) Logout(ctx context.Context) Redirect {
	f.current = nil
	f.status = StatusUnauthenticated
	f.sessions.Clear(ctx)
	return RedirectLogin
}

// adopt writes the freshly issued profile as the session and flips the flow
// to authenticated.
func (f *Flow) adopt(ctx context.Context, profile *userapi.Profile) {
	rec := &session.Record{
		Token:          profile.Token,
		Email:          profile.Email,
		Name:           profile.Name,
		ProfilePicture: profile.ProfilePicture,
	}

	f.sessions.Put(ctx, rec)

	// Read back the stamped record; if storage is broken the in-memory user
	// still carries the profile for this run.
	if stored := f.sessions.Get(ctx); stored != nil {
		f.current = stored
	} else {
		f.current = rec
	}
	f.status = StatusAuthenticated
}
