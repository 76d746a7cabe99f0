package session

import (
	"context"
	"log/slog"
	"time"
)

// Manager owns the lifecycle of the single cached session record: stamping
// expiry on write, evicting on expired or corrupt reads, clearing on logout.
//
// Storage failures never reach callers. A session that cannot be written or
// read degrades to "no session", which every consumer of this package must
// treat as a safe state; the Manager only logs the underlying cause.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
	log   *slog.Logger
}

// New creates a Manager with the given options. Without WithStore it keeps
// sessions in memory only.
func New(opts ...Option) *Manager {
	m := &Manager{
		ttl: DefaultConfig().TTL,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore()
	}
	if m.log == nil {
		m.log = slog.Default()
	}

	return m
}

// NewFromConfig creates a Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := []Option{WithTTL(cfg.TTL)}
	configOpts = append(configOpts, opts...)
	return New(configOpts...)
}

// Put stamps the record with a fresh expiry (now + TTL, overwriting whatever
// the record carried) and writes it to the singleton slot. Failures are
// logged and leave the prior slot content untouched; Put is best-effort, not
// transactional.
func (m *Manager) Put(ctx context.Context, rec *Record) {
	if rec == nil {
		return
	}

	stamped := *rec
	stamped.Expires = m.now().Add(m.ttl).UnixMilli()

	blob, err := stamped.Encode()
	if err != nil {
		m.log.Error("session: encode failed", slog.String("error", err.Error()))
		return
	}

	if err := m.store.Write(ctx, blob); err != nil {
		m.log.Error("session: write failed", slog.String("error", err.Error()))
	}
}

// Get reads the singleton slot. It returns nil when the slot is empty, the
// blob is corrupt, or the record is expired; in the latter two cases the slot
// is also evicted, so a Get is not purely observational.
func (m *Manager) Get(ctx context.Context) *Record {
	blob, err := m.store.Read(ctx)
	if err != nil {
		if err != ErrNoSession {
			m.log.Warn("session: read failed", slog.String("error", err.Error()))
		}
		return nil
	}

	rec, err := DecodeRecord(blob)
	if err != nil {
		m.log.Warn("session: corrupt blob evicted", slog.String("error", err.Error()))
		m.Clear(ctx)
		return nil
	}

	if rec.ExpiredAt(m.now()) {
		m.log.Debug("session: expired record evicted", slog.String("email", rec.Email))
		m.Clear(ctx)
		return nil
	}

	return rec
}

// Clear unconditionally empties the slot. It is idempotent and never reports
// an error; a missing slot is already the desired state.
func (m *Manager) Clear(ctx context.Context) {
	if err := m.store.Delete(ctx); err != nil {
		m.log.Warn("session: delete failed", slog.String("error", err.Error()))
	}
}

// TTL returns the configured validity window.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
