package explorer

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/dmitrymomot/countrykit/pkg/countries"
	"github.com/dmitrymomot/countrykit/pkg/filter"
)

// ErrLoadFailed indicates a fetch behind a state change did not complete;
// the previously visible set is retained and the operation may be retried.
var ErrLoadFailed = errors.New("explorer.load_failed")

// Source supplies country records. *countries.Client satisfies it.
type Source interface {
	All(ctx context.Context) ([]countries.Country, error)
	ByName(ctx context.Context, name string) ([]countries.Country, error)
	ByRegion(ctx context.Context, region string) ([]countries.Country, error)
}

// URLSink receives the rewritten query parameters on every search/region
// change. A browser shell would push them into history; a terminal client
// can render them as a shareable permalink.
type URLSink func(params url.Values)

// Runner drives the reducer: it dispatches events through Step and executes
// the returned effects against the Source. There is no request cancellation:
// if a caller overlaps operations from multiple goroutines, a stale fetch
// resolving late can overwrite newer results. Revisit with generation
// counters if the kit ever grows a concurrent shell.
type Runner struct {
	src     Source
	state   State
	urlSink URLSink
	log     *slog.Logger
}

// RunnerOption configures the Runner.
type RunnerOption func(*Runner)

// WithURLSink registers the destination for URL rewrites.
func WithURLSink(sink URLSink) RunnerOption {
	return func(r *Runner) {
		r.urlSink = sink
	}
}

// WithRunnerLogger sets the logger for fetch diagnostics
func WithRunnerLogger(log *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRunner creates a Runner over the given record source.
func NewRunner(src Source, opts ...RunnerOption) *Runner {
	r := &Runner{
		src:   src,
		state: NewState(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.log == nil {
		r.log = slog.Default()
	}

	return r
}

// State returns the current explorer state.
func (r *Runner) State() State {
	return r.state
}

// Init fetches the base record set once and replays any search/region state
// carried in the URL parameters, so a shared or reloaded URL restores the
// same view.
func (r *Runner) Init(ctx context.Context, params url.Values) error {
	base, err := r.src.All(ctx)
	if err != nil {
		return errors.Join(ErrLoadFailed, err)
	}
	r.dispatch(ctx, BaseLoaded{Records: base})

	query, region := SeedFromQuery(params)
	if region != countries.RegionAll {
		if err := r.PickRegion(ctx, region); err != nil {
			return err
		}
	}
	if query != "" {
		if err := r.Search(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

// Search applies a new free-text query.
func (r *Runner) Search(ctx context.Context, query string) error {
	return r.dispatch(ctx, Search{Query: query})
}

// PickRegion applies a new region selection.
func (r *Runner) PickRegion(ctx context.Context, region string) error {
	return r.dispatch(ctx, PickRegion{Region: region})
}

// ToggleFilter flips an advanced filter clause.
func (r *Runner) ToggleFilter(ctx context.Context, clause filter.Clause) error {
	return r.dispatch(ctx, ToggleFilter{Clause: clause})
}

// dispatch runs one reducer step and interprets its effects. Fetch effects
// feed their outcome back in as events; a failed fetch leaves the previous
// visible set in place and surfaces ErrLoadFailed to the caller.
func (r *Runner) dispatch(ctx context.Context, e Event) error {
	next, effects := Step(r.state, e)
	r.state = next

	var firstErr error
	for _, effect := range effects {
		switch eff := effect.(type) {
		case RewriteURL:
			if r.urlSink != nil {
				r.urlSink(eff.Params)
			}

		case FetchAll:
			r.resolve(ctx, func() ([]countries.Country, error) {
				return r.src.All(ctx)
			}, &firstErr)

		case FetchByName:
			r.resolve(ctx, func() ([]countries.Country, error) {
				return r.src.ByName(ctx, eff.Query)
			}, &firstErr)

		case FetchByRegion:
			r.resolve(ctx, func() ([]countries.Country, error) {
				return r.src.ByRegion(ctx, eff.Region)
			}, &firstErr)
		}
	}

	return firstErr
}

func (r *Runner) resolve(ctx context.Context, fetch func() ([]countries.Country, error), firstErr *error) {
	records, err := fetch()
	if err != nil {
		r.log.Warn("explorer: fetch failed", slog.String("error", err.Error()))
		r.state, _ = Step(r.state, FetchFailed{Err: err})
		if *firstErr == nil {
			*firstErr = errors.Join(ErrLoadFailed, err)
		}
		return
	}
	r.state, _ = Step(r.state, FetchLoaded{Records: records})
}
