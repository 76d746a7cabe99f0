// Package explorer is the search/filter/browse engine: it combines
// free-text search, a region selector and composable population filters over
// a base record set fetched once, while keeping the visible subset, loading
// flag and the addressable URL state consistent.
//
// The engine is an explicit reducer. Step takes (state, event) and returns
// (state, effects); network fetches and URL rewrites are enumerated as
// effect values rather than happening implicitly. The Runner is the default
// interpreter, executing effects against a record Source and feeding fetch
// outcomes back in as events. A view layer can equally drive Step itself.
//
//	┌──────┐  events  ┌──────┐  effects  ┌────────┐
//	│ View │ ───────► │ Step │ ────────► │ Runner │ ──► Source, URL
//	└──────┘          └──────┘           └────────┘
//	    ▲                 state'             │ fetch outcomes as events
//	    └────────────────────────────────────┘
//
// # Usage
//
//	runner := explorer.NewRunner(countries.NewClient(),
//	    explorer.WithURLSink(func(params url.Values) { /* push history */ }),
//	)
//	if err := runner.Init(ctx, initialParams); err != nil { /* retryable */ }
//
//	_ = runner.Search(ctx, "and")
//	_ = runner.PickRegion(ctx, "Europe")
//	_ = runner.ToggleFilter(ctx, filter.Clause{Type: filter.TypePopulation, Value: filter.PopulationLT1M})
//	visible := runner.State().Visible
package explorer
