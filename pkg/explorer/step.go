package explorer

import (
	"strings"

	"github.com/dmitrymomot/countrykit/pkg/countries"
)

// Step is the single reducer advancing the explorer: given the current state
// and one event it returns the next state plus the side effects to execute.
// It performs no I/O itself.
//
// Selection precedence on search/region changes:
//
//  1. region "All" + non-empty query: global name search (FetchByName),
//     never narrowed by region.
//  2. region "All" + empty query: the full base set, no fetch.
//  3. specific region: region-narrowed fetch; a non-empty query then
//     intersects by common-name match once the records arrive.
//
// Advanced filters apply last, re-derived over the region/search result on
// every toggle; removing every clause restores that result exactly.
func Step(s State, e Event) (State, []Effect) {
	switch ev := e.(type) {
	case Search:
		s.Query = strings.TrimSpace(ev.Query)
		return deriveOrFetch(s)

	case PickRegion:
		s.Region = ev.Region
		if s.Region == "" {
			s.Region = countries.RegionAll
		}
		return deriveOrFetch(s)

	case ToggleFilter:
		s.Filters.Toggle(ev.Clause)
		s.Visible = s.Filters.Apply(s.derived)
		return s, nil

	case BaseLoaded:
		s.Base = ev.Records
		s.derived = ev.Records
		s.Visible = s.Filters.Apply(s.derived)
		s.Loading = false
		return s, nil

	case FetchLoaded:
		records := ev.Records
		if s.Region != countries.RegionAll && s.Query != "" {
			records = narrowByName(records, s.Query)
		}
		s.derived = records
		s.Visible = s.Filters.Apply(s.derived)
		s.Loading = false
		return s, nil

	case FetchFailed:
		// Recoverable: the previously visible set stays on screen.
		s.Loading = false
		return s, nil
	}

	return s, nil
}

// deriveOrFetch resolves the region/search pipeline after a query or region
// change: either locally from the base set or by requesting a fetch, and in
// every case rewriting the URL to match the new state.
func deriveOrFetch(s State) (State, []Effect) {
	effects := []Effect{RewriteURL{Params: EncodeQuery(s)}}

	switch {
	case s.Region == countries.RegionAll && s.Query != "":
		s.Loading = true
		effects = append(effects, FetchByName{Query: s.Query})

	case s.Region == countries.RegionAll:
		s.derived = s.Base
		s.Visible = s.Filters.Apply(s.derived)
		s.Loading = false

	default:
		s.Loading = true
		effects = append(effects, FetchByRegion{Region: s.Region})
	}

	return s, effects
}
