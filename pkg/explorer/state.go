package explorer

import (
	"github.com/dmitrymomot/countrykit/pkg/countries"
	"github.com/dmitrymomot/countrykit/pkg/filter"
)

// State is the complete browsing state of the explorer view: the base record
// set fetched once, the currently visible subset, and the search, region and
// advanced-filter selections driving it.
//
// State is advanced exclusively through Step. The derived field caches the
// exact result of the region/search pipeline (before advanced filters) so
// filter toggles re-apply over it instead of layering over already-filtered
// output; it is never a substitute for re-deriving on search/region changes.
type State struct {
	Base    []countries.Country
	Visible []countries.Country
	Region  string
	Query   string
	Filters *filter.Spec
	Loading bool

	derived []countries.Country
}

// NewState returns the initial state: no records, region "All", empty query
// and filter spec.
func NewState() State {
	return State{
		Region:  countries.RegionAll,
		Filters: filter.NewSpec(),
	}
}
