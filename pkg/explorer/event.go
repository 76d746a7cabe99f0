package explorer

import (
	"github.com/dmitrymomot/countrykit/pkg/countries"
	"github.com/dmitrymomot/countrykit/pkg/filter"
)

// Event is a user intent or a fetch outcome fed into Step.
type Event interface {
	isEvent()
}

// Search sets the free-text query.
type Search struct {
	Query string
}

// PickRegion sets the region selector; countries.RegionAll lifts the
// narrowing.
type PickRegion struct {
	Region string
}

// ToggleFilter flips an advanced filter clause.
type ToggleFilter struct {
	Clause filter.Clause
}

// BaseLoaded delivers the once-fetched full record set.
type BaseLoaded struct {
	Records []countries.Country
}

// FetchLoaded delivers the records of an outstanding name/region fetch.
type FetchLoaded struct {
	Records []countries.Country
}

// FetchFailed reports an outstanding fetch that did not complete.
type FetchFailed struct {
	Err error
}

func (Search) isEvent()       {}
func (PickRegion) isEvent()   {}
func (ToggleFilter) isEvent() {}
func (BaseLoaded) isEvent()   {}
func (FetchLoaded) isEvent()  {}
func (FetchFailed) isEvent()  {}
