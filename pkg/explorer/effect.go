package explorer

import "net/url"

// Effect is a side effect requested by Step. The reducer itself never
// touches the network or the address bar; it enumerates what should happen
// and the Runner (or any other interpreter) executes it.
type Effect interface {
	isEffect()
}

// FetchAll requests the full base record set.
type FetchAll struct{}

// FetchByName requests a global name search from the data service.
type FetchByName struct {
	Query string
}

// FetchByRegion requests the region-narrowed record set.
type FetchByRegion struct {
	Region string
}

// RewriteURL requests the address bar's query parameters be replaced so the
// current search/region state stays shareable and reload-safe.
type RewriteURL struct {
	Params url.Values
}

func (FetchAll) isEffect()      {}
func (FetchByName) isEffect()   {}
func (FetchByRegion) isEffect() {}
func (RewriteURL) isEffect()    {}
