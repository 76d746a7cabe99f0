package explorer

import (
	"net/url"

	"github.com/dmitrymomot/countrykit/pkg/countries"
)

// Query parameter names of the addressable URL state.
const (
	ParamSearch = "search"
	ParamRegion = "region"
)

// EncodeQuery renders the search/region state as URL query parameters.
// Empty or default values are omitted entirely, so a pristine view yields an
// empty query string and state stays recoverable from the URL alone.
func EncodeQuery(s State) url.Values {
	params := url.Values{}
	if s.Query != "" {
		params.Set(ParamSearch, s.Query)
	}
	if s.Region != "" && s.Region != countries.RegionAll {
		params.Set(ParamRegion, s.Region)
	}
	return params
}

// SeedFromQuery extracts the search/region tuple from URL parameters,
// applying defaults for absent values. The inverse of EncodeQuery.
func SeedFromQuery(params url.Values) (query, region string) {
	query = params.Get(ParamSearch)
	region = params.Get(ParamRegion)
	if region == "" {
		region = countries.RegionAll
	}
	return query, region
}
