// Package countries is the read-only gateway to the public country-data
// service (restcountries v3.1). It normalizes transport failures into
// ErrFetchFailed and maps the service's quirks into Go-friendly contracts:
// a 404 on name search is an empty result, ByCode unwraps the service's
// one-element array, and the "All" region sentinel falls back to the full
// listing.
//
// # Usage
//
//	client := countries.NewClient()
//	all, err := client.All(ctx)
//	matches, err := client.ByName(ctx, "and")  // empty slice when no match
//	europe, err := client.ByRegion(ctx, "Europe")
//	one, err := client.ByCode(ctx, "AND")      // ErrNotFound when unknown
package countries
