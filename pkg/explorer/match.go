package explorer

import (
	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/dmitrymomot/countrykit/pkg/countries"
)

// nameMatcher performs case- and diacritic-insensitive substring matching,
// so "cote" finds Côte d'Ivoire. A Matcher is not safe for concurrent use;
// the engine is single-threaded by design (one logical UI thread).
var nameMatcher = search.New(language.Und, search.IgnoreCase, search.IgnoreDiacritics)

// matchName reports whether the query occurs in the record's common name.
func matchName(rec countries.Country, query string) bool {
	start, _ := nameMatcher.IndexString(rec.Name.Common, query)
	return start >= 0
}

// narrowByName selects records whose common name contains the query.
func narrowByName(records []countries.Country, query string) []countries.Country {
	out := make([]countries.Country, 0, len(records))
	for _, rec := range records {
		if matchName(rec, query) {
			out = append(out, rec)
		}
	}
	return out
}
