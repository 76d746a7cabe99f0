package countries

// Country is one country's descriptive data as returned by the external
// data service (restcountries v3.1 schema). Records are immutable once
// fetched; this kit only selects and filters them.
type Country struct {
	Code       string            `json:"cca3"`
	Name       Name              `json:"name"`
	Region     string            `json:"region"`
	Subregion  string            `json:"subregion,omitempty"`
	Population int64             `json:"population"`
	Capital    []string          `json:"capital,omitempty"`
	Currencies map[string]Money  `json:"currencies,omitempty"`
	Languages  map[string]string `json:"languages,omitempty"`
	Borders    []string          `json:"borders,omitempty"`
	Flags      Flags             `json:"flags,omitempty"`
	Maps       Maps              `json:"maps,omitempty"`
}

// Name holds the common and official names of a country.
type Name struct {
	Common   string `json:"common"`
	Official string `json:"official,omitempty"`
}

// Money describes one currency entry.
type Money struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// Flags holds flag image URLs.
type Flags struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// Maps holds external map links.
type Maps struct {
	GoogleMaps     string `json:"googleMaps,omitempty"`
	OpenStreetMaps string `json:"openStreetMaps,omitempty"`
}
