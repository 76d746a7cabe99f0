package countries

import "sort"

// Regions extracts the distinct regions present in a record set, sorted,
// with the RegionAll sentinel always first. Feeds the region selector.
func Regions(records []Country) []string {
	seen := map[string]bool{}
	var regions []string
	for _, c := range records {
		if c.Region != "" && !seen[c.Region] {
			seen[c.Region] = true
			regions = append(regions, c.Region)
		}
	}
	sort.Strings(regions)
	return append([]string{RegionAll}, regions...)
}

// Languages extracts the distinct language names across a record set, sorted.
func Languages(records []Country) []string {
	seen := map[string]bool{}
	var langs []string
	for _, c := range records {
		for _, lang := range c.Languages {
			if lang != "" && !seen[lang] {
				seen[lang] = true
				langs = append(langs, lang)
			}
		}
	}
	sort.Strings(langs)
	return langs
}
