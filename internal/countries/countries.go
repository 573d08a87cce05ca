// Package countries holds the static country and phone-number lookup data
// used by the generation engine. Pure data, no logic beyond map access.
package countries

import "sort"

var names = map[string]string{
	"US": "United States",
	"CA": "Canada",
	"GB": "United Kingdom",
	"AU": "Australia",
	"DE": "Germany",
	"FR": "France",
	"IT": "Italy",
	"ES": "Spain",
	"MX": "Mexico",
	"BR": "Brazil",
	"JP": "Japan",
	"IN": "India",
	"CN": "China",
	"KR": "South Korea",
	"NL": "Netherlands",
	"SE": "Sweden",
	"NO": "Norway",
	"FI": "Finland",
	"DK": "Denmark",
	"PL": "Poland",
	"ZA": "South Africa",
	"NZ": "New Zealand",
	"CH": "Switzerland",
	"AT": "Austria",
	"BE": "Belgium",
}

// Name resolves a country code to its display name, falling back to the raw
// code for countries outside the table.
func Name(code string) string {
	if n, ok := names[code]; ok {
		return n
	}
	return code
}

// Known reports whether code is in the country table.
func Known(code string) bool {
	_, ok := names[code]
	return ok
}

// Codes returns the supported country codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(names))
	for c := range names {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
