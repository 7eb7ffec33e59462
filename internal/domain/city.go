// Package domain contains the core data types for the timezone map backend.
// This package has no internal dependencies and is imported by every other
// internal package (registry, slug, overlap, repo, service, handler).
package domain

// City is one entry of the static zone registry.
// Records are built once at startup and never mutated, so a City value can be
// shared freely between requests.
type City struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`

	// Timezone is an IANA identifier resolvable by the host zoneinfo database,
	// e.g. "Asia/Kolkata" or the fixed-offset "Etc/GMT+12".
	Timezone string `json:"timezone"`

	// UTCOffset is the static display label ("UTC+5:30", "UTC-3", "UTC+0").
	// It does not follow DST; live offsets are derived from Timezone.
	UTCOffset string `json:"utcOffset"`
}
