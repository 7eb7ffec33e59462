// Package registry holds the static zone registry: the city table and the
// UTC-offset color palette. A Registry is immutable after construction and is
// passed explicitly to the components that need it.
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
	"github.com/JamesDimonaco/timezone-map/internal/tzmath"
)

// citiesJSON is the built-in city table, embedded at compile time.
//
//go:embed cities.json
var citiesJSON []byte

// DefaultColor is used for offsets missing from the palette.
const DefaultColor = "#60a5fa"

// Registry is the immutable set of known cities.
type Registry struct {
	cities []domain.City
}

// New builds a Registry from cities. It copies the input, validates every
// record and rejects duplicate names, which would make name lookups ambiguous.
func New(cities []domain.City) (*Registry, error) {
	r := &Registry{cities: make([]domain.City, len(cities))}
	copy(r.cities, cities)
	names := make(map[string]struct{}, len(cities))
	for i, c := range r.cities {
		if err := validate(c); err != nil {
			return nil, fmt.Errorf("registry.New: city %d (%q): %w", i, c.Name, err)
		}
		key := strings.ToLower(c.Name)
		if _, dup := names[key]; dup {
			return nil, fmt.Errorf("registry.New: duplicate city name %q: %w", c.Name, domain.ErrValidation)
		}
		names[key] = struct{}{}
	}
	return r, nil
}

// Default loads the embedded city table.
func Default() (*Registry, error) {
	var cities []domain.City
	if err := json.Unmarshal(citiesJSON, &cities); err != nil {
		return nil, fmt.Errorf("registry.Default: decode cities: %w", err)
	}
	return New(cities)
}

// MustDefault is like Default but panics on error. Use it in tests only.
func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}

// Cities returns a copy of all cities in table order.
func (r *Registry) Cities() []domain.City {
	out := make([]domain.City, len(r.cities))
	copy(out, r.cities)
	return out
}

// Len returns the number of cities.
func (r *Registry) Len() int {
	return len(r.cities)
}

// Search returns cities whose name or country contains query, ignoring case.
// An empty query matches every city.
func (r *Registry) Search(query string) []domain.City {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []domain.City{}
	for _, c := range r.cities {
		if q == "" ||
			strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Country), q) {
			out = append(out, c)
		}
	}
	return out
}

// SameOffset returns up to limit other cities sharing city's static offset
// label, in table order.
func (r *Registry) SameOffset(city domain.City, limit int) []domain.City {
	out := []domain.City{}
	for _, c := range r.cities {
		if len(out) >= limit {
			break
		}
		if c.UTCOffset == city.UTCOffset && c.Name != city.Name {
			out = append(out, c)
		}
	}
	return out
}

// Color returns the palette color for an offset label.
func Color(label string) string {
	if c, ok := offsetColors[label]; ok {
		return c
	}
	return DefaultColor
}

func validate(c domain.City) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	case c.Timezone == "":
		return fmt.Errorf("%w: timezone is required", domain.ErrValidation)
	case c.Latitude < -90 || c.Latitude > 90:
		return fmt.Errorf("%w: latitude %v out of range", domain.ErrValidation, c.Latitude)
	case c.Longitude < -180 || c.Longitude > 180:
		return fmt.Errorf("%w: longitude %v out of range", domain.ErrValidation, c.Longitude)
	case !tzmath.ValidOffsetLabel(c.UTCOffset):
		return fmt.Errorf("%w: malformed offset label %q", domain.ErrValidation, c.UTCOffset)
	}
	return nil
}
