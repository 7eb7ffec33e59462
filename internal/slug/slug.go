// Package slug maps city names to URL-safe identifiers and parses the
// "<cityA>-to-<cityB>" comparison identifiers used by the routing layer.
package slug

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
)

// separator joins the two city slugs of a comparison.
const separator = "to"

// CitySlug converts a city name to a URL-safe slug.
// "São Paulo" → "sao-paulo", "St. John's" → "st-johns"
func CitySlug(name string) string {
	// NFD splits accented letters into base letter + combining mark,
	// then the marks are dropped.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	s, _, err := transform.String(t, name)
	if err != nil {
		s = name
	}

	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r == '\'' || r == '’' || r == '.':
			continue
		case unicode.IsSpace(r):
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
		inSpace = false
	}
	return b.String()
}

// CanonicalComparison returns the comparison slug for two cities with the
// city slugs in alphabetical order, so CanonicalComparison(a, b) ==
// CanonicalComparison(b, a).
func CanonicalComparison(a, b domain.City) string {
	pair := []string{CitySlug(a.Name), CitySlug(b.Name)}
	sort.Strings(pair)
	return join(pair[0], pair[1])
}

func join(a, b string) string {
	return a + "-" + separator + "-" + b
}

// Codec owns the slug → city index for one registry.
// It is immutable after NewCodec and safe for concurrent use.
type Codec struct {
	index map[string]domain.City
	slugs []string
}

// NewCodec indexes cities by slug. Two distinct cities that produce the same
// slug, or a name that produces an empty slug, fail with
// domain.ErrSlugCollision: one of them would be unreachable by URL.
func NewCodec(cities []domain.City) (*Codec, error) {
	c := &Codec{
		index: make(map[string]domain.City, len(cities)),
		slugs: make([]string, 0, len(cities)),
	}
	for _, city := range cities {
		s := CitySlug(city.Name)
		if s == "" {
			return nil, fmt.Errorf("slug.NewCodec: %q has an empty slug: %w", city.Name, domain.ErrSlugCollision)
		}
		if prev, ok := c.index[s]; ok {
			return nil, fmt.Errorf("slug.NewCodec: %q and %q both map to %q: %w",
				prev.Name, city.Name, s, domain.ErrSlugCollision)
		}
		c.index[s] = city
		c.slugs = append(c.slugs, s)
	}
	return c, nil
}

// Lookup returns the city for slug.
func (c *Codec) Lookup(slug string) (domain.City, bool) {
	city, ok := c.index[slug]
	return city, ok
}

// Slugs returns every city slug in registry order.
func (c *Codec) Slugs() []string {
	out := make([]string, len(c.slugs))
	copy(out, c.slugs)
	return out
}

// ParseComparison resolves "<slugA>-to-<slugB>" into its two cities.
//
// City slugs may themselves contain hyphens, so every lone "to" token is tried
// as the separator, scanning left to right. The first split where both sides
// resolve to two distinct cities wins. Anything else reports false.
func (c *Codec) ParseComparison(slug string) (domain.City, domain.City, bool) {
	parts := strings.Split(slug, "-")
	for i := 1; i < len(parts)-1; i++ {
		if parts[i] != separator {
			continue
		}
		a, okA := c.index[strings.Join(parts[:i], "-")]
		b, okB := c.index[strings.Join(parts[i+1:], "-")]
		if okA && okB && a != b {
			return a, b, true
		}
	}
	return domain.City{}, domain.City{}, false
}

// HubCityNames are the cities whose pairwise comparisons get dedicated pages.
var HubCityNames = []string{
	"New York", "London", "Tokyo", "Sydney", "Dubai",
	"Singapore", "Hong Kong", "Los Angeles", "Chicago", "Paris",
	"Berlin", "Mumbai", "Delhi", "Shanghai", "Beijing",
	"Seoul", "Toronto", "São Paulo", "Mexico City", "Cairo",
	"Istanbul", "Moscow", "Bangkok", "Jakarta", "Nairobi",
	"Johannesburg", "Auckland", "Honolulu", "San Francisco", "Miami",
}

// GenerateComparisonSlugs returns "<i>-to-<j>" for every ordered pair of
// distinct hub cities, so that any ordering a user types resolves.
func (c *Codec) GenerateComparisonSlugs(hubNames []string) ([]string, error) {
	hubs, err := c.hubs(hubNames)
	if err != nil {
		return nil, fmt.Errorf("slug.Codec.GenerateComparisonSlugs: %w", err)
	}
	seen := make(map[string]struct{})
	out := []string{}
	for i := range hubs {
		for j := range hubs {
			if i == j {
				continue
			}
			out = appendUnique(out, seen, join(CitySlug(hubs[i].Name), CitySlug(hubs[j].Name)))
		}
	}
	return out, nil
}

// GenerateCanonicalComparisonSlugs returns only the canonical slug of each
// unordered hub pair. Sitemaps use it to avoid duplicate-content pages.
func (c *Codec) GenerateCanonicalComparisonSlugs(hubNames []string) ([]string, error) {
	hubs, err := c.hubs(hubNames)
	if err != nil {
		return nil, fmt.Errorf("slug.Codec.GenerateCanonicalComparisonSlugs: %w", err)
	}
	seen := make(map[string]struct{})
	out := []string{}
	for i := range hubs {
		for j := i + 1; j < len(hubs); j++ {
			out = appendUnique(out, seen, CanonicalComparison(hubs[i], hubs[j]))
		}
	}
	return out, nil
}

// PopularComparisons returns up to limit canonical comparison slugs pairing
// city with hub cities, skipping the city itself.
func (c *Codec) PopularComparisons(city domain.City, hubNames []string, limit int) []string {
	out := []string{}
	for _, name := range hubNames {
		if len(out) >= limit {
			break
		}
		hub, ok := c.byName(name)
		if !ok || hub == city {
			continue
		}
		out = append(out, CanonicalComparison(city, hub))
	}
	return out
}

func (c *Codec) hubs(names []string) ([]domain.City, error) {
	hubs := make([]domain.City, 0, len(names))
	for _, name := range names {
		city, ok := c.byName(name)
		if !ok {
			return nil, fmt.Errorf("hub city %q: %w", name, domain.ErrNotFound)
		}
		hubs = append(hubs, city)
	}
	return hubs, nil
}

// byName resolves a display name through its slug. Slugs are injective over
// the indexed cities, so this finds exactly the named city.
func (c *Codec) byName(name string) (domain.City, bool) {
	name = strings.TrimSpace(name)
	city, ok := c.index[CitySlug(name)]
	if !ok || !strings.EqualFold(city.Name, name) {
		return domain.City{}, false
	}
	return city, true
}

func appendUnique(out []string, seen map[string]struct{}, s string) []string {
	if _, ok := seen[s]; ok {
		return out
	}
	seen[s] = struct{}{}
	return append(out, s)
}
