// Package service binds the registry, the slug codec and the presence store
// into the operations the HTTP layer and CLI call. Services validate input and
// take explicit instants; they never read the wall clock except through an
// injected function.
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
	"github.com/JamesDimonaco/timezone-map/internal/overlap"
	"github.com/JamesDimonaco/timezone-map/internal/registry"
	"github.com/JamesDimonaco/timezone-map/internal/slug"
	"github.com/JamesDimonaco/timezone-map/internal/tzmath"
)

const (
	relatedCityLimit       = 8
	popularComparisonLimit = 8
)

// CityLink is a city reference with its URL slug.
type CityLink struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Slug    string `json:"slug"`
}

// CityView is everything a single city page shows.
type CityView struct {
	City       domain.City `json:"city"`
	Slug       string      `json:"slug"`
	Color      string      `json:"color"`
	LiveOffset string      `json:"liveOffset"`
	LocalTime  time.Time   `json:"localTime"`
	Related    []CityLink  `json:"related"`
	Popular    []string    `json:"popularComparisons"`
}

// ComparisonView is everything a two-city comparison page shows.
type ComparisonView struct {
	CityA          CityView             `json:"cityA"`
	CityB          CityView             `json:"cityB"`
	Slug           string               `json:"slug"`
	HourDifference float64              `json:"hourDifference"`
	DifferenceText string               `json:"differenceText"`
	Description    string               `json:"description"`
	Overlap        domain.OverlapResult `json:"overlap"`
}

// Resolved is the outcome of resolving a /time/{slug} path. Exactly one of
// City and Comparison is set. Canonical differs from the requested slug when
// the caller should redirect.
type Resolved struct {
	Canonical  string
	City       *CityView
	Comparison *ComparisonView
}

// SlotView is one compare slot with its live values.
type SlotView struct {
	City       domain.City `json:"city"`
	Label      string      `json:"label,omitempty"`
	Slug       string      `json:"slug"`
	Color      string      `json:"color"`
	LiveOffset string      `json:"liveOffset"`
	LocalTime  time.Time   `json:"localTime"`
}

// CompareView is a compare set evaluated at one instant.
type CompareView struct {
	Param   string               `json:"compare"`
	Slots   []SlotView           `json:"slots"`
	Overlap domain.OverlapResult `json:"overlap"`
}

// Sitemap lists every indexable slug.
type Sitemap struct {
	Cities      []string
	Comparisons []string
}

// TimeService answers read-only questions about cities and comparisons.
type TimeService struct {
	reg   *registry.Registry
	codec *slug.Codec
	hubs  []string
}

// NewTimeService constructs a TimeService over reg and codec. Both must be
// built from the same city table.
func NewTimeService(reg *registry.Registry, codec *slug.Codec) *TimeService {
	return &TimeService{reg: reg, codec: codec, hubs: slug.HubCityNames}
}

// ListCities returns one page of cities whose name or country contains query,
// and the total number of matches.
func (s *TimeService) ListCities(query string, p domain.PaginationParams) ([]CityLink, int) {
	matches := s.reg.Search(query)
	lo, hi := p.Bounds(len(matches))
	out := make([]CityLink, 0, hi-lo)
	for _, c := range matches[lo:hi] {
		out = append(out, link(c))
	}
	return out, len(matches)
}

// Resolve maps a path slug to a city or comparison view at instant.
// Mixed-case slugs and reversed comparison pairs resolve with a Canonical
// that differs from the input. Unknown slugs return domain.ErrNotFound.
func (s *TimeService) Resolve(path string, instant time.Time) (Resolved, error) {
	key := strings.ToLower(strings.TrimSpace(path))

	if city, ok := s.codec.Lookup(key); ok {
		v := s.cityView(city, instant, true)
		return Resolved{Canonical: key, City: &v}, nil
	}

	a, b, ok := s.codec.ParseComparison(key)
	if !ok {
		return Resolved{}, fmt.Errorf("service.TimeService.Resolve %q: %w", path, domain.ErrNotFound)
	}
	if slug.CitySlug(a.Name) > slug.CitySlug(b.Name) {
		a, b = b, a
	}
	v := s.comparisonView(a, b, instant)
	return Resolved{Canonical: v.Slug, Comparison: &v}, nil
}

// Compare parses a compare parameter ("London,Tokyo:Team") and evaluates it
// at instant. Unknown cities are skipped.
func (s *TimeService) Compare(param string, instant time.Time) CompareView {
	set := s.codec.ParseCompareParam(param)
	slots := set.Slots()

	views := make([]SlotView, len(slots))
	for i, sl := range slots {
		views[i] = SlotView{
			City:       sl.City,
			Label:      sl.Label,
			Slug:       slug.CitySlug(sl.City.Name),
			Color:      registry.Color(sl.City.UTCOffset),
			LiveOffset: tzmath.FormatOffsetLabel(tzmath.OffsetHours(sl.City.Timezone, instant)),
			LocalTime:  tzmath.LocalTime(sl.City.Timezone, instant),
		}
	}
	return CompareView{
		Param:   slug.FormatCompareParam(set),
		Slots:   views,
		Overlap: overlap.Compute(slots, instant),
	}
}

// SitemapSlugs returns every city slug and the canonical slug of every hub
// pair.
func (s *TimeService) SitemapSlugs() (Sitemap, error) {
	pairs, err := s.codec.GenerateCanonicalComparisonSlugs(s.hubs)
	if err != nil {
		return Sitemap{}, fmt.Errorf("service.TimeService.SitemapSlugs: %w", err)
	}
	return Sitemap{Cities: s.codec.Slugs(), Comparisons: pairs}, nil
}

func (s *TimeService) cityView(city domain.City, instant time.Time, full bool) CityView {
	v := CityView{
		City:       city,
		Slug:       slug.CitySlug(city.Name),
		Color:      registry.Color(city.UTCOffset),
		LiveOffset: tzmath.FormatOffsetLabel(tzmath.OffsetHours(city.Timezone, instant)),
		LocalTime:  tzmath.LocalTime(city.Timezone, instant),
		Related:    []CityLink{},
		Popular:    []string{},
	}
	if !full {
		return v
	}
	for _, c := range s.reg.SameOffset(city, relatedCityLimit) {
		v.Related = append(v.Related, link(c))
	}
	v.Popular = s.codec.PopularComparisons(city, s.hubs, popularComparisonLimit)
	return v
}

func (s *TimeService) comparisonView(a, b domain.City, instant time.Time) ComparisonView {
	diff := tzmath.LiveHourDifference(a.Timezone, b.Timezone, instant)
	return ComparisonView{
		CityA:          s.cityView(a, instant, false),
		CityB:          s.cityView(b, instant, false),
		Slug:           slug.CanonicalComparison(a, b),
		HourDifference: diff,
		DifferenceText: tzmath.FormatHourDifference(diff),
		Description:    tzmath.DescribeDifference(a.Name, b.Name, diff),
		Overlap: overlap.Compute([]domain.CompareSlot{
			domain.NewCompareSlot(a, ""),
			domain.NewCompareSlot(b, ""),
		}, instant),
	}
}

func link(c domain.City) CityLink {
	return CityLink{Name: c.Name, Country: c.Country, Slug: slug.CitySlug(c.Name)}
}
