package slug

import (
	"strings"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
)

// ParseCompareParam decodes the shareable compare parameter, e.g.
// "London:Alice,tokyo,São Paulo:Bob". Each comma-separated entry is a city
// name or slug with an optional ":label". Unknown cities are skipped and
// entries beyond domain.MaxCompareSlots are dropped.
func (c *Codec) ParseCompareParam(param string) domain.CompareSet {
	var set domain.CompareSet
	for _, entry := range strings.Split(param, ",") {
		name, label, _ := strings.Cut(entry, ":")
		city, ok := c.Lookup(CitySlug(strings.TrimSpace(name)))
		if !ok {
			continue
		}
		if !set.Add(domain.NewCompareSlot(city, label)) {
			break
		}
	}
	return set
}

// FormatCompareParam encodes a compare set in the format ParseCompareParam
// reads. The result is not URL-escaped.
func FormatCompareParam(set domain.CompareSet) string {
	entries := make([]string, 0, set.Len())
	for _, s := range set.Slots() {
		entry := s.City.Name
		if s.Label != "" {
			entry += ":" + s.Label
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, ",")
}
