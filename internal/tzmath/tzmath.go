// Package tzmath converts between UTC offset labels, numeric hour offsets and
// IANA zone identifiers.
//
// Static labels ("UTC+5:30") are a display convenience and never follow DST.
// Live values are always re-derived from the zone identifier and an explicit
// instant, so callers that refresh periodically stay correct across DST
// transitions. Both numbers can disagree near a transition; that is expected.
//
// Every function here is pure and fails soft: malformed labels and unknown
// zones are treated as UTC+0.
package tzmath

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // fallback rule data when the host has no zoneinfo
)

// offsetLabelRE matches "UTC", "UTC+H", "UTC-H", "UTC+H:MM" and "UTC-H:MM".
var offsetLabelRE = regexp.MustCompile(`^UTC(?:([+-])(\d{1,2})(?::([0-5]\d))?)?$`)

// ValidOffsetLabel reports whether label has the registry label form that
// ParseOffsetLabel understands.
func ValidOffsetLabel(label string) bool {
	return offsetLabelRE.MatchString(label)
}

// ParseOffsetLabel parses a static offset label into signed fractional hours.
// Examples:
//   - "UTC+5:30" returns 5.5
//   - "UTC-3:30" returns -3.5
//   - "UTC" and "UTC+0" return 0
//   - anything else returns 0
func ParseOffsetLabel(label string) float64 {
	m := offsetLabelRE.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil || m[1] == "" {
		return 0
	}
	hours, err := strconv.Atoi(m[2])
	if err != nil {
		return 0
	}
	minutes := 0
	if m[3] != "" {
		if minutes, err = strconv.Atoi(m[3]); err != nil {
			return 0
		}
	}
	v := float64(hours) + float64(minutes)/60
	if m[1] == "-" {
		v = -v
	}
	return v
}

// FormatOffsetLabel renders hours as the registry label format.
// Zero renders as "UTC+0" to match the color table keys.
func FormatOffsetLabel(hours float64) string {
	total := int(math.Round(hours * 60))
	sign := "+"
	if total < 0 {
		sign = "-"
		total = -total
	}
	h, m := total/60, total%60
	if m == 0 {
		return fmt.Sprintf("UTC%s%d", sign, h)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, h, m)
}

// locations caches *time.Location lookups, including failed ones (stored as nil).
var locations sync.Map

// loadLocation resolves an IANA zone through the process-wide cache.
func loadLocation(zone string) (*time.Location, bool) {
	if zone == "" || zone == "Local" {
		return nil, false
	}
	if v, ok := locations.Load(zone); ok {
		loc, _ := v.(*time.Location)
		return loc, loc != nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		loc = nil
	}
	locations.Store(zone, loc)
	return loc, loc != nil
}

// ValidZone reports whether zone resolves in the host timezone database.
func ValidZone(zone string) bool {
	_, ok := loadLocation(zone)
	return ok
}

// OffsetHours returns the actual UTC offset of zone at instant, DST included.
// Unknown zones return 0.
func OffsetHours(zone string, instant time.Time) float64 {
	loc, ok := loadLocation(zone)
	if !ok {
		return 0
	}
	_, offset := instant.In(loc).Zone()
	return float64(offset) / 3600
}

// LiveHourDifference returns OffsetHours(zoneB) - OffsetHours(zoneA) at instant.
// A positive result means zoneB is ahead of zoneA.
func LiveHourDifference(zoneA, zoneB string, instant time.Time) float64 {
	return OffsetHours(zoneB, instant) - OffsetHours(zoneA, instant)
}

// LocalHour returns the wall-clock hour (0-23) in zone at instant.
// Unknown zones report the UTC hour.
func LocalHour(zone string, instant time.Time) int {
	return LocalTime(zone, instant).Hour()
}

// LocalTime returns instant expressed in zone. Unknown zones yield UTC.
func LocalTime(zone string, instant time.Time) time.Time {
	loc, ok := loadLocation(zone)
	if !ok {
		return instant.UTC()
	}
	return instant.In(loc)
}

// FormatHourDifference renders the absolute value of diff as
// "<H> hour[s][ <M> minute[s]]". Zero renders "0 hours".
func FormatHourDifference(diff float64) string {
	abs := math.Abs(diff)
	hours := int(math.Floor(abs))
	minutes := int(math.Round((abs - float64(hours)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}

	var parts []string
	if hours > 0 || minutes == 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	return strings.Join(parts, " ")
}

// DescribeDifference phrases diff (as returned by LiveHourDifference for
// cityA, cityB) as a sentence.
func DescribeDifference(cityA, cityB string, diff float64) string {
	switch {
	case diff > 0:
		return fmt.Sprintf("%s is %s ahead of %s", cityB, FormatHourDifference(diff), cityA)
	case diff < 0:
		return fmt.Sprintf("%s is %s behind %s", cityB, FormatHourDifference(diff), cityA)
	default:
		return fmt.Sprintf("%s and %s are in the same timezone", cityA, cityB)
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
