// Package overlap computes shared working hours for a set of compare slots
// and ranks candidate meeting times.
//
// Each slot's offset is sampled once, at the computation instant, and held
// constant across the 24-hour scan. Callers re-run Compute on every refresh
// tick, so the result follows DST as soon as a transition has happened.
package overlap

import (
	"sort"
	"time"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
	"github.com/JamesDimonaco/timezone-map/internal/tzmath"
)

// bestHourCount is the number of ranked meeting hours reported.
const bestHourCount = 3

// window is a slot's working window in UTC hours, [start, end) on a 24h clock.
type window struct {
	offset     int // sampled whole-hour offset
	start, end int
}

func (w window) contains(h int) bool {
	if w.start < w.end {
		return h >= w.start && h < w.end
	}
	return h >= w.start || h < w.end
}

func (w window) local(utcHour int) int {
	return int(tzmath.UTCToLocal(float64(utcHour), float64(w.offset)))
}

// Compute returns the working-hours overlap of slots at instant.
//
// With fewer than two slots the result is not applicable. When every slot
// has the same live UTC offset the slots are co-located and every UTC hour is
// shared, so Count is 24.
func Compute(slots []domain.CompareSlot, instant time.Time) domain.OverlapResult {
	if len(slots) < 2 {
		return domain.OverlapResult{Applicable: false, Hours: []int{}, Slots: []domain.SlotWindow{}, BestHours: []domain.MeetingHour{}}
	}

	utcHour := instant.UTC().Hour()
	windows := make([]window, len(slots))
	offsets := make([]float64, len(slots))
	colocated := true
	for i, s := range slots {
		off := tzmath.LocalHour(s.City.Timezone, instant) - utcHour
		windows[i] = window{
			offset: off,
			start:  int(tzmath.LocalToUTC(domain.WorkdayStartHour, float64(off))),
			end:    int(tzmath.LocalToUTC(domain.WorkdayEndHour, float64(off))),
		}
		offsets[i] = tzmath.OffsetHours(s.City.Timezone, instant)
		if offsets[i] != offsets[0] {
			colocated = false
		}
	}

	hours := []int{}
	for h := 0; h < 24; h++ {
		if colocated || inAll(windows, h) {
			hours = append(hours, h)
		}
	}

	res := domain.OverlapResult{
		Applicable: true,
		Hours:      hours,
		Count:      len(hours),
		Slots:      make([]domain.SlotWindow, len(slots)),
		BestHours:  rank(windows, hours),
	}

	first, last := bounds(hours)
	for i, s := range slots {
		w := windows[i]
		sw := domain.SlotWindow{
			City:         s.City.Name,
			Label:        s.Label,
			Zone:         s.City.Timezone,
			Offset:       offsets[i],
			WorkStartUTC: w.start,
			WorkEndUTC:   w.end,
			LocalStart:   -1,
			LocalEnd:     -1,
		}
		if len(hours) > 0 {
			sw.LocalStart = w.local(first)
			sw.LocalEnd = w.local(last + 1)
		}
		res.Slots[i] = sw
	}
	return res
}

func inAll(windows []window, h int) bool {
	for _, w := range windows {
		if !w.contains(h) {
			return false
		}
	}
	return true
}

// bounds returns the first and last UTC hour of the overlap, following the
// run across midnight when it wraps (e.g. {22, 23, 0, 1} gives 22 and 1).
// A full day starts at 0 and ends at 23.
func bounds(hours []int) (first, last int) {
	if len(hours) == 0 {
		return -1, -1
	}
	if len(hours) == 24 {
		return 0, 23
	}
	in := make(map[int]bool, len(hours))
	for _, h := range hours {
		in[h] = true
	}
	for _, h := range hours {
		if !in[tzmath.WrapHour(h-1)] {
			first = h
		}
		if !in[tzmath.WrapHour(h+1)] {
			last = h
		}
	}
	return first, last
}

// rank scores every overlap hour by how close it falls to local noon in each
// slot (8 - |local - 12|, summed) and returns the best three. Ties keep
// ascending UTC order.
func rank(windows []window, hours []int) []domain.MeetingHour {
	candidates := make([]domain.MeetingHour, 0, len(hours))
	for _, h := range hours {
		m := domain.MeetingHour{UTCHour: h, LocalHours: make([]int, len(windows))}
		for i, w := range windows {
			local := w.local(h)
			m.LocalHours[i] = local
			m.Score += 8 - abs(local-12)
		}
		candidates = append(candidates, m)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > bestHourCount {
		candidates = candidates[:bestHourCount]
	}
	return candidates
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
