package domain

// Working-day policy used by the overlap engine: local hours [9, 17).
const (
	WorkdayStartHour = 9
	WorkdayEndHour   = 17
)

// OverlapResult is the meeting-planner output for a set of compare slots.
// It is computed per request and never stored.
//
// Applicable is false when fewer than two slots were supplied; in that case
// every other field is empty. An applicable result with Count == 0 means the
// working windows were computed and do not intersect.
type OverlapResult struct {
	Applicable bool          `json:"applicable"`
	Hours      []int         `json:"hours"` // UTC hours 0-23, ascending
	Count      int           `json:"count"`
	Slots      []SlotWindow  `json:"slots"`
	BestHours  []MeetingHour `json:"bestHours"`
}

// SlotWindow describes one slot's view of the overlap.
type SlotWindow struct {
	City   string  `json:"city"`
	Label  string  `json:"label,omitempty"`
	Zone   string  `json:"timezone"`
	Offset float64 `json:"offset"` // hours from UTC at the computation instant

	// WorkStartUTC and WorkEndUTC bound the slot's working window in UTC.
	// The window wraps past midnight when WorkStartUTC >= WorkEndUTC.
	WorkStartUTC int `json:"workStartUtc"`
	WorkEndUTC   int `json:"workEndUtc"`

	// LocalStart and LocalEnd are the overlap boundaries in the slot's local
	// time. Both are -1 when the overlap is empty.
	LocalStart int `json:"localStart"`
	LocalEnd   int `json:"localEnd"`
}

// MeetingHour is a ranked candidate meeting time.
type MeetingHour struct {
	UTCHour    int   `json:"utcHour"`
	Score      int   `json:"score"`
	LocalHours []int `json:"localHours"` // one per slot, in slot order
}
