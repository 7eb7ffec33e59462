package domain

import "time"

// Presence is one browsing session reported by the heartbeat endpoint.
// Coordinates are fuzzed to the nearest 0.5 degree before storage.
type Presence struct {
	SessionID string
	FuzzedLat float64
	FuzzedLng float64
	Timezone  string
	LastSeen  time.Time
}

// ActiveUser is the public view of a live session: no session id.
type ActiveUser struct {
	FuzzedLat float64 `json:"fuzzedLat"`
	FuzzedLng float64 `json:"fuzzedLng"`
	Timezone  string  `json:"timezone"`
}

// ActiveUsers is the live visitor count plus their approximate locations.
type ActiveUsers struct {
	Count int          `json:"count"`
	Users []ActiveUser `json:"users"`
}
