package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bradfitz/latlong"
	"github.com/google/uuid"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
	"github.com/JamesDimonaco/timezone-map/internal/repo"
	"github.com/JamesDimonaco/timezone-map/internal/tzmath"
)

const (
	// DefaultPresenceTTL is how long a session counts as active after its
	// last heartbeat.
	DefaultPresenceTTL = 60 * time.Second

	// MaxActiveUsers caps the active list returned to clients.
	MaxActiveUsers = 500

	// SweepBatchSize is the number of stale sessions removed per delete.
	SweepBatchSize = 500

	// fuzzStep is the grid, in degrees, that reported coordinates snap to.
	fuzzStep = 0.5
)

// Heartbeat is what a client reports every few seconds while the page is open.
type Heartbeat struct {
	SessionID string  `json:"sessionId"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timezone  string  `json:"timezone"`
}

// PresenceService tracks who is browsing. Coordinates never reach storage
// unfuzzed and stale sessions are invisible before they are swept.
type PresenceService struct {
	repo repo.PresenceRepo
	ttl  time.Duration
	now  func() time.Time
}

// NewPresenceService constructs a PresenceService. A non-positive ttl falls
// back to DefaultPresenceTTL; a nil now uses time.Now.
func NewPresenceService(r repo.PresenceRepo, ttl time.Duration, now func() time.Time) *PresenceService {
	if ttl <= 0 {
		ttl = DefaultPresenceTTL
	}
	if now == nil {
		now = time.Now
	}
	return &PresenceService{repo: r, ttl: ttl, now: now}
}

// Heartbeat validates hb, fuzzes its coordinates and upserts the session.
// An empty timezone is inferred from the coordinates.
func (s *PresenceService) Heartbeat(ctx context.Context, hb Heartbeat) error {
	if err := validateHeartbeat(&hb); err != nil {
		return fmt.Errorf("service.PresenceService.Heartbeat: %w", err)
	}

	p := domain.Presence{
		SessionID: strings.ToLower(hb.SessionID),
		FuzzedLat: Fuzz(hb.Lat),
		FuzzedLng: Fuzz(hb.Lng),
		Timezone:  hb.Timezone,
		LastSeen:  s.now().UTC(),
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return fmt.Errorf("service.PresenceService.Heartbeat: %w", err)
	}
	return nil
}

// Active returns sessions seen within the ttl, newest first, capped at
// MaxActiveUsers.
func (s *PresenceService) Active(ctx context.Context) (domain.ActiveUsers, error) {
	cutoff := s.now().Add(-s.ttl)
	rows, err := s.repo.ListActive(ctx, cutoff, MaxActiveUsers)
	if err != nil {
		return domain.ActiveUsers{}, fmt.Errorf("service.PresenceService.Active: %w", err)
	}

	users := make([]domain.ActiveUser, len(rows))
	for i, p := range rows {
		users[i] = domain.ActiveUser{FuzzedLat: p.FuzzedLat, FuzzedLng: p.FuzzedLng, Timezone: p.Timezone}
	}
	return domain.ActiveUsers{Count: len(users), Users: users}, nil
}

// Sweep deletes every session older than the ttl, one batch at a time, and
// returns the total removed. It stops early when ctx is cancelled.
func (s *PresenceService) Sweep(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.ttl)
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, fmt.Errorf("service.PresenceService.Sweep: %w", err)
		}
		n, err := s.repo.DeleteStale(ctx, cutoff, SweepBatchSize)
		if err != nil {
			return total, fmt.Errorf("service.PresenceService.Sweep: %w", err)
		}
		total += n
		if n < SweepBatchSize {
			return total, nil
		}
	}
}

// Fuzz snaps a coordinate to the nearest half degree.
func Fuzz(v float64) float64 {
	return math.Round(v/fuzzStep) * fuzzStep
}

func validateHeartbeat(hb *Heartbeat) error {
	if _, err := uuid.Parse(hb.SessionID); err != nil || len(hb.SessionID) != 36 {
		return fmt.Errorf("%w: sessionId must be a UUID", domain.ErrValidation)
	}
	if math.IsNaN(hb.Lat) || hb.Lat < -90 || hb.Lat > 90 {
		return fmt.Errorf("%w: lat must be between -90 and 90", domain.ErrValidation)
	}
	if math.IsNaN(hb.Lng) || hb.Lng < -180 || hb.Lng > 180 {
		return fmt.Errorf("%w: lng must be between -180 and 180", domain.ErrValidation)
	}

	hb.Timezone = strings.TrimSpace(hb.Timezone)
	if hb.Timezone == "" {
		hb.Timezone = latlong.LookupZoneName(hb.Lat, hb.Lng)
	}
	if !strings.Contains(hb.Timezone, "/") || !tzmath.ValidZone(hb.Timezone) {
		return fmt.Errorf("%w: timezone must be an IANA zone name", domain.ErrValidation)
	}
	return nil
}
