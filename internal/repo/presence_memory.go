package repo

import (
	"context"
	"slices"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
)

// memoryMaxSessions bounds the in-memory store; otter evicts beyond it.
const memoryMaxSessions = 10_000

// memoryPresenceRepo keeps sessions in an otter cache. Entries expire on
// their own ttl after the last write, so a process without a sweeper still
// forgets idle sessions; DeleteStale remains the authoritative cleanup.
type memoryPresenceRepo struct {
	cache *otter.Cache[string, domain.Presence]
}

// NewMemoryPresenceRepo returns a PresenceRepo that lives in process memory.
// It is used when no DATABASE_URL is configured. ttl should be at least the
// presence staleness window.
func NewMemoryPresenceRepo(ttl time.Duration) PresenceRepo {
	cache := otter.Must(&otter.Options[string, domain.Presence]{
		MaximumSize:      memoryMaxSessions,
		InitialCapacity:  128,
		ExpiryCalculator: otter.ExpiryWriting[string, domain.Presence](ttl),
	})
	return &memoryPresenceRepo{cache: cache}
}

func (r *memoryPresenceRepo) Upsert(_ context.Context, p domain.Presence) error {
	r.cache.Set(p.SessionID, p)
	return nil
}

func (r *memoryPresenceRepo) ListActive(_ context.Context, cutoff time.Time, limit int) ([]domain.Presence, error) {
	out := []domain.Presence{}
	r.cache.All()(func(_ string, p domain.Presence) bool {
		if p.LastSeen.After(cutoff) {
			out = append(out, p)
		}
		return true
	})

	slices.SortFunc(out, func(a, b domain.Presence) int {
		return b.LastSeen.Compare(a.LastSeen)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryPresenceRepo) DeleteStale(_ context.Context, cutoff time.Time, limit int) (int64, error) {
	if limit <= 0 {
		return 0, nil
	}
	var stale []string
	r.cache.All()(func(id string, p domain.Presence) bool {
		if p.LastSeen.Before(cutoff) {
			stale = append(stale, id)
		}
		return len(stale) < limit
	})

	for _, id := range stale {
		r.cache.Invalidate(id)
	}
	return int64(len(stale)), nil
}
