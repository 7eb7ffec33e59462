package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
	"github.com/JamesDimonaco/timezone-map/internal/repo"
	"github.com/JamesDimonaco/timezone-map/testutil"
)

// newTestPresenceRepo returns a PresenceRepo backed by a transaction that is
// rolled back when the test finishes.
func newTestPresenceRepo(t *testing.T) repo.PresenceRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewPresenceRepo(tx)
}

// Timestamps are truncated to microseconds, the precision of TIMESTAMPTZ.
func pgNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func TestPresenceRepo_UpsertAndList(t *testing.T) {
	r := newTestPresenceRepo(t)
	ctx := context.Background()
	now := pgNow()

	p := presenceFixture(now)
	require.NoError(t, r.Upsert(ctx, p))

	got, err := r.ListActive(ctx, now.Add(-time.Minute), 500)

	require.NoError(t, err)
	var found *domain.Presence
	for i := range got {
		if got[i].SessionID == p.SessionID {
			found = &got[i]
		}
	}
	require.NotNil(t, found, "inserted session should be active")
	assert.Equal(t, p.Timezone, found.Timezone)
	assert.InDelta(t, p.FuzzedLat, found.FuzzedLat, 1e-9)
	assert.True(t, found.LastSeen.Equal(now))
}

func TestPresenceRepo_Upsert_UpdatesExisting(t *testing.T) {
	r := newTestPresenceRepo(t)
	ctx := context.Background()
	now := pgNow()

	p := presenceFixture(now.Add(-10 * time.Minute))
	require.NoError(t, r.Upsert(ctx, p))

	p.LastSeen = now
	p.Timezone = "Asia/Tokyo"
	require.NoError(t, r.Upsert(ctx, p))

	got, err := r.ListActive(ctx, now.Add(-time.Minute), 500)
	require.NoError(t, err)

	matches := 0
	for _, g := range got {
		if g.SessionID == p.SessionID {
			matches++
			assert.Equal(t, "Asia/Tokyo", g.Timezone)
		}
	}
	assert.Equal(t, 1, matches, "upsert must not create a second row")
}

func TestPresenceRepo_Upsert_BadSessionID(t *testing.T) {
	r := newTestPresenceRepo(t)

	p := presenceFixture(pgNow())
	p.SessionID = "not-a-uuid"
	err := r.Upsert(context.Background(), p)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPresenceRepo_DeleteStale(t *testing.T) {
	r := newTestPresenceRepo(t)
	ctx := context.Background()
	now := pgNow()

	fresh := presenceFixture(now)
	stale := presenceFixture(now.Add(-time.Hour))
	stale.SessionID = uuid.NewString()
	require.NoError(t, r.Upsert(ctx, fresh))
	require.NoError(t, r.Upsert(ctx, stale))

	n, err := r.DeleteStale(ctx, now.Add(-time.Minute), 500)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))

	got, err := r.ListActive(ctx, now.Add(-2*time.Hour), 500)
	require.NoError(t, err)
	for _, g := range got {
		assert.NotEqual(t, stale.SessionID, g.SessionID, "stale session should be gone")
	}
}
