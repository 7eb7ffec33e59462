// Package repo contains the persistence layer for presence sessions.
// Each backend implements PresenceRepo; no business rules live here, only
// storage and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// PresenceRepo stores one row per browsing session.
// The service layer depends on this interface so it can be tested with a mock
// and run against either Postgres or the in-memory store.
type PresenceRepo interface {
	// Upsert inserts p or replaces the stored coordinates, zone and last_seen
	// of an existing session with the same id.
	Upsert(ctx context.Context, p domain.Presence) error

	// ListActive returns at most limit sessions seen strictly after cutoff,
	// most recent first.
	ListActive(ctx context.Context, cutoff time.Time, limit int) ([]domain.Presence, error)

	// DeleteStale removes at most limit sessions last seen strictly before
	// cutoff and reports how many were removed.
	DeleteStale(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}

// pgPresenceRepo is the Postgres implementation of PresenceRepo.
type pgPresenceRepo struct {
	db db
}

// NewPresenceRepo constructs a PresenceRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPresenceRepo(db db) PresenceRepo {
	return &pgPresenceRepo{db: db}
}

func (r *pgPresenceRepo) Upsert(ctx context.Context, p domain.Presence) error {
	id, err := uuid.Parse(p.SessionID)
	if err != nil {
		return fmt.Errorf("repo.PresenceRepo.Upsert: session id: %w", domain.ErrValidation)
	}

	const q = `
		INSERT INTO presence (session_id, fuzzed_lat, fuzzed_lng, timezone, last_seen)
		VALUES (@session_id, @fuzzed_lat, @fuzzed_lng, @timezone, @last_seen)
		ON CONFLICT (session_id) DO UPDATE SET
			fuzzed_lat = EXCLUDED.fuzzed_lat,
			fuzzed_lng = EXCLUDED.fuzzed_lng,
			timezone   = EXCLUDED.timezone,
			last_seen  = EXCLUDED.last_seen`

	_, err = r.db.Exec(ctx, q, pgx.NamedArgs{
		"session_id": id,
		"fuzzed_lat": p.FuzzedLat,
		"fuzzed_lng": p.FuzzedLng,
		"timezone":   p.Timezone,
		"last_seen":  p.LastSeen,
	})
	if err != nil {
		return fmt.Errorf("repo.PresenceRepo.Upsert: %w", err)
	}
	return nil
}

func (r *pgPresenceRepo) ListActive(ctx context.Context, cutoff time.Time, limit int) ([]domain.Presence, error) {
	const q = `
		SELECT session_id, fuzzed_lat, fuzzed_lng, timezone, last_seen
		FROM presence
		WHERE last_seen > @cutoff
		ORDER BY last_seen DESC
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"cutoff": cutoff, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.PresenceRepo.ListActive: %w", err)
	}
	defer rows.Close()

	out := []domain.Presence{}
	for rows.Next() {
		p, err := scanPresence(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PresenceRepo.ListActive: scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PresenceRepo.ListActive: rows: %w", err)
	}
	return out, nil
}

// DeleteStale deletes one batch. The sub-select bounds the batch because
// Postgres DELETE has no LIMIT clause.
func (r *pgPresenceRepo) DeleteStale(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	const q = `
		DELETE FROM presence
		WHERE session_id IN (
			SELECT session_id FROM presence
			WHERE last_seen < @cutoff
			LIMIT @limit
		)`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"cutoff": cutoff, "limit": limit})
	if err != nil {
		return 0, fmt.Errorf("repo.PresenceRepo.DeleteStale: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanPresence maps a single database row into a domain.Presence.
func scanPresence(s scanner) (domain.Presence, error) {
	var (
		p  domain.Presence
		id pgtype.UUID
	)
	err := s.Scan(&id, &p.FuzzedLat, &p.FuzzedLng, &p.Timezone, &p.LastSeen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Presence{}, domain.ErrNotFound
		}
		return domain.Presence{}, err
	}
	p.SessionID = uuid.UUID(id.Bytes).String()
	return p, nil
}
