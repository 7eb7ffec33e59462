package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
	"github.com/JamesDimonaco/timezone-map/internal/handler"
	"github.com/JamesDimonaco/timezone-map/internal/registry"
	"github.com/JamesDimonaco/timezone-map/internal/service"
	"github.com/JamesDimonaco/timezone-map/internal/slug"
)

// ---- mock TimeServicer -----------------------------------------------------

type mockTimeServicer struct {
	listCities   func(query string, p domain.PaginationParams) ([]service.CityLink, int)
	resolve      func(slug string, instant time.Time) (service.Resolved, error)
	compare      func(param string, instant time.Time) service.CompareView
	sitemapSlugs func() (service.Sitemap, error)
}

func (m *mockTimeServicer) ListCities(query string, p domain.PaginationParams) ([]service.CityLink, int) {
	return m.listCities(query, p)
}
func (m *mockTimeServicer) Resolve(slug string, instant time.Time) (service.Resolved, error) {
	return m.resolve(slug, instant)
}
func (m *mockTimeServicer) Compare(param string, instant time.Time) service.CompareView {
	return m.compare(param, instant)
}
func (m *mockTimeServicer) SitemapSlugs() (service.Sitemap, error) {
	return m.sitemapSlugs()
}

// compile-time check
var _ handler.TimeServicer = (*mockTimeServicer)(nil)

// ---- mock PresenceServicer -------------------------------------------------

type mockPresenceServicer struct {
	heartbeat func(ctx context.Context, hb service.Heartbeat) error
	active    func(ctx context.Context) (domain.ActiveUsers, error)
}

func (m *mockPresenceServicer) Heartbeat(ctx context.Context, hb service.Heartbeat) error {
	return m.heartbeat(ctx, hb)
}
func (m *mockPresenceServicer) Active(ctx context.Context) (domain.ActiveUsers, error) {
	return m.active(ctx)
}

// compile-time check
var _ handler.PresenceServicer = (*mockPresenceServicer)(nil)

// ---- helpers ---------------------------------------------------------------

var fixedNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

const testBaseURL = "https://timezones.live"

// newHTTPHandler wires a Server with the given services. Pass nil for
// services the test does not use.
func newHTTPHandler(times handler.TimeServicer, presence handler.PresenceServicer) http.Handler {
	srv := handler.NewServer(times, presence, handler.Options{
		BaseURL: testBaseURL,
		Now:     func() time.Time { return fixedNow },
	})
	return srv.Routes()
}

// realTimeService builds the production TimeService over the embedded registry.
func realTimeService(t *testing.T) *service.TimeService {
	t.Helper()
	reg := registry.MustDefault()
	codec, err := slug.NewCodec(reg.Cities())
	require.NoError(t, err)
	return service.NewTimeService(reg, codec)
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decode[T any](t *testing.T, r io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(r).Decode(&v))
	return v
}
