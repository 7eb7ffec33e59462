// Package handler implements the HTTP API. All handlers are methods on
// Server, split by resource (cities.go, time.go, presence.go, ...), and
// Routes wires them onto a chi router.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
	"github.com/JamesDimonaco/timezone-map/internal/middleware"
	"github.com/JamesDimonaco/timezone-map/internal/service"
	"github.com/JamesDimonaco/timezone-map/spec"
)

// maxHeartbeatBytes bounds the heartbeat request body.
const maxHeartbeatBytes = 4 << 10

// TimeServicer is the read-only city and comparison API the handlers need.
// Defined here, in the consumer, so tests can inject a mock.
type TimeServicer interface {
	ListCities(query string, p domain.PaginationParams) ([]service.CityLink, int)
	Resolve(slug string, instant time.Time) (service.Resolved, error)
	Compare(param string, instant time.Time) service.CompareView
	SitemapSlugs() (service.Sitemap, error)
}

// PresenceServicer records heartbeats and reports live sessions.
type PresenceServicer interface {
	Heartbeat(ctx context.Context, hb service.Heartbeat) error
	Active(ctx context.Context) (domain.ActiveUsers, error)
}

// Options configures a Server. Zero values fall back to sensible defaults.
type Options struct {
	// BaseURL prefixes every sitemap location, e.g. "https://timezones.live".
	BaseURL string
	// Now supplies the instant when a request has no ?at parameter.
	Now func() time.Time
	// Logger receives internal errors. Defaults to slog.Default().
	Logger *slog.Logger
}

// Server holds the dependencies shared by every handler.
type Server struct {
	times    TimeServicer
	presence PresenceServicer
	baseURL  string
	now      func() time.Time
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(times TimeServicer, presence PresenceServicer, opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Server{
		times:    times,
		presence: presence,
		baseURL:  opts.BaseURL,
		now:      opts.Now,
		log:      opts.Logger,
	}
}

// Routes returns a router with every endpoint registered. Cross-cutting
// middleware (request id, logging, CORS) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)
	r.Get("/sitemap.xml", s.GetSitemap)

	r.Get("/cities", s.ListCities)
	r.Get("/time/{slug}", s.GetTime)
	r.Get("/compare", s.GetCompare)

	r.Route("/presence", func(r chi.Router) {
		r.Get("/", s.GetPresence)
		r.With(middleware.NewMaxBodySizeHandler(maxHeartbeatBytes)).Post("/heartbeat", s.PostHeartbeat)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})
	return r
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
