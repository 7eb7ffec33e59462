package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JamesDimonaco/timezone-map/internal/service"
)

// TimePage is the GET /time/{slug} response body. Kind is "city" or
// "comparison" and names the populated field.
type TimePage struct {
	Kind       string                  `json:"kind"`
	City       *service.CityView       `json:"city,omitempty"`
	Comparison *service.ComparisonView `json:"comparison,omitempty"`
}

// GetTime handles GET /time/{slug}. Non-canonical slugs (mixed case, or a
// comparison in reverse order) get a permanent redirect so each page has a
// single URL.
func (s *Server) GetTime(w http.ResponseWriter, r *http.Request) {
	requested := chi.URLParam(r, "slug")

	at, err := s.instant(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("at must be an RFC 3339 timestamp"))
		return
	}

	res, err := s.times.Resolve(requested, at)
	if err != nil {
		s.writeError(w, r, err, "no city or comparison named "+requested)
		return
	}

	if res.Canonical != requested {
		target := "/time/" + res.Canonical
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusPermanentRedirect)
		return
	}

	page := TimePage{Kind: "city", City: res.City}
	if res.Comparison != nil {
		page = TimePage{Kind: "comparison", Comparison: res.Comparison}
	}
	writeJSON(w, http.StatusOK, page)
}

// GetCompare handles GET /compare?compare=London:Alice,Tokyo&at=.
// Unknown cities in the parameter are dropped, never rejected.
func (s *Server) GetCompare(w http.ResponseWriter, r *http.Request) {
	var param *string
	if err := bindQuery(r, "compare", &param); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("invalid compare parameter"))
		return
	}
	at, err := s.instant(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("at must be an RFC 3339 timestamp"))
		return
	}

	compare := ""
	if param != nil {
		compare = *param
	}
	writeJSON(w, http.StatusOK, s.times.Compare(compare, at))
}
