package handler

import (
	"net/http"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
	"github.com/JamesDimonaco/timezone-map/internal/service"
)

// Pagination describes the page returned alongside a list.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// CityList is the GET /cities response body.
type CityList struct {
	Data       []service.CityLink `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

// ListCities handles GET /cities?q=&page=&limit=.
func (s *Server) ListCities(w http.ResponseWriter, r *http.Request) {
	var (
		q           *string
		page, limit *int
	)
	for name, dest := range map[string]any{"q": &q, "page": &page, "limit": &limit} {
		if err := bindQuery(r, name, dest); err != nil {
			writeJSON(w, http.StatusBadRequest, requestBody("invalid "+name+" parameter"))
			return
		}
	}

	query := ""
	if q != nil {
		query = *q
	}
	p := domain.NewPaginationParams(page, limit)
	cities, total := s.times.ListCities(query, p)

	writeJSON(w, http.StatusOK, CityList{
		Data:       cities,
		Pagination: Pagination{Page: p.Page, Limit: p.Limit, Total: total},
	})
}
