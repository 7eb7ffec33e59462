package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
	"github.com/JamesDimonaco/timezone-map/internal/handler"
	"github.com/JamesDimonaco/timezone-map/internal/service"
)

func TestListCities_200_Defaults(t *testing.T) {
	var captured domain.PaginationParams
	var capturedQuery string
	svc := &mockTimeServicer{
		listCities: func(query string, p domain.PaginationParams) ([]service.CityLink, int) {
			capturedQuery, captured = query, p
			return []service.CityLink{{Name: "London", Country: "UK", Slug: "london"}}, 1
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/cities", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, capturedQuery)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 50}, captured)

	body := decode[handler.CityList](t, rec.Body)
	assert.Equal(t, handler.Pagination{Page: 1, Limit: 50, Total: 1}, body.Pagination)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "london", body.Data[0].Slug)
}

func TestListCities_200_QueryAndPaging(t *testing.T) {
	var captured domain.PaginationParams
	var capturedQuery string
	svc := &mockTimeServicer{
		listCities: func(query string, p domain.PaginationParams) ([]service.CityLink, int) {
			capturedQuery, captured = query, p
			return []service.CityLink{}, 0
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/cities?q=san&page=2&limit=500", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "san", capturedQuery)
	assert.Equal(t, 2, captured.Page)
	assert.Equal(t, 200, captured.Limit, "limit is capped")
}

func TestListCities_400_BadPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cities?page=two", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(&mockTimeServicer{}, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[handler.ErrorResponse](t, rec.Body)
	assert.Equal(t, "bad_request", body.Error.Code)
}

func TestListCities_200_PageBeyondRange(t *testing.T) {
	for _, page := range []string{"9223372036854775807", "4611686018427387904", "4"} {
		t.Run(page, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/cities?page="+page+"&limit=50", nil)
			rec := httptest.NewRecorder()
			newHTTPHandler(realTimeService(t), nil).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			body := decode[handler.CityList](t, rec.Body)
			assert.Empty(t, body.Data)
			assert.Equal(t, 50, body.Pagination.Limit)
			assert.Positive(t, body.Pagination.Total)
		})
	}
}

func TestListCities_200_RealRegistryFirstPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cities?limit=5", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(realTimeService(t), nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[handler.CityList](t, rec.Body)
	assert.Len(t, body.Data, 5)
	assert.Greater(t, body.Pagination.Total, 5)
}
