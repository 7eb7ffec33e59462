package handler

import (
	"net/http"
	"time"

	"github.com/oapi-codegen/runtime"
)

// bindQuery binds an optional form-style query parameter into dest, which
// must be a pointer to a pointer so absence leaves it nil.
func bindQuery(r *http.Request, name string, dest any) error {
	return runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dest)
}

// instant returns the ?at parameter (RFC 3339) or the server clock.
func (s *Server) instant(r *http.Request) (time.Time, error) {
	var at *time.Time
	if err := bindQuery(r, "at", &at); err != nil {
		return time.Time{}, err
	}
	if at == nil {
		return s.now().UTC(), nil
	}
	return at.UTC(), nil
}
