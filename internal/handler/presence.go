package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JamesDimonaco/timezone-map/internal/service"
)

// PostHeartbeat handles POST /presence/heartbeat. The body is a
// service.Heartbeat; timezone may be omitted and is then inferred.
func (s *Server) PostHeartbeat(w http.ResponseWriter, r *http.Request) {
	var hb service.Heartbeat
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&hb); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("too_large", "request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, requestBody("request body must be a heartbeat JSON object"))
		return
	}

	if err := s.presence.Heartbeat(r.Context(), hb); err != nil {
		s.writeError(w, r, err, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetPresence handles GET /presence.
func (s *Server) GetPresence(w http.ResponseWriter, r *http.Request) {
	active, err := s.presence.Active(r.Context())
	if err != nil {
		s.writeError(w, r, err, "presence unavailable")
		return
	}
	writeJSON(w, http.StatusOK, active)
}
