package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"stravaproxy/internal/auth"
	"stravaproxy/internal/strava"
)

// writeClientError translates any failure from token resolution or the
// upstream client into the stable boundary contract. The mapping is total:
// every error kind the core can produce has exactly one branch, and anything
// else is a generic client error.
func (s *Server) writeClientError(w http.ResponseWriter, err error) {
	var rangeErr *strava.TimeRangeError
	var apiErr *strava.APIError
	var decodeErr *strava.DecodeError

	switch {
	case errors.As(err, &rangeErr):
		s.log.Warnf("TimeRangeError with message %q. Returned %d.", rangeErr.Error(), http.StatusBadRequest)
		writeError(w, http.StatusBadRequest, rangeErr.Error())

	case errors.Is(err, auth.ErrNoAuthorizedClient):
		s.log.Warnf("no authorized client. Returned %d.", http.StatusUnauthorized)
		writeError(w, http.StatusUnauthorized, "not authenticated with Strava")

	case errors.As(err, &apiErr):
		status := apiErr.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		s.log.Warnf("APIError with message %q. Returned %d.", apiErr.Error(), status)
		writeError(w, status, apiErr.Message())

	case errors.As(err, &decodeErr):
		s.log.Warnf("DecodeError with message %q. Returned %d.", decodeErr.Msg, http.StatusBadGateway)
		writeError(w, http.StatusBadGateway, decodeErr.Msg)

	default:
		s.log.Warnf("%T with message %q. Returned %d.", err, err.Error(), http.StatusBadRequest)
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
