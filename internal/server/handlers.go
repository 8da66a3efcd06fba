package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
	_ "time/tzdata" // timeZone parameters are IANA names; don't depend on host zoneinfo

	"stravaproxy/internal/auth"
)

func (s *Server) athlete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	s.log.Infof("GET request received at /athlete for user %s", user)

	athlete, err := s.client.GetAthlete(r.Context(), user)
	if err != nil {
		s.writeClientError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, athlete)
}

func (s *Server) activities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	if query.Get("timeZone") == "" {
		writeError(w, http.StatusBadRequest, "missing timeZone parameter")
		return
	}
	zone, err := time.LoadLocation(query.Get("timeZone"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid timeZone %q", query.Get("timeZone")))
		return
	}
	after, err := parseLocalDateTime(query.Get("after"), zone)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid after parameter %q", query.Get("after")))
		return
	}
	before, err := parseLocalDateTime(query.Get("before"), zone)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid before parameter %q", query.Get("before")))
		return
	}

	s.log.Infof("GET request received at /athlete/activities for user %s with runs between %s and %s",
		user, after.Format(time.RFC3339), before.Format(time.RFC3339))

	activities, err := s.client.ListActivities(r.Context(), user, after, before)
	if err != nil {
		s.writeClientError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// renameRequest is the PUT /activity/name payload. The id is kept raw: it
// arrives as a number or a quoted number, and either way a bad value fails
// its own check rather than the body parse.
type renameRequest struct {
	ActivityID json.RawMessage `json:"activityId"`
	NewName    *string         `json:"newName"`
}

func (s *Server) renameActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse body")
		return
	}
	activityID, err := parseActivityID(req.ActivityID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ActivityId must be a number")
		return
	}
	if req.NewName == nil {
		writeError(w, http.StatusBadRequest, "New name cannot be null")
		return
	}

	s.log.Infof("PUT request from %s at /activity/name to replace name for activity %d with %q",
		user, activityID, *req.NewName)

	updated, err := s.client.RenameActivity(r.Context(), user, activityID, *req.NewName)
	if err != nil {
		s.writeClientError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// currentUser resolves the session behind the request. Requests without a
// session are redirected to the login flow.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	user, err := s.sessions.User(r)
	if errors.Is(err, auth.ErrNoSession) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return "", false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return "", false
	}
	return user, true
}

// parseActivityID reads an activity id that clients send either as a JSON
// number or as a quoted numeric string.
func parseActivityID(raw json.RawMessage) (int64, error) {
	var id int64
	if err := json.Unmarshal(raw, &id); err == nil {
		return id, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("activityId is neither a number nor a string")
	}
	return strconv.ParseInt(s, 10, 64)
}

// parseLocalDateTime parses an ISO local datetime, with or without seconds,
// in the given zone.
func parseLocalDateTime(value string, zone *time.Location) (time.Time, error) {
	layouts := []string{"2006-01-02T15:04:05", "2006-01-02T15:04"}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, zone)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
