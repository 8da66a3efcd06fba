package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"stravaproxy/internal/auth"
	"stravaproxy/internal/store"
)

// stateCookie carries the CSRF state between /login and /callback.
const stateCookie = "STRAVAPROXYSTATE"

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	state, err := auth.GenerateState()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "generating state failed")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300,
	})
	http.Redirect(w, r, s.oauth.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) callback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(stateCookie)
	if err != nil || r.URL.Query().Get("state") != cookie.Value {
		writeError(w, http.StatusBadRequest, "state mismatch")
		return
	}
	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("auth error: %s", errMsg))
		return
	}
	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "no code in callback")
		return
	}

	token, err := s.oauth.Exchange(r.Context(), code)
	if err != nil {
		s.log.Warnf("exchanging code for token: %v", err)
		writeError(w, http.StatusBadGateway, "token exchange failed")
		return
	}

	athleteID := auth.ExtractAthleteID(token)
	if athleteID == 0 {
		writeError(w, http.StatusBadGateway, "token response carried no athlete")
		return
	}
	user := strconv.FormatInt(athleteID, 10)

	cred := &store.Credential{
		UserName:     user,
		AthleteID:    athleteID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	}
	if err := s.creds.SaveCredential(r.Context(), cred); err != nil {
		writeError(w, http.StatusInternalServerError, "storing credentials failed")
		return
	}
	if err := s.sessions.Begin(r.Context(), w, user); err != nil {
		writeError(w, http.StatusInternalServerError, "starting session failed")
		return
	}

	s.log.Infof("authenticated athlete %d", athleteID)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Successfully authenticated as athlete %d at %s\n", athleteID, time.Now().Format(time.RFC3339))
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	user, err := s.sessions.User(r)
	if err == nil {
		if err := s.resolver.Invalidate(r.Context(), user); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	if err := s.sessions.End(r.Context(), w, r); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Uitgelogd"))
}
