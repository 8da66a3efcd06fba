package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"stravaproxy/internal/store"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "STRAVAPROXYSESSION"

// SessionTTL is how long a login session stays valid.
const SessionTTL = 24 * time.Hour

// ErrNoSession is returned when a request carries no valid session.
var ErrNoSession = errors.New("no active session")

// Sessions maps opaque session ids to user identities. Sessions live
// server-side in the store; the browser only sees the id.
type Sessions struct {
	store *store.Store
}

// NewSessions creates a session manager backed by the given store.
func NewSessions(s *store.Store) *Sessions {
	return &Sessions{store: s}
}

// Begin creates a session for user and sets the session cookie.
func (s *Sessions) Begin(ctx context.Context, w http.ResponseWriter, user string) error {
	id := uuid.NewString()
	if err := s.store.SaveSession(ctx, id, user, time.Now().Add(SessionTTL)); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionTTL / time.Second),
	})
	return nil
}

// User returns the identity behind the request's session cookie.
func (s *Sessions) User(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", ErrNoSession
	}
	user, err := s.store.GetSession(r.Context(), cookie.Value)
	if errors.Is(err, store.ErrNoSession) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return user, nil
}

// End removes the request's session, if any, and clears the cookie.
// Ending a request without a session succeeds.
func (s *Sessions) End(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if err := s.store.DeleteSession(ctx, cookie.Value); err != nil {
			return err
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return nil
}
