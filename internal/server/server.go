// Package server is the HTTP route layer: it authenticates requests, parses
// parameters, and forwards the real work to the strava client.
package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"stravaproxy/internal/auth"
	"stravaproxy/internal/store"
	"stravaproxy/internal/strava"
)

// Server wires the HTTP endpoints to their collaborators.
type Server struct {
	client   *strava.Client
	resolver auth.Resolver
	sessions *auth.Sessions
	oauth    *oauth2.Config
	creds    *store.Store
	log      *zap.SugaredLogger
}

// New builds a Server.
func New(client *strava.Client, resolver auth.Resolver, sessions *auth.Sessions, oauthCfg *oauth2.Config, creds *store.Store, log *zap.SugaredLogger) *Server {
	return &Server{
		client:   client,
		resolver: resolver,
		sessions: sessions,
		oauth:    oauthCfg,
		creds:    creds,
		log:      log,
	}
}

// Routes returns the service handler with all endpoints registered.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", s.login)
	mux.HandleFunc("/callback", s.callback)
	mux.HandleFunc("/logout", s.logout)
	mux.HandleFunc("/athlete", s.athlete)
	mux.HandleFunc("/athlete/activities", s.activities)
	mux.HandleFunc("/activity/name", s.renameActivity)
	mux.HandleFunc("/healthz", healthz)
	mux.Handle("/metrics", promhttp.Handler())
	return requestLogger(s.log, mux)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// NewHTTPServer creates *http.Server with the service timeouts applied.
func NewHTTPServer(address string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         address,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
