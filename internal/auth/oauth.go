package auth

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/oauth2"
)

const (
	AuthURL  = "https://www.strava.com/oauth/authorize"
	TokenURL = "https://www.strava.com/oauth/token"
)

// Strava deviates from the OAuth2 spec and wants its scopes comma-joined in
// a single parameter, so the slice holds one combined entry.
var Scopes = []string{
	"read,activity:read_all,activity:write",
}

// Config carries the registered application's credentials and the callback
// URL Strava redirects to after consent.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// NewOAuthConfig builds the oauth2.Config for the authorization-code flow
// against Strava's endpoints.
func NewOAuthConfig(cfg Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  AuthURL,
			TokenURL: TokenURL,
		},
		RedirectURL: cfg.RedirectURL,
		Scopes:      Scopes,
	}
}

// ExtractAthleteID reads the athlete id out of the token response. Strava
// embeds a summary athlete object alongside the token; a missing or
// malformed object yields 0.
func ExtractAthleteID(token *oauth2.Token) int64 {
	if athlete, ok := token.Extra("athlete").(map[string]interface{}); ok {
		if id, ok := athlete["id"].(float64); ok {
			return int64(id)
		}
	}
	return 0
}

// GenerateState returns a random hex string tying a login redirect to its
// callback.
func GenerateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
