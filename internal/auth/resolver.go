package auth

import (
	"context"
	"errors"

	"stravaproxy/internal/store"
)

// ErrNoAuthorizedClient is returned when no Strava token is associated with a
// user (never logged in, or logged out since).
var ErrNoAuthorizedClient = errors.New("no authorized client for user")

// Resolver hands out the current Strava access token for a user. The lookup
// happens on every call so a logout is visible to the very next Resolve.
type Resolver interface {
	Resolve(ctx context.Context, user string) (string, error)
	Invalidate(ctx context.Context, user string) error
}

// StoreResolver resolves tokens from the credential store.
type StoreResolver struct {
	store *store.Store
}

// NewStoreResolver creates a Resolver backed by the given store.
func NewStoreResolver(s *store.Store) *StoreResolver {
	return &StoreResolver{store: s}
}

// Resolve returns the stored access token for user.
func (r *StoreResolver) Resolve(ctx context.Context, user string) (string, error) {
	cred, err := r.store.GetCredential(ctx, user)
	if errors.Is(err, store.ErrNoAuth) {
		return "", ErrNoAuthorizedClient
	}
	if err != nil {
		return "", err
	}
	return cred.AccessToken, nil
}

// Invalidate removes any stored token for user. Removing a user that has no
// stored token is not an error.
func (r *StoreResolver) Invalidate(ctx context.Context, user string) error {
	return r.store.DeleteCredential(ctx, user)
}
