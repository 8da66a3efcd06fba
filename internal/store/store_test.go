package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCredentialRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	expires := time.Now().Add(6 * time.Hour).Truncate(time.Second)
	cred := &Credential{
		UserName:     "5646321",
		AthleteID:    5646321,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    expires,
	}
	require.NoError(t, s.SaveCredential(ctx, cred))

	got, err := s.GetCredential(ctx, "5646321")
	require.NoError(t, err)
	assert.Equal(t, "access-1", got.AccessToken)
	assert.Equal(t, "refresh-1", got.RefreshToken)
	assert.Equal(t, int64(5646321), got.AthleteID)
	assert.Equal(t, expires.Unix(), got.ExpiresAt.Unix())
}

func TestCredentialUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cred := &Credential{UserName: "u1", AthleteID: 1, AccessToken: "old", RefreshToken: "r", ExpiresAt: time.Now()}
	require.NoError(t, s.SaveCredential(ctx, cred))

	cred.AccessToken = "new"
	require.NoError(t, s.SaveCredential(ctx, cred))

	got, err := s.GetCredential(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.AccessToken)
}

func TestCredentialsAreKeyedPerUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCredential(ctx, &Credential{UserName: "u1", AthleteID: 1, AccessToken: "a1", RefreshToken: "r", ExpiresAt: time.Now()}))
	require.NoError(t, s.SaveCredential(ctx, &Credential{UserName: "u2", AthleteID: 2, AccessToken: "a2", RefreshToken: "r", ExpiresAt: time.Now()}))

	got, err := s.GetCredential(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "a2", got.AccessToken)

	require.NoError(t, s.DeleteCredential(ctx, "u1"))
	_, err = s.GetCredential(ctx, "u1")
	assert.ErrorIs(t, err, ErrNoAuth)

	// u2 is untouched
	_, err = s.GetCredential(ctx, "u2")
	assert.NoError(t, err)
}

func TestGetCredentialMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetCredential(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoAuth)
}

func TestDeleteCredentialIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Never stored
	require.NoError(t, s.DeleteCredential(ctx, "nobody"))

	require.NoError(t, s.SaveCredential(ctx, &Credential{UserName: "u1", AthleteID: 1, AccessToken: "a", RefreshToken: "r", ExpiresAt: time.Now()}))
	require.NoError(t, s.DeleteCredential(ctx, "u1"))
	require.NoError(t, s.DeleteCredential(ctx, "u1"))
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, "sess-1", "5646321", time.Now().Add(time.Hour)))

	user, err := s.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "5646321", user)

	require.NoError(t, s.DeleteSession(ctx, "sess-1"))
	_, err = s.GetSession(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionExpiry(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, "sess-old", "u1", time.Now().Add(-time.Minute)))

	_, err := s.GetSession(ctx, "sess-old")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestDeleteSessionUnknownID(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.DeleteSession(context.Background(), "missing"))
}
