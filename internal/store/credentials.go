package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Credential holds the stored Strava tokens for one user.
type Credential struct {
	UserName     string
	AthleteID    int64
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// GetCredential retrieves the stored tokens for a user
func (s *Store) GetCredential(ctx context.Context, user string) (*Credential, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_name, athlete_id, access_token, refresh_token, expires_at
		FROM credentials
		WHERE user_name = ?
	`, user)

	var cred Credential
	var expiresAt int64
	err := row.Scan(&cred.UserName, &cred.AthleteID, &cred.AccessToken, &cred.RefreshToken, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoAuth
	}
	if err != nil {
		return nil, err
	}

	cred.ExpiresAt = time.Unix(expiresAt, 0)
	return &cred, nil
}

// SaveCredential stores or updates the tokens for a user
func (s *Store) SaveCredential(ctx context.Context, cred *Credential) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (user_name, athlete_id, access_token, refresh_token, expires_at, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_name) DO UPDATE SET
			athlete_id = excluded.athlete_id,
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			expires_at = excluded.expires_at,
			updated_at = CURRENT_TIMESTAMP
	`, cred.UserName, cred.AthleteID, cred.AccessToken, cred.RefreshToken, cred.ExpiresAt.Unix())
	return err
}

// DeleteCredential removes the stored tokens for a user. Deleting a user
// without stored tokens is a no-op.
func (s *Store) DeleteCredential(ctx context.Context, user string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE user_name = ?`, user)
	return err
}
