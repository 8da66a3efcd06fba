package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SaveSession stores a session id for a user
func (s *Store) SaveSession(ctx context.Context, id, user string, expiresAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, user_name, expires_at)
		VALUES (?, ?, ?)
	`, id, user, expiresAt.Unix())
	return err
}

// GetSession returns the user behind a session id. Expired sessions are
// treated as absent.
func (s *Store) GetSession(ctx context.Context, id string) (string, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_name, expires_at FROM sessions WHERE id = ?
	`, id)

	var user string
	var expiresAt int64
	err := row.Scan(&user, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}

	if time.Now().Unix() >= expiresAt {
		_, _ = s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
		return "", ErrNoSession
	}

	return user, nil
}

// DeleteSession removes a session id. Unknown ids are a no-op.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}
