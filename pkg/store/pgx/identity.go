package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const uniqueViolationCode = "23505"

// ResolveUser maps a platform identifier to the internal user id, creating
// the user on first sight. Two concurrent resolves for the same platform id
// serialize on the unique constraint over platform_user_id: the losing
// insert observes a unique violation and retries as a lookup, so the
// conflict never reaches the caller.
func (s *DBStorage) ResolveUser(ctx context.Context, platformID string) (int64, error) {
	userID, err := s.lookupUser(ctx, platformID)
	if err == nil {
		return userID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return 0, err
	}

	err = s.conn.QueryRow(ctx, `
		INSERT INTO users (public_id, platform_user_id)
		VALUES ($1, $2)
		RETURNING user_id
	`, publicID, platformID).Scan(&userID)
	if err == nil {
		return userID, nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return s.lookupUser(ctx, platformID)
	}
	return 0, err
}

func (s *DBStorage) lookupUser(ctx context.Context, platformID string) (int64, error) {
	var userID int64
	err := s.conn.QueryRow(ctx, `
		SELECT user_id FROM users WHERE platform_user_id = $1
	`, platformID).Scan(&userID)
	return userID, err
}
