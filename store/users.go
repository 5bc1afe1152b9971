package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"smartpocket-ai/backend/models"
)

// CreateUser inserts a new user. A duplicate email surfaces as
// ErrEmailTaken via the unique constraint; the match is case-sensitive.
func (s *Store) CreateUser(ctx context.Context, fullName, email, passwordHash string) (models.User, error) {
	u := models.User{FullName: fullName, Email: email, PasswordHash: passwordHash}
	err := s.db.QueryRow(ctx,
		`INSERT INTO users(full_name, email, password_hash) VALUES($1,$2,$3) RETURNING id, created_at`,
		fullName, email, passwordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.userBy(ctx, `SELECT id, full_name, email, password_hash, created_at FROM users WHERE email=$1`, email)
}

func (s *Store) UserByID(ctx context.Context, id int64) (models.User, error) {
	return s.userBy(ctx, `SELECT id, full_name, email, password_hash, created_at FROM users WHERE id=$1`, id)
}

func (s *Store) userBy(ctx context.Context, query string, arg any) (models.User, error) {
	var u models.User
	err := s.db.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}
