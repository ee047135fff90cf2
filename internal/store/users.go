package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"STOREHUB_BACK-END/internal/models"
)

// CreateUser inserts a user row. created_at is assigned by the database.
func (s *Postgres) CreateUser(ctx context.Context, u models.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, first_name, last_name, email, password_hash)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

// EmailTaken reports whether a user with the given email exists.
// Comparison is case-sensitive, matching the column's collation.
func (s *Postgres) EmailTaken(ctx context.Context, email string) (bool, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1 LIMIT 1`, email).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UserByEmail fetches a user including the password hash, for login.
func (s *Postgres) UserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, password_hash, created_at
		 FROM users WHERE email = $1 LIMIT 1`, email).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

// UserByID fetches a user without the password hash.
func (s *Postgres) UserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, created_at
		 FROM users WHERE id = $1 LIMIT 1`, id).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

// ListUsers returns all users, newest first, without password hashes.
func (s *Postgres) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, first_name, last_name, email, created_at
		 FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
