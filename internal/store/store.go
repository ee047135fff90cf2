// Package store is the persistence gateway: parameterized SQL over a
// pgx connection pool, returning rows or affected counts. Uniqueness is
// ultimately enforced by the schema's constraints; a unique violation
// surfaces as ErrConflict so services can report it as a conflict even
// when two requests race past the pre-insert checks.
package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound means no row matched, or a mutation affected zero rows.
	ErrNotFound = errors.New("store: not found")
	// ErrConflict means a unique constraint rejected the write.
	ErrConflict = errors.New("store: conflict")
)

// Postgres implements the gateway against a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres wraps an existing pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// ProductPatch selects the product fields to update. Name nil leaves the
// name untouched. SetCategory false leaves category_id untouched;
// SetCategory true with a nil CategoryID clears the reference.
type ProductPatch struct {
	Name        *string
	SetCategory bool
	CategoryID  *uuid.UUID
}

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
