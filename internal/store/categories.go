package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"STOREHUB_BACK-END/internal/models"
)

// ListCategories returns all categories ordered by name.
func (s *Postgres) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, created_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CategoryByID fetches a single category.
func (s *Postgres) CategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error) {
	var c models.Category
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = $1 LIMIT 1`, id).
		Scan(&c.ID, &c.Name, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Category{}, ErrNotFound
	}
	return c, err
}

// CategoryExists reports whether the category id references a row.
func (s *Postgres) CategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var found uuid.UUID
	err := s.pool.QueryRow(ctx,
		`SELECT id FROM categories WHERE id = $1 LIMIT 1`, id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CategoryNameTaken reports whether another category already uses name.
// Pass uuid.Nil as exclude when creating.
func (s *Postgres) CategoryNameTaken(ctx context.Context, name string, exclude uuid.UUID) (bool, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`SELECT id FROM categories WHERE name = $1 AND id != $2 LIMIT 1`,
		name, exclude).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateCategory inserts a category row.
func (s *Postgres) CreateCategory(ctx context.Context, id uuid.UUID, name string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO categories (id, name) VALUES ($1, $2)`, id, name)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

// RenameCategory updates the category name.
func (s *Postgres) RenameCategory(ctx context.Context, id uuid.UUID, name string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2`, name, id)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category. Products referencing it keep their
// rows; the FK action nulls category_id.
func (s *Postgres) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
