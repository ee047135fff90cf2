package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"STOREHUB_BACK-END/internal/models"
)

const productSelect = `
	SELECT p.id, p.name, p.category_id, p.created_at, c.name AS category_name
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id`

// ListProducts returns all products joined with their category name,
// newest first.
func (s *Postgres) ListProducts(ctx context.Context) ([]models.ProductWithCategory, error) {
	rows, err := s.pool.Query(ctx, productSelect+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.ProductWithCategory{}
	for rows.Next() {
		var p models.ProductWithCategory
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryID, &p.CreatedAt, &p.CategoryName); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// ProductByID fetches a single product joined with its category name.
func (s *Postgres) ProductByID(ctx context.Context, id uuid.UUID) (models.ProductWithCategory, error) {
	var p models.ProductWithCategory
	err := s.pool.QueryRow(ctx, productSelect+` WHERE p.id = $1 LIMIT 1`, id).
		Scan(&p.ID, &p.Name, &p.CategoryID, &p.CreatedAt, &p.CategoryName)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ProductWithCategory{}, ErrNotFound
	}
	return p, err
}

// CreateProduct inserts a product row. categoryID may be nil.
func (s *Postgres) CreateProduct(ctx context.Context, id uuid.UUID, name string, categoryID *uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO products (id, name, category_id) VALUES ($1, $2, $3)`,
		id, name, categoryID)
	return err
}

// UpdateProduct applies a partial update, touching only the fields the
// patch selects.
func (s *Postgres) UpdateProduct(ctx context.Context, id uuid.UUID, patch ProductPatch) error {
	sets := []string{}
	args := []any{}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.SetCategory {
		args = append(args, patch.CategoryID)
		sets = append(sets, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product row.
func (s *Postgres) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
