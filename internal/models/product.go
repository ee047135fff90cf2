package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a row in the products table.
// CategoryID is a weak reference: it is nulled when the category is deleted.
type Product struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	CategoryID *uuid.UUID `json:"category_id" db:"category_id"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// ProductWithCategory is the left-joined read view of a product.
// CategoryName is nil when the product has no category.
type ProductWithCategory struct {
	Product
	CategoryName *string `json:"category_name" db:"category_name"`
}
