package dto

import (
	"time"

	"github.com/google/uuid"

	"STOREHUB_BACK-END/internal/models"
)

// CreateProductRequest represents the payload to create a product.
// categoryId may be omitted or null for an uncategorized product.
type CreateProductRequest struct {
	Name       string              `json:"name"`
	CategoryID Optional[uuid.UUID] `json:"categoryId"`
}

// UpdateProductRequest represents a partial product update. Omitted
// fields are left untouched; categoryId set to null clears the reference.
type UpdateProductRequest struct {
	Name       Optional[string]    `json:"name"`
	CategoryID Optional[uuid.UUID] `json:"categoryId"`
}

// ProductPayload represents a product, joined with its category name,
// in API responses
type ProductPayload struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CategoryID   *string `json:"category_id"`
	CategoryName *string `json:"category_name"`
	CreatedAt    string  `json:"created_at"`
}

// NewProductPayload converts a joined product row for API responses.
func NewProductPayload(p models.ProductWithCategory) ProductPayload {
	var categoryID *string
	if p.CategoryID != nil {
		s := p.CategoryID.String()
		categoryID = &s
	}
	return ProductPayload{
		ID:           p.ID.String(),
		Name:         p.Name,
		CategoryID:   categoryID,
		CategoryName: p.CategoryName,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

// ProductListResponse wraps the product listing
type ProductListResponse struct {
	Success  bool             `json:"success"`
	Products []ProductPayload `json:"products"`
}

// ProductResponse wraps a single product
type ProductResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Product ProductPayload `json:"product"`
}
