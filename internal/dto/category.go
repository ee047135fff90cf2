package dto

import (
	"time"

	"STOREHUB_BACK-END/internal/models"
)

// CreateCategoryRequest represents the payload to create a category
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest represents the payload to rename a category
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryPayload represents a category in API responses
type CategoryPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// NewCategoryPayload converts a category row for API responses.
func NewCategoryPayload(c models.Category) CategoryPayload {
	return CategoryPayload{
		ID:        c.ID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// CategoryListResponse wraps the category listing
type CategoryListResponse struct {
	Success    bool              `json:"success"`
	Categories []CategoryPayload `json:"categories"`
}

// CategoryResponse wraps a single category
type CategoryResponse struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message,omitempty"`
	Category CategoryPayload `json:"category"`
}

// DeleteResponse acknowledges a deletion
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
