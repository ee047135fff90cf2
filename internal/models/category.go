package models

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a row in the categories table
type Category struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
