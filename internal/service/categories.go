package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"STOREHUB_BACK-END/internal/apperr"
	"STOREHUB_BACK-END/internal/models"
	"STOREHUB_BACK-END/internal/store"
)

// CategoryStore is the persistence surface the category service needs.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error)
	CategoryNameTaken(ctx context.Context, name string, exclude uuid.UUID) (bool, error)
	CreateCategory(ctx context.Context, id uuid.UUID, name string) error
	RenameCategory(ctx context.Context, id uuid.UUID, name string) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// CategoryService implements category CRUD.
type CategoryService struct {
	store CategoryStore
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(st CategoryStore) *CategoryService {
	return &CategoryService{store: st}
}

// List returns all categories ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve categories.", err)
	}
	return categories, nil
}

// Get returns a single category.
func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (models.Category, error) {
	category, err := s.store.CategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Category{}, apperr.NotFound("Category not found.")
		}
		return models.Category{}, apperr.Internal("Failed to retrieve category.", err)
	}
	return category, nil
}

// Create inserts a category and returns the freshly read row, including
// the server-assigned created_at.
func (s *CategoryService) Create(ctx context.Context, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, apperr.Validation("Category name is required.")
	}

	taken, err := s.store.CategoryNameTaken(ctx, name, uuid.Nil)
	if err != nil {
		return models.Category{}, apperr.Internal("An error occurred while creating the category.", err)
	}
	if taken {
		return models.Category{}, apperr.Conflict("Category name already exists.")
	}

	id := uuid.New()
	if err := s.store.CreateCategory(ctx, id, name); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return models.Category{}, apperr.Conflict("Category name already exists.")
		}
		return models.Category{}, apperr.Internal("An error occurred while creating the category.", err)
	}

	category, err := s.store.CategoryByID(ctx, id)
	if err != nil {
		return models.Category{}, apperr.Internal("An error occurred while creating the category.", err)
	}
	return category, nil
}

// Update renames a category, rejecting names already used by another
// category, and returns the refreshed row.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, apperr.Validation("Category name is required for update.")
	}

	// Existence first: renaming a missing category is 404 even when the
	// target name collides.
	if _, err := s.store.CategoryByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Category{}, apperr.NotFound("Category not found.")
		}
		return models.Category{}, apperr.Internal("An error occurred while updating the category.", err)
	}

	taken, err := s.store.CategoryNameTaken(ctx, name, id)
	if err != nil {
		return models.Category{}, apperr.Internal("An error occurred while updating the category.", err)
	}
	if taken {
		return models.Category{}, apperr.Conflict("Category name already exists.")
	}

	if err := s.store.RenameCategory(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return models.Category{}, apperr.NotFound("Category not found.")
		case errors.Is(err, store.ErrConflict):
			return models.Category{}, apperr.Conflict("Category name already exists.")
		default:
			return models.Category{}, apperr.Internal("An error occurred while updating the category.", err)
		}
	}

	category, err := s.store.CategoryByID(ctx, id)
	if err != nil {
		return models.Category{}, apperr.Internal("An error occurred while updating the category.", err)
	}
	return category, nil
}

// Delete removes a category. Products referencing it are not deleted;
// the store's FK action nulls their reference.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Category not found.")
		}
		return apperr.Internal("An error occurred while deleting the category.", err)
	}
	return nil
}
