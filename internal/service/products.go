package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"STOREHUB_BACK-END/internal/apperr"
	"STOREHUB_BACK-END/internal/dto"
	"STOREHUB_BACK-END/internal/models"
	"STOREHUB_BACK-END/internal/store"
)

// ProductStore is the persistence surface the product service needs.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.ProductWithCategory, error)
	ProductByID(ctx context.Context, id uuid.UUID) (models.ProductWithCategory, error)
	CreateProduct(ctx context.Context, id uuid.UUID, name string, categoryID *uuid.UUID) error
	UpdateProduct(ctx context.Context, id uuid.UUID, patch store.ProductPatch) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// CategoryChecker validates category references at write time.
type CategoryChecker interface {
	CategoryExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ProductService implements product CRUD over the joined read view.
type ProductService struct {
	store      ProductStore
	categories CategoryChecker
}

// NewProductService creates a ProductService.
func NewProductService(st ProductStore, categories CategoryChecker) *ProductService {
	return &ProductService{store: st, categories: categories}
}

// List returns all products with category names, newest first.
func (s *ProductService) List(ctx context.Context) ([]models.ProductWithCategory, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve products.", err)
	}
	return products, nil
}

// Get returns a single product with its category name.
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (models.ProductWithCategory, error) {
	product, err := s.store.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.ProductWithCategory{}, apperr.NotFound("Product not found.")
		}
		return models.ProductWithCategory{}, apperr.Internal("Failed to retrieve product.", err)
	}
	return product, nil
}

// Create inserts a product, then re-reads it through the joined view so
// the response carries the category name.
func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (models.ProductWithCategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.ProductWithCategory{}, apperr.Validation("Product name is required.")
	}

	categoryID := req.CategoryID.Ptr()
	if err := s.checkCategory(ctx, categoryID); err != nil {
		return models.ProductWithCategory{}, err
	}

	id := uuid.New()
	if err := s.store.CreateProduct(ctx, id, name, categoryID); err != nil {
		return models.ProductWithCategory{}, apperr.Internal("An error occurred while creating the product.", err)
	}

	product, err := s.store.ProductByID(ctx, id)
	if err != nil {
		return models.ProductWithCategory{}, apperr.Internal("An error occurred while creating the product.", err)
	}
	return product, nil
}

// Update applies a partial update: omitted fields stay untouched, and
// categoryId explicitly set to null clears the reference.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (models.ProductWithCategory, error) {
	if !req.Name.Set && !req.CategoryID.Set {
		return models.ProductWithCategory{}, apperr.Validation("At least product name or category ID must be provided for update.")
	}

	var namePtr *string
	if req.Name.Set {
		name := strings.TrimSpace(req.Name.Value)
		if !req.Name.Valid || name == "" {
			return models.ProductWithCategory{}, apperr.Validation("Product name is required.")
		}
		namePtr = &name
	}

	categoryID := req.CategoryID.Ptr()
	if err := s.checkCategory(ctx, categoryID); err != nil {
		return models.ProductWithCategory{}, err
	}

	patch := store.ProductPatch{
		Name:        namePtr,
		SetCategory: req.CategoryID.Set,
		CategoryID:  categoryID,
	}
	if err := s.store.UpdateProduct(ctx, id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.ProductWithCategory{}, apperr.NotFound("Product not found.")
		}
		return models.ProductWithCategory{}, apperr.Internal("An error occurred while updating the product.", err)
	}

	product, err := s.store.ProductByID(ctx, id)
	if err != nil {
		return models.ProductWithCategory{}, apperr.Internal("An error occurred while updating the product.", err)
	}
	return product, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Product not found.")
		}
		return apperr.Internal("An error occurred while deleting the product.", err)
	}
	return nil
}

// checkCategory validates a non-nil category reference at write time.
func (s *ProductService) checkCategory(ctx context.Context, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	exists, err := s.categories.CategoryExists(ctx, *categoryID)
	if err != nil {
		return apperr.Internal("An error occurred while validating the category.", err)
	}
	if !exists {
		return apperr.Validation("Invalid category ID provided.")
	}
	return nil
}
