package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"STOREHUB_BACK-END/internal/dto"
	"STOREHUB_BACK-END/internal/service"
	"STOREHUB_BACK-END/internal/utils"
)

// CategoryHandler handles category CRUD endpoints
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// Categories dispatches by HTTP method for /api/categories
func (h *CategoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CategoryByID dispatches by HTTP method for /api/categories/{id}
func (h *CategoryHandler) CategoryByID(w http.ResponseWriter, r *http.Request) {
	// Unparseable ids match no row, same as the listing semantics.
	idStr := strings.TrimPrefix(r.URL.Path, "/api/categories/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Category not found.")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.Get(w, r, id)
	case http.MethodPut:
		h.Update(w, r, id)
	case http.MethodDelete:
		h.Delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// List handles GET /api/categories
// @Summary List categories
// @Description List all categories ordered by name
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse "Categories retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	payloads := make([]dto.CategoryPayload, 0, len(categories))
	for _, c := range categories {
		payloads = append(payloads, dto.NewCategoryPayload(c))
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CategoryListResponse{
		Success:    true,
		Categories: payloads,
	})
}

// Get handles GET /api/categories/{id}
// @Summary Get category
// @Description Get a single category by id
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse "Category retrieved"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	category, err := h.categories.Get(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CategoryResponse{
		Success:  true,
		Category: dto.NewCategoryPayload(category),
	})
}

// Create handles POST /api/categories
// @Summary Create category
// @Description Create a category with a unique name
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category payload"
// @Success 201 {object} dto.CategoryResponse "Category created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	category, err := h.categories.Create(r.Context(), req.Name)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.CategoryResponse{
		Success:  true,
		Message:  "Category created successfully!",
		Category: dto.NewCategoryPayload(category),
	})
}

// Update handles PUT /api/categories/{id}
// @Summary Rename category
// @Description Rename a category; the new name must not collide with another category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Category payload"
// @Success 200 {object} dto.CategoryResponse "Category updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 409 {object} dto.ErrorResponse "Name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req dto.UpdateCategoryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	category, err := h.categories.Update(r.Context(), id, req.Name)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CategoryResponse{
		Success:  true,
		Message:  "Category updated successfully!",
		Category: dto.NewCategoryPayload(category),
	})
}

// Delete handles DELETE /api/categories/{id}
// @Summary Delete category
// @Description Delete a category; referencing products keep their rows with a nulled reference
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.DeleteResponse "Category deleted"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.categories.Delete(r.Context(), id); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "Category deleted successfully!",
	})
}
