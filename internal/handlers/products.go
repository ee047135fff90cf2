package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"STOREHUB_BACK-END/internal/dto"
	"STOREHUB_BACK-END/internal/service"
	"STOREHUB_BACK-END/internal/utils"
)

// ProductHandler handles product CRUD endpoints
type ProductHandler struct {
	products *service.ProductService
}

// NewProductHandler creates a new ProductHandler instance
func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// Products dispatches by HTTP method for /api/products
func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ProductByID dispatches by HTTP method for /api/products/{id}
func (h *ProductHandler) ProductByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/products/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Product not found.")
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

// List handles GET /api/products
// @Summary List products
// @Description List all products with category names, newest first
// @Tags products
// @Produce json
// @Success 200 {object} dto.ProductListResponse "Products retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	payloads := make([]dto.ProductPayload, 0, len(products))
	for _, p := range products {
		payloads = append(payloads, dto.NewProductPayload(p))
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ProductListResponse{
		Success:  true,
		Products: payloads,
	})
}

// Get handles GET /api/products/{id}
// @Summary Get product
// @Description Get a single product with its category name
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse "Product retrieved"
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/products/{id} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	product, err := h.products.Get(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ProductResponse{
		Success: true,
		Product: dto.NewProductPayload(product),
	})
}

// Create handles POST /api/products
// @Summary Create product
// @Description Create a product, optionally referencing an existing category
// @Tags products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Product payload"
// @Success 201 {object} dto.ProductResponse "Product created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	product, err := h.products.Create(r.Context(), req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.ProductResponse{
		Success: true,
		Message: "Product created successfully!",
		Product: dto.NewProductPayload(product),
	})
}

// Update handles PUT /api/products/{id}
// @Summary Update product
// @Description Partially update a product; omitted fields are untouched, categoryId null clears the reference
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.UpdateProductRequest true "Product patch"
// @Success 200 {object} dto.ProductResponse "Product updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req dto.UpdateProductRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	product, err := h.products.Update(r.Context(), id, req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ProductResponse{
		Success: true,
		Message: "Product updated successfully!",
		Product: dto.NewProductPayload(product),
	})
}

// Delete handles DELETE /api/products/{id}
// @Summary Delete product
// @Description Delete a product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.DeleteResponse "Product deleted"
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.products.Delete(r.Context(), id); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "Product deleted successfully!",
	})
}
