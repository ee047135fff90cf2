package handlers

import (
	"net/http"

	"STOREHUB_BACK-END/internal/dto"
	"STOREHUB_BACK-END/internal/middleware"
	"STOREHUB_BACK-END/internal/service"
	"STOREHUB_BACK-END/internal/utils"
)

// AuthHandler handles signup, login, and user listing
type AuthHandler struct {
	users *service.UserService
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Signup handles user registration
// @Summary Register a new user
// @Description Create a new user account with name, email, and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "User registration data"
// @Success 201 {object} dto.SignupResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.SignupRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	userID, err := h.users.Signup(r.Context(), req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.SignupResponse{
		Success: true,
		Message: "User registered successfully!",
		UserID:  userID.String(),
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	token, user, err := h.users.Login(r.Context(), req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful!",
		Token:   token,
		User:    dto.NewPublicUser(user),
	})
}

// ListUsers returns all registered users
// @Summary List users
// @Description List all users, newest first, without password hashes
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserListResponse "Users retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	users, err := h.users.List(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	publicUsers := make([]dto.PublicUser, 0, len(users))
	for _, u := range users {
		publicUsers = append(publicUsers, dto.NewPublicUser(u))
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.UserListResponse{
		Success: true,
		Users:   publicUsers,
	})
}

// Me returns the authenticated user's own profile
// @Summary Current user
// @Description Return the authenticated user's public projection
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MeResponse "User retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MeResponse{
		Success: true,
		User:    dto.NewPublicUser(user),
	})
}
