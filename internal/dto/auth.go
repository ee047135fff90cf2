package dto

import (
	"time"

	"STOREHUB_BACK-END/internal/models"
)

// SignupRequest represents the request payload for user signup
type SignupRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PublicUser is the user projection returned by the API; the password
// hash is stripped before serialization.
type PublicUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// NewPublicUser projects a user row for API responses.
func NewPublicUser(u models.User) PublicUser {
	return PublicUser{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// SignupResponse is returned after successful registration
type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginResponse is returned after successful authentication
type LoginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// UserListResponse wraps the user listing
type UserListResponse struct {
	Success bool         `json:"success"`
	Users   []PublicUser `json:"users"`
}

// MeResponse wraps the authenticated user's own projection
type MeResponse struct {
	Success bool       `json:"success"`
	User    PublicUser `json:"user"`
}

// ErrorResponse is the uniform failure envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
