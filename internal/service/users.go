// Package service holds the resource services: input validation,
// uniqueness and referential checks, and CRUD orchestration against the
// persistence gateway. Stores are injected as interfaces so tests can
// substitute in-memory implementations.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"STOREHUB_BACK-END/internal/apperr"
	"STOREHUB_BACK-END/internal/auth"
	"STOREHUB_BACK-END/internal/config"
	"STOREHUB_BACK-END/internal/dto"
	"STOREHUB_BACK-END/internal/models"
	"STOREHUB_BACK-END/internal/store"
)

// UserStore is the persistence surface the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, u models.User) error
	EmailTaken(ctx context.Context, email string) (bool, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// UserService implements signup, login, and user listing.
type UserService struct {
	store      UserStore
	jwt        *config.JWTConfig
	bcryptCost int
}

// NewUserService creates a UserService.
func NewUserService(st UserStore, cfg *config.Config) *UserService {
	return &UserService{store: st, jwt: &cfg.JWT, bcryptCost: cfg.Auth.BcryptCost}
}

// Signup registers a new user and returns the generated id. No token is
// issued on signup.
func (s *UserService) Signup(ctx context.Context, req dto.SignupRequest) (uuid.UUID, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return uuid.Nil, apperr.Validation("All fields are required.")
	}
	if req.Password != req.ConfirmPassword {
		return uuid.Nil, apperr.Validation("Passwords do not match.")
	}

	// Fast-path check; the unique constraint is the source of truth.
	taken, err := s.store.EmailTaken(ctx, req.Email)
	if err != nil {
		return uuid.Nil, apperr.Internal("An error occurred during registration. Please try again.", err)
	}
	if taken {
		return uuid.Nil, apperr.Conflict("Email address is already registered.")
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return uuid.Nil, apperr.Internal("An error occurred during registration. Please try again.", err)
	}

	user := models.User{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return uuid.Nil, apperr.Conflict("Email address is already registered.")
		}
		return uuid.Nil, apperr.Internal("An error occurred during registration. Please try again.", err)
	}

	return user.ID, nil
}

// Login authenticates a user and issues a signed token. The failure
// message is uniform: callers cannot tell a missing account from a wrong
// password.
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (string, models.User, error) {
	if req.Email == "" || req.Password == "" {
		return "", models.User{}, apperr.Validation("Email and password are required.")
	}

	user, err := s.store.UserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", models.User{}, apperr.Auth("Invalid credentials.")
		}
		return "", models.User{}, apperr.Internal("An error occurred during login. Please try again.", err)
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return "", models.User{}, apperr.Auth("Invalid credentials.")
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwt)
	if err != nil {
		return "", models.User{}, apperr.Internal("An error occurred during login. Please try again.", err)
	}

	user.PasswordHash = ""
	return token, user, nil
}

// List returns all users, newest first, as stored (hashes are never
// selected by the store for listings).
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve users.", err)
	}
	return users, nil
}

// GetByID returns a single user's public data.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	user, err := s.store.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, apperr.NotFound("User not found.")
		}
		return models.User{}, apperr.Internal("Failed to retrieve user.", err)
	}
	return user, nil
}

// FindOrCreateGoogleUser looks a user up by Google account email,
// provisioning a row on first login. Provisioned users have no password
// hash and cannot password-login.
func (s *UserService) FindOrCreateGoogleUser(ctx context.Context, info dto.GoogleUserInfo) (models.User, error) {
	user, err := s.store.UserByEmail(ctx, info.Email)
	if err == nil {
		user.PasswordHash = ""
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, apperr.Internal("An error occurred during login. Please try again.", err)
	}

	firstName, lastName, _ := strings.Cut(info.Name, " ")
	if firstName == "" {
		firstName = info.Email
	}
	user = models.User{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     info.Email,
	}
	if err := s.store.CreateUser(ctx, user); err != nil && !errors.Is(err, store.ErrConflict) {
		return models.User{}, apperr.Internal("An error occurred during login. Please try again.", err)
	}

	// Re-read for the server-assigned created_at (and to win the race if
	// a concurrent login provisioned the row first).
	user, err = s.store.UserByEmail(ctx, info.Email)
	if err != nil {
		return models.User{}, apperr.Internal("An error occurred during login. Please try again.", err)
	}
	user.PasswordHash = ""
	return user, nil
}

// TokenFor issues a signed token for an already-authenticated user.
func (s *UserService) TokenFor(user models.User) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, s.jwt)
	if err != nil {
		return "", apperr.Internal("An error occurred during login. Please try again.", err)
	}
	return token, nil
}
