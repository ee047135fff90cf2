package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"STOREHUB_BACK-END/internal/config"
	"STOREHUB_BACK-END/internal/handlers"
	"STOREHUB_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes on the given mux
func SetupRoutes(
	mux *http.ServeMux,
	authHandler *handlers.AuthHandler,
	categoryHandler *handlers.CategoryHandler,
	productHandler *handlers.ProductHandler,
	healthHandler *handlers.HealthHandler,
	googleAuthHandler *handlers.GoogleAuthHandler,
	jwtCfg *config.JWTConfig,
) {
	// Health check routes
	mux.HandleFunc("/healthz", healthHandler.HealthCheck)
	mux.HandleFunc("/livez", healthHandler.LivenessCheck)
	mux.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication and user routes
	mux.HandleFunc("/api/signup", authHandler.Signup)
	mux.HandleFunc("/api/login", authHandler.Login)
	mux.HandleFunc("/api/users", authHandler.ListUsers)
	mux.HandleFunc("/api/me", middleware.AuthMiddleware(authHandler.Me, jwtCfg))

	// Google OAuth routes
	mux.HandleFunc("/api/auth/google/login", googleAuthHandler.GoogleLogin)
	mux.HandleFunc("/api/auth/google/callback", googleAuthHandler.GoogleCallback)

	// Category routes
	mux.HandleFunc("/api/categories", categoryHandler.Categories)
	mux.HandleFunc("/api/categories/", categoryHandler.CategoryByID)

	// Product routes
	mux.HandleFunc("/api/products", productHandler.Products)
	mux.HandleFunc("/api/products/", productHandler.ProductByID)

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Storehub backend is running."))
}
