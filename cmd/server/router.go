package main

import (
	"net/http"

	"github.com/DariushJinx/restaurants-api/internal/api"
	apiMiddleware "github.com/DariushJinx/restaurants-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.authService)
	restaurantHandler := api.NewRestaurantHandler(app.restaurantService, app.mealService)
	mealHandler := api.NewMealHandler(app.mealService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/signup", authHandler.SignUp)
		r.Post("/auth/login", authHandler.LogIn)

		// Public read endpoints
		r.Get("/restaurants", restaurantHandler.List)
		r.Get("/restaurants/{id}", restaurantHandler.Get)
		r.Get("/restaurants/{id}/meals", restaurantHandler.ListMeals)
		r.Get("/meals", mealHandler.List)
		r.Get("/meals/{id}", mealHandler.Get)

		// Protected write endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/restaurants", restaurantHandler.Create)
			r.Patch("/restaurants/{id}", restaurantHandler.Update)
			r.Delete("/restaurants/{id}", restaurantHandler.Delete)

			r.Post("/meals", mealHandler.Create)
			r.Patch("/meals/{id}", mealHandler.Update)
			r.Delete("/meals/{id}", mealHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
