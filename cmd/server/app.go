package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/DariushJinx/restaurants-api/internal/config"
	"github.com/DariushJinx/restaurants-api/internal/platform/geocode"
	"github.com/DariushJinx/restaurants-api/internal/platform/postgres"
	"github.com/DariushJinx/restaurants-api/internal/service"
	"github.com/DariushJinx/restaurants-api/internal/service/auth"
	"github.com/DariushJinx/restaurants-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore       store.UserStore
	restaurantStore store.RestaurantStore
	mealStore       store.MealStore

	// Service interfaces
	jwtService        auth.JWTService
	geocoder          geocode.Geocoder
	authService       service.AuthService
	restaurantService service.RestaurantService
	mealService       service.MealService
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Password hashing
	hasher := auth.NewBcryptHasher()

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.restaurantStore = postgres.NewPostgresRestaurantStore(db, logger)
	app.mealStore = postgres.NewPostgresMealStore(db, logger)

	// Initialize the geocoding client
	app.geocoder, err = geocode.NewNominatimGeocoder(
		cfg.Geocoder,
		logger.With("component", "geocoder"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize geocoder: %w", err)
	}

	// Initialize auth service
	app.authService, err = service.NewAuthService(
		app.userStore,
		app.jwtService,
		hasher,
		hasher,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	// Initialize restaurant service
	app.restaurantService, err = service.NewRestaurantService(
		app.restaurantStore,
		app.geocoder,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant service: %w", err)
	}

	// Initialize meal service
	app.mealService, err = service.NewMealService(
		app.mealStore,
		app.restaurantStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create meal service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
