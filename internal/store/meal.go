package store

import (
	"context"
	"database/sql"

	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/google/uuid"
)

// MealStore defines the interface for meal data persistence.
type MealStore interface {
	// Create saves a new meal to the store.
	// Returns ErrInvalidEntity if the referenced restaurant does not exist.
	// Returns validation errors from the domain Meal if data is invalid.
	Create(ctx context.Context, meal *domain.Meal) error

	// GetByID retrieves a meal by its unique ID.
	// Returns ErrMealNotFound if the meal does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Meal, error)

	// List retrieves all meals in storage order.
	List(ctx context.Context) ([]*domain.Meal, error)

	// ListByRestaurant retrieves all meals belonging to the given restaurant.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Meal, error)

	// Update modifies an existing meal. RestaurantID and UserID are never
	// changed by this operation.
	// Returns ErrMealNotFound if the meal does not exist.
	Update(ctx context.Context, meal *domain.Meal) error

	// Delete removes a meal from the store by its ID.
	// It reports whether a row was actually removed; deleting an absent meal
	// is not an error.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// WithTx returns a new MealStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) MealStore

	// DB returns the underlying database connection, used by services to
	// open transactions spanning multiple stores.
	DB() *sql.DB
}
