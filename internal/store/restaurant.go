package store

import (
	"context"
	"database/sql"

	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/google/uuid"
)

// ListRestaurantsParams narrows a restaurant listing. Keyword is matched
// case-insensitively as a substring of the restaurant name; an empty keyword
// matches everything. Limit and Offset implement the fixed-page-size
// pagination contract.
type ListRestaurantsParams struct {
	Keyword string
	Limit   int
	Offset  int
}

// RestaurantStore defines the interface for restaurant data persistence.
type RestaurantStore interface {
	// Create saves a new restaurant to the store.
	// Returns validation errors from the domain Restaurant if data is invalid.
	Create(ctx context.Context, restaurant *domain.Restaurant) error

	// GetByID retrieves a restaurant by its unique ID.
	// Returns ErrRestaurantNotFound if the restaurant does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)

	// List retrieves restaurants matching the given params, in storage order.
	List(ctx context.Context, params ListRestaurantsParams) ([]*domain.Restaurant, error)

	// Update modifies an existing restaurant. The caller must provide the
	// complete restaurant object; OwnerID is never changed by this operation.
	// Returns ErrRestaurantNotFound if the restaurant does not exist.
	Update(ctx context.Context, restaurant *domain.Restaurant) error

	// Delete removes a restaurant from the store by its ID.
	// It reports whether a row was actually removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// WithTx returns a new RestaurantStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) RestaurantStore

	// DB returns the underlying database connection, used by services to
	// open transactions spanning multiple stores.
	DB() *sql.DB
}
