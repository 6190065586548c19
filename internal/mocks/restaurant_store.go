package mocks

import (
	"context"
	"database/sql"

	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/store"
	"github.com/google/uuid"
)

// MockRestaurantStore implements store.RestaurantStore for testing
type MockRestaurantStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, restaurant *domain.Restaurant) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	ListFn    func(ctx context.Context, params store.ListRestaurantsParams) ([]*domain.Restaurant, error)
	UpdateFn  func(ctx context.Context, restaurant *domain.Restaurant) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) (bool, error)

	// Data for default implementation
	Restaurants map[uuid.UUID]*domain.Restaurant
	CreateError error
	UpdateError error
}

// NewMockRestaurantStore creates a new mock store with initialized defaults
func NewMockRestaurantStore() *MockRestaurantStore {
	return &MockRestaurantStore{
		Restaurants: make(map[uuid.UUID]*domain.Restaurant),
	}
}

// Create implements the RestaurantStore interface
func (m *MockRestaurantStore) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, restaurant)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Restaurants[restaurant.ID] = restaurant
	return nil
}

// GetByID implements the RestaurantStore interface
func (m *MockRestaurantStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	restaurant, exists := m.Restaurants[id]
	if !exists {
		return nil, store.ErrRestaurantNotFound
	}

	// Return a copy so callers mutating the result do not reach into the
	// stored state, matching how a real store materializes rows.
	copied := *restaurant
	copied.Menu = append([]uuid.UUID(nil), restaurant.Menu...)
	copied.Images = append([]string(nil), restaurant.Images...)
	return &copied, nil
}

// List implements the RestaurantStore interface
func (m *MockRestaurantStore) List(
	ctx context.Context,
	params store.ListRestaurantsParams,
) ([]*domain.Restaurant, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}

	restaurants := make([]*domain.Restaurant, 0, len(m.Restaurants))
	for _, restaurant := range m.Restaurants {
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, nil
}

// Update implements the RestaurantStore interface
func (m *MockRestaurantStore) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, restaurant)
	}

	if m.UpdateError != nil {
		return m.UpdateError
	}

	if _, exists := m.Restaurants[restaurant.ID]; !exists {
		return store.ErrRestaurantNotFound
	}

	m.Restaurants[restaurant.ID] = restaurant
	return nil
}

// Delete implements the RestaurantStore interface
func (m *MockRestaurantStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Restaurants[id]; !exists {
		return false, nil
	}

	delete(m.Restaurants, id)
	return true, nil
}

// WithTx implements the RestaurantStore interface for transaction support
func (m *MockRestaurantStore) WithTx(tx *sql.Tx) store.RestaurantStore {
	// For mock purposes, just return the same mock
	return m
}

// DB implements the RestaurantStore interface.
// Mocks never open real transactions.
func (m *MockRestaurantStore) DB() *sql.DB {
	return nil
}
