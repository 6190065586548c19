package mocks

import (
	"context"
	"database/sql"

	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/store"
	"github.com/google/uuid"
)

// MockMealStore implements store.MealStore for testing
type MockMealStore struct {
	// Function fields for customizable behavior
	CreateFn           func(ctx context.Context, meal *domain.Meal) error
	GetByIDFn          func(ctx context.Context, id uuid.UUID) (*domain.Meal, error)
	ListFn             func(ctx context.Context) ([]*domain.Meal, error)
	ListByRestaurantFn func(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Meal, error)
	UpdateFn           func(ctx context.Context, meal *domain.Meal) error
	DeleteFn           func(ctx context.Context, id uuid.UUID) (bool, error)

	// Data for default implementation
	Meals       map[uuid.UUID]*domain.Meal
	CreateError error
	UpdateError error
}

// NewMockMealStore creates a new mock store with initialized defaults
func NewMockMealStore() *MockMealStore {
	return &MockMealStore{
		Meals: make(map[uuid.UUID]*domain.Meal),
	}
}

// Create implements the MealStore interface
func (m *MockMealStore) Create(ctx context.Context, meal *domain.Meal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, meal)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Meals[meal.ID] = meal
	return nil
}

// GetByID implements the MealStore interface
func (m *MockMealStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Meal, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	meal, exists := m.Meals[id]
	if !exists {
		return nil, store.ErrMealNotFound
	}

	// Return a copy so callers mutating the result do not reach into the
	// stored state, matching how a real store materializes rows.
	copied := *meal
	return &copied, nil
}

// List implements the MealStore interface
func (m *MockMealStore) List(ctx context.Context) ([]*domain.Meal, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	meals := make([]*domain.Meal, 0, len(m.Meals))
	for _, meal := range m.Meals {
		meals = append(meals, meal)
	}
	return meals, nil
}

// ListByRestaurant implements the MealStore interface
func (m *MockMealStore) ListByRestaurant(
	ctx context.Context,
	restaurantID uuid.UUID,
) ([]*domain.Meal, error) {
	if m.ListByRestaurantFn != nil {
		return m.ListByRestaurantFn(ctx, restaurantID)
	}

	var meals []*domain.Meal
	for _, meal := range m.Meals {
		if meal.RestaurantID == restaurantID {
			meals = append(meals, meal)
		}
	}
	return meals, nil
}

// Update implements the MealStore interface
func (m *MockMealStore) Update(ctx context.Context, meal *domain.Meal) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, meal)
	}

	if m.UpdateError != nil {
		return m.UpdateError
	}

	if _, exists := m.Meals[meal.ID]; !exists {
		return store.ErrMealNotFound
	}

	m.Meals[meal.ID] = meal
	return nil
}

// Delete implements the MealStore interface
func (m *MockMealStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Meals[id]; !exists {
		return false, nil
	}

	delete(m.Meals, id)
	return true, nil
}

// WithTx implements the MealStore interface for transaction support
func (m *MockMealStore) WithTx(tx *sql.Tx) store.MealStore {
	// For mock purposes, just return the same mock
	return m
}

// DB implements the MealStore interface.
// Mocks never open real transactions.
func (m *MockMealStore) DB() *sql.DB {
	return nil
}
