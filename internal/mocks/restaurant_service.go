package mocks

import (
	"context"

	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/service"
	"github.com/google/uuid"
)

// MockRestaurantService implements service.RestaurantService for testing
type MockRestaurantService struct {
	// Function fields for customizable behavior
	FindAllFn    func(ctx context.Context, query service.ListRestaurantsQuery) ([]*domain.Restaurant, error)
	CreateFn     func(ctx context.Context, input service.CreateRestaurantInput, ownerID uuid.UUID) (*domain.Restaurant, error)
	FindByIDFn   func(ctx context.Context, id string) (*domain.Restaurant, error)
	UpdateByIDFn func(ctx context.Context, id string, callerID uuid.UUID, input service.UpdateRestaurantInput) (*domain.Restaurant, error)
	DeleteByIDFn func(ctx context.Context, id string, callerID uuid.UUID) (bool, error)

	// Default values used when functions aren't explicitly defined
	Restaurant  *domain.Restaurant
	Restaurants []*domain.Restaurant
	Deleted     bool
	Err         error
}

// FindAll implements the service.RestaurantService interface
func (m *MockRestaurantService) FindAll(
	ctx context.Context,
	query service.ListRestaurantsQuery,
) ([]*domain.Restaurant, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx, query)
	}

	return m.Restaurants, m.Err
}

// Create implements the service.RestaurantService interface
func (m *MockRestaurantService) Create(
	ctx context.Context,
	input service.CreateRestaurantInput,
	ownerID uuid.UUID,
) (*domain.Restaurant, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input, ownerID)
	}

	return m.Restaurant, m.Err
}

// FindByID implements the service.RestaurantService interface
func (m *MockRestaurantService) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}

	return m.Restaurant, m.Err
}

// UpdateByID implements the service.RestaurantService interface
func (m *MockRestaurantService) UpdateByID(
	ctx context.Context,
	id string,
	callerID uuid.UUID,
	input service.UpdateRestaurantInput,
) (*domain.Restaurant, error) {
	if m.UpdateByIDFn != nil {
		return m.UpdateByIDFn(ctx, id, callerID, input)
	}

	return m.Restaurant, m.Err
}

// DeleteByID implements the service.RestaurantService interface
func (m *MockRestaurantService) DeleteByID(
	ctx context.Context,
	id string,
	callerID uuid.UUID,
) (bool, error) {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id, callerID)
	}

	return m.Deleted, m.Err
}
