package mocks

import (
	"context"

	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/service"
	"github.com/google/uuid"
)

// MockMealService implements service.MealService for testing
type MockMealService struct {
	// Function fields for customizable behavior
	FindAllFn          func(ctx context.Context) ([]*domain.Meal, error)
	FindByRestaurantFn func(ctx context.Context, restaurantID string) ([]*domain.Meal, error)
	FindByIDFn         func(ctx context.Context, id string) (*domain.Meal, error)
	CreateFn           func(ctx context.Context, input service.CreateMealInput, callerID uuid.UUID) (*domain.Meal, error)
	UpdateByIDFn       func(ctx context.Context, id string, callerID uuid.UUID, input service.UpdateMealInput) (*domain.Meal, error)
	DeleteByIDFn       func(ctx context.Context, id string, callerID uuid.UUID) (bool, error)

	// Default values used when functions aren't explicitly defined
	Meal    *domain.Meal
	Meals   []*domain.Meal
	Deleted bool
	Err     error
}

// FindAll implements the service.MealService interface
func (m *MockMealService) FindAll(ctx context.Context) ([]*domain.Meal, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}

	return m.Meals, m.Err
}

// FindByRestaurant implements the service.MealService interface
func (m *MockMealService) FindByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]*domain.Meal, error) {
	if m.FindByRestaurantFn != nil {
		return m.FindByRestaurantFn(ctx, restaurantID)
	}

	return m.Meals, m.Err
}

// FindByID implements the service.MealService interface
func (m *MockMealService) FindByID(ctx context.Context, id string) (*domain.Meal, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}

	return m.Meal, m.Err
}

// Create implements the service.MealService interface
func (m *MockMealService) Create(
	ctx context.Context,
	input service.CreateMealInput,
	callerID uuid.UUID,
) (*domain.Meal, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input, callerID)
	}

	return m.Meal, m.Err
}

// UpdateByID implements the service.MealService interface
func (m *MockMealService) UpdateByID(
	ctx context.Context,
	id string,
	callerID uuid.UUID,
	input service.UpdateMealInput,
) (*domain.Meal, error) {
	if m.UpdateByIDFn != nil {
		return m.UpdateByIDFn(ctx, id, callerID, input)
	}

	return m.Meal, m.Err
}

// DeleteByID implements the service.MealService interface
func (m *MockMealService) DeleteByID(
	ctx context.Context,
	id string,
	callerID uuid.UUID,
) (bool, error) {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id, callerID)
	}

	return m.Deleted, m.Err
}
