package domain

import (
	"testing"

	"github.com/google/uuid"
)

func newTestRestaurant(t *testing.T) *Restaurant {
	t.Helper()
	restaurant, err := NewRestaurant(
		uuid.New(),
		"Retaurant 4",
		"This is just a description",
		"ghulam@gmail.com",
		"9788246116",
		"200 Olympic Dr, Stafford, VA 22554",
		CategoryFastFood,
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return restaurant
}

func TestNewRestaurant(t *testing.T) {
	restaurant := newTestRestaurant(t)

	if restaurant.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if restaurant.Menu == nil || len(restaurant.Menu) != 0 {
		t.Errorf("Expected empty menu, got %v", restaurant.Menu)
	}

	if restaurant.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test missing name
	_, err := NewRestaurant(
		uuid.New(), "", "description", "a@b.com", "123", "address", CategoryCafe)
	if err != ErrEmptyRestaurantName {
		t.Errorf("Expected error %v, got %v", ErrEmptyRestaurantName, err)
	}

	// Test unknown category
	_, err = NewRestaurant(
		uuid.New(), "name", "description", "a@b.com", "123", "address", RestaurantCategory("Diner"))
	if err != ErrInvalidRestaurantCategory {
		t.Errorf("Expected error %v, got %v", ErrInvalidRestaurantCategory, err)
	}

	// Test missing owner
	_, err = NewRestaurant(
		uuid.Nil, "name", "description", "a@b.com", "123", "address", CategoryCafe)
	if err != ErrEmptyRestaurantOwner {
		t.Errorf("Expected error %v, got %v", ErrEmptyRestaurantOwner, err)
	}
}

func TestRestaurantMenu(t *testing.T) {
	restaurant := newTestRestaurant(t)
	mealID := uuid.New()

	restaurant.AddMeal(mealID)
	if !restaurant.HasMeal(mealID) {
		t.Error("Expected menu to contain the added meal ID")
	}

	// Adding the same ID twice must not duplicate it
	restaurant.AddMeal(mealID)
	if len(restaurant.Menu) != 1 {
		t.Errorf("Expected menu length 1, got %d", len(restaurant.Menu))
	}

	restaurant.RemoveMeal(mealID)
	if restaurant.HasMeal(mealID) {
		t.Error("Expected menu to no longer contain the removed meal ID")
	}

	// Removing an absent ID is a no-op
	restaurant.RemoveMeal(mealID)
	if len(restaurant.Menu) != 0 {
		t.Errorf("Expected empty menu, got %v", restaurant.Menu)
	}
}
