package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MealCategory classifies a meal on the menu.
type MealCategory string

// Possible meal categories.
const (
	MealCategorySoups      MealCategory = "Soups"
	MealCategorySalads     MealCategory = "Salads"
	MealCategorySandwiches MealCategory = "Sandwiches"
	MealCategoryPasta      MealCategory = "Pasta"
	MealCategoryPizza      MealCategory = "Pizza"
)

// Common validation errors for Meal. Each wraps ErrValidation so callers can
// match the whole family with a single errors.Is.
var (
	ErrEmptyMealID         = fmt.Errorf("%w: meal ID cannot be empty", ErrValidation)
	ErrEmptyMealName       = fmt.Errorf("%w: meal name cannot be empty", ErrValidation)
	ErrEmptyMealRestaurant = fmt.Errorf("%w: meal restaurant cannot be empty", ErrValidation)
	ErrEmptyMealUser       = fmt.Errorf("%w: meal user cannot be empty", ErrValidation)
	ErrInvalidMealPrice    = fmt.Errorf("%w: meal price must be positive", ErrValidation)
	ErrInvalidMealCategory = fmt.Errorf("%w: invalid meal category", ErrValidation)
)

// Meal represents a dish served by a restaurant. RestaurantID and UserID are
// set at creation and never change: RestaurantID links the meal to its parent
// restaurant, UserID records which user created it. Authorization for meal
// writes is decided by the parent restaurant's owner, not by UserID.
type Meal struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Price        float64      `json:"price"`
	Category     MealCategory `json:"category"`
	RestaurantID uuid.UUID    `json:"restaurant"`
	UserID       uuid.UUID    `json:"user"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NewMeal creates a new Meal belonging to the given restaurant, created by
// the given user. It generates a new UUID and sets timestamps.
// Returns an error if validation fails.
func NewMeal(
	restaurantID, userID uuid.UUID,
	name, description string,
	price float64,
	category MealCategory,
) (*Meal, error) {
	meal := &Meal{
		ID:           uuid.New(),
		Name:         name,
		Description:  description,
		Price:        price,
		Category:     category,
		RestaurantID: restaurantID,
		UserID:       userID,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := meal.Validate(); err != nil {
		return nil, err
	}

	return meal, nil
}

// Validate checks if the Meal has valid data.
// Returns an error if any field fails validation.
func (m *Meal) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMealID
	}

	if m.RestaurantID == uuid.Nil {
		return ErrEmptyMealRestaurant
	}

	if m.UserID == uuid.Nil {
		return ErrEmptyMealUser
	}

	if m.Name == "" {
		return ErrEmptyMealName
	}

	if m.Price <= 0 {
		return ErrInvalidMealPrice
	}

	if !isValidMealCategory(m.Category) {
		return ErrInvalidMealCategory
	}

	return nil
}

// isValidMealCategory checks if the given category is a known MealCategory.
func isValidMealCategory(category MealCategory) bool {
	switch category {
	case MealCategorySoups, MealCategorySalads, MealCategorySandwiches,
		MealCategoryPasta, MealCategoryPizza:
		return true
	default:
		return false
	}
}
