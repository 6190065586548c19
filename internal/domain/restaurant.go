package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RestaurantCategory classifies the kind of establishment.
type RestaurantCategory string

// Possible restaurant categories.
const (
	CategoryFastFood   RestaurantCategory = "Fast Food"
	CategoryCafe       RestaurantCategory = "Cafe"
	CategoryFineDining RestaurantCategory = "Fine Dining"
)

// Common validation errors for Restaurant. Each wraps ErrValidation so
// callers can match the whole family with a single errors.Is.
var (
	ErrEmptyRestaurantID          = fmt.Errorf("%w: restaurant ID cannot be empty", ErrValidation)
	ErrEmptyRestaurantName        = fmt.Errorf("%w: restaurant name cannot be empty", ErrValidation)
	ErrEmptyRestaurantAddress     = fmt.Errorf("%w: restaurant address cannot be empty", ErrValidation)
	ErrEmptyRestaurantOwner       = fmt.Errorf("%w: restaurant owner cannot be empty", ErrValidation)
	ErrInvalidRestaurantCategory  = fmt.Errorf("%w: invalid restaurant category", ErrValidation)
	ErrEmptyRestaurantDescription = fmt.Errorf("%w: restaurant description cannot be empty", ErrValidation)
)

// Location is the geocoded position of a restaurant, resolved once from the
// free-text address when the restaurant is created. It is never recomputed
// on update.
type Location struct {
	// Coordinates are ordered [longitude, latitude], GeoJSON style.
	Coordinates      [2]float64 `json:"coordinates"`
	FormattedAddress string     `json:"formatted_address"`
	City             string     `json:"city"`
	State            string     `json:"state"`
	Zipcode          string     `json:"zipcode"`
	Country          string     `json:"country"`
}

// Restaurant represents an establishment owned by a user. Menu holds the IDs
// of the meals that reference this restaurant; it is maintained by the meal
// write paths so that, at rest, Menu always equals the set of meals whose
// RestaurantID points here.
type Restaurant struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	Address     string             `json:"address"`
	Category    RestaurantCategory `json:"category"`
	Images      []string           `json:"images"`
	Location    Location           `json:"location"`
	Menu        []uuid.UUID        `json:"menu"`
	OwnerID     uuid.UUID          `json:"user"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// NewRestaurant creates a new Restaurant owned by the given user.
// It generates a new UUID, initializes an empty menu and sets timestamps.
// The location must be resolved by the caller before persisting.
// Returns an error if validation fails.
func NewRestaurant(
	ownerID uuid.UUID,
	name, description, email, phone, address string,
	category RestaurantCategory,
) (*Restaurant, error) {
	restaurant := &Restaurant{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Email:       email,
		Phone:       phone,
		Address:     address,
		Category:    category,
		Images:      []string{},
		Menu:        []uuid.UUID{},
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := restaurant.Validate(); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// Validate checks if the Restaurant has valid data.
// Returns an error if any field fails validation.
func (r *Restaurant) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyRestaurantID
	}

	if r.OwnerID == uuid.Nil {
		return ErrEmptyRestaurantOwner
	}

	if r.Name == "" {
		return ErrEmptyRestaurantName
	}

	if r.Description == "" {
		return ErrEmptyRestaurantDescription
	}

	if r.Address == "" {
		return ErrEmptyRestaurantAddress
	}

	if !isValidRestaurantCategory(r.Category) {
		return ErrInvalidRestaurantCategory
	}

	return nil
}

// HasMeal reports whether the given meal ID is present in the menu.
func (r *Restaurant) HasMeal(mealID uuid.UUID) bool {
	for _, id := range r.Menu {
		if id == mealID {
			return true
		}
	}
	return false
}

// AddMeal appends the given meal ID to the menu if it is not already present
// and bumps the update timestamp.
func (r *Restaurant) AddMeal(mealID uuid.UUID) {
	if r.HasMeal(mealID) {
		return
	}
	r.Menu = append(r.Menu, mealID)
	r.UpdatedAt = time.Now().UTC()
}

// RemoveMeal removes the given meal ID from the menu. Removing an absent ID
// is a no-op, so the cleanup path stays idempotent.
func (r *Restaurant) RemoveMeal(mealID uuid.UUID) {
	for i, id := range r.Menu {
		if id == mealID {
			r.Menu = append(r.Menu[:i], r.Menu[i+1:]...)
			r.UpdatedAt = time.Now().UTC()
			return
		}
	}
}

// isValidRestaurantCategory checks if the given category is a known RestaurantCategory.
func isValidRestaurantCategory(category RestaurantCategory) bool {
	switch category {
	case CategoryFastFood, CategoryCafe, CategoryFineDining:
		return true
	default:
		return false
	}
}
