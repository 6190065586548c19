package api

import (
	"github.com/DariushJinx/restaurants-api/internal/domain"
)

// Common request/response structures

// SignUpRequest defines the payload for the user registration endpoint.
type SignUpRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LogInRequest defines the payload for the user login endpoint.
type LogInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// Token is the JWT bearer token used for API authorization
	Token string `json:"token"`
}

// CreateRestaurantRequest defines the payload for creating a restaurant.
type CreateRestaurantRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"required"`
	Email       string   `json:"email"       validate:"required,email"`
	Phone       string   `json:"phoneNo"     validate:"required"`
	Address     string   `json:"address"     validate:"required"`
	Category    string   `json:"category"    validate:"required,oneof='Fast Food' 'Cafe' 'Fine Dining'"`
	Images      []string `json:"images"      validate:"omitempty,dive,url"`
}

// UpdateRestaurantRequest defines the payload for a partial restaurant update.
// Omitted fields keep their stored values.
type UpdateRestaurantRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Email       *string  `json:"email"       validate:"omitempty,email"`
	Phone       *string  `json:"phoneNo"     validate:"omitempty,min=1"`
	Address     *string  `json:"address"     validate:"omitempty,min=1"`
	Category    *string  `json:"category"    validate:"omitempty,oneof='Fast Food' 'Cafe' 'Fine Dining'"`
	Images      []string `json:"images"      validate:"omitempty,dive,url"`
}

// CreateMealRequest defines the payload for creating a meal.
type CreateMealRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required,oneof=Soups Salads Sandwiches Pasta Pizza"`
	Restaurant  string  `json:"restaurant"  validate:"required"`
}

// UpdateMealRequest defines the payload for a partial meal update.
// The parent restaurant can never be reassigned, so it has no field here.
type UpdateMealRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Category    *string  `json:"category"    validate:"omitempty,oneof=Soups Salads Sandwiches Pasta Pizza"`
}

// DeleteResponse reports whether a delete actually removed a record.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// categoryPtr converts an optional category string into the domain type.
func categoryPtr(s *string) *domain.RestaurantCategory {
	if s == nil {
		return nil
	}
	c := domain.RestaurantCategory(*s)
	return &c
}

// mealCategoryPtr converts an optional meal category string into the domain type.
func mealCategoryPtr(s *string) *domain.MealCategory {
	if s == nil {
		return nil
	}
	c := domain.MealCategory(*s)
	return &c
}
