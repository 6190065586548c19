package domain

import (
	"errors"
	"testing"
)

// Entity validation sentinels must be matchable as ErrValidation so the HTTP
// error mapping treats any of them as a bad request.
func TestValidationSentinelsWrapErrValidation(t *testing.T) {
	sentinels := map[string]error{
		"ErrEmptyName":                 ErrEmptyName,
		"ErrPasswordTooShort":          ErrPasswordTooShort,
		"ErrPasswordTooLong":           ErrPasswordTooLong,
		"ErrInvalidRole":               ErrInvalidRole,
		"ErrInvalidEmail":              ErrInvalidEmail,
		"ErrInvalidPassword":           ErrInvalidPassword,
		"ErrEmptyRestaurantName":       ErrEmptyRestaurantName,
		"ErrInvalidRestaurantCategory": ErrInvalidRestaurantCategory,
		"ErrInvalidMealPrice":          ErrInvalidMealPrice,
		"ErrInvalidMealCategory":       ErrInvalidMealCategory,
	}

	for name, sentinel := range sentinels {
		if !errors.Is(sentinel, ErrValidation) {
			t.Errorf("Expected %s to match ErrValidation", name)
		}
	}
}
