// Package service provides application-level services for authentication,
// restaurants and meals.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for
// with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrNotOwned indicates a resource is owned by a different user than the
	// one making the request. For meals the relevant owner is the parent
	// restaurant's owner, not the meal's creator.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrInvalidCredentials indicates a login attempt with an unknown email
	// or a wrong password. The two cases are deliberately indistinguishable.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken indicates a sign-up attempt with an email that is
	// already registered.
	// API layer should map this to HTTP 409 Conflict.
	ErrEmailTaken = errors.New("email already registered")

	// ErrRestaurantNotFound indicates that the restaurant does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrMealNotFound indicates that the meal does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrMealNotFound = errors.New("meal not found")

	// ErrAddressNotGeocodable indicates that the restaurant address could
	// not be resolved to a location.
	// API layer should map this to HTTP 400 Bad Request.
	ErrAddressNotGeocodable = errors.New("address could not be geocoded")
)
