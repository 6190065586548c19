package auth

import "errors"

// Token validation errors returned by JWTService and mapped to 401 at the
// HTTP boundary.
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// does not verify against the configured secret.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token's exp claim is in the past.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the nbf claim is in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
