package mocks

import "context"

// MockAuthService implements service.AuthService for testing
type MockAuthService struct {
	// Function fields for customizable behavior
	SignUpFn func(ctx context.Context, name, email, password string) (string, error)
	LogInFn  func(ctx context.Context, email, password string) (string, error)

	// Default values used when functions aren't explicitly defined
	Token string
	Err   error
}

// SignUp implements the service.AuthService interface
func (m *MockAuthService) SignUp(ctx context.Context, name, email, password string) (string, error) {
	if m.SignUpFn != nil {
		return m.SignUpFn(ctx, name, email, password)
	}

	return m.Token, m.Err
}

// LogIn implements the service.AuthService interface
func (m *MockAuthService) LogIn(ctx context.Context, email, password string) (string, error) {
	if m.LogInFn != nil {
		return m.LogInFn(ctx, email, password)
	}

	return m.Token, m.Err
}
