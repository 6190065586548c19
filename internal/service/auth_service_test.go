package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/mocks"
	"github.com/DariushJinx/restaurants-api/internal/service"
	"github.com/DariushJinx/restaurants-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(
	t *testing.T,
	userStore store.UserStore,
	jwt *mocks.MockJWTService,
	verifier *mocks.MockPasswordVerifier,
) service.AuthService {
	t.Helper()

	svc, err := service.NewAuthService(
		userStore,
		jwt,
		&mocks.MockPasswordHasher{},
		verifier,
		nil,
	)
	require.NoError(t, err)
	return svc
}

func TestNewAuthService_NilDependencies(t *testing.T) {
	t.Parallel()

	jwt := &mocks.MockJWTService{Token: "token"}
	hasher := &mocks.MockPasswordHasher{}
	verifier := &mocks.MockPasswordVerifier{}
	userStore := mocks.NewMockUserStore()

	_, err := service.NewAuthService(nil, jwt, hasher, verifier, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.NewAuthService(userStore, nil, hasher, verifier, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.NewAuthService(userStore, jwt, nil, verifier, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.NewAuthService(userStore, jwt, hasher, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_SignUp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns token for a new user", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		jwt := &mocks.MockJWTService{Token: "signed-token"}
		svc := newAuthService(t, userStore, jwt, &mocks.MockPasswordVerifier{})

		token, err := svc.SignUp(ctx, "Alice", "alice@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)

		created := userStore.Users["alice@example.com"]
		require.NotNil(t, created)
		assert.Empty(t, created.Password, "plaintext password must not survive sign-up")
		assert.NotEmpty(t, created.HashedPassword)
		assert.Equal(t, domain.RoleUser, created.Role)
	})

	t.Run("rejects short passwords before touching the store", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
			t.Fatal("store must not be reached for invalid input")
			return nil
		}
		svc := newAuthService(t, userStore, &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		_, err := svc.SignUp(ctx, "Bob", "bob@example.com", "short")
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})

	t.Run("maps duplicate email to ErrEmailTaken", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		jwt := &mocks.MockJWTService{Token: "t"}
		svc := newAuthService(t, userStore, jwt, &mocks.MockPasswordVerifier{})

		_, err := svc.SignUp(ctx, "Carol", "carol@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.SignUp(ctx, "Imposter", "carol@example.com", "password456")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("wraps token issuance failures", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		jwt := &mocks.MockJWTService{Err: errors.New("signing key unavailable")}
		svc := newAuthService(t, userStore, jwt, &mocks.MockPasswordVerifier{})

		_, err := svc.SignUp(ctx, "Dave", "dave@example.com", "password123")
		require.Error(t, err)

		var svcErr *service.AuthServiceError
		assert.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "sign_up", svcErr.Operation)
	})
}

func TestAuthService_LogIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	userID := uuid.New()
	knownUser := &domain.User{
		ID:             userID,
		Name:           "Alice",
		Email:          "alice@example.com",
		HashedPassword: "hashed:password123",
		Role:           domain.RoleUser,
	}

	t.Run("returns token for valid credentials", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.Users[knownUser.Email] = knownUser
		jwt := &mocks.MockJWTService{
			GenerateTokenFn: func(ctx context.Context, id uuid.UUID) (string, error) {
				assert.Equal(t, userID, id)
				return "login-token", nil
			},
		}
		svc := newAuthService(t, userStore, jwt, &mocks.MockPasswordVerifier{})

		token, err := svc.LogIn(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "login-token", token)
	})

	t.Run("unknown email yields ErrInvalidCredentials", func(t *testing.T) {
		t.Parallel()

		svc := newAuthService(
			t,
			mocks.NewMockUserStore(),
			&mocks.MockJWTService{},
			&mocks.MockPasswordVerifier{},
		)

		_, err := svc.LogIn(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("wrong password yields ErrInvalidCredentials", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.Users[knownUser.Email] = knownUser
		verifier := &mocks.MockPasswordVerifier{Err: errors.New("mismatch")}
		svc := newAuthService(t, userStore, &mocks.MockJWTService{}, verifier)

		_, err := svc.LogIn(ctx, "alice@example.com", "wrong-password")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.Users[knownUser.Email] = knownUser
		verifier := &mocks.MockPasswordVerifier{Err: errors.New("mismatch")}
		svc := newAuthService(t, userStore, &mocks.MockJWTService{}, verifier)

		_, wrongPassErr := svc.LogIn(ctx, "alice@example.com", "wrong-password")
		_, unknownErr := svc.LogIn(ctx, "nobody@example.com", "password123")

		assert.Equal(t, wrongPassErr.Error(), unknownErr.Error())
	})

	t.Run("store failures propagate unchanged", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("connection reset")
		userStore := mocks.NewMockUserStore()
		userStore.GetByEmailError = dbErr
		svc := newAuthService(t, userStore, &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		_, err := svc.LogIn(ctx, "alice@example.com", "password123")
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
