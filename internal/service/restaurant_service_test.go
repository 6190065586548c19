package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/mocks"
	"github.com/DariushJinx/restaurants-api/internal/platform/geocode"
	"github.com/DariushJinx/restaurants-api/internal/service"
	"github.com/DariushJinx/restaurants-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLocation = domain.Location{
	Coordinates:      [2]float64{-77.5, 38.7},
	FormattedAddress: "45 Test St, Stafford, VA 22554, US",
	City:             "Stafford",
	State:            "Virginia",
	Zipcode:          "22554",
	Country:          "United States",
}

func newRestaurantService(
	t *testing.T,
	restaurantStore store.RestaurantStore,
	geocoder *mocks.MockGeocoder,
) service.RestaurantService {
	t.Helper()

	svc, err := service.NewRestaurantService(restaurantStore, geocoder, nil)
	require.NoError(t, err)
	return svc
}

func seedRestaurant(t *testing.T, s *mocks.MockRestaurantStore, ownerID uuid.UUID) *domain.Restaurant {
	t.Helper()

	restaurant, err := domain.NewRestaurant(
		ownerID,
		"Kebab House",
		"Skewers over charcoal",
		"contact@kebabhouse.example",
		"+1 555 0100",
		"45 Test St, Stafford, VA 22554",
		domain.CategoryFastFood,
	)
	require.NoError(t, err)
	restaurant.Location = testLocation
	s.Restaurants[restaurant.ID] = restaurant
	return restaurant
}

func TestRestaurantService_FindAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("requests the fixed page size with page-derived offset", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		var captured store.ListRestaurantsParams
		restaurantStore.ListFn = func(
			ctx context.Context,
			params store.ListRestaurantsParams,
		) ([]*domain.Restaurant, error) {
			captured = params
			return nil, nil
		}
		svc := newRestaurantService(t, restaurantStore, &mocks.MockGeocoder{})

		_, err := svc.FindAll(ctx, service.ListRestaurantsQuery{Page: 3, Keyword: "kebab"})
		require.NoError(t, err)
		assert.Equal(t, 2, captured.Limit)
		assert.Equal(t, 4, captured.Offset)
		assert.Equal(t, "kebab", captured.Keyword)
	})

	t.Run("pages below one default to the first page", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		var captured store.ListRestaurantsParams
		restaurantStore.ListFn = func(
			ctx context.Context,
			params store.ListRestaurantsParams,
		) ([]*domain.Restaurant, error) {
			captured = params
			return nil, nil
		}
		svc := newRestaurantService(t, restaurantStore, &mocks.MockGeocoder{})

		for _, page := range []int{0, -5} {
			_, err := svc.FindAll(ctx, service.ListRestaurantsQuery{Page: page})
			require.NoError(t, err)
			assert.Equal(t, 0, captured.Offset)
		}
	})

	t.Run("wraps store failures", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		restaurantStore.ListFn = func(
			ctx context.Context,
			params store.ListRestaurantsParams,
		) ([]*domain.Restaurant, error) {
			return nil, errors.New("connection reset")
		}
		svc := newRestaurantService(t, restaurantStore, &mocks.MockGeocoder{})

		_, err := svc.FindAll(ctx, service.ListRestaurantsQuery{Page: 1})
		var svcErr *service.RestaurantServiceError
		assert.ErrorAs(t, err, &svcErr)
	})
}

func TestRestaurantService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ownerID := uuid.New()

	input := service.CreateRestaurantInput{
		Name:        "Kebab House",
		Description: "Skewers over charcoal",
		Email:       "contact@kebabhouse.example",
		Phone:       "+1 555 0100",
		Address:     "45 Test St, Stafford, VA 22554",
		Category:    domain.CategoryFastFood,
	}

	t.Run("geocodes the address and persists the restaurant", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		geocoder := &mocks.MockGeocoder{Location: testLocation}
		svc := newRestaurantService(t, restaurantStore, geocoder)

		restaurant, err := svc.Create(ctx, input, ownerID)
		require.NoError(t, err)
		assert.Equal(t, ownerID, restaurant.OwnerID)
		assert.Equal(t, testLocation, restaurant.Location)
		assert.Empty(t, restaurant.Menu)
		assert.Equal(t, 1, geocoder.Calls)
		assert.Equal(t, input.Address, geocoder.Addresses[0])
		assert.Contains(t, restaurantStore.Restaurants, restaurant.ID)
	})

	t.Run("geocoding failure aborts creation without retry", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		restaurantStore.CreateFn = func(ctx context.Context, restaurant *domain.Restaurant) error {
			t.Fatal("store must not be reached when geocoding fails")
			return nil
		}
		geocoder := &mocks.MockGeocoder{Err: geocode.ErrNoMatch}
		svc := newRestaurantService(t, restaurantStore, geocoder)

		_, err := svc.Create(ctx, input, ownerID)
		assert.ErrorIs(t, err, service.ErrAddressNotGeocodable)
		assert.Equal(t, 1, geocoder.Calls)
	})

	t.Run("provider failure maps the same as no match", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		geocoder := &mocks.MockGeocoder{Err: geocode.ErrProviderFailure}
		svc := newRestaurantService(t, restaurantStore, geocoder)

		_, err := svc.Create(ctx, input, ownerID)
		assert.ErrorIs(t, err, service.ErrAddressNotGeocodable)
	})

	t.Run("invalid category fails validation", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		geocoder := &mocks.MockGeocoder{Location: testLocation}
		svc := newRestaurantService(t, restaurantStore, geocoder)

		bad := input
		bad.Category = domain.RestaurantCategory("Ghost Kitchen")
		_, err := svc.Create(ctx, bad, ownerID)
		assert.ErrorIs(t, err, domain.ErrInvalidRestaurantCategory)
	})
}

func TestRestaurantService_FindByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns the restaurant when present", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		seeded := seedRestaurant(t, restaurantStore, uuid.New())
		svc := newRestaurantService(t, restaurantStore, &mocks.MockGeocoder{})

		found, err := svc.FindByID(ctx, seeded.ID.String())
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, found.ID)
	})

	t.Run("malformed ID fails before the store is consulted", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		restaurantStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
			t.Fatal("store must not be reached for a malformed ID")
			return nil, nil
		}
		svc := newRestaurantService(t, restaurantStore, &mocks.MockGeocoder{})

		_, err := svc.FindByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("well-formed but absent ID yields not found", func(t *testing.T) {
		t.Parallel()

		svc := newRestaurantService(t, mocks.NewMockRestaurantStore(), &mocks.MockGeocoder{})

		_, err := svc.FindByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, service.ErrRestaurantNotFound)
	})
}

func TestRestaurantService_UpdateByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("owner can apply a partial update", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		seeded := seedRestaurant(t, restaurantStore, ownerID)
		svc := newRestaurantService(t, restaurantStore, &mocks.MockGeocoder{})

		newName := "Kebab Palace"
		updated, err := svc.UpdateByID(ctx, seeded.ID.String(), ownerID, service.UpdateRestaurantInput{
			Name: &newName,
		})
		require.NoError(t, err)
		assert.Equal(t, "Kebab Palace", updated.Name)
		assert.Equal(t, seeded.Description, updated.Description, "omitted fields stay untouched")
		assert.Equal(t, ownerID, updated.OwnerID)
	})

	t.Run("address change does not re-geocode", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		seeded := seedRestaurant(t, restaurantStore, ownerID)
		geocoder := &mocks.MockGeocoder{Location: testLocation}
		svc := newRestaurantService(t, restaurantStore, geocoder)

		newAddress := "99 Moved Ave, Richmond, VA"
		updated, err := svc.UpdateByID(ctx, seeded.ID.String(), ownerID, service.UpdateRestaurantInput{
			Address: &newAddress,
		})
		require.NoError(t, err)
		assert.Equal(t, newAddress, updated.Address)
		assert.Equal(t, testLocation, updated.Location, "stored location must keep its original value")
		assert.Zero(t, geocoder.Calls)
	})

	t.Run("non-owner is rejected even with valid input", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		seeded := seedRestaurant(t, restaurantStore, ownerID)
		restaurantStore.UpdateFn = func(ctx context.Context, restaurant *domain.Restaurant) error {
			t.Fatal("store must not be written for a non-owner")
			return nil
		}
		svc := newRestaurantService(t, restaurantStore, &mocks.MockGeocoder{})

		newName := "Hijacked"
		_, err := svc.UpdateByID(ctx, seeded.ID.String(), uuid.New(), service.UpdateRestaurantInput{
			Name: &newName,
		})
		assert.ErrorIs(t, err, service.ErrNotOwned)
	})

	t.Run("absent restaurant yields not found before ownership", func(t *testing.T) {
		t.Parallel()

		svc := newRestaurantService(t, mocks.NewMockRestaurantStore(), &mocks.MockGeocoder{})

		newName := "Nowhere"
		_, err := svc.UpdateByID(ctx, uuid.NewString(), ownerID, service.UpdateRestaurantInput{
			Name: &newName,
		})
		assert.ErrorIs(t, err, service.ErrRestaurantNotFound)
		assert.NotErrorIs(t, err, service.ErrNotOwned)
	})
}

func TestRestaurantService_DeleteByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("owner deletion reports a removed row", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		seeded := seedRestaurant(t, restaurantStore, ownerID)
		svc := newRestaurantService(t, restaurantStore, &mocks.MockGeocoder{})

		deleted, err := svc.DeleteByID(ctx, seeded.ID.String(), ownerID)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.NotContains(t, restaurantStore.Restaurants, seeded.ID)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		t.Parallel()

		restaurantStore := mocks.NewMockRestaurantStore()
		seeded := seedRestaurant(t, restaurantStore, ownerID)
		svc := newRestaurantService(t, restaurantStore, &mocks.MockGeocoder{})

		_, err := svc.DeleteByID(ctx, seeded.ID.String(), uuid.New())
		assert.ErrorIs(t, err, service.ErrNotOwned)
		assert.Contains(t, restaurantStore.Restaurants, seeded.ID)
	})

	t.Run("absent restaurant yields not found", func(t *testing.T) {
		t.Parallel()

		svc := newRestaurantService(t, mocks.NewMockRestaurantStore(), &mocks.MockGeocoder{})

		_, err := svc.DeleteByID(ctx, uuid.NewString(), ownerID)
		assert.ErrorIs(t, err, service.ErrRestaurantNotFound)
	})
}
