package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DariushJinx/restaurants-api/internal/api/shared"
	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/mocks"
	"github.com/DariushJinx/restaurants-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRestaurantRouter mounts the restaurant handler on a chi router so URL
// parameters resolve the same way they do in production.
func newRestaurantRouter(h *RestaurantHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/restaurants", h.List)
	r.Post("/api/restaurants", h.Create)
	r.Get("/api/restaurants/{id}", h.Get)
	r.Patch("/api/restaurants/{id}", h.Update)
	r.Delete("/api/restaurants/{id}", h.Delete)
	r.Get("/api/restaurants/{id}/meals", h.ListMeals)
	return r
}

func authedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

func sampleRestaurant(ownerID uuid.UUID) *domain.Restaurant {
	return &domain.Restaurant{
		ID:          uuid.New(),
		Name:        "Kebab House",
		Description: "Skewers over charcoal",
		Email:       "contact@kebabhouse.example",
		Phone:       "+1 555 0100",
		Address:     "45 Test St, Stafford, VA 22554",
		Category:    domain.CategoryFastFood,
		Images:      []string{},
		Menu:        []uuid.UUID{},
		OwnerID:     ownerID,
	}
}

func TestRestaurantHandler_List(t *testing.T) {
	t.Parallel()

	t.Run("passes page and keyword through to the service", func(t *testing.T) {
		t.Parallel()

		var captured service.ListRestaurantsQuery
		svc := &mocks.MockRestaurantService{
			FindAllFn: func(ctx context.Context, query service.ListRestaurantsQuery) ([]*domain.Restaurant, error) {
				captured = query
				return []*domain.Restaurant{sampleRestaurant(uuid.New())}, nil
			},
		}
		router := newRestaurantRouter(NewRestaurantHandler(svc, &mocks.MockMealService{}))

		req := httptest.NewRequest(http.MethodGet, "/api/restaurants?page=2&keyword=kebab", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, captured.Page)
		assert.Equal(t, "kebab", captured.Keyword)
	})

	t.Run("empty result is an empty JSON array, not null", func(t *testing.T) {
		t.Parallel()

		router := newRestaurantRouter(
			NewRestaurantHandler(&mocks.MockRestaurantService{}, &mocks.MockMealService{}),
		)

		req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})

	t.Run("non-numeric page serves the first page", func(t *testing.T) {
		t.Parallel()

		var captured service.ListRestaurantsQuery
		svc := &mocks.MockRestaurantService{
			FindAllFn: func(ctx context.Context, query service.ListRestaurantsQuery) ([]*domain.Restaurant, error) {
				captured = query
				return nil, nil
			},
		}
		router := newRestaurantRouter(NewRestaurantHandler(svc, &mocks.MockMealService{}))

		req := httptest.NewRequest(http.MethodGet, "/api/restaurants?page=two", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, captured.Page)
	})
}

func TestRestaurantHandler_Create(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()

	validBody, err := json.Marshal(CreateRestaurantRequest{
		Name:        "Kebab House",
		Description: "Skewers over charcoal",
		Email:       "contact@kebabhouse.example",
		Phone:       "+1 555 0100",
		Address:     "45 Test St, Stafford, VA 22554",
		Category:    "Fast Food",
	})
	require.NoError(t, err)

	t.Run("authenticated create returns 201", func(t *testing.T) {
		t.Parallel()

		created := sampleRestaurant(ownerID)
		svc := &mocks.MockRestaurantService{
			CreateFn: func(ctx context.Context, input service.CreateRestaurantInput, caller uuid.UUID) (*domain.Restaurant, error) {
				assert.Equal(t, ownerID, caller)
				assert.Equal(t, "Kebab House", input.Name)
				return created, nil
			},
		}
		router := newRestaurantRouter(NewRestaurantHandler(svc, &mocks.MockMealService{}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/restaurants", validBody, ownerID))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing user in context returns 401", func(t *testing.T) {
		t.Parallel()

		router := newRestaurantRouter(
			NewRestaurantHandler(&mocks.MockRestaurantService{}, &mocks.MockMealService{}),
		)

		req := httptest.NewRequest(http.MethodPost, "/api/restaurants", bytes.NewReader(validBody))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown category fails validation with 400", func(t *testing.T) {
		t.Parallel()

		body, err := json.Marshal(CreateRestaurantRequest{
			Name:        "Kebab House",
			Description: "Skewers over charcoal",
			Email:       "contact@kebabhouse.example",
			Phone:       "+1 555 0100",
			Address:     "45 Test St",
			Category:    "Ghost Kitchen",
		})
		require.NoError(t, err)

		router := newRestaurantRouter(
			NewRestaurantHandler(&mocks.MockRestaurantService{}, &mocks.MockMealService{}),
		)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/restaurants", body, ownerID))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ungeocodable address returns 400", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockRestaurantService{Err: service.ErrAddressNotGeocodable}
		router := newRestaurantRouter(NewRestaurantHandler(svc, &mocks.MockMealService{}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/restaurants", validBody, ownerID))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRestaurantHandler_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns the restaurant", func(t *testing.T) {
		t.Parallel()

		restaurant := sampleRestaurant(uuid.New())
		svc := &mocks.MockRestaurantService{Restaurant: restaurant}
		router := newRestaurantRouter(NewRestaurantHandler(svc, &mocks.MockMealService{}))

		req := httptest.NewRequest(http.MethodGet, "/api/restaurants/"+restaurant.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got domain.Restaurant
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, restaurant.ID, got.ID)
	})

	t.Run("unknown restaurant returns 404", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockRestaurantService{Err: service.ErrRestaurantNotFound}
		router := newRestaurantRouter(NewRestaurantHandler(svc, &mocks.MockMealService{}))

		req := httptest.NewRequest(http.MethodGet, "/api/restaurants/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed ID returns 400", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockRestaurantService{
			Err: domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID),
		}
		router := newRestaurantRouter(NewRestaurantHandler(svc, &mocks.MockMealService{}))

		req := httptest.NewRequest(http.MethodGet, "/api/restaurants/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRestaurantHandler_UpdateAndDelete(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()

	t.Run("non-owner update returns 403", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockRestaurantService{Err: service.ErrNotOwned}
		router := newRestaurantRouter(NewRestaurantHandler(svc, &mocks.MockMealService{}))

		body := []byte(`{"name":"Hijacked"}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(
			http.MethodPatch, "/api/restaurants/"+uuid.NewString(), body, ownerID))

		assert.Equal(t, http.StatusForbidden, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "You do not own this resource", resp["error"])
	})

	t.Run("owner delete reports deletion result", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockRestaurantService{Deleted: true}
		router := newRestaurantRouter(NewRestaurantHandler(svc, &mocks.MockMealService{}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(
			http.MethodDelete, "/api/restaurants/"+uuid.NewString(), nil, ownerID))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp DeleteResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Deleted)
	})
}

func TestRestaurantHandler_ListMeals(t *testing.T) {
	t.Parallel()

	t.Run("lists meals of the restaurant", func(t *testing.T) {
		t.Parallel()

		restaurantID := uuid.New()
		mealSvc := &mocks.MockMealService{
			FindByRestaurantFn: func(ctx context.Context, id string) ([]*domain.Meal, error) {
				assert.Equal(t, restaurantID.String(), id)
				return []*domain.Meal{{ID: uuid.New(), Name: "Lentil Soup", RestaurantID: restaurantID}}, nil
			},
		}
		router := newRestaurantRouter(NewRestaurantHandler(&mocks.MockRestaurantService{}, mealSvc))

		req := httptest.NewRequest(http.MethodGet, "/api/restaurants/"+restaurantID.String()+"/meals", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var meals []*domain.Meal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meals))
		require.Len(t, meals, 1)
		assert.Equal(t, "Lentil Soup", meals[0].Name)
	})
}
