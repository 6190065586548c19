package api

import (
	"net/http"
	"strconv"

	"github.com/DariushJinx/restaurants-api/internal/api/shared"
	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// RestaurantHandler handles restaurant-related API requests.
type RestaurantHandler struct {
	restaurantService service.RestaurantService
	mealService       service.MealService
	validator         *validator.Validate
}

// NewRestaurantHandler creates a new RestaurantHandler with the given dependencies.
func NewRestaurantHandler(
	restaurantService service.RestaurantService,
	mealService service.MealService,
) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
		mealService:       mealService,
		validator:         validator.New(),
	}
}

// List handles GET /api/restaurants.
// Supports ?keyword= substring filtering and ?page= pagination.
func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	query := service.ListRestaurantsQuery{
		Keyword: r.URL.Query().Get("keyword"),
	}
	// A non-numeric page falls back to the first page, like an absent one.
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		query.Page = page
	}

	restaurants, err := h.restaurantService.FindAll(r.Context(), query)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list restaurants")
		return
	}

	if restaurants == nil {
		restaurants = []*domain.Restaurant{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, restaurants)
}

// Create handles POST /api/restaurants.
func (h *RestaurantHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateRestaurantRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	restaurant, err := h.restaurantService.Create(r.Context(), service.CreateRestaurantInput{
		Name:        req.Name,
		Description: req.Description,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Category:    domain.RestaurantCategory(req.Category),
		Images:      req.Images,
	}, userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create restaurant")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, restaurant)
}

// Get handles GET /api/restaurants/{id}.
func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.restaurantService.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get restaurant")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, restaurant)
}

// Update handles PATCH /api/restaurants/{id}.
func (h *RestaurantHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req UpdateRestaurantRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	restaurant, err := h.restaurantService.UpdateByID(
		r.Context(),
		chi.URLParam(r, "id"),
		userID,
		service.UpdateRestaurantInput{
			Name:        req.Name,
			Description: req.Description,
			Email:       req.Email,
			Phone:       req.Phone,
			Address:     req.Address,
			Category:    categoryPtr(req.Category),
			Images:      req.Images,
		},
	)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update restaurant")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, restaurant)
}

// Delete handles DELETE /api/restaurants/{id}.
func (h *RestaurantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	deleted, err := h.restaurantService.DeleteByID(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete restaurant")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Deleted: deleted})
}

// ListMeals handles GET /api/restaurants/{id}/meals.
func (h *RestaurantHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.mealService.FindByRestaurant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list meals")
		return
	}

	if meals == nil {
		meals = []*domain.Meal{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, meals)
}
