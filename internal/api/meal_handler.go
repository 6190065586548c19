package api

import (
	"net/http"

	"github.com/DariushJinx/restaurants-api/internal/api/shared"
	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// MealHandler handles meal-related API requests.
type MealHandler struct {
	mealService service.MealService
	validator   *validator.Validate
}

// NewMealHandler creates a new MealHandler with the given dependencies.
func NewMealHandler(mealService service.MealService) *MealHandler {
	return &MealHandler{
		mealService: mealService,
		validator:   validator.New(),
	}
}

// List handles GET /api/meals.
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	meals, err := h.mealService.FindAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list meals")
		return
	}

	if meals == nil {
		meals = []*domain.Meal{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, meals)
}

// Create handles POST /api/meals.
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateMealRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	meal, err := h.mealService.Create(r.Context(), service.CreateMealInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     domain.MealCategory(req.Category),
		RestaurantID: req.Restaurant,
	}, userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create meal")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, meal)
}

// Get handles GET /api/meals/{id}.
func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	meal, err := h.mealService.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get meal")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, meal)
}

// Update handles PATCH /api/meals/{id}.
func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req UpdateMealRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	meal, err := h.mealService.UpdateByID(
		r.Context(),
		chi.URLParam(r, "id"),
		userID,
		service.UpdateMealInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    mealCategoryPtr(req.Category),
		},
	)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update meal")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, meal)
}

// Delete handles DELETE /api/meals/{id}.
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	deleted, err := h.mealService.DeleteByID(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete meal")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Deleted: deleted})
}
