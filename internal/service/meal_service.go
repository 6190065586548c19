package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/platform/logger"
	"github.com/DariushJinx/restaurants-api/internal/store"
	"github.com/google/uuid"
)

// CreateMealInput carries the caller-provided fields for a new meal.
// RestaurantID is the route-supplied parent identifier, validated before any
// store access.
type CreateMealInput struct {
	Name         string
	Description  string
	Price        float64
	Category     domain.MealCategory
	RestaurantID string
}

// UpdateMealInput carries a partial meal update; nil fields are left
// untouched. The parent restaurant and creator can never be reassigned.
type UpdateMealInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *domain.MealCategory
}

// MealService provides meal CRUD under the ownership rules of the parent
// restaurant. Creating or deleting a meal also maintains the denormalized
// menu on its restaurant; both writes happen in one database transaction.
type MealService interface {
	// FindAll lists every meal in storage order, unpaginated.
	FindAll(ctx context.Context) ([]*domain.Meal, error)

	// FindByRestaurant lists the meals belonging to one restaurant.
	// Returns domain.ErrInvalidID or ErrRestaurantNotFound for a bad parent.
	FindByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Meal, error)

	// FindByID returns the meal with the given ID.
	// Returns domain.ErrInvalidID for a malformed ID (before any store
	// access) and ErrMealNotFound for a well-formed but absent one.
	FindByID(ctx context.Context, id string) (*domain.Meal, error)

	// Create persists a new meal under a restaurant owned by the caller and
	// appends it to the restaurant menu. Returns ErrNotOwned if the caller
	// does not own the restaurant.
	Create(ctx context.Context, input CreateMealInput, callerID uuid.UUID) (*domain.Meal, error)

	// UpdateByID applies a partial update to a meal whose parent restaurant
	// is owned by the caller.
	UpdateByID(
		ctx context.Context,
		id string,
		callerID uuid.UUID,
		input UpdateMealInput,
	) (*domain.Meal, error)

	// DeleteByID removes a meal whose parent restaurant is owned by the
	// caller, removes it from the restaurant menu, and reports whether a row
	// was actually removed.
	DeleteByID(ctx context.Context, id string, callerID uuid.UUID) (bool, error)
}

// MealServiceError wraps unexpected errors from the meal service with context.
type MealServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for MealServiceError.
func (e *MealServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("meal service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("meal service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *MealServiceError) Unwrap() error {
	return e.Err
}

// mealServiceImpl implements the MealService interface
type mealServiceImpl struct {
	mealStore       store.MealStore
	restaurantStore store.RestaurantStore
	logger          *slog.Logger
}

// NewMealService creates a new MealService.
// It returns an error if any of the required dependencies are nil.
func NewMealService(
	mealStore store.MealStore,
	restaurantStore store.RestaurantStore,
	log *slog.Logger,
) (MealService, error) {
	if mealStore == nil {
		return nil, domain.NewValidationError("mealStore", "cannot be nil", domain.ErrValidation)
	}
	if restaurantStore == nil {
		return nil, domain.NewValidationError("restaurantStore", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &mealServiceImpl{
		mealStore:       mealStore,
		restaurantStore: restaurantStore,
		logger:          log.With(slog.String("component", "meal_service")),
	}, nil
}

// FindAll implements MealService.FindAll
func (s *mealServiceImpl) FindAll(ctx context.Context) ([]*domain.Meal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	meals, err := s.mealStore.List(ctx)
	if err != nil {
		log.Error("failed to list meals", slog.String("error", err.Error()))
		return nil, &MealServiceError{
			Operation: "find_all",
			Message:   "failed to list meals",
			Err:       err,
		}
	}

	return meals, nil
}

// FindByRestaurant implements MealService.FindByRestaurant
func (s *mealServiceImpl) FindByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]*domain.Meal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	restaurant, err := s.getRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	meals, err := s.mealStore.ListByRestaurant(ctx, restaurant.ID)
	if err != nil {
		log.Error("failed to list meals for restaurant",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurant.ID.String()))
		return nil, &MealServiceError{
			Operation: "find_by_restaurant",
			Message:   "failed to list meals",
			Err:       err,
		}
	}

	return meals, nil
}

// FindByID implements MealService.FindByID
func (s *mealServiceImpl) FindByID(ctx context.Context, id string) (*domain.Meal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	mealID, err := parseID(id)
	if err != nil {
		log.Debug("malformed meal ID", slog.String("id", id))
		return nil, err
	}

	meal, err := s.mealStore.GetByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, store.ErrMealNotFound) {
			return nil, ErrMealNotFound
		}
		log.Error("failed to get meal",
			slog.String("error", err.Error()),
			slog.String("meal_id", mealID.String()))
		return nil, err
	}

	return meal, nil
}

// Create implements MealService.Create
func (s *mealServiceImpl) Create(
	ctx context.Context,
	input CreateMealInput,
	callerID uuid.UUID,
) (*domain.Meal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	restaurant, err := s.getRestaurant(ctx, input.RestaurantID)
	if err != nil {
		return nil, err
	}

	if err := checkOwnership(restaurant.OwnerID, callerID, "you can not add meal to this restaurant"); err != nil {
		log.Warn("meal create rejected: ownership mismatch",
			slog.String("restaurant_id", restaurant.ID.String()),
			slog.String("caller_id", callerID.String()))
		return nil, err
	}

	meal, err := domain.NewMeal(
		restaurant.ID,
		callerID,
		input.Name,
		input.Description,
		input.Price,
		input.Category,
	)
	if err != nil {
		log.Warn("meal validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	restaurant.AddMeal(meal.ID)

	err = store.RunInTransaction(ctx, s.mealStore.DB(), func(ctx context.Context, tx *sql.Tx) error {
		if err := s.mealStore.WithTx(tx).Create(ctx, meal); err != nil {
			return err
		}
		return s.restaurantStore.WithTx(tx).Update(ctx, restaurant)
	})
	if err != nil {
		log.Error("failed to persist meal",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurant.ID.String()))
		return nil, err
	}

	log.Info("meal created",
		slog.String("meal_id", meal.ID.String()),
		slog.String("restaurant_id", restaurant.ID.String()))
	return meal, nil
}

// UpdateByID implements MealService.UpdateByID
func (s *mealServiceImpl) UpdateByID(
	ctx context.Context,
	id string,
	callerID uuid.UUID,
	input UpdateMealInput,
) (*domain.Meal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	meal, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkMealOwnership(ctx, meal, callerID, "you can not update this meal"); err != nil {
		return nil, err
	}

	applyMealUpdate(meal, input)
	if err := meal.Validate(); err != nil {
		log.Warn("meal validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.mealStore.Update(ctx, meal); err != nil {
		if errors.Is(err, store.ErrMealNotFound) {
			return nil, ErrMealNotFound
		}
		log.Error("failed to update meal",
			slog.String("error", err.Error()),
			slog.String("meal_id", meal.ID.String()))
		return nil, err
	}

	log.Info("meal updated", slog.String("meal_id", meal.ID.String()))
	return meal, nil
}

// DeleteByID implements MealService.DeleteByID
func (s *mealServiceImpl) DeleteByID(
	ctx context.Context,
	id string,
	callerID uuid.UUID,
) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	meal, err := s.FindByID(ctx, id)
	if err != nil {
		return false, err
	}

	if err := s.checkMealOwnership(ctx, meal, callerID, "you can not delete this meal"); err != nil {
		return false, err
	}

	var deleted bool
	err = store.RunInTransaction(ctx, s.mealStore.DB(), func(ctx context.Context, tx *sql.Tx) error {
		var txErr error
		deleted, txErr = s.mealStore.WithTx(tx).Delete(ctx, meal.ID)
		if txErr != nil {
			return txErr
		}

		txRestaurants := s.restaurantStore.WithTx(tx)
		restaurant, txErr := txRestaurants.GetByID(ctx, meal.RestaurantID)
		if txErr != nil {
			// The parent may already be gone; the menu entry went with it.
			if errors.Is(txErr, store.ErrRestaurantNotFound) {
				return nil
			}
			return txErr
		}
		if !restaurant.HasMeal(meal.ID) {
			return nil
		}
		restaurant.RemoveMeal(meal.ID)
		return txRestaurants.Update(ctx, restaurant)
	})
	if err != nil {
		log.Error("failed to delete meal",
			slog.String("error", err.Error()),
			slog.String("meal_id", meal.ID.String()))
		return false, err
	}

	log.Info("meal deleted",
		slog.String("meal_id", meal.ID.String()),
		slog.Bool("deleted", deleted))
	return deleted, nil
}

// checkMealOwnership resolves the meal's parent restaurant and verifies the
// caller owns it. Meal authorization always follows the parent restaurant,
// not the meal's creator.
func (s *mealServiceImpl) checkMealOwnership(
	ctx context.Context,
	meal *domain.Meal,
	callerID uuid.UUID,
	message string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	restaurant, err := s.restaurantStore.GetByID(ctx, meal.RestaurantID)
	if err != nil {
		if errors.Is(err, store.ErrRestaurantNotFound) {
			return ErrRestaurantNotFound
		}
		log.Error("failed to resolve parent restaurant",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", meal.RestaurantID.String()))
		return err
	}

	if err := checkOwnership(restaurant.OwnerID, callerID, message); err != nil {
		log.Warn("meal operation rejected: ownership mismatch",
			slog.String("meal_id", meal.ID.String()),
			slog.String("restaurant_id", restaurant.ID.String()),
			slog.String("caller_id", callerID.String()))
		return err
	}
	return nil
}

// getRestaurant parses a route-supplied restaurant ID and loads the
// restaurant, mapping store absence to the service sentinel.
func (s *mealServiceImpl) getRestaurant(
	ctx context.Context,
	id string,
) (*domain.Restaurant, error) {
	restaurantID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.restaurantStore.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, store.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

// applyMealUpdate copies the non-nil fields of the partial update onto the
// meal.
func applyMealUpdate(meal *domain.Meal, input UpdateMealInput) {
	if input.Name != nil {
		meal.Name = *input.Name
	}
	if input.Description != nil {
		meal.Description = *input.Description
	}
	if input.Price != nil {
		meal.Price = *input.Price
	}
	if input.Category != nil {
		meal.Category = *input.Category
	}
}
