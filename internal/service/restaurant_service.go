package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/platform/geocode"
	"github.com/DariushJinx/restaurants-api/internal/platform/logger"
	"github.com/DariushJinx/restaurants-api/internal/store"
	"github.com/google/uuid"
)

// restaurantsPerPage is the fixed page size for restaurant listings.
const restaurantsPerPage = 2

// ListRestaurantsQuery carries the pagination and filter parameters for
// FindAll. Page values below 1 default to the first page; Keyword filters by
// case-insensitive substring match on the restaurant name.
type ListRestaurantsQuery struct {
	Page    int
	Keyword string
}

// CreateRestaurantInput carries the caller-provided fields for a new
// restaurant. The location is derived from Address by the service.
type CreateRestaurantInput struct {
	Name        string
	Description string
	Email       string
	Phone       string
	Address     string
	Category    domain.RestaurantCategory
	Images      []string
}

// UpdateRestaurantInput carries a partial update; nil fields are left
// untouched. Address changes do not trigger re-geocoding.
type UpdateRestaurantInput struct {
	Name        *string
	Description *string
	Email       *string
	Phone       *string
	Address     *string
	Category    *domain.RestaurantCategory
	Images      []string
}

// RestaurantService provides restaurant CRUD, keyword search, pagination and
// geocoding enrichment at creation time.
type RestaurantService interface {
	// FindAll lists restaurants with the fixed page size, in storage order.
	// Callers cannot distinguish the last page from the only page without
	// fetching the next one; no total count is returned.
	FindAll(ctx context.Context, query ListRestaurantsQuery) ([]*domain.Restaurant, error)

	// Create geocodes the address, attaches the owner and persists the new
	// restaurant. Returns ErrAddressNotGeocodable if the address cannot be
	// resolved; the geocoder is not retried.
	Create(ctx context.Context, input CreateRestaurantInput, ownerID uuid.UUID) (*domain.Restaurant, error)

	// FindByID returns the restaurant with the given ID.
	// Returns domain.ErrInvalidID for a malformed ID (before any store
	// access) and ErrRestaurantNotFound for a well-formed but absent one.
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)

	// UpdateByID applies a partial update to a restaurant owned by the
	// caller. Returns ErrNotOwned if the caller is not the owner. The stored
	// location is never recomputed, even when the address changes.
	UpdateByID(
		ctx context.Context,
		id string,
		callerID uuid.UUID,
		input UpdateRestaurantInput,
	) (*domain.Restaurant, error)

	// DeleteByID removes a restaurant owned by the caller and reports
	// whether a row was actually removed. Meals referencing the restaurant
	// are removed by the schema cascade, not by this service.
	DeleteByID(ctx context.Context, id string, callerID uuid.UUID) (bool, error)
}

// RestaurantServiceError wraps unexpected errors from the restaurant service
// with context.
type RestaurantServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for RestaurantServiceError.
func (e *RestaurantServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("restaurant service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("restaurant service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *RestaurantServiceError) Unwrap() error {
	return e.Err
}

// restaurantServiceImpl implements the RestaurantService interface
type restaurantServiceImpl struct {
	restaurantStore store.RestaurantStore
	geocoder        geocode.Geocoder
	logger          *slog.Logger
}

// NewRestaurantService creates a new RestaurantService.
// It returns an error if any of the required dependencies are nil.
func NewRestaurantService(
	restaurantStore store.RestaurantStore,
	geocoder geocode.Geocoder,
	log *slog.Logger,
) (RestaurantService, error) {
	if restaurantStore == nil {
		return nil, domain.NewValidationError("restaurantStore", "cannot be nil", domain.ErrValidation)
	}
	if geocoder == nil {
		return nil, domain.NewValidationError("geocoder", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &restaurantServiceImpl{
		restaurantStore: restaurantStore,
		geocoder:        geocoder,
		logger:          log.With(slog.String("component", "restaurant_service")),
	}, nil
}

// FindAll implements RestaurantService.FindAll
func (s *restaurantServiceImpl) FindAll(
	ctx context.Context,
	query ListRestaurantsQuery,
) ([]*domain.Restaurant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	page := query.Page
	if page < 1 {
		page = 1
	}

	restaurants, err := s.restaurantStore.List(ctx, store.ListRestaurantsParams{
		Keyword: query.Keyword,
		Limit:   restaurantsPerPage,
		Offset:  restaurantsPerPage * (page - 1),
	})
	if err != nil {
		log.Error("failed to list restaurants",
			slog.String("error", err.Error()),
			slog.Int("page", page))
		return nil, &RestaurantServiceError{
			Operation: "find_all",
			Message:   "failed to list restaurants",
			Err:       err,
		}
	}

	return restaurants, nil
}

// Create implements RestaurantService.Create
func (s *restaurantServiceImpl) Create(
	ctx context.Context,
	input CreateRestaurantInput,
	ownerID uuid.UUID,
) (*domain.Restaurant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	location, err := s.geocoder.Geocode(ctx, input.Address)
	if err != nil {
		log.Warn("failed to geocode restaurant address",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrAddressNotGeocodable, err)
	}

	restaurant, err := domain.NewRestaurant(
		ownerID,
		input.Name,
		input.Description,
		input.Email,
		input.Phone,
		input.Address,
		input.Category,
	)
	if err != nil {
		log.Warn("restaurant validation failed", slog.String("error", err.Error()))
		return nil, err
	}
	restaurant.Location = location
	if len(input.Images) > 0 {
		restaurant.Images = input.Images
	}

	if err := s.restaurantStore.Create(ctx, restaurant); err != nil {
		log.Error("failed to persist restaurant",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurant.ID.String()))
		return nil, err
	}

	log.Info("restaurant created",
		slog.String("restaurant_id", restaurant.ID.String()),
		slog.String("owner_id", ownerID.String()))
	return restaurant, nil
}

// FindByID implements RestaurantService.FindByID
func (s *restaurantServiceImpl) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	restaurantID, err := parseID(id)
	if err != nil {
		log.Debug("malformed restaurant ID", slog.String("id", id))
		return nil, err
	}

	restaurant, err := s.restaurantStore.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, store.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		log.Error("failed to get restaurant",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurantID.String()))
		return nil, err
	}

	return restaurant, nil
}

// UpdateByID implements RestaurantService.UpdateByID
func (s *restaurantServiceImpl) UpdateByID(
	ctx context.Context,
	id string,
	callerID uuid.UUID,
	input UpdateRestaurantInput,
) (*domain.Restaurant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	restaurant, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkOwnership(restaurant.OwnerID, callerID, "you can not update this restaurant"); err != nil {
		log.Warn("restaurant update rejected: ownership mismatch",
			slog.String("restaurant_id", restaurant.ID.String()),
			slog.String("caller_id", callerID.String()))
		return nil, err
	}

	applyRestaurantUpdate(restaurant, input)

	if err := s.restaurantStore.Update(ctx, restaurant); err != nil {
		if errors.Is(err, store.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		log.Error("failed to update restaurant",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurant.ID.String()))
		return nil, err
	}

	log.Info("restaurant updated", slog.String("restaurant_id", restaurant.ID.String()))
	return restaurant, nil
}

// DeleteByID implements RestaurantService.DeleteByID
func (s *restaurantServiceImpl) DeleteByID(
	ctx context.Context,
	id string,
	callerID uuid.UUID,
) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	restaurant, err := s.FindByID(ctx, id)
	if err != nil {
		return false, err
	}

	if err := checkOwnership(restaurant.OwnerID, callerID, "you can not delete this restaurant"); err != nil {
		log.Warn("restaurant delete rejected: ownership mismatch",
			slog.String("restaurant_id", restaurant.ID.String()),
			slog.String("caller_id", callerID.String()))
		return false, err
	}

	deleted, err := s.restaurantStore.Delete(ctx, restaurant.ID)
	if err != nil {
		log.Error("failed to delete restaurant",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurant.ID.String()))
		return false, err
	}

	log.Info("restaurant deleted",
		slog.String("restaurant_id", restaurant.ID.String()),
		slog.Bool("deleted", deleted))
	return deleted, nil
}

// applyRestaurantUpdate copies the non-nil fields of the partial update onto
// the restaurant. Owner, location and menu are never touched here.
func applyRestaurantUpdate(restaurant *domain.Restaurant, input UpdateRestaurantInput) {
	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.Description != nil {
		restaurant.Description = *input.Description
	}
	if input.Email != nil {
		restaurant.Email = *input.Email
	}
	if input.Phone != nil {
		restaurant.Phone = *input.Phone
	}
	if input.Address != nil {
		restaurant.Address = *input.Address
	}
	if input.Category != nil {
		restaurant.Category = *input.Category
	}
	if input.Images != nil {
		restaurant.Images = input.Images
	}
}

// parseID validates a route-supplied identifier. A malformed ID fails with
// domain.ErrInvalidID before any store access happens.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID)
	}
	return parsed, nil
}
