package postgres

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

// PostgresMealStore implements the store.MealStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMealStore struct {
	db     store.DBTX
	conn   *sql.DB
	logger *slog.Logger
}

// NewPostgresMealStore creates a new PostgreSQL implementation of the MealStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresMealStore(db *sql.DB, log *slog.Logger) *PostgresMealStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresMealStore{
		db:     db,
		conn:   db,
		logger: log.With(slog.String("component", "meal_store")),
	}
}

// Ensure PostgresMealStore implements store.MealStore interface
var _ store.MealStore = (*PostgresMealStore)(nil)

// WithTx implements store.MealStore.WithTx
func (s *PostgresMealStore) WithTx(tx *sql.Tx) store.MealStore {
	return &PostgresMealStore{
		db:     tx,
		conn:   s.conn,
		logger: s.logger,
	}
}

// DB implements store.MealStore.DB
func (s *PostgresMealStore) DB() *sql.DB {
	return s.conn
}

const mealColumns = `
	id, name, description, price, category, restaurant_id, user_id, created_at, updated_at
`

// Create implements store.MealStore.Create
// It saves a new meal to the database, handling domain validation.
// Returns store.ErrInvalidEntity if the restaurant ID doesn't exist (foreign key violation).
func (s *PostgresMealStore) Create(ctx context.Context, meal *domain.Meal) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := meal.Validate(); err != nil {
		log.Warn("meal validation failed during create",
			slog.String("error", err.Error()),
			slog.String("meal_id", meal.ID.String()))
		return err
	}

	query := `
		INSERT INTO meals (` + mealColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		meal.ID,
		meal.Name,
		meal.Description,
		meal.Price,
		meal.Category,
		meal.RestaurantID,
		meal.UserID,
		meal.CreatedAt,
		meal.UpdatedAt,
	)

	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrInvalidEntity) {
			log.Warn("foreign key violation during meal creation",
				slog.String("meal_id", meal.ID.String()),
				slog.String("restaurant_id", meal.RestaurantID.String()))
			return fmt.Errorf("%w: restaurant with ID %s not found",
				store.ErrInvalidEntity, meal.RestaurantID)
		}

		log.Error("failed to create meal",
			slog.String("error", err.Error()),
			slog.String("meal_id", meal.ID.String()))
		return mapped
	}

	log.Info("meal created successfully",
		slog.String("meal_id", meal.ID.String()),
		slog.String("restaurant_id", meal.RestaurantID.String()))
	return nil
}

// GetByID implements store.MealStore.GetByID
// Returns store.ErrMealNotFound if the meal does not exist.
func (s *PostgresMealStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Meal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + mealColumns + ` FROM meals WHERE id = $1`

	meal, err := scanMeal(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("meal not found", slog.String("meal_id", id.String()))
			return nil, store.ErrMealNotFound
		}
		log.Error("failed to get meal by ID",
			slog.String("error", err.Error()),
			slog.String("meal_id", id.String()))
		return nil, MapError(err)
	}

	return meal, nil
}

// List implements store.MealStore.List
func (s *PostgresMealStore) List(ctx context.Context) ([]*domain.Meal, error) {
	query := `SELECT ` + mealColumns + ` FROM meals ORDER BY created_at, id`
	return s.queryMeals(ctx, query)
}

// ListByRestaurant implements store.MealStore.ListByRestaurant
func (s *PostgresMealStore) ListByRestaurant(
	ctx context.Context,
	restaurantID uuid.UUID,
) ([]*domain.Meal, error) {
	query := `SELECT ` + mealColumns + ` FROM meals WHERE restaurant_id = $1 ORDER BY created_at, id`
	return s.queryMeals(ctx, query, restaurantID)
}

// Update implements store.MealStore.Update
// The restaurant and user columns are deliberately excluded from the SET
// list; both are immutable after creation.
// Returns store.ErrMealNotFound if the meal does not exist.
func (s *PostgresMealStore) Update(ctx context.Context, meal *domain.Meal) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := meal.Validate(); err != nil {
		log.Warn("meal validation failed during update",
			slog.String("error", err.Error()),
			slog.String("meal_id", meal.ID.String()))
		return err
	}

	query := `
		UPDATE meals
		SET name = $2, description = $3, price = $4, category = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		meal.ID,
		meal.Name,
		meal.Description,
		meal.Price,
		meal.Category,
		meal.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to update meal",
			slog.String("error", err.Error()),
			slog.String("meal_id", meal.ID.String()))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrMealNotFound
	}

	log.Debug("meal updated successfully", slog.String("meal_id", meal.ID.String()))
	return nil
}

// Delete implements store.MealStore.Delete
// It reports whether a row was actually removed; deleting an absent meal is
// not an error.
func (s *PostgresMealStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete meal",
			slog.String("error", err.Error()),
			slog.String("meal_id", id.String()))
		return false, MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, MapError(err)
	}

	log.Info("meal delete executed",
		slog.String("meal_id", id.String()),
		slog.Bool("deleted", affected > 0))
	return affected > 0, nil
}

// queryMeals runs a meal query and scans all resulting rows.
func (s *PostgresMealStore) queryMeals(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Meal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list meals", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	meals := make([]*domain.Meal, 0)
	for rows.Next() {
		meal, err := scanMeal(rows)
		if err != nil {
			return nil, MapError(err)
		}
		meals = append(meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return meals, nil
}

// scanMeal reads a single meal row.
func scanMeal(row rowScanner) (*domain.Meal, error) {
	var meal domain.Meal
	var category string

	err := row.Scan(
		&meal.ID,
		&meal.Name,
		&meal.Description,
		&meal.Price,
		&category,
		&meal.RestaurantID,
		&meal.UserID,
		&meal.CreatedAt,
		&meal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	meal.Category = domain.MealCategory(category)
	return &meal, nil
}
