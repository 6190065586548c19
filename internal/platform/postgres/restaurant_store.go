package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/platform/logger"
	"github.com/DariushJinx/restaurants-api/internal/store"
	"github.com/google/uuid"
)

// PostgresRestaurantStore implements the store.RestaurantStore interface
// using a PostgreSQL database as the storage backend.
//
// The menu and images lists are persisted as jsonb columns; the geocoded
// location is flattened into dedicated columns.
type PostgresRestaurantStore struct {
	db     store.DBTX
	conn   *sql.DB
	logger *slog.Logger
}

// NewPostgresRestaurantStore creates a new PostgreSQL implementation of the
// RestaurantStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresRestaurantStore(db *sql.DB, log *slog.Logger) *PostgresRestaurantStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresRestaurantStore{
		db:     db,
		conn:   db,
		logger: log.With(slog.String("component", "restaurant_store")),
	}
}

// Ensure PostgresRestaurantStore implements store.RestaurantStore interface
var _ store.RestaurantStore = (*PostgresRestaurantStore)(nil)

// WithTx implements store.RestaurantStore.WithTx
func (s *PostgresRestaurantStore) WithTx(tx *sql.Tx) store.RestaurantStore {
	return &PostgresRestaurantStore{
		db:     tx,
		conn:   s.conn,
		logger: s.logger,
	}
}

// DB implements store.RestaurantStore.DB
func (s *PostgresRestaurantStore) DB() *sql.DB {
	return s.conn
}

const restaurantColumns = `
	id, name, description, email, phone, address, category, images,
	longitude, latitude, formatted_address, city, state, zipcode, country,
	menu, owner_id, created_at, updated_at
`

// Create implements store.RestaurantStore.Create
// It saves a new restaurant to the database, handling domain validation.
func (s *PostgresRestaurantStore) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := restaurant.Validate(); err != nil {
		log.Warn("restaurant validation failed during create",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurant.ID.String()))
		return err
	}

	images, menu, err := marshalRestaurantLists(restaurant)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO restaurants (` + restaurantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Description,
		restaurant.Email,
		restaurant.Phone,
		restaurant.Address,
		restaurant.Category,
		images,
		restaurant.Location.Coordinates[0],
		restaurant.Location.Coordinates[1],
		restaurant.Location.FormattedAddress,
		restaurant.Location.City,
		restaurant.Location.State,
		restaurant.Location.Zipcode,
		restaurant.Location.Country,
		menu,
		restaurant.OwnerID,
		restaurant.CreatedAt,
		restaurant.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create restaurant",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurant.ID.String()))
		return MapError(err)
	}

	log.Info("restaurant created successfully",
		slog.String("restaurant_id", restaurant.ID.String()),
		slog.String("owner_id", restaurant.OwnerID.String()))
	return nil
}

// GetByID implements store.RestaurantStore.GetByID
// Returns store.ErrRestaurantNotFound if the restaurant does not exist.
func (s *PostgresRestaurantStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`

	restaurant, err := scanRestaurant(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("restaurant not found", slog.String("restaurant_id", id.String()))
			return nil, store.ErrRestaurantNotFound
		}
		log.Error("failed to get restaurant by ID",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", id.String()))
		return nil, MapError(err)
	}

	return restaurant, nil
}

// List implements store.RestaurantStore.List
// Results come back in storage (insertion) order; keyword filters by
// case-insensitive substring match on the name.
func (s *PostgresRestaurantStore) List(
	ctx context.Context,
	params store.ListRestaurantsParams,
) ([]*domain.Restaurant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, params.Keyword, params.Limit, params.Offset)
	if err != nil {
		log.Error("failed to list restaurants",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	restaurants := make([]*domain.Restaurant, 0)
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			return nil, MapError(err)
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return restaurants, nil
}

// Update implements store.RestaurantStore.Update
// The owner column is deliberately excluded from the SET list; ownership
// never changes after creation.
// Returns store.ErrRestaurantNotFound if the restaurant does not exist.
func (s *PostgresRestaurantStore) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := restaurant.Validate(); err != nil {
		log.Warn("restaurant validation failed during update",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurant.ID.String()))
		return err
	}

	images, menu, err := marshalRestaurantLists(restaurant)
	if err != nil {
		return err
	}

	query := `
		UPDATE restaurants
		SET name = $2, description = $3, email = $4, phone = $5, address = $6,
			category = $7, images = $8, menu = $9, updated_at = $10
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Description,
		restaurant.Email,
		restaurant.Phone,
		restaurant.Address,
		restaurant.Category,
		images,
		menu,
		restaurant.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to update restaurant",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurant.ID.String()))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrRestaurantNotFound
	}

	log.Debug("restaurant updated successfully",
		slog.String("restaurant_id", restaurant.ID.String()))
	return nil
}

// Delete implements store.RestaurantStore.Delete
// It reports whether a row was actually removed. Meals referencing the
// restaurant are removed by the schema's ON DELETE CASCADE.
func (s *PostgresRestaurantStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete restaurant",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", id.String()))
		return false, MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, MapError(err)
	}

	log.Info("restaurant delete executed",
		slog.String("restaurant_id", id.String()),
		slog.Bool("deleted", affected > 0))
	return affected > 0, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning code.
type rowScanner interface {
	Scan(dest ...any) error
}

// marshalRestaurantLists encodes the images and menu lists for jsonb columns.
func marshalRestaurantLists(restaurant *domain.Restaurant) ([]byte, []byte, error) {
	images, err := json.Marshal(restaurant.Images)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal images: %w", err)
	}
	menu, err := json.Marshal(restaurant.Menu)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal menu: %w", err)
	}
	return images, menu, nil
}

// scanRestaurant reads a single restaurant row.
func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	var category string
	var images, menu []byte

	err := row.Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Description,
		&restaurant.Email,
		&restaurant.Phone,
		&restaurant.Address,
		&category,
		&images,
		&restaurant.Location.Coordinates[0],
		&restaurant.Location.Coordinates[1],
		&restaurant.Location.FormattedAddress,
		&restaurant.Location.City,
		&restaurant.Location.State,
		&restaurant.Location.Zipcode,
		&restaurant.Location.Country,
		&menu,
		&restaurant.OwnerID,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	restaurant.Category = domain.RestaurantCategory(category)
	if err := json.Unmarshal(images, &restaurant.Images); err != nil {
		return nil, fmt.Errorf("failed to unmarshal images: %w", err)
	}
	if err := json.Unmarshal(menu, &restaurant.Menu); err != nil {
		return nil, fmt.Errorf("failed to unmarshal menu: %w", err)
	}

	return &restaurant, nil
}
