package storage

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"buntudelice/internal/domain"
)

// PostgresRepository implements every repository interface in
// internal/service over a single *sql.DB.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const restaurantColumns = `
	id, name, description, address, latitude, longitude, phone, email,
	status, cuisine_type, banner_image_url, logo_url, rating, total_ratings,
	average_prep_time, minimum_order, delivery_fee, business_hours, trending,
	created_at`

func scanRestaurantRow(s interface{ Scan(...any) error }) (domain.RestaurantRow, error) {
	var row domain.RestaurantRow
	err := s.Scan(
		&row.ID, &row.Name, &row.Description, &row.Address, &row.Latitude,
		&row.Longitude, &row.Phone, &row.Email, &row.Status, &row.CuisineType,
		&row.BannerImageURL, &row.LogoURL, &row.Rating, &row.TotalRatings,
		&row.AveragePrepTime, &row.MinimumOrder, &row.DeliveryFee,
		&row.BusinessHours, &row.Trending, &row.CreatedAt,
	)
	return row, err
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id uuid.UUID) (domain.RestaurantRow, error) {
	return scanRestaurantRow(r.DB.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id))
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.RestaurantRow, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.RestaurantRow{}
	for rows.Next() {
		row, err := scanRestaurantRow(rows)
		if err != nil {
			logrus.WithError(err).Warn("skipping unreadable restaurant row")
			continue
		}
		restaurants = append(restaurants, row)
	}
	return restaurants, rows.Err()
}

const menuItemColumns = `
	id, restaurant_id, name, description, price, image_url, category,
	available, ingredients, allergens, dietary_preferences,
	customization_options, nutritional_info, rating, preparation_time,
	popularity_score, created_at, updated_at`

func scanMenuItemRow(s interface{ Scan(...any) error }) (domain.MenuItemRow, error) {
	var row domain.MenuItemRow
	err := s.Scan(
		&row.ID, &row.RestaurantID, &row.Name, &row.Description, &row.Price,
		&row.ImageURL, &row.Category, &row.Available,
		pq.Array(&row.Ingredients), pq.Array(&row.Allergens),
		pq.Array(&row.DietaryPreferences), &row.CustomizationOptions,
		&row.NutritionalInfo, &row.Rating, &row.PreparationTime,
		&row.PopularityScore, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

// ListMenuItems fetches every row for a restaurant, no implicit limit.
// A single unreadable row is logged and skipped, never aborting the batch.
func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItemRow, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE restaurant_id = $1 ORDER BY created_at`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItemRow{}
	for rows.Next() {
		row, err := scanMenuItemRow(rows)
		if err != nil {
			logrus.WithError(err).Warn("skipping unreadable menu item row")
			continue
		}
		items = append(items, row)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) TopMenuItemsByPopularity(ctx context.Context, limit int) ([]domain.MenuItemRow, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items
		 ORDER BY popularity_score DESC NULLS LAST
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItemRow{}
	for rows.Next() {
		row, err := scanMenuItemRow(rows)
		if err != nil {
			logrus.WithError(err).Warn("skipping unreadable menu item row")
			continue
		}
		items = append(items, row)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListRatings(ctx context.Context, menuItemIDs []uuid.UUID) (map[uuid.UUID][]int, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT menu_item_id, rating FROM ratings WHERE menu_item_id = ANY($1)`,
		pq.Array(menuItemIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := map[uuid.UUID][]int{}
	for rows.Next() {
		var itemID uuid.UUID
		var rating int
		if err := rows.Scan(&itemID, &rating); err != nil {
			continue
		}
		ratings[itemID] = append(ratings[itemID], rating)
	}
	return ratings, rows.Err()
}
