package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"buntudelice/internal/domain"
)

type RestaurantService struct {
	repo  RestaurantRepository
	cache QueryCache
}

func NewRestaurantService(repo RestaurantRepository, cache QueryCache) *RestaurantService {
	return &RestaurantService{repo: repo, cache: cache}
}

func restaurantCacheKey(id uuid.UUID) string {
	return "restaurant:" + id.String()
}

// Get fetches exactly one restaurant and normalizes it. An absent
// identifier is NotFound before any query; a stale-but-present cache entry
// is served without touching the database.
func (s *RestaurantService) Get(ctx context.Context, id uuid.UUID) (domain.Restaurant, error) {
	if id == uuid.Nil {
		return domain.Restaurant{}, ErrRestaurantNotFound
	}

	if s.cache != nil {
		var cached domain.Restaurant
		if hit, err := s.cache.Get(ctx, restaurantCacheKey(id), &cached); err == nil && hit {
			return cached, nil
		}
	}

	var row domain.RestaurantRow
	err := retryRead(ctx, func() error {
		var err error
		row, err = s.repo.GetRestaurant(ctx, id)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("fetch restaurant: %w", err)
	}

	restaurant := domain.RestaurantFromRow(row)
	if s.cache != nil {
		_ = s.cache.Set(ctx, restaurantCacheKey(id), restaurant)
	}
	return restaurant, nil
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	var rows []domain.RestaurantRow
	err := retryRead(ctx, func() error {
		var err error
		rows, err = s.repo.ListRestaurants(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}

	restaurants := make([]domain.Restaurant, 0, len(rows))
	for _, row := range rows {
		restaurants = append(restaurants, domain.RestaurantFromRow(row))
	}
	return restaurants, nil
}

func (s *RestaurantService) Invalidate(ctx context.Context, id uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, restaurantCacheKey(id), menuCacheKey(id))
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
