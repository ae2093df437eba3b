package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"buntudelice/internal/domain"
)

type MenuService struct {
	repo  MenuRepository
	cache QueryCache
}

func NewMenuService(repo MenuRepository, cache QueryCache) *MenuService {
	return &MenuService{repo: repo, cache: cache}
}

func menuCacheKey(restaurantID uuid.UUID) string {
	return "menu:" + restaurantID.String()
}

// List fetches every menu row for a restaurant and normalizes each row
// independently. Normalization is total, so one malformed blob can never
// abort the batch.
func (s *MenuService) List(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItem, error) {
	if s.cache != nil {
		var cached []domain.MenuItem
		if hit, err := s.cache.Get(ctx, menuCacheKey(restaurantID), &cached); err == nil && hit {
			return cached, nil
		}
	}

	var rows []domain.MenuItemRow
	err := retryRead(ctx, func() error {
		var err error
		rows, err = s.repo.ListMenuItems(ctx, restaurantID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	items := make([]domain.MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.MenuItemFromRow(row))
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, menuCacheKey(restaurantID), items)
	}
	return items, nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
