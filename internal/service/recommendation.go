package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"buntudelice/internal/domain"
)

type RecommendationService struct {
	menu    MenuRepository
	ratings RatingRepository
}

func NewRecommendationService(menu MenuRepository, ratings RatingRepository) *RecommendationService {
	return &RecommendationService{menu: menu, ratings: ratings}
}

// TopPicks ranks menu items by descending popularity score and joins each
// with the arithmetic mean of its ratings (0 with no ratings). Ranking is
// popularity-only; order history deliberately plays no part.
func (s *RecommendationService) TopPicks(ctx context.Context, limit int) ([]domain.Recommendation, error) {
	if limit <= 0 {
		limit = domain.DefaultRecommendTop
	}

	var rows []domain.MenuItemRow
	err := retryRead(ctx, func() error {
		var err error
		rows, err = s.menu.TopMenuItemsByPopularity(ctx, limit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("top menu items: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	ratings := map[uuid.UUID][]int{}
	if len(ids) > 0 {
		ratings, err = s.ratings.ListRatings(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("join ratings: %w", err)
		}
	}

	picks := make([]domain.Recommendation, 0, len(rows))
	for _, row := range rows {
		item := domain.MenuItemFromRow(row)
		itemRatings := ratings[item.ID]
		var avg float64
		if len(itemRatings) > 0 {
			var sum int
			for _, r := range itemRatings {
				sum += r
			}
			avg = float64(sum) / float64(len(itemRatings))
		}
		picks = append(picks, domain.Recommendation{
			MenuItem:      item,
			AverageRating: avg,
			RatingCount:   len(itemRatings),
		})
	}
	return picks, nil
}

var _ RecommendationServiceInterface = (*RecommendationService)(nil)
