package tests

import (
	"context"
	"testing"

	"buntudelice/internal/domain"
	"buntudelice/internal/mocks"
	"buntudelice/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRecommendationService_TopPicks(t *testing.T) {
	ctx := context.Background()

	popular := uuid.New()
	unrated := uuid.New()
	scoreHigh := 98.5
	scoreLow := 12.0

	menu := mocks.NewMenuRepository(t)
	ratings := mocks.NewRatingRepository(t)

	menu.On("TopMenuItemsByPopularity", ctx, 2).Return([]domain.MenuItemRow{
		{ID: popular, Name: "Poulet Moambe", PopularityScore: &scoreHigh},
		{ID: unrated, Name: "Saka Saka", PopularityScore: &scoreLow},
	}, nil).Once()
	ratings.On("ListRatings", ctx, []uuid.UUID{popular, unrated}).Return(map[uuid.UUID][]int{
		popular: {5, 4, 3},
	}, nil).Once()

	svc := service.NewRecommendationService(menu, ratings)
	picks, err := svc.TopPicks(ctx, 2)

	assert.NoError(t, err)
	assert.Len(t, picks, 2)
	assert.Equal(t, "Poulet Moambe", picks[0].Name, "popularity order is preserved")
	assert.Equal(t, 4.0, picks[0].AverageRating)
	assert.Equal(t, 3, picks[0].RatingCount)
	assert.Zero(t, picks[1].AverageRating, "no ratings means zero, not default")
	assert.Zero(t, picks[1].RatingCount)
}

func TestRecommendationService_TopPicksDefaultLimit(t *testing.T) {
	ctx := context.Background()

	menu := mocks.NewMenuRepository(t)
	menu.On("TopMenuItemsByPopularity", ctx, domain.DefaultRecommendTop).
		Return([]domain.MenuItemRow{}, nil).Once()

	svc := service.NewRecommendationService(menu, mocks.NewRatingRepository(t))
	picks, err := svc.TopPicks(ctx, 0)

	assert.NoError(t, err)
	assert.Empty(t, picks)
}
