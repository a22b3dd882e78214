package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
	"github.com/sbilibin2017/gw-movie-ledger/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := services.NewMockCatalog(ctrl)
	rated := services.NewMockRatedChecker(ctrl)
	svc := services.NewSearchService(catalog, rated)

	t.Run("flags rated candidates", func(t *testing.T) {
		catalog.EXPECT().Search(ctx, "tropa").Return([]models.CandidateMovie{
			{Title: "Tropa de Elite", Year: intPtr(2007)},
			{Title: "Tropa de Elite 2", Year: intPtr(2010)},
			{Title: "Tropa sem ano"},
		})
		rated.EXPECT().Exists(ctx, userID, "Tropa de Elite", intPtr(2007)).Return(true, nil)
		rated.EXPECT().Exists(ctx, userID, "Tropa de Elite 2", intPtr(2010)).Return(false, nil)
		rated.EXPECT().Exists(ctx, userID, "Tropa sem ano", nil).Return(true, errors.New("db down"))

		got := svc.Search(ctx, userID, "tropa")
		assert.Len(t, got, 3)
		assert.True(t, got[0].AlreadyRated)
		assert.False(t, got[1].AlreadyRated)
		assert.False(t, got[2].AlreadyRated)
	})

	t.Run("empty catalog result", func(t *testing.T) {
		catalog.EXPECT().Search(ctx, "").Return([]models.CandidateMovie{})

		got := svc.Search(ctx, userID, "")
		assert.Empty(t, got)
	})
}
