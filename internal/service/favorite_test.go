package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/rewear/exchange/internal/constants"
	"github.com/rewear/exchange/internal/mocks"
	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
	"github.com/rewear/exchange/internal/service"
)

func TestFavorite_Add(t *testing.T) {
	logger := zap.NewNop()

	t.Run("adds favorite for existing item", func(t *testing.T) {
		mockFavoriteRepo := &mocks.FavoriteRepository{}
		mockItemRepo := &mocks.ItemRepository{}

		svc := service.NewFavoriteService(mockFavoriteRepo, mockItemRepo, logger)

		mockItemRepo.On("GetByID", int64(11)).Return(&model.Item{ID: 11}, nil)
		mockFavoriteRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *model.Favorite) bool {
			return f.UserID == 7 && f.ItemID == 11
		})).Return(nil)

		assert.NoError(t, svc.Add(context.Background(), 7, 11))
		mockFavoriteRepo.AssertExpectations(t)
	})

	t.Run("favoriting twice is not an error", func(t *testing.T) {
		mockFavoriteRepo := &mocks.FavoriteRepository{}
		mockItemRepo := &mocks.ItemRepository{}

		svc := service.NewFavoriteService(mockFavoriteRepo, mockItemRepo, logger)

		mockItemRepo.On("GetByID", int64(11)).Return(&model.Item{ID: 11}, nil)
		mockFavoriteRepo.On("Create", mock.Anything, mock.Anything).
			Return(repository.ErrFavoriteDuplicate)

		assert.NoError(t, svc.Add(context.Background(), 7, 11))
	})

	t.Run("missing item is reported", func(t *testing.T) {
		mockFavoriteRepo := &mocks.FavoriteRepository{}
		mockItemRepo := &mocks.ItemRepository{}

		svc := service.NewFavoriteService(mockFavoriteRepo, mockItemRepo, logger)

		mockItemRepo.On("GetByID", int64(99)).Return(nil, repository.ErrItemNotFound)

		err := svc.Add(context.Background(), 7, 99)

		var svcErr service.Error
		assert.ErrorAs(t, err, &svcErr)
		assert.Equal(t, constants.ErrCodeItemNotFound, svcErr.Code)
		mockFavoriteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestFavorite_Remove(t *testing.T) {
	logger := zap.NewNop()

	t.Run("removing a missing favorite is a no-op", func(t *testing.T) {
		mockFavoriteRepo := &mocks.FavoriteRepository{}
		mockItemRepo := &mocks.ItemRepository{}

		svc := service.NewFavoriteService(mockFavoriteRepo, mockItemRepo, logger)

		mockFavoriteRepo.On("Delete", mock.Anything, int64(7), int64(11)).
			Return(repository.ErrFavoriteNotFound)

		assert.NoError(t, svc.Remove(context.Background(), 7, 11))
	})
}
