package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/rewear/exchange/internal/mocks"
	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/service"
)

func TestStats_UserStats(t *testing.T) {
	logger := zap.NewNop()

	t.Run("derives counts and scales the stored rating", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		mockItemRepo := &mocks.ItemRepository{}
		mockSwapRepo := &mocks.SwapRequestRepository{}

		svc := service.NewStatsService(mockUserRepo, mockItemRepo, mockSwapRepo, nil, logger)

		mockUserRepo.On("GetByID", int64(7)).Return(&model.User{ID: 7, Rating: 450}, nil)
		mockItemRepo.On("CountByUserID", int64(7)).Return(int64(3), nil)
		mockSwapRepo.On("CountSettledByRequester", int64(7)).Return(int64(2), nil)

		stats, err := svc.UserStats(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), stats.ItemsListed)
		assert.Equal(t, int64(2), stats.SuccessfulSwaps)
		assert.InDelta(t, 4.5, stats.Rating, 0.0001)
	})
}

func TestStats_PlatformStats(t *testing.T) {
	logger := zap.NewNop()

	t.Run("aggregates platform-wide counters", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		mockItemRepo := &mocks.ItemRepository{}
		mockSwapRepo := &mocks.SwapRequestRepository{}

		svc := service.NewStatsService(mockUserRepo, mockItemRepo, mockSwapRepo, nil, logger)

		mockUserRepo.On("Count").Return(int64(120), nil)
		mockItemRepo.On("Count").Return(int64(340), nil)
		mockSwapRepo.On("CountCompleted").Return(int64(56), nil)

		stats, err := svc.PlatformStats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(120), stats.TotalUsers)
		assert.Equal(t, int64(340), stats.ItemsListed)
		assert.Equal(t, int64(56), stats.SuccessfulSwaps)
	})
}
