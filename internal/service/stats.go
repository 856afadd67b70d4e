package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rewear/exchange/internal/cache"
	"github.com/rewear/exchange/internal/constants"
	"github.com/rewear/exchange/internal/repository"
)

const statsCacheTTL = 60 * time.Second

// StatsService serves derived counts only; it never mutates. Results are
// cached for up to statsCacheTTL and may be that stale.
type StatsService interface {
	UserStats(ctx context.Context, userID int64) (UserStats, error)
	PlatformStats(ctx context.Context) (PlatformStats, error)
}

type stats struct {
	userRepo repository.UserRepository
	itemRepo repository.ItemRepository
	swapRepo repository.SwapRequestRepository
	rdb      *redis.Client
	logger   *zap.Logger
}

// NewStatsService accepts a nil redis client; caching is then skipped.
func NewStatsService(userRepo repository.UserRepository, itemRepo repository.ItemRepository,
	swapRepo repository.SwapRequestRepository, rdb *redis.Client, logger *zap.Logger) StatsService {
	return &stats{userRepo: userRepo, itemRepo: itemRepo, swapRepo: swapRepo, rdb: rdb, logger: logger}
}

func (s *stats) UserStats(ctx context.Context, userID int64) (UserStats, error) {
	key := fmt.Sprintf("stats:user:%d", userID)

	var cached UserStats
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	found, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserStats{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return UserStats{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	itemsListed, err := s.itemRepo.CountByUserID(userID)
	if err != nil {
		return UserStats{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	successfulSwaps, err := s.swapRepo.CountSettledByRequester(userID)
	if err != nil {
		return UserStats{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	result := UserStats{
		ItemsListed:     itemsListed,
		SuccessfulSwaps: successfulSwaps,
		// Rating accumulates in hundredths, 0 means unrated.
		Rating: float64(found.Rating) / 100,
	}

	s.cacheSet(ctx, key, result)
	return result, nil
}

func (s *stats) PlatformStats(ctx context.Context) (PlatformStats, error) {
	const key = "stats:platform"

	var cached PlatformStats
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return PlatformStats{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	itemsListed, err := s.itemRepo.Count()
	if err != nil {
		return PlatformStats{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	completed, err := s.swapRepo.CountCompleted()
	if err != nil {
		return PlatformStats{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	result := PlatformStats{
		TotalUsers:      totalUsers,
		ItemsListed:     itemsListed,
		SuccessfulSwaps: completed,
	}

	s.cacheSet(ctx, key, result)
	return result, nil
}

func (s *stats) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.rdb == nil {
		return false
	}

	found, err := cache.GetJSON(ctx, s.rdb, key, dest)
	if err != nil {
		s.logger.Warn("stats cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return found
}

func (s *stats) cacheSet(ctx context.Context, key string, value any) {
	if s.rdb == nil {
		return
	}

	if err := cache.SetJSON(ctx, s.rdb, key, value, statsCacheTTL); err != nil {
		s.logger.Warn("stats cache write failed", zap.String("key", key), zap.Error(err))
	}
}
