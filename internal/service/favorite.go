package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rewear/exchange/internal/constants"
	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
)

type FavoriteService interface {
	Add(ctx context.Context, userID, itemID int64) error
	Remove(ctx context.Context, userID, itemID int64) error
	Check(userID, itemID int64) (bool, error)
	List(userID int64) ([]model.Item, error)
}

type favorite struct {
	favoriteRepo repository.FavoriteRepository
	itemRepo     repository.ItemRepository
	logger       *zap.Logger
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, itemRepo repository.ItemRepository,
	logger *zap.Logger) FavoriteService {
	return &favorite{favoriteRepo: favoriteRepo, itemRepo: itemRepo, logger: logger}
}

// Add is idempotent; favoriting twice is not an error.
func (s *favorite) Add(ctx context.Context, userID, itemID int64) error {
	if _, err := s.itemRepo.GetByID(itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return NewServiceError(constants.ErrCodeItemNotFound, err)
		}
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	err := s.favoriteRepo.Create(ctx, &model.Favorite{UserID: userID, ItemID: itemID})
	if err != nil && !errors.Is(err, repository.ErrFavoriteDuplicate) {
		s.logger.Error("error adding favorite", zap.Error(err))
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return nil
}

func (s *favorite) Remove(ctx context.Context, userID, itemID int64) error {
	err := s.favoriteRepo.Delete(ctx, userID, itemID)
	if err != nil && !errors.Is(err, repository.ErrFavoriteNotFound) {
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return nil
}

func (s *favorite) Check(userID, itemID int64) (bool, error) {
	found, err := s.favoriteRepo.Exists(userID, itemID)
	if err != nil {
		return false, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return found, nil
}

func (s *favorite) List(userID int64) ([]model.Item, error) {
	items, err := s.favoriteRepo.ListItemsByUser(userID)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return items, nil
}
