package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rewear/exchange/internal/model"
)

type FavoriteRepository struct {
	mock.Mock
}

func (f *FavoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	args := f.Called(ctx, favorite)
	return args.Error(0)
}

func (f *FavoriteRepository) Delete(ctx context.Context, userID, itemID int64) error {
	args := f.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (f *FavoriteRepository) Exists(userID, itemID int64) (bool, error) {
	args := f.Called(userID, itemID)
	return args.Bool(0), args.Error(1)
}

func (f *FavoriteRepository) ListItemsByUser(userID int64) ([]model.Item, error) {
	args := f.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}
