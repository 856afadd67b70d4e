package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
)

type ItemRepository struct {
	mock.Mock
}

func (i *ItemRepository) Create(ctx context.Context, item *model.Item) error {
	args := i.Called(ctx, item)
	return args.Error(0)
}

func (i *ItemRepository) GetByID(id int64) (*model.Item, error) {
	args := i.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (i *ItemRepository) GetByIDForUpdate(ctx context.Context, id int64) (*model.Item, error) {
	args := i.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (i *ItemRepository) List(filter repository.ItemFilter) ([]model.Item, error) {
	args := i.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (i *ItemRepository) UpdateStatus(ctx context.Context, id int64, to model.ItemStatus, from ...model.ItemStatus) error {
	callArgs := []interface{}{ctx, id, to}
	for _, f := range from {
		callArgs = append(callArgs, f)
	}
	args := i.Called(callArgs...)
	return args.Error(0)
}

func (i *ItemRepository) SetApproval(ctx context.Context, id int64, approved bool) error {
	args := i.Called(ctx, id, approved)
	return args.Error(0)
}

func (i *ItemRepository) IncrementViews(ctx context.Context, id int64) error {
	args := i.Called(ctx, id)
	return args.Error(0)
}

func (i *ItemRepository) Count() (int64, error) {
	args := i.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (i *ItemRepository) CountByUserID(userID int64) (int64, error) {
	args := i.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}
