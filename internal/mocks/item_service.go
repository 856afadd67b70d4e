package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
	"github.com/rewear/exchange/internal/service"
)

type ItemService struct {
	mock.Mock
}

func (i *ItemService) Create(ctx context.Context, cmd service.CreateItemCommand) (*model.Item, error) {
	args := i.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (i *ItemService) View(ctx context.Context, id int64) (*model.Item, error) {
	args := i.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (i *ItemService) GetByID(id int64) (*model.Item, error) {
	args := i.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (i *ItemService) List(filter repository.ItemFilter) ([]model.Item, error) {
	args := i.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (i *ItemService) SetApproval(ctx context.Context, id int64, approved bool) error {
	args := i.Called(ctx, id, approved)
	return args.Error(0)
}

func (i *ItemService) Remove(ctx context.Context, id int64) error {
	args := i.Called(ctx, id)
	return args.Error(0)
}

func (i *ItemService) Categories() ([]model.Category, error) {
	args := i.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}
