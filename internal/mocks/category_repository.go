package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rewear/exchange/internal/model"
)

type CategoryRepository struct {
	mock.Mock
}

func (c *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := c.Called(ctx, category)
	return args.Error(0)
}

func (c *CategoryRepository) GetByID(id int64) (*model.Category, error) {
	args := c.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (c *CategoryRepository) List() ([]model.Category, error) {
	args := c.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}
