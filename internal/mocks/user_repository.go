package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rewear/exchange/internal/model"
)

type UserRepository struct {
	mock.Mock
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) error {
	args := u.Called(ctx, user)
	return args.Error(0)
}

func (u *UserRepository) GetByID(id int64) (*model.User, error) {
	args := u.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (u *UserRepository) GetByUsername(username string) (*model.User, error) {
	args := u.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (u *UserRepository) GetByIDForUpdate(ctx context.Context, id int64) (*model.User, error) {
	args := u.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (u *UserRepository) UpdateProfile(ctx context.Context, user *model.User) error {
	args := u.Called(ctx, user)
	return args.Error(0)
}

func (u *UserRepository) AdjustBalance(ctx context.Context, userID int64, delta int64) error {
	args := u.Called(ctx, userID, delta)
	return args.Error(0)
}

func (u *UserRepository) Count() (int64, error) {
	args := u.Called()
	return args.Get(0).(int64), args.Error(1)
}
