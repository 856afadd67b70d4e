package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rewear/exchange/internal/model"
)

type SwapRequestRepository struct {
	mock.Mock
}

func (s *SwapRequestRepository) Create(ctx context.Context, request *model.SwapRequest) error {
	args := s.Called(ctx, request)
	return args.Error(0)
}

func (s *SwapRequestRepository) GetByID(id int64) (*model.SwapRequest, error) {
	args := s.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SwapRequest), args.Error(1)
}

func (s *SwapRequestRepository) GetByIDForUpdate(ctx context.Context, id int64) (*model.SwapRequest, error) {
	args := s.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SwapRequest), args.Error(1)
}

func (s *SwapRequestRepository) UpdateStatus(ctx context.Context, id int64, to model.SwapStatus, completedAt *time.Time, from ...model.SwapStatus) error {
	callArgs := []interface{}{ctx, id, to, completedAt}
	for _, f := range from {
		callArgs = append(callArgs, f)
	}
	args := s.Called(callArgs...)
	return args.Error(0)
}

func (s *SwapRequestRepository) Delete(ctx context.Context, id int64) error {
	args := s.Called(ctx, id)
	return args.Error(0)
}

func (s *SwapRequestRepository) ListByRequester(requesterID int64) ([]model.SwapRequest, error) {
	args := s.Called(requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SwapRequest), args.Error(1)
}

func (s *SwapRequestRepository) ListByReceiver(receiverID int64) ([]model.SwapRequest, error) {
	args := s.Called(receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SwapRequest), args.Error(1)
}

func (s *SwapRequestRepository) CountSettledByRequester(requesterID int64) (int64, error) {
	args := s.Called(requesterID)
	return args.Get(0).(int64), args.Error(1)
}

func (s *SwapRequestRepository) CountCompleted() (int64, error) {
	args := s.Called()
	return args.Get(0).(int64), args.Error(1)
}
