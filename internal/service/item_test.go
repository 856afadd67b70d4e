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

func TestItem_Create(t *testing.T) {
	logger := zap.NewNop()

	cmd := service.CreateItemCommand{
		UserID:      1,
		CategoryID:  3,
		Title:       "Wool coat",
		Description: "Barely worn winter coat",
		Size:        "M",
		Condition:   "like_new",
		PointValue:  200,
	}

	t.Run("lists item and pays the listing reward", func(t *testing.T) {
		mockTxManager := &mocks.TxManager{}
		mockItemRepo := &mocks.ItemRepository{}
		mockCategoryRepo := &mocks.CategoryRepository{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewItemService(mockTxManager, mockItemRepo, mockCategoryRepo, mockLedger, logger)

		mockCategoryRepo.On("GetByID", int64(3)).Return(&model.Category{ID: 3, Name: "Outerwear"}, nil)
		mockTxManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		mockItemRepo.On("Create", mock.Anything, mock.MatchedBy(func(i *model.Item) bool {
			return i.UserID == 1 &&
				i.Title == "Wool coat" &&
				i.Status == model.ItemStatusActive &&
				!i.IsApproved
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Item).ID = 11
		}).Return(nil)

		mockLedger.On("Apply", mock.Anything, mock.MatchedBy(func(e service.LedgerEntry) bool {
			return e.UserID == 1 &&
				e.Type == model.TxTypeEarned &&
				e.Points == constants.ListingRewardPoints &&
				e.ItemID != nil && *e.ItemID == 11
		})).Return(nil)

		created, err := svc.Create(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, int64(11), created.ID)
		mockLedger.AssertExpectations(t)
		mockItemRepo.AssertExpectations(t)
	})

	t.Run("rejects non-positive point value", func(t *testing.T) {
		mockTxManager := &mocks.TxManager{}
		mockItemRepo := &mocks.ItemRepository{}
		mockCategoryRepo := &mocks.CategoryRepository{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewItemService(mockTxManager, mockItemRepo, mockCategoryRepo, mockLedger, logger)

		bad := cmd
		bad.PointValue = 0
		_, err := svc.Create(context.Background(), bad)

		var svcErr service.Error
		assert.ErrorAs(t, err, &svcErr)
		assert.Equal(t, constants.ErrCodeInvalidPointValue, svcErr.Code)
		mockItemRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		mockTxManager := &mocks.TxManager{}
		mockItemRepo := &mocks.ItemRepository{}
		mockCategoryRepo := &mocks.CategoryRepository{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewItemService(mockTxManager, mockItemRepo, mockCategoryRepo, mockLedger, logger)

		mockCategoryRepo.On("GetByID", int64(3)).Return(nil, repository.ErrCategoryNotFound)

		_, err := svc.Create(context.Background(), cmd)

		var svcErr service.Error
		assert.ErrorAs(t, err, &svcErr)
		assert.Equal(t, constants.ErrCodeCategoryNotFound, svcErr.Code)
	})
}

func TestItem_View(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns item and bumps views", func(t *testing.T) {
		mockTxManager := &mocks.TxManager{}
		mockItemRepo := &mocks.ItemRepository{}
		mockCategoryRepo := &mocks.CategoryRepository{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewItemService(mockTxManager, mockItemRepo, mockCategoryRepo, mockLedger, logger)

		mockItemRepo.On("GetByID", int64(11)).Return(&model.Item{ID: 11, Title: "Wool coat"}, nil)
		mockItemRepo.On("IncrementViews", mock.Anything, int64(11)).Return(nil)

		found, err := svc.View(context.Background(), 11)

		assert.NoError(t, err)
		assert.Equal(t, "Wool coat", found.Title)
		mockItemRepo.AssertExpectations(t)
	})

	t.Run("view count failure does not fail the read", func(t *testing.T) {
		mockTxManager := &mocks.TxManager{}
		mockItemRepo := &mocks.ItemRepository{}
		mockCategoryRepo := &mocks.CategoryRepository{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewItemService(mockTxManager, mockItemRepo, mockCategoryRepo, mockLedger, logger)

		mockItemRepo.On("GetByID", int64(11)).Return(&model.Item{ID: 11}, nil)
		mockItemRepo.On("IncrementViews", mock.Anything, int64(11)).Return(repository.ErrItemNotFound)

		_, err := svc.View(context.Background(), 11)

		assert.NoError(t, err)
	})
}

func TestItem_Remove(t *testing.T) {
	logger := zap.NewNop()

	t.Run("withdraws a live listing", func(t *testing.T) {
		mockTxManager := &mocks.TxManager{}
		mockItemRepo := &mocks.ItemRepository{}
		mockCategoryRepo := &mocks.CategoryRepository{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewItemService(mockTxManager, mockItemRepo, mockCategoryRepo, mockLedger, logger)

		mockItemRepo.On("UpdateStatus", mock.Anything, int64(11), model.ItemStatusRemoved,
			model.ItemStatusActive, model.ItemStatusProcessing).Return(nil)

		assert.NoError(t, svc.Remove(context.Background(), 11))
		mockItemRepo.AssertExpectations(t)
	})

	t.Run("removing a swapped item is invalid", func(t *testing.T) {
		mockTxManager := &mocks.TxManager{}
		mockItemRepo := &mocks.ItemRepository{}
		mockCategoryRepo := &mocks.CategoryRepository{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewItemService(mockTxManager, mockItemRepo, mockCategoryRepo, mockLedger, logger)

		mockItemRepo.On("UpdateStatus", mock.Anything, int64(11), model.ItemStatusRemoved,
			model.ItemStatusActive, model.ItemStatusProcessing).Return(repository.ErrNoRowsAffected)

		err := svc.Remove(context.Background(), 11)

		var svcErr service.Error
		assert.ErrorAs(t, err, &svcErr)
		assert.Equal(t, constants.ErrCodeInvalidStateTransition, svcErr.Code)
	})
}
