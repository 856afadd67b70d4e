package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rewear/exchange/internal/constants"
	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
)

var ErrInvalidPointValue = errors.New("INVALID_POINT_VALUE")

type ItemService interface {
	Create(ctx context.Context, cmd CreateItemCommand) (*model.Item, error)
	View(ctx context.Context, id int64) (*model.Item, error)
	GetByID(id int64) (*model.Item, error)
	List(filter repository.ItemFilter) ([]model.Item, error)
	SetApproval(ctx context.Context, id int64, approved bool) error
	Remove(ctx context.Context, id int64) error
	Categories() ([]model.Category, error)
}

type item struct {
	txManager    repository.TxManager
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	ledger       LedgerService
	logger       *zap.Logger
}

func NewItemService(txManager repository.TxManager, itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository, ledger LedgerService, logger *zap.Logger) ItemService {
	return &item{txManager: txManager, itemRepo: itemRepo, categoryRepo: categoryRepo,
		ledger: ledger, logger: logger}
}

// Create lists a garment and pays the listing reward in the same
// transaction, so a failed insert never leaves loose points behind.
func (s *item) Create(ctx context.Context, cmd CreateItemCommand) (*model.Item, error) {
	if cmd.PointValue <= 0 {
		return nil, NewServiceError(constants.ErrCodeInvalidPointValue, ErrInvalidPointValue)
	}

	if _, err := s.categoryRepo.GetByID(cmd.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, NewServiceError(constants.ErrCodeCategoryNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	newItem := &model.Item{
		UserID:      cmd.UserID,
		CategoryID:  cmd.CategoryID,
		Title:       cmd.Title,
		Description: cmd.Description,
		Size:        cmd.Size,
		Condition:   cmd.Condition,
		PointValue:  cmd.PointValue,
		Tags:        cmd.Tags,
		Images:      cmd.Images,
		Status:      model.ItemStatusActive,
	}

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.itemRepo.Create(ctx, newItem); err != nil {
			s.logger.Error("error creating item", zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		return s.ledger.Apply(ctx, LedgerEntry{
			UserID:      cmd.UserID,
			ItemID:      &newItem.ID,
			Type:        model.TxTypeEarned,
			Points:      constants.ListingRewardPoints,
			Description: "Item listed",
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("item listed",
		zap.Int64("item_id", newItem.ID),
		zap.Int64("user_id", cmd.UserID),
		zap.Int64("point_value", cmd.PointValue),
	)

	return newItem, nil
}

// View returns the item with owner and category and bumps the view counter.
// The bump is fire-and-forget accounting, not part of any invariant.
func (s *item) View(ctx context.Context, id int64) (*model.Item, error) {
	found, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.IncrementViews(ctx, id); err != nil {
		s.logger.Warn("error incrementing item views", zap.Int64("item_id", id), zap.Error(err))
	}

	return found, nil
}

func (s *item) GetByID(id int64) (*model.Item, error) {
	found, err := s.itemRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, NewServiceError(constants.ErrCodeItemNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return found, nil
}

func (s *item) List(filter repository.ItemFilter) ([]model.Item, error) {
	items, err := s.itemRepo.List(filter)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return items, nil
}

func (s *item) SetApproval(ctx context.Context, id int64, approved bool) error {
	if err := s.itemRepo.SetApproval(ctx, id, approved); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return NewServiceError(constants.ErrCodeItemNotFound, err)
		}
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.logger.Info("item approval updated", zap.Int64("item_id", id), zap.Bool("approved", approved))
	return nil
}

// Remove soft-deletes a listing: transactions and swap requests keep
// referencing the row, the status just goes terminal. Only non-terminal
// items can be withdrawn.
func (s *item) Remove(ctx context.Context, id int64) error {
	err := s.itemRepo.UpdateStatus(ctx, id, model.ItemStatusRemoved,
		model.ItemStatusActive, model.ItemStatusProcessing)
	if err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return NewServiceError(constants.ErrCodeInvalidStateTransition,
				fmt.Errorf("%w: item %d is terminal or missing", ErrInvalidStateTransition, id))
		}
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.logger.Info("item removed", zap.Int64("item_id", id))
	return nil
}

func (s *item) Categories() ([]model.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return categories, nil
}
