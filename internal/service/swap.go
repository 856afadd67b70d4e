package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rewear/exchange/internal/constants"
	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
)

var ErrInsufficientPoints = errors.New("INSUFFICIENT_POINTS")
var ErrInvalidStateTransition = errors.New("INVALID_STATE_TRANSITION")
var ErrItemUnavailable = errors.New("ITEM_UNAVAILABLE")
var ErrSelfRequest = errors.New("SELF_REQUEST_FORBIDDEN")
var ErrNotParticipant = errors.New("FORBIDDEN")

// SwapService owns the swap-request lifecycle. Every status of an item or a
// request changes through here (or through ItemService for admin removal);
// nothing else writes those columns.
type SwapService interface {
	Create(ctx context.Context, cmd CreateSwapCommand) (*model.SwapRequest, error)
	UpdateStatus(ctx context.Context, cmd UpdateSwapStatusCommand) (*model.SwapRequest, error)
	Cancel(ctx context.Context, cmd CancelSwapCommand) error
	ListForUser(userID int64) (SwapInbox, error)
}

type swap struct {
	txManager repository.TxManager
	swapRepo  repository.SwapRequestRepository
	itemRepo  repository.ItemRepository
	userRepo  repository.UserRepository
	ledger    LedgerService
	logger    *zap.Logger
}

func NewSwapService(txManager repository.TxManager, swapRepo repository.SwapRequestRepository,
	itemRepo repository.ItemRepository, userRepo repository.UserRepository,
	ledger LedgerService, logger *zap.Logger) SwapService {
	return &swap{txManager: txManager, swapRepo: swapRepo, itemRepo: itemRepo,
		userRepo: userRepo, ledger: ledger, logger: logger}
}

func (s *swap) Create(ctx context.Context, cmd CreateSwapCommand) (*model.SwapRequest, error) {
	item, err := s.itemRepo.GetByID(cmd.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, NewServiceError(constants.ErrCodeItemNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if item.UserID == cmd.RequesterID {
		return nil, NewServiceError(constants.ErrCodeSelfRequestForbidden, ErrSelfRequest)
	}

	if !item.Available() {
		return nil, NewServiceError(constants.ErrCodeItemUnavailable, ErrItemUnavailable)
	}

	switch cmd.Offer.Kind() {
	case OfferItem:
		return s.createItemSwap(ctx, cmd, item)
	case OfferPoints:
		return s.createRedemption(ctx, cmd, item)
	default:
		return nil, NewServiceError(constants.ErrCodeInvalidOfferSelection, ErrInvalidOfferSelection)
	}
}

// createItemSwap records a proposal. The target item stays listed and no
// points move until the receiver accepts; one pending offer must not block
// other interest in the item.
func (s *swap) createItemSwap(ctx context.Context, cmd CreateSwapCommand, item *model.Item) (*model.SwapRequest, error) {
	offered, err := s.itemRepo.GetByID(cmd.Offer.ItemID())
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, NewServiceError(constants.ErrCodeInvalidOfferSelection, ErrInvalidOfferSelection)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if offered.UserID != cmd.RequesterID || offered.Status != model.ItemStatusActive {
		return nil, NewServiceError(constants.ErrCodeInvalidOfferSelection, ErrInvalidOfferSelection)
	}

	offeredID := offered.ID
	request := &model.SwapRequest{
		RequesterID:   cmd.RequesterID,
		ReceiverID:    item.UserID,
		ItemID:        item.ID,
		OfferedItemID: &offeredID,
		Message:       cmd.Message,
		Status:        model.SwapStatusPending,
	}

	if err := s.swapRepo.Create(ctx, request); err != nil {
		s.logger.Error("error creating swap request", zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.logger.Info("swap request created",
		zap.Int64("request_id", request.ID),
		zap.Int64("requester_id", cmd.RequesterID),
		zap.Int64("item_id", item.ID),
		zap.Int64("offered_item_id", offeredID),
	)

	return request, nil
}

// createRedemption settles immediately: the seller pre-committed to the
// point price, so no receiver approval happens. Item lock, balance debit,
// ledger entry and request insert commit or roll back together.
func (s *swap) createRedemption(ctx context.Context, cmd CreateSwapCommand, item *model.Item) (*model.SwapRequest, error) {
	points := cmd.Offer.Points()
	var request *model.SwapRequest

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		locked, err := s.itemRepo.GetByIDForUpdate(ctx, item.ID)
		if err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if !locked.Available() {
			return NewServiceError(constants.ErrCodeItemUnavailable, ErrItemUnavailable)
		}

		requester, err := s.userRepo.GetByIDForUpdate(ctx, cmd.RequesterID)
		if err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if requester.PointsBalance < points {
			return NewServiceError(constants.ErrCodeInsufficientPoints,
				fmt.Errorf("%w: balance %d, need %d, short %d", ErrInsufficientPoints,
					requester.PointsBalance, points, points-requester.PointsBalance))
		}

		if err := s.itemRepo.UpdateStatus(ctx, item.ID, model.ItemStatusProcessing, model.ItemStatusActive); err != nil {
			if errors.Is(err, repository.ErrNoRowsAffected) {
				return NewServiceError(constants.ErrCodeItemUnavailable, ErrItemUnavailable)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		itemID := item.ID
		if err := s.ledger.Apply(ctx, LedgerEntry{
			UserID:      cmd.RequesterID,
			ItemID:      &itemID,
			Type:        model.TxTypeSpent,
			Points:      -points,
			Description: fmt.Sprintf("Redeemed %q with points", locked.Title),
		}); err != nil {
			return err
		}

		request = &model.SwapRequest{
			RequesterID:   cmd.RequesterID,
			ReceiverID:    item.UserID,
			ItemID:        item.ID,
			PointsOffered: &points,
			Message:       cmd.Message,
			Status:        model.SwapStatusAccepted,
		}

		if err := s.swapRepo.Create(ctx, request); err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("redemption settled",
		zap.Int64("request_id", request.ID),
		zap.Int64("requester_id", cmd.RequesterID),
		zap.Int64("item_id", item.ID),
		zap.Int64("points", points),
	)

	return request, nil
}

func (s *swap) UpdateStatus(ctx context.Context, cmd UpdateSwapStatusCommand) (*model.SwapRequest, error) {
	request, err := s.swapRepo.GetByID(cmd.RequestID)
	if err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return nil, NewServiceError(constants.ErrCodeRequestNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	switch cmd.Status {
	case model.SwapStatusAccepted:
		err = s.accept(ctx, request, cmd.ActorID)
	case model.SwapStatusRejected:
		err = s.reject(ctx, request, cmd.ActorID)
	case model.SwapStatusCompleted:
		err = s.complete(ctx, request, cmd.ActorID)
	default:
		err = NewServiceError(constants.ErrCodeInvalidStateTransition, ErrInvalidStateTransition)
	}
	if err != nil {
		return nil, err
	}

	return s.swapRepo.GetByID(cmd.RequestID)
}

// accept closes an item-for-item swap: both items become unavailable and
// both parties earn the swap bonus, all in one transaction. Items are
// locked in ID order to keep concurrent accepts deadlock-free.
func (s *swap) accept(ctx context.Context, request *model.SwapRequest, actorID int64) error {
	if request.ReceiverID != actorID {
		return NewServiceError(constants.ErrCodeForbidden, ErrNotParticipant)
	}

	if request.Status != model.SwapStatusPending || request.OfferedItemID == nil {
		return NewServiceError(constants.ErrCodeInvalidStateTransition, ErrInvalidStateTransition)
	}

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		locked, err := s.swapRepo.GetByIDForUpdate(ctx, request.ID)
		if err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if locked.Status != model.SwapStatusPending {
			return NewServiceError(constants.ErrCodeInvalidStateTransition, ErrInvalidStateTransition)
		}

		first, second := request.ItemID, *request.OfferedItemID
		if first > second {
			first, second = second, first
		}
		if _, err := s.itemRepo.GetByIDForUpdate(ctx, first); err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}
		if _, err := s.itemRepo.GetByIDForUpdate(ctx, second); err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		// Another accepted request may already have claimed either side.
		if err := s.itemRepo.UpdateStatus(ctx, request.ItemID, model.ItemStatusSwapped, model.ItemStatusActive); err != nil {
			if errors.Is(err, repository.ErrNoRowsAffected) {
				return NewServiceError(constants.ErrCodeItemUnavailable, ErrItemUnavailable)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if err := s.itemRepo.UpdateStatus(ctx, *request.OfferedItemID, model.ItemStatusSwapped, model.ItemStatusActive); err != nil {
			if errors.Is(err, repository.ErrNoRowsAffected) {
				return NewServiceError(constants.ErrCodeItemUnavailable, ErrItemUnavailable)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if err := s.swapRepo.UpdateStatus(ctx, request.ID, model.SwapStatusAccepted, nil, model.SwapStatusPending); err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		itemID := request.ItemID
		for _, userID := range []int64{request.RequesterID, request.ReceiverID} {
			if err := s.ledger.Apply(ctx, LedgerEntry{
				UserID:      userID,
				ItemID:      &itemID,
				Type:        model.TxTypeEarned,
				Points:      constants.SwapBonusPoints,
				Description: "Successful swap completed",
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("swap request accepted",
		zap.Int64("request_id", request.ID),
		zap.Int64("receiver_id", actorID),
	)

	return nil
}

// reject leaves both items untouched; nothing was ever locked for a pending
// item offer.
func (s *swap) reject(ctx context.Context, request *model.SwapRequest, actorID int64) error {
	if request.ReceiverID != actorID {
		return NewServiceError(constants.ErrCodeForbidden, ErrNotParticipant)
	}

	if request.Status != model.SwapStatusPending {
		return NewServiceError(constants.ErrCodeInvalidStateTransition, ErrInvalidStateTransition)
	}

	if err := s.swapRepo.UpdateStatus(ctx, request.ID, model.SwapStatusRejected, nil, model.SwapStatusPending); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return NewServiceError(constants.ErrCodeInvalidStateTransition, ErrInvalidStateTransition)
		}
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.logger.Info("swap request rejected",
		zap.Int64("request_id", request.ID),
		zap.Int64("receiver_id", actorID),
	)

	return nil
}

// complete marks an accepted exchange as done. Either party may do it. For a
// redemption this also retires the item from its processing hold; the ledger
// is untouched, payment or bonus already happened.
func (s *swap) complete(ctx context.Context, request *model.SwapRequest, actorID int64) error {
	if request.RequesterID != actorID && request.ReceiverID != actorID {
		return NewServiceError(constants.ErrCodeForbidden, ErrNotParticipant)
	}

	if request.Status != model.SwapStatusAccepted {
		return NewServiceError(constants.ErrCodeInvalidStateTransition, ErrInvalidStateTransition)
	}

	return s.txManager.WithTx(ctx, func(ctx context.Context) error {
		locked, err := s.swapRepo.GetByIDForUpdate(ctx, request.ID)
		if err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if locked.Status != model.SwapStatusAccepted {
			return NewServiceError(constants.ErrCodeInvalidStateTransition, ErrInvalidStateTransition)
		}

		now := time.Now()
		if err := s.swapRepo.UpdateStatus(ctx, request.ID, model.SwapStatusCompleted, &now, model.SwapStatusAccepted); err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if locked.IsRedemption() {
			err := s.itemRepo.UpdateStatus(ctx, request.ItemID, model.ItemStatusSwapped, model.ItemStatusProcessing)
			if err != nil && !errors.Is(err, repository.ErrNoRowsAffected) {
				return NewServiceError(constants.ErrCodeOperationFailed, err)
			}
			if errors.Is(err, repository.ErrNoRowsAffected) {
				// Item left processing some other way (admin removal).
				s.logger.Warn("completed redemption found item outside processing",
					zap.Int64("request_id", request.ID),
					zap.Int64("item_id", request.ItemID),
				)
			}
		}

		return nil
	})
}

// Cancel is requester-initiated. A settled redemption is compensated: exact
// refund, refund ledger entry, item back to active, then the request row is
// deleted, all in one transaction so the delete can never outrun the
// compensation. A pending item offer just disappears.
func (s *swap) Cancel(ctx context.Context, cmd CancelSwapCommand) error {
	request, err := s.swapRepo.GetByID(cmd.RequestID)
	if err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return NewServiceError(constants.ErrCodeRequestNotFound, err)
		}
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if request.RequesterID != cmd.ActorID {
		return NewServiceError(constants.ErrCodeForbidden, ErrNotParticipant)
	}

	if err := cancellable(request); err != nil {
		return err
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		locked, err := s.swapRepo.GetByIDForUpdate(ctx, request.ID)
		if err != nil {
			if errors.Is(err, repository.ErrSwapRequestNotFound) {
				return NewServiceError(constants.ErrCodeRequestNotFound, err)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if err := cancellable(locked); err != nil {
			return err
		}

		if locked.IsRedemption() {
			item, err := s.itemRepo.GetByIDForUpdate(ctx, locked.ItemID)
			if err != nil {
				return NewServiceError(constants.ErrCodeOperationFailed, err)
			}

			err = s.itemRepo.UpdateStatus(ctx, locked.ItemID, model.ItemStatusActive, model.ItemStatusProcessing)
			if err != nil && !errors.Is(err, repository.ErrNoRowsAffected) {
				return NewServiceError(constants.ErrCodeOperationFailed, err)
			}
			if errors.Is(err, repository.ErrNoRowsAffected) {
				s.logger.Warn("cancelled redemption found item outside processing",
					zap.Int64("request_id", locked.ID),
					zap.Int64("item_id", locked.ItemID),
					zap.String("item_status", string(item.Status)),
				)
			}

			itemID := locked.ItemID
			if err := s.ledger.Apply(ctx, LedgerEntry{
				UserID:      locked.RequesterID,
				ItemID:      &itemID,
				Type:        model.TxTypeRefund,
				Points:      *locked.PointsOffered,
				Description: fmt.Sprintf("Refund for cancelled redemption of %q", item.Title),
			}); err != nil {
				return err
			}
		}

		if err := s.swapRepo.Delete(ctx, locked.ID); err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("swap request cancelled",
		zap.Int64("request_id", request.ID),
		zap.Int64("requester_id", cmd.ActorID),
		zap.Bool("redemption", request.IsRedemption()),
	)

	return nil
}

// cancellable allows pending item offers and accepted (auto-settled)
// redemptions. An accepted item-for-item swap already moved both items to
// swapped and has no defined compensation, so it cannot be cancelled.
func cancellable(request *model.SwapRequest) error {
	switch request.Status {
	case model.SwapStatusPending:
		return nil
	case model.SwapStatusAccepted:
		if !request.IsRedemption() {
			return NewServiceError(constants.ErrCodeInvalidStateTransition, ErrInvalidStateTransition)
		}
		return nil
	default:
		return NewServiceError(constants.ErrCodeInvalidStateTransition, ErrInvalidStateTransition)
	}
}

func (s *swap) ListForUser(userID int64) (SwapInbox, error) {
	outgoing, err := s.swapRepo.ListByRequester(userID)
	if err != nil {
		return SwapInbox{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	incoming, err := s.swapRepo.ListByReceiver(userID)
	if err != nil {
		return SwapInbox{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return SwapInbox{Incoming: incoming, Outgoing: outgoing}, nil
}
