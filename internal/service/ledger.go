package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rewear/exchange/internal/constants"
	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
)

// LedgerEntry is one balance-changing event. Points is signed and is both
// the delta applied to the user's balance and the value written to the
// transaction log, so the two can never disagree.
type LedgerEntry struct {
	UserID      int64
	ItemID      *int64
	Type        model.TxType
	Points      int64
	Description string
}

// LedgerService is the only mutator of points balances. Apply must run
// inside a TxManager.WithTx context; it is a trusted low-level primitive,
// not a validator — callers pre-check balances under row locks.
type LedgerService interface {
	Apply(ctx context.Context, entry LedgerEntry) error
}

type ledger struct {
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	logger          *zap.Logger
}

func NewLedgerService(userRepo repository.UserRepository, transactionRepo repository.TransactionRepository,
	logger *zap.Logger) LedgerService {
	return &ledger{userRepo: userRepo, transactionRepo: transactionRepo, logger: logger}
}

func (l *ledger) Apply(ctx context.Context, entry LedgerEntry) error {
	if err := l.userRepo.AdjustBalance(ctx, entry.UserID, entry.Points); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			// The guard fired outside the validated path: either the user row
			// vanished or the balance would have gone negative past the
			// caller's pre-check. The transaction rolls back; nothing is
			// partially applied.
			l.logger.Error("ledger invariant violation: balance adjustment refused",
				zap.Int64("user_id", entry.UserID),
				zap.Int64("points", entry.Points),
				zap.String("type", string(entry.Type)),
			)
			return NewServiceError(constants.ErrCodeInvariantViolation, err)
		}

		l.logger.Error("error adjusting user balance", zap.Error(err))
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	transaction := model.Transaction{
		UserID:      entry.UserID,
		ItemID:      entry.ItemID,
		Type:        entry.Type,
		Points:      entry.Points,
		Description: entry.Description,
	}

	if err := l.transactionRepo.Create(ctx, &transaction); err != nil {
		l.logger.Error("error recording ledger transaction", zap.Error(err))
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return nil
}
