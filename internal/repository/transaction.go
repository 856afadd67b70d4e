package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rewear/exchange/internal/model"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	ListByUser(userID int64) ([]model.Transaction, error)
}

type Transaction struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &Transaction{db: db}
}

func (t *Transaction) Create(ctx context.Context, tx *model.Transaction) error {
	db := GetTx(ctx, t.db)
	return db.Create(tx).Error
}

func (t *Transaction) ListByUser(userID int64) ([]model.Transaction, error) {
	var transactions []model.Transaction

	err := t.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactions).Error

	return transactions, err
}
