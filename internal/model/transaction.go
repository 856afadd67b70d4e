package model

import "time"

type TxType string

const (
	TxTypeEarned TxType = "earned"
	TxTypeSpent  TxType = "spent"
	TxTypeBonus  TxType = "bonus"
	TxTypeRefund TxType = "refund"
)

// Transaction is the append-only points ledger. Rows are never updated or
// deleted; Points is signed and equals the balance delta it documents.
type Transaction struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;<-:create" json:"id"`
	UserID      int64     `gorm:"not null;index;<-:create" json:"user_id"`
	ItemID      *int64    `gorm:"<-:create" json:"item_id,omitempty"`
	Type        TxType    `gorm:"type:varchar(20);not null;<-:create" json:"type"`
	Points      int64     `gorm:"not null;<-:create" json:"points"`
	Description string    `gorm:"type:varchar(255);not null;<-:create" json:"description"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;<-:create" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }
