package model

import "time"

type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCompleted SwapStatus = "completed"
)

// Terminal reports whether the request can no longer change status.
func (s SwapStatus) Terminal() bool {
	return s == SwapStatusRejected || s == SwapStatusCompleted
}

// SwapRequest carries exactly one of OfferedItemID or PointsOffered. The
// invariant is enforced at creation by service.NewOffer; rows never hold
// both or neither.
type SwapRequest struct {
	ID            int64      `gorm:"primaryKey;autoIncrement;<-:create" json:"id"`
	RequesterID   int64      `gorm:"not null;index" json:"requester_id"`
	ReceiverID    int64      `gorm:"not null;index" json:"receiver_id"`
	ItemID        int64      `gorm:"not null;index" json:"item_id"`
	OfferedItemID *int64     `json:"offered_item_id,omitempty"`
	PointsOffered *int64     `json:"points_offered,omitempty"`
	Message       *string    `gorm:"type:text" json:"message,omitempty"`
	Status        SwapStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt     time.Time  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`
	CompletedAt   *time.Time `gorm:"type:timestamp;null" json:"completed_at,omitempty"`

	Requester   *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Item        *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	OfferedItem *Item `gorm:"foreignKey:OfferedItemID" json:"offered_item,omitempty"`
}

func (SwapRequest) TableName() string { return "swap_requests" }

// IsRedemption reports whether the request pays the item's point price
// instead of offering an item in exchange.
func (r *SwapRequest) IsRedemption() bool { return r.PointsOffered != nil }
