package model

import "time"

type ItemStatus string

const (
	ItemStatusActive     ItemStatus = "active"
	ItemStatusProcessing ItemStatus = "processing"
	ItemStatusSwapped    ItemStatus = "swapped"
	ItemStatusRemoved    ItemStatus = "removed"
)

// Terminal reports whether no further status transition is permitted.
func (s ItemStatus) Terminal() bool {
	return s == ItemStatusSwapped || s == ItemStatusRemoved
}

type Item struct {
	ID          int64      `gorm:"primaryKey;autoIncrement;<-:create" json:"id"`
	UserID      int64      `gorm:"not null;index" json:"user_id"`
	CategoryID  int64      `gorm:"not null;index" json:"category_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Size        string     `gorm:"type:varchar(32);not null" json:"size"`
	Condition   string     `gorm:"type:varchar(32);not null" json:"condition"`
	PointValue  int64      `gorm:"not null" json:"point_value"`
	Tags        string     `gorm:"type:text" json:"tags"`
	Images      string     `gorm:"type:mediumtext" json:"images"`
	Status      ItemStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	IsApproved  bool       `gorm:"not null;default:false" json:"is_approved"`
	Views       int64      `gorm:"not null;default:0" json:"views"`
	CreatedAt   time.Time  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Item) TableName() string { return "items" }

// Available reports whether the item can be the target of a new swap request.
func (i *Item) Available() bool {
	return i.Status == ItemStatusActive && i.IsApproved
}
