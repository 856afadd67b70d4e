package model

import "time"

type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;<-:create" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_fav_user_item,unique" json:"user_id"`
	ItemID    int64     `gorm:"not null;index:idx_fav_user_item,unique" json:"item_id"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Favorite) TableName() string { return "favorites" }
