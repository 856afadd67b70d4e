package model

import "time"

type User struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;<-:create" json:"id"`
	Username      string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName     string    `gorm:"type:varchar(64);not null" json:"first_name"`
	LastName      string    `gorm:"type:varchar(64);not null" json:"last_name"`
	Bio           *string   `gorm:"type:text" json:"bio,omitempty"`
	ProfileImage  *string   `gorm:"type:text" json:"profile_image,omitempty"`
	PointsBalance int64     `gorm:"not null;default:0" json:"points_balance"`
	IsAdmin       bool      `gorm:"not null;default:false" json:"is_admin"`
	Rating        int       `gorm:"not null;default:0" json:"rating"`
	CreatedAt     time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (User) TableName() string { return "users" }
