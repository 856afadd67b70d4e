package model

type Category struct {
	ID          int64   `gorm:"primaryKey;autoIncrement;<-:create" json:"id"`
	Name        string  `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:varchar(255)" json:"description,omitempty"`
}

func (Category) TableName() string { return "categories" }
