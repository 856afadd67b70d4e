package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rewear/exchange/internal/model"
)

var ErrItemNotFound = errors.New("ITEM_NOT_FOUND")

// ItemFilter narrows List. Zero values mean "no constraint".
type ItemFilter struct {
	Category      string
	Search        string
	UserID        int64
	ExcludeUserID int64
	Status        model.ItemStatus
	ApprovedOnly  bool
}

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	GetByID(id int64) (*model.Item, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Item, error)
	List(filter ItemFilter) ([]model.Item, error)
	UpdateStatus(ctx context.Context, id int64, to model.ItemStatus, from ...model.ItemStatus) error
	SetApproval(ctx context.Context, id int64, approved bool) error
	IncrementViews(ctx context.Context, id int64) error
	Count() (int64, error)
	CountByUserID(userID int64) (int64, error)
}

type Item struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &Item{db: db}
}

func (i *Item) Create(ctx context.Context, item *model.Item) error {
	db := GetTx(ctx, i.db)
	return db.Create(item).Error
}

func (i *Item) GetByID(id int64) (*model.Item, error) {
	var item model.Item

	err := i.db.Preload("User").Preload("Category").Where("id = ?", id).First(&item).Error
	if err == nil {
		return &item, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}

	return nil, err
}

// GetByIDForUpdate locks the item row for the remainder of the surrounding
// transaction. Associations are not loaded under the lock.
func (i *Item) GetByIDForUpdate(ctx context.Context, id int64) (*model.Item, error) {
	db := GetTx(ctx, i.db)

	var item model.Item
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&item).Error
	if err == nil {
		return &item, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}

	return nil, err
}

func (i *Item) List(filter ItemFilter) ([]model.Item, error) {
	query := i.db.Model(&model.Item{}).Preload("User").Preload("Category")

	if filter.Category != "" {
		query = query.Joins("JOIN categories ON categories.id = items.category_id").
			Where("categories.name = ?", filter.Category)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("items.title LIKE ? OR items.description LIKE ?", pattern, pattern)
	}

	if filter.UserID != 0 {
		query = query.Where("items.user_id = ?", filter.UserID)
	}

	if filter.ExcludeUserID != 0 {
		query = query.Where("items.user_id <> ?", filter.ExcludeUserID)
	}

	if filter.Status != "" {
		query = query.Where("items.status = ?", filter.Status)
	}

	if filter.ApprovedOnly {
		query = query.Where("items.is_approved = ?", true)
	}

	var items []model.Item
	err := query.Order("items.created_at DESC").Find(&items).Error
	return items, err
}

// UpdateStatus moves the item to a new status only when its current status
// is one of from. ErrNoRowsAffected means the item was not in an expected
// state, which callers treat as a lost race or an invalid transition.
func (i *Item) UpdateStatus(ctx context.Context, id int64, to model.ItemStatus, from ...model.ItemStatus) error {
	db := GetTx(ctx, i.db)

	query := db.Model(&model.Item{}).Where("id = ?", id)
	if len(from) > 0 {
		query = query.Where("status IN ?", from)
	}

	result := query.Update("status", to)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (i *Item) SetApproval(ctx context.Context, id int64, approved bool) error {
	db := GetTx(ctx, i.db)

	result := db.Model(&model.Item{}).Where("id = ?", id).Update("is_approved", approved)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (i *Item) IncrementViews(ctx context.Context, id int64) error {
	db := GetTx(ctx, i.db)
	return db.Model(&model.Item{}).Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}

func (i *Item) Count() (int64, error) {
	var count int64
	err := i.db.Model(&model.Item{}).Count(&count).Error
	return count, err
}

func (i *Item) CountByUserID(userID int64) (int64, error) {
	var count int64
	err := i.db.Model(&model.Item{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
