package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/rewear/exchange/internal/model"
)

var ErrFavoriteDuplicate = errors.New("FAVORITE_DUPLICATE")
var ErrFavoriteNotFound = errors.New("FAVORITE_NOT_FOUND")

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *model.Favorite) error
	Delete(ctx context.Context, userID, itemID int64) error
	Exists(userID, itemID int64) (bool, error)
	ListItemsByUser(userID int64) ([]model.Item, error)
}

type Favorite struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &Favorite{db: db}
}

func (f *Favorite) Create(ctx context.Context, favorite *model.Favorite) error {
	db := GetTx(ctx, f.db)
	err := db.Create(favorite).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrFavoriteDuplicate
	}

	return err
}

func (f *Favorite) Delete(ctx context.Context, userID, itemID int64) error {
	db := GetTx(ctx, f.db)

	result := db.Where("user_id = ? AND item_id = ?", userID, itemID).Delete(&model.Favorite{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

func (f *Favorite) Exists(userID, itemID int64) (bool, error) {
	var count int64
	err := f.db.Model(&model.Favorite{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&count).Error
	return count > 0, err
}

// ListItemsByUser returns the user's favorited items that are still active,
// newest favorite first, with owner and category loaded.
func (f *Favorite) ListItemsByUser(userID int64) ([]model.Item, error) {
	var items []model.Item

	err := f.db.Model(&model.Item{}).
		Joins("JOIN favorites ON favorites.item_id = items.id").
		Where("favorites.user_id = ? AND items.status = ?", userID, model.ItemStatusActive).
		Preload("User").
		Preload("Category").
		Order("favorites.created_at DESC").
		Find(&items).Error

	return items, err
}
