package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rewear/exchange/internal/model"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")
var ErrUserDuplicate = errors.New("USER_DUPLICATE")

// ErrNoRowsAffected is returned by guarded updates whose WHERE condition did
// not match: a balance adjustment that would go negative, or a status
// transition from a state the caller did not expect.
var ErrNoRowsAffected = errors.New("NO_ROWS_AFFECTED")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(id int64) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, user *model.User) error
	AdjustBalance(ctx context.Context, userID int64, delta int64) error
	Count() (int64, error)
}

type User struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &User{db: db}
}

func (u *User) Create(ctx context.Context, user *model.User) error {
	db := GetTx(ctx, u.db)
	err := db.Create(user).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrUserDuplicate
	}

	return err
}

func (u *User) GetByID(id int64) (*model.User, error) {
	var user model.User

	err := u.db.Where("id = ?", id).First(&user).Error
	if err == nil {
		return &user, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}

func (u *User) GetByUsername(username string) (*model.User, error) {
	var user model.User

	err := u.db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return &user, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}

// GetByIDForUpdate locks the user row for the remainder of the surrounding
// transaction. Must be called through TxManager.WithTx.
func (u *User) GetByIDForUpdate(ctx context.Context, id int64) (*model.User, error) {
	db := GetTx(ctx, u.db)

	var user model.User
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&user).Error
	if err == nil {
		return &user, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}

func (u *User) UpdateProfile(ctx context.Context, user *model.User) error {
	db := GetTx(ctx, u.db)
	return db.Model(user).Where("id = ?", user.ID).
		Select("first_name", "last_name", "bio", "profile_image").
		Updates(user).Error
}

// AdjustBalance applies a signed delta. The WHERE guard refuses to take the
// balance below zero; ErrNoRowsAffected means the guard fired.
func (u *User) AdjustBalance(ctx context.Context, userID int64, delta int64) error {
	db := GetTx(ctx, u.db)

	result := db.Model(&model.User{}).
		Where("id = ? AND points_balance + ? >= 0", userID, delta).
		Update("points_balance", gorm.Expr("points_balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (u *User) Count() (int64, error) {
	var count int64
	err := u.db.Model(&model.User{}).Count(&count).Error
	return count, err
}
