package repository_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rewear/exchange/internal/model"
)

// Repository tests run against in-memory sqlite. Row locking is exercised
// only under mysql; these tests stay on the plain read/write paths.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test; shared cache keeps it alive
	// across the pool's connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Item{},
		&model.SwapRequest{},
		&model.Transaction{},
		&model.Favorite{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, balance int64) *model.User {
	t.Helper()

	user := &model.User{
		Username:      username,
		Email:         username + "@example.com",
		Password:      "x",
		FirstName:     "Test",
		LastName:      "User",
		PointsBalance: balance,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()

	category := &model.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedItem(t *testing.T, db *gorm.DB, owner *model.User, category *model.Category,
	title string, status model.ItemStatus, approved bool) *model.Item {
	t.Helper()

	item := &model.Item{
		UserID:      owner.ID,
		CategoryID:  category.ID,
		Title:       title,
		Description: "description of " + title,
		Size:        "M",
		Condition:   "good",
		PointValue:  100,
		Status:      status,
		IsApproved:  approved,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}
