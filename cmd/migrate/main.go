package main

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rewear/exchange/internal/config"
	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
	"github.com/rewear/exchange/pkg/mysql"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	db, err := mysql.NewConnection(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	if err := migrate(db); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	if err := seedCategories(ctx, db, logger); err != nil {
		logger.Fatal("seed categories", zap.Error(err))
	}

	logger.Info("migration complete")
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Item{},
		&model.SwapRequest{},
		&model.Transaction{},
		&model.Favorite{},
	)
}

func seedCategories(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	categoryRepo := repository.NewCategoryRepository(db)

	defaults := []model.Category{
		{Name: "Tops", Description: ptr("Shirts, blouses, sweaters, t-shirts")},
		{Name: "Bottoms", Description: ptr("Pants, jeans, skirts, shorts")},
		{Name: "Dresses", Description: ptr("Casual and formal dresses")},
		{Name: "Outerwear", Description: ptr("Jackets, coats, blazers")},
		{Name: "Shoes", Description: ptr("Sneakers, boots, heels, flats")},
		{Name: "Accessories", Description: ptr("Bags, jewelry, scarves, belts")},
	}

	for i := range defaults {
		err := categoryRepo.Create(ctx, &defaults[i])
		if errors.Is(err, repository.ErrCategoryDuplicate) {
			continue
		}
		if err != nil {
			return err
		}
		logger.Info("category seeded", zap.String("name", defaults[i].Name))
	}

	return nil
}

func ptr(s string) *string { return &s }
