package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
)

func TestFavoriteRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create, check and delete", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewFavoriteRepository(db)
		user := seedUser(t, db, "maria", 0)
		owner := seedUser(t, db, "joao", 0)
		category := seedCategory(t, db, "Tops")
		item := seedItem(t, db, owner, category, "Linen shirt", model.ItemStatusActive, true)

		require.NoError(t, repo.Create(ctx, &model.Favorite{UserID: user.ID, ItemID: item.ID}))

		exists, err := repo.Exists(user.ID, item.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, repo.Delete(ctx, user.ID, item.ID))

		exists, err = repo.Exists(user.ID, item.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		assert.ErrorIs(t, repo.Delete(ctx, user.ID, item.ID), repository.ErrFavoriteNotFound)
	})

	t.Run("listing skips items no longer active", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewFavoriteRepository(db)
		user := seedUser(t, db, "maria", 0)
		owner := seedUser(t, db, "joao", 0)
		category := seedCategory(t, db, "Tops")
		active := seedItem(t, db, owner, category, "Linen shirt", model.ItemStatusActive, true)
		swapped := seedItem(t, db, owner, category, "Wool scarf", model.ItemStatusSwapped, true)

		require.NoError(t, repo.Create(ctx, &model.Favorite{UserID: user.ID, ItemID: active.ID}))
		require.NoError(t, repo.Create(ctx, &model.Favorite{UserID: user.ID, ItemID: swapped.ID}))

		items, err := repo.ListItemsByUser(user.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Linen shirt", items[0].Title)
		require.NotNil(t, items[0].User)
		assert.Equal(t, "joao", items[0].User.Username)
	})
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and list", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewCategoryRepository(db)

		require.NoError(t, repo.Create(ctx, &model.Category{Name: "Tops"}))
		require.NoError(t, repo.Create(ctx, &model.Category{Name: "Shoes"}))

		categories, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, categories, 2)
	})

	t.Run("missing category maps to sentinel", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewCategoryRepository(db)

		_, err := repo.GetByID(42)
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	})
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("list returns only the user's entries", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewTransactionRepository(db)
		user := seedUser(t, db, "maria", 0)
		other := seedUser(t, db, "joao", 0)

		require.NoError(t, repo.Create(ctx, &model.Transaction{
			UserID: user.ID, Type: model.TxTypeBonus, Points: 100, Description: "Welcome bonus",
		}))
		require.NoError(t, repo.Create(ctx, &model.Transaction{
			UserID: user.ID, Type: model.TxTypeSpent, Points: -40, Description: "Redeemed",
		}))
		require.NoError(t, repo.Create(ctx, &model.Transaction{
			UserID: other.ID, Type: model.TxTypeBonus, Points: 100, Description: "Welcome bonus",
		}))

		transactions, err := repo.ListByUser(user.ID)
		require.NoError(t, err)
		require.Len(t, transactions, 2)

		var sum int64
		for _, tx := range transactions {
			sum += tx.Points
		}
		assert.Equal(t, int64(60), sum)
	})
}
