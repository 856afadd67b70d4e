package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
)

func TestUserRepository_AdjustBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("applies signed deltas", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewUserRepository(db)
		user := seedUser(t, db, "maria", 100)

		require.NoError(t, repo.AdjustBalance(ctx, user.ID, 50))
		require.NoError(t, repo.AdjustBalance(ctx, user.ID, -120))

		found, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(30), found.PointsBalance)
	})

	t.Run("refuses a delta that would go negative", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewUserRepository(db)
		user := seedUser(t, db, "maria", 100)

		err := repo.AdjustBalance(ctx, user.ID, -101)
		assert.ErrorIs(t, err, repository.ErrNoRowsAffected)

		found, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), found.PointsBalance)
	})

	t.Run("debit to exactly zero is allowed", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewUserRepository(db)
		user := seedUser(t, db, "maria", 100)

		require.NoError(t, repo.AdjustBalance(ctx, user.ID, -100))

		found, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), found.PointsBalance)
	})

	t.Run("unknown user reports no rows", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewUserRepository(db)

		err := repo.AdjustBalance(ctx, 999, 10)
		assert.ErrorIs(t, err, repository.ErrNoRowsAffected)
	})
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("writes profile columns only", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewUserRepository(db)
		user := seedUser(t, db, "maria", 100)

		bio := "slow fashion"
		user.FirstName = "Mara"
		user.Bio = &bio
		user.PointsBalance = 9999 // must not persist through this path

		require.NoError(t, repo.UpdateProfile(ctx, user))

		found, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mara", found.FirstName)
		require.NotNil(t, found.Bio)
		assert.Equal(t, "slow fashion", *found.Bio)
		assert.Equal(t, int64(100), found.PointsBalance)
	})
}

func TestUserRepository_Get(t *testing.T) {
	t.Run("missing user maps to sentinel", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewUserRepository(db)

		_, err := repo.GetByID(42)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)

		_, err = repo.GetByUsername("nobody")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestTransactionManager_WithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("rolls back everything when the callback fails", func(t *testing.T) {
		db := setupDB(t)
		userRepo := repository.NewUserRepository(db)
		txRepo := repository.NewTransactionRepository(db)
		txManager := repository.NewTransactionManager(db)
		user := seedUser(t, db, "maria", 100)

		err := txManager.WithTx(ctx, func(ctx context.Context) error {
			if err := userRepo.AdjustBalance(ctx, user.ID, -60); err != nil {
				return err
			}
			if err := txRepo.Create(ctx, &model.Transaction{
				UserID: user.ID, Type: model.TxTypeSpent, Points: -60, Description: "doomed",
			}); err != nil {
				return err
			}
			return assert.AnError
		})
		require.Error(t, err)

		found, err := userRepo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), found.PointsBalance)

		transactions, err := txRepo.ListByUser(user.ID)
		require.NoError(t, err)
		assert.Empty(t, transactions)
	})

	t.Run("commits balance and ledger row together", func(t *testing.T) {
		db := setupDB(t)
		userRepo := repository.NewUserRepository(db)
		txRepo := repository.NewTransactionRepository(db)
		txManager := repository.NewTransactionManager(db)
		user := seedUser(t, db, "maria", 100)

		err := txManager.WithTx(ctx, func(ctx context.Context) error {
			if err := userRepo.AdjustBalance(ctx, user.ID, -60); err != nil {
				return err
			}
			return txRepo.Create(ctx, &model.Transaction{
				UserID: user.ID, Type: model.TxTypeSpent, Points: -60, Description: "redeemed",
			})
		})
		require.NoError(t, err)

		found, err := userRepo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(40), found.PointsBalance)

		transactions, err := txRepo.ListByUser(user.ID)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, int64(-60), transactions[0].Points)
	})
}
