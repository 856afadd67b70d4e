package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
)

func TestSwapRequestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("guarded transition writes status and completion time", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewSwapRequestRepository(db)
		requester := seedUser(t, db, "maria", 0)
		receiver := seedUser(t, db, "joao", 0)
		category := seedCategory(t, db, "Tops")
		item := seedItem(t, db, receiver, category, "Linen shirt", model.ItemStatusProcessing, true)

		points := int64(100)
		request := &model.SwapRequest{
			RequesterID:   requester.ID,
			ReceiverID:    receiver.ID,
			ItemID:        item.ID,
			PointsOffered: &points,
			Status:        model.SwapStatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, request))

		now := time.Now()
		require.NoError(t, repo.UpdateStatus(ctx, request.ID, model.SwapStatusCompleted, &now, model.SwapStatusAccepted))

		found, err := repo.GetByID(request.ID)
		require.NoError(t, err)
		assert.Equal(t, model.SwapStatusCompleted, found.Status)
		assert.NotNil(t, found.CompletedAt)
	})

	t.Run("terminal request refuses further transitions", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewSwapRequestRepository(db)
		requester := seedUser(t, db, "maria", 0)
		receiver := seedUser(t, db, "joao", 0)
		category := seedCategory(t, db, "Tops")
		item := seedItem(t, db, receiver, category, "Linen shirt", model.ItemStatusActive, true)

		offered := seedItem(t, db, requester, category, "Wool scarf", model.ItemStatusActive, true)
		request := &model.SwapRequest{
			RequesterID:   requester.ID,
			ReceiverID:    receiver.ID,
			ItemID:        item.ID,
			OfferedItemID: &offered.ID,
			Status:        model.SwapStatusRejected,
		}
		require.NoError(t, repo.Create(ctx, request))

		err := repo.UpdateStatus(ctx, request.ID, model.SwapStatusAccepted, nil, model.SwapStatusPending)
		assert.ErrorIs(t, err, repository.ErrNoRowsAffected)

		found, err := repo.GetByID(request.ID)
		require.NoError(t, err)
		assert.Equal(t, model.SwapStatusRejected, found.Status)
	})
}

func TestSwapRequestRepository_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("inbox queries load the enriched associations", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewSwapRequestRepository(db)
		requester := seedUser(t, db, "maria", 0)
		receiver := seedUser(t, db, "joao", 0)
		category := seedCategory(t, db, "Tops")
		item := seedItem(t, db, receiver, category, "Linen shirt", model.ItemStatusActive, true)
		offered := seedItem(t, db, requester, category, "Wool scarf", model.ItemStatusActive, true)

		request := &model.SwapRequest{
			RequesterID:   requester.ID,
			ReceiverID:    receiver.ID,
			ItemID:        item.ID,
			OfferedItemID: &offered.ID,
			Status:        model.SwapStatusPending,
		}
		require.NoError(t, repo.Create(ctx, request))

		outgoing, err := repo.ListByRequester(requester.ID)
		require.NoError(t, err)
		require.Len(t, outgoing, 1)
		require.NotNil(t, outgoing[0].Item)
		assert.Equal(t, "Linen shirt", outgoing[0].Item.Title)
		require.NotNil(t, outgoing[0].Item.User)
		assert.Equal(t, "joao", outgoing[0].Item.User.Username)
		require.NotNil(t, outgoing[0].OfferedItem)
		assert.Equal(t, "Wool scarf", outgoing[0].OfferedItem.Title)

		incoming, err := repo.ListByReceiver(receiver.ID)
		require.NoError(t, err)
		require.Len(t, incoming, 1)
		require.NotNil(t, incoming[0].Requester)
		assert.Equal(t, "maria", incoming[0].Requester.Username)

		noOutgoing, noOutgoingErr := repo.ListByRequester(receiver.ID)
		assert.Empty(t, mustList(t, noOutgoing, noOutgoingErr))
		noIncoming, noIncomingErr := repo.ListByReceiver(requester.ID)
		assert.Empty(t, mustList(t, noIncoming, noIncomingErr))
	})
}

func mustList(t *testing.T, requests []model.SwapRequest, err error) []model.SwapRequest {
	t.Helper()
	require.NoError(t, err)
	return requests
}

func TestSwapRequestRepository_Counts(t *testing.T) {
	ctx := context.Background()

	t.Run("settled count covers accepted and completed only", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewSwapRequestRepository(db)
		requester := seedUser(t, db, "maria", 0)
		receiver := seedUser(t, db, "joao", 0)
		category := seedCategory(t, db, "Tops")

		points := int64(100)
		for _, status := range []model.SwapStatus{
			model.SwapStatusPending,
			model.SwapStatusAccepted,
			model.SwapStatusCompleted,
			model.SwapStatusRejected,
		} {
			item := seedItem(t, db, receiver, category, "Item "+string(status), model.ItemStatusActive, true)
			require.NoError(t, repo.Create(ctx, &model.SwapRequest{
				RequesterID:   requester.ID,
				ReceiverID:    receiver.ID,
				ItemID:        item.ID,
				PointsOffered: &points,
				Status:        status,
			}))
		}

		settled, err := repo.CountSettledByRequester(requester.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), settled)

		completed, err := repo.CountCompleted()
		require.NoError(t, err)
		assert.Equal(t, int64(1), completed)
	})
}

func TestSwapRequestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("delete removes the row for good", func(t *testing.T) {
		db := setupDB(t)
		repo := repository.NewSwapRequestRepository(db)
		requester := seedUser(t, db, "maria", 0)
		receiver := seedUser(t, db, "joao", 0)
		category := seedCategory(t, db, "Tops")
		item := seedItem(t, db, receiver, category, "Linen shirt", model.ItemStatusActive, true)

		points := int64(100)
		request := &model.SwapRequest{
			RequesterID:   requester.ID,
			ReceiverID:    receiver.ID,
			ItemID:        item.ID,
			PointsOffered: &points,
			Status:        model.SwapStatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, request))

		require.NoError(t, repo.Delete(ctx, request.ID))

		_, err := repo.GetByID(request.ID)
		assert.ErrorIs(t, err, repository.ErrSwapRequestNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, request.ID), repository.ErrSwapRequestNotFound)
	})
}
