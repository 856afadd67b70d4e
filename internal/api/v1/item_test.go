package v1_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	v1 "github.com/rewear/exchange/internal/api/v1"
	"github.com/rewear/exchange/internal/mocks"
	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
)

func newItemApp(itemService *mocks.ItemService) *fiber.App {
	handler := v1.NewHandler(zap.NewNop(), nil, itemService, nil, nil, nil, nil, nil, nil)

	app := fiber.New()
	app.Get("/api/v1/items", handler.ListItems)
	return app
}

func TestListItems_Filters(t *testing.T) {
	t.Run("forwards query params including exclude_user_id", func(t *testing.T) {
		itemService := new(mocks.ItemService)
		app := newItemApp(itemService)

		itemService.On("List", mock.MatchedBy(func(f repository.ItemFilter) bool {
			return f.Category == "Tops" &&
				f.Search == "denim" &&
				f.ExcludeUserID == 7 &&
				f.Status == model.ItemStatusActive &&
				f.ApprovedOnly
		})).Return([]model.Item{}, nil)

		req := httptest.NewRequest(fiber.MethodGet,
			"/api/v1/items?category=Tops&search=denim&exclude_user_id=7", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		itemService.AssertExpectations(t)
	})

	t.Run("browse always pins active and approved", func(t *testing.T) {
		itemService := new(mocks.ItemService)
		app := newItemApp(itemService)

		itemService.On("List", mock.MatchedBy(func(f repository.ItemFilter) bool {
			return f.ExcludeUserID == 0 &&
				f.UserID == 0 &&
				f.Status == model.ItemStatusActive &&
				f.ApprovedOnly
		})).Return([]model.Item{}, nil)

		req := httptest.NewRequest(fiber.MethodGet, "/api/v1/items", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		itemService.AssertExpectations(t)
	})
}
