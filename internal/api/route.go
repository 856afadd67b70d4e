package api

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/rewear/exchange/internal/api/v1"
	"github.com/rewear/exchange/internal/api/v1/middleware"
	"github.com/rewear/exchange/internal/repository"
)

const prefixV1 = "/api/v1/"

func SetupRoutes(app *fiber.App, handler *v1.Handler, jwtSecret string, userRepo repository.UserRepository) {
	authRequired := middleware.AuthRequired(jwtSecret)
	adminOnly := middleware.AdminOnly(userRepo)

	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post(prefixV1+"auth/register", handler.Register)
	app.Post(prefixV1+"auth/login", handler.Login)

	app.Get(prefixV1+"items", handler.ListItems)
	app.Get(prefixV1+"items/:id", handler.GetItem)
	app.Get(prefixV1+"categories", handler.GetCategories)
	app.Get(prefixV1+"platform/stats", handler.GetPlatformStats)

	app.Get(prefixV1+"user/profile", authRequired, handler.GetProfile)
	app.Patch(prefixV1+"user/profile", authRequired, handler.UpdateProfile)
	app.Get(prefixV1+"user/stats", authRequired, handler.GetUserStats)
	app.Get(prefixV1+"user/transactions", authRequired, handler.GetTransactions)
	app.Get(prefixV1+"user/items", authRequired, handler.ListOwnItems)

	app.Post(prefixV1+"items", authRequired, handler.CreateItem)
	app.Delete(prefixV1+"items/:id", authRequired, handler.RemoveItem)

	app.Post(prefixV1+"swap-requests", authRequired, handler.CreateSwapRequest)
	app.Get(prefixV1+"swap-requests", authRequired, handler.ListSwapRequests)
	app.Patch(prefixV1+"swap-requests/:id/status", authRequired, handler.UpdateSwapRequestStatus)
	app.Delete(prefixV1+"swap-requests/:id", authRequired, handler.CancelSwapRequest)

	app.Post(prefixV1+"favorites/:id", authRequired, handler.AddFavorite)
	app.Delete(prefixV1+"favorites/:id", authRequired, handler.RemoveFavorite)
	app.Get(prefixV1+"favorites/:id", authRequired, handler.CheckFavorite)
	app.Get(prefixV1+"favorites", authRequired, handler.ListFavorites)

	app.Get(prefixV1+"admin/items", authRequired, adminOnly, handler.AdminListItems)
	app.Patch(prefixV1+"admin/items/:id/approve", authRequired, adminOnly, handler.AdminApproveItem)
	app.Delete(prefixV1+"admin/items/:id", authRequired, adminOnly, handler.AdminRemoveItem)
}
