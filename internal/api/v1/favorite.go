package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rewear/exchange/internal/api/contract"
	"github.com/rewear/exchange/internal/api/v1/middleware"
)

func (h *Handler) AddFavorite(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	if err := h.favoriteService.Add(c.UserContext(), middleware.UserID(c), int64(id)); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(contract.OK("", nil))
}

func (h *Handler) RemoveFavorite(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	if err := h.favoriteService.Remove(c.UserContext(), middleware.UserID(c), int64(id)); err != nil {
		return err
	}

	return c.JSON(contract.OK("", nil))
}

func (h *Handler) CheckFavorite(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	favorited, err := h.favoriteService.Check(middleware.UserID(c), int64(id))
	if err != nil {
		return err
	}

	return c.JSON(contract.OK("", fiber.Map{"favorited": favorited}))
}

func (h *Handler) ListFavorites(c *fiber.Ctx) error {
	items, err := h.favoriteService.List(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(contract.OK("", items))
}
