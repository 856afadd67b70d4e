package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rewear/exchange/internal/api/contract"
	"github.com/rewear/exchange/internal/api/v1/middleware"
	"github.com/rewear/exchange/internal/constants"
	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
	"github.com/rewear/exchange/internal/service"
)

func (h *Handler) CreateItem(c *fiber.Ctx) error {
	start := time.Now()

	var handlerRequest CreateItemRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.CreateItemCommand{
		UserID:      middleware.UserID(c),
		CategoryID:  handlerRequest.CategoryID,
		Title:       handlerRequest.Title,
		Description: handlerRequest.Description,
		Size:        handlerRequest.Size,
		Condition:   handlerRequest.Condition,
		PointValue:  handlerRequest.PointValue,
		Tags:        handlerRequest.Tags,
		Images:      handlerRequest.Images,
	}

	item, err := h.itemService.Create(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	h.metrics.RecordItemListed()
	h.metrics.RecordPointsMoved("earned", constants.ListingRewardPoints)

	h.logger.Info("item created",
		zap.Int64("item_id", item.ID),
		zap.Int64("user_id", cmd.UserID),
		zap.Duration("duration", time.Since(start)),
	)

	return c.Status(fiber.StatusCreated).JSON(contract.OK(constants.ItemListed, item))
}

// ListItems is the public browse endpoint: only active, approved listings
// are visible regardless of query params. Browsers can hide their own
// listings with exclude_user_id.
func (h *Handler) ListItems(c *fiber.Ctx) error {
	filter := repository.ItemFilter{
		Category:      c.Query("category"),
		Search:        c.Query("search"),
		UserID:        int64(c.QueryInt("user_id")),
		ExcludeUserID: int64(c.QueryInt("exclude_user_id")),
		Status:        model.ItemStatusActive,
		ApprovedOnly:  true,
	}

	items, err := h.itemService.List(filter)
	if err != nil {
		return err
	}

	return c.JSON(contract.OK("", items))
}

// ListOwnItems skips the approval filter so owners see pending listings.
func (h *Handler) ListOwnItems(c *fiber.Ctx) error {
	filter := repository.ItemFilter{UserID: middleware.UserID(c)}

	items, err := h.itemService.List(filter)
	if err != nil {
		return err
	}

	return c.JSON(contract.OK("", items))
}

func (h *Handler) GetItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	item, err := h.itemService.View(c.UserContext(), int64(id))
	if err != nil {
		return err
	}

	return c.JSON(contract.OK("", item))
}

func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	item, err := h.itemService.GetByID(int64(id))
	if err != nil {
		return err
	}
	if item.UserID != middleware.UserID(c) {
		return service.NewServiceError(constants.ErrCodeForbidden, service.ErrNotParticipant)
	}

	if err := h.itemService.Remove(c.UserContext(), int64(id)); err != nil {
		return err
	}

	return c.JSON(contract.OK("", nil))
}

func (h *Handler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.itemService.Categories()
	if err != nil {
		return err
	}
	return c.JSON(contract.OK("", categories))
}

func (h *Handler) AdminListItems(c *fiber.Ctx) error {
	filter := repository.ItemFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Status:   model.ItemStatus(c.Query("status")),
	}

	items, err := h.itemService.List(filter)
	if err != nil {
		return err
	}

	return c.JSON(contract.OK("", items))
}

func (h *Handler) AdminApproveItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	var handlerRequest ApproveItemRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	if err := h.itemService.SetApproval(c.UserContext(), int64(id), *handlerRequest.IsApproved); err != nil {
		return err
	}

	return c.JSON(contract.OK("", nil))
}

func (h *Handler) AdminRemoveItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	if err := h.itemService.Remove(c.UserContext(), int64(id)); err != nil {
		return err
	}

	h.logger.Info("item removed by moderator",
		zap.Int64("item_id", int64(id)),
		zap.Int64("admin_id", middleware.UserID(c)),
	)

	return c.JSON(contract.OK("", nil))
}
