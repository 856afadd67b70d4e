package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rewear/exchange/internal/api/contract"
	"github.com/rewear/exchange/internal/api/v1/middleware"
	"github.com/rewear/exchange/internal/constants"
	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/service"
)

func (h *Handler) CreateSwapRequest(c *fiber.Ctx) error {
	start := time.Now()

	var handlerRequest CreateSwapRequestRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	offer, err := service.NewOffer(handlerRequest.OfferedItemID, handlerRequest.PointsOffered)
	if err != nil {
		return service.NewServiceError(constants.ErrCodeInvalidOfferSelection, err)
	}

	cmd := service.CreateSwapCommand{
		RequesterID: middleware.UserID(c),
		ItemID:      handlerRequest.ItemID,
		Offer:       offer,
		Message:     handlerRequest.Message,
	}

	request, err := h.swapService.Create(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	if request.IsRedemption() {
		h.metrics.RecordSwapRequestCreated("redemption")
		h.metrics.RecordSwapTransition(string(model.SwapStatusAccepted))
		h.metrics.RecordPointsMoved("spent", offer.Points())
	} else {
		h.metrics.RecordSwapRequestCreated("item_swap")
	}

	go h.notifyCreated(request)

	h.logger.Info("swap request created",
		zap.Int64("request_id", request.ID),
		zap.Int64("requester_id", request.RequesterID),
		zap.Int64("item_id", request.ItemID),
		zap.String("status", string(request.Status)),
		zap.Duration("duration", time.Since(start)),
	)

	return c.Status(fiber.StatusCreated).JSON(contract.OK(constants.SwapRequestCreated, request))
}

func (h *Handler) ListSwapRequests(c *fiber.Ctx) error {
	inbox, err := h.swapService.ListForUser(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(contract.OK("", inbox))
}

func (h *Handler) UpdateSwapRequestStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request id")
	}

	var handlerRequest UpdateSwapStatusRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.UpdateSwapStatusCommand{
		RequestID: int64(id),
		ActorID:   middleware.UserID(c),
		Status:    model.SwapStatus(handlerRequest.Status),
	}

	updated, err := h.swapService.UpdateStatus(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	h.metrics.RecordSwapTransition(string(updated.Status))
	if updated.Status == model.SwapStatusAccepted && !updated.IsRedemption() {
		h.metrics.RecordPointsMoved("bonus", 2*constants.SwapBonusPoints)
	}

	go h.notifyDecision(updated)

	h.logger.Info("swap request transitioned",
		zap.Int64("request_id", updated.ID),
		zap.String("status", string(updated.Status)),
		zap.Int64("actor_id", cmd.ActorID),
	)

	return c.JSON(contract.OK("", updated))
}

func (h *Handler) CancelSwapRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request id")
	}

	cmd := service.CancelSwapCommand{RequestID: int64(id), ActorID: middleware.UserID(c)}
	if err := h.swapService.Cancel(c.UserContext(), cmd); err != nil {
		return err
	}

	h.logger.Info("swap request cancelled",
		zap.Int64("request_id", int64(id)),
		zap.Int64("requester_id", cmd.ActorID),
	)

	return c.JSON(contract.OK("", nil))
}

// notifyCreated is best effort: lookups run outside the request
// transaction and a failed email never fails the swap.
func (h *Handler) notifyCreated(request *model.SwapRequest) {
	if !h.notifier.IsEnabled() {
		return
	}

	receiver, err := h.userService.Get(request.ReceiverID)
	if err != nil {
		h.logger.Warn("notify lookup failed", zap.Int64("user_id", request.ReceiverID), zap.Error(err))
		return
	}
	requester, err := h.userService.Get(request.RequesterID)
	if err != nil {
		h.logger.Warn("notify lookup failed", zap.Int64("user_id", request.RequesterID), zap.Error(err))
		return
	}
	item, err := h.itemService.GetByID(request.ItemID)
	if err != nil {
		h.logger.Warn("notify lookup failed", zap.Int64("item_id", request.ItemID), zap.Error(err))
		return
	}

	h.notifier.SwapRequestCreated(receiver, requester, item)
}

func (h *Handler) notifyDecision(request *model.SwapRequest) {
	if !h.notifier.IsEnabled() {
		return
	}

	requester, err := h.userService.Get(request.RequesterID)
	if err != nil {
		h.logger.Warn("notify lookup failed", zap.Int64("user_id", request.RequesterID), zap.Error(err))
		return
	}
	item, err := h.itemService.GetByID(request.ItemID)
	if err != nil {
		h.logger.Warn("notify lookup failed", zap.Int64("item_id", request.ItemID), zap.Error(err))
		return
	}

	switch request.Status {
	case model.SwapStatusAccepted:
		h.notifier.SwapRequestAccepted(requester, item)
	case model.SwapStatusRejected:
		h.notifier.SwapRequestRejected(requester, item)
	}
}
