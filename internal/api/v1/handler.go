package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rewear/exchange/internal/api/contract"
	"github.com/rewear/exchange/internal/api/v1/middleware"
	"github.com/rewear/exchange/internal/api/validator"
	"github.com/rewear/exchange/internal/constants"
	"github.com/rewear/exchange/internal/metrics"
	"github.com/rewear/exchange/internal/notify"
	"github.com/rewear/exchange/internal/service"
)

type Handler struct {
	logger          *zap.Logger
	userService     service.UserService
	itemService     service.ItemService
	swapService     service.SwapService
	statsService    service.StatsService
	favoriteService service.FavoriteService
	notifier        *notify.Service
	XValidator      validator.IXValidator
	metrics         *metrics.Metrics
}

func NewHandler(logger *zap.Logger, userService service.UserService, itemService service.ItemService,
	swapService service.SwapService, statsService service.StatsService,
	favoriteService service.FavoriteService, notifier *notify.Service,
	XValidator validator.IXValidator, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:          logger,
		userService:     userService,
		itemService:     itemService,
		swapService:     swapService,
		statsService:    statsService,
		favoriteService: favoriteService,
		notifier:        notifier,
		XValidator:      XValidator,
		metrics:         metrics,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Register(c *fiber.Ctx) error {
	start := time.Now()

	var handlerRequest RegisterRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.RegisterCommand{
		Username:  handlerRequest.Username,
		Email:     handlerRequest.Email,
		Password:  handlerRequest.Password,
		FirstName: handlerRequest.FirstName,
		LastName:  handlerRequest.LastName,
	}

	user, err := h.userService.Register(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	h.metrics.RecordPointsMoved("bonus", constants.WelcomeBonusPoints)

	h.logger.Info("user registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Duration("duration", time.Since(start)),
	)

	return c.Status(fiber.StatusCreated).
		JSON(contract.OK(constants.UserRegistered, user))
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var handlerRequest LoginRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	user, token, err := h.userService.Login(c.UserContext(), handlerRequest.Username, handlerRequest.Password)
	if err != nil {
		return err
	}

	h.logger.Info("user logged in", zap.Int64("user_id", user.ID))

	return c.JSON(contract.OK("", fiber.Map{"user": user, "token": token}))
}

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	user, err := h.userService.Get(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(contract.OK("", user))
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	var handlerRequest UpdateProfileRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.UpdateProfileCommand{
		UserID:       middleware.UserID(c),
		FirstName:    handlerRequest.FirstName,
		LastName:     handlerRequest.LastName,
		Bio:          handlerRequest.Bio,
		ProfileImage: handlerRequest.ProfileImage,
	}

	user, err := h.userService.UpdateProfile(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(contract.OK("", user))
}

func (h *Handler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.userService.Transactions(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(contract.OK("", transactions))
}

func (h *Handler) GetUserStats(c *fiber.Ctx) error {
	stats, err := h.statsService.UserStats(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(contract.OK("", stats))
}

func (h *Handler) GetPlatformStats(c *fiber.Ctx) error {
	stats, err := h.statsService.PlatformStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(contract.OK("", stats))
}
