package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rewear/exchange/internal/constants"
	"github.com/rewear/exchange/internal/service"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"error":   fiberErr.Message,
				"message": fiberErr.Message,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"message": "Could not process the request",
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	statusMap := map[string]int{
		constants.ErrCodeUserExisted:            fiber.StatusConflict,
		constants.ErrCodeUserNotFound:           fiber.StatusNotFound,
		constants.ErrCodeItemNotFound:           fiber.StatusNotFound,
		constants.ErrCodeCategoryNotFound:       fiber.StatusNotFound,
		constants.ErrCodeRequestNotFound:        fiber.StatusNotFound,
		constants.ErrCodeInvalidCredentials:     fiber.StatusUnauthorized,
		constants.ErrCodeForbidden:              fiber.StatusForbidden,
		constants.ErrCodeSelfRequestForbidden:   fiber.StatusForbidden,
		constants.ErrCodeInvalidOfferSelection:  fiber.StatusBadRequest,
		constants.ErrCodeInvalidPointValue:      fiber.StatusBadRequest,
		constants.ErrCodeInsufficientPoints:     fiber.StatusConflict,
		constants.ErrCodeItemUnavailable:        fiber.StatusConflict,
		constants.ErrCodeInvalidStateTransition: fiber.StatusConflict,
		constants.ErrCodeInvariantViolation:     fiber.StatusInternalServerError,
		constants.ErrCodeOperationFailed:        fiber.StatusInternalServerError,
	}

	status, ok := statusMap[err.Code]
	if !ok {
		status = fiber.StatusInternalServerError
	}

	body := fiber.Map{
		"code":    err.Code,
		"message": constants.GetErrorMessage(err.Code),
	}

	// Insufficient points carries the shortfall so the UI can show it.
	if err.Code == constants.ErrCodeInsufficientPoints {
		body["detail"] = err.Error()
	}

	return c.Status(status).JSON(body)
}
