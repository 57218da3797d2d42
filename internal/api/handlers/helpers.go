package handlers

import (
	"errors"

	"agridash/internal/fertilizer"
	"agridash/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	return userID, nil
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

// respondError maps service and predictor errors to a status and a client-safe message.
// Anything unrecognized is logged and answered with "<action> failed".
func respondError(c *fiber.Ctx, logger *zap.Logger, err error, action string) error {
	var (
		validationErr  *service.ValidationError
		existsErr      *service.UserExistsError
		unavailableErr *service.ModelUnavailableError
	)

	switch {
	case errors.As(err, &validationErr):
		return errorJSON(c, fiber.StatusBadRequest, validationErr.Message)
	case fertilizer.IsInputError(err):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &unavailableErr):
		return errorJSON(c, fiber.StatusServiceUnavailable, unavailableErr.Message)
	case errors.Is(err, fertilizer.ErrModelUnavailable):
		return errorJSON(c, fiber.StatusServiceUnavailable, "Model is not available")
	case errors.As(err, &existsErr):
		return errorJSON(c, fiber.StatusConflict, existsErr.Error())
	case errors.Is(err, service.ErrUserExists):
		return errorJSON(c, fiber.StatusConflict, "User already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		return errorJSON(c, fiber.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrUserNotFound):
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrCropNotFound):
		return errorJSON(c, fiber.StatusNotFound, "Crop not found")
	case errors.Is(err, service.ErrNoSoilTest):
		return errorJSON(c, fiber.StatusNotFound, "No soil test found")
	case errors.Is(err, service.ErrInvalidResetToken):
		return errorJSON(c, fiber.StatusBadRequest, "Invalid or expired reset token")
	case errors.Is(err, fertilizer.ErrInternalPrediction):
		logger.Error("Prediction error", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Internal server error")
	}

	logger.Error(action+" failed", zap.Error(err))
	return errorJSON(c, fiber.StatusInternalServerError, action+" failed")
}
