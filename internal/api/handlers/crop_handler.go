package handlers

import (
	"agridash/internal/dto"
	"agridash/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CropHandler struct {
	cropService *service.CropService
	logger      *zap.Logger
}

func NewCropHandler(cropService *service.CropService, logger *zap.Logger) *CropHandler {
	return &CropHandler{
		cropService: cropService,
		logger:      logger,
	}
}

// ListCrops godoc
// @Summary List crops
// @Description Crops ordered by planting date, newest first
// @Tags crops
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CropResponse
// @Router /api/v1/crops [get]
func (h *CropHandler) ListCrops(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	crops, err := h.cropService.List(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Crop listing")
	}
	return c.JSON(crops)
}

// CreateCrop godoc
// @Summary Add a crop
// @Tags crops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCropRequest true "Crop"
// @Success 201 {object} dto.CropResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/crops [post]
func (h *CropHandler) CreateCrop(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateCropRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.cropService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Crop creation")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// DeleteCrop godoc
// @Summary Delete a crop
// @Tags crops
// @Security BearerAuth
// @Param id path string true "Crop ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/crops/{id} [delete]
func (h *CropHandler) DeleteCrop(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	cropID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid crop ID")
	}

	if err := h.cropService.Delete(c.Context(), userID, cropID); err != nil {
		return respondError(c, h.logger, err, "Crop deletion")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
