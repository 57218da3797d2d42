package handlers

import (
	"agridash/internal/dto"
	"agridash/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PredictHandler struct {
	predictionService *service.PredictionService
	logger            *zap.Logger
}

func NewPredictHandler(predictionService *service.PredictionService, logger *zap.Logger) *PredictHandler {
	return &PredictHandler{
		predictionService: predictionService,
		logger:            logger,
	}
}

// Options godoc
// @Summary Prediction form options
// @Description Crop groups, regions, months, numeric ranges and model availability
// @Tags predict
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PredictOptionsResponse
// @Router /api/v1/predict/options [get]
func (h *PredictHandler) Options(c *fiber.Ctx) error {
	return c.JSON(h.predictionService.Options())
}

// Predict godoc
// @Summary Predict a fertilizer
// @Description Classifies soil and climate readings into a fertilizer. For the KNN model, confidence is a fixed distance heuristic, not a calibrated probability.
// @Tags predict
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PredictRequest true "Readings"
// @Success 200 {object} dto.PredictResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/predict [post]
func (h *PredictHandler) Predict(c *fiber.Ctx) error {
	if err := h.predictionService.CheckAvailable(); err != nil {
		return respondError(c, h.logger, err, "Prediction")
	}

	var req dto.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.predictionService.Predict(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "Prediction")
	}
	return c.JSON(resp)
}

// Health godoc
// @Summary Liveness
// @Description Reports whether the fertilizer model is loaded
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *PredictHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":          "ok",
		"model_available": h.predictionService.Available(),
	})
}
