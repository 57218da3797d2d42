package handlers

import (
	"agridash/internal/dto"
	"agridash/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SoilHandler struct {
	soilService *service.SoilService
	logger      *zap.Logger
}

func NewSoilHandler(soilService *service.SoilService, logger *zap.Logger) *SoilHandler {
	return &SoilHandler{
		soilService: soilService,
		logger:      logger,
	}
}

// ListSoilTests godoc
// @Summary List soil tests
// @Description Latest test first
// @Tags soil
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SoilTestResponse
// @Router /api/v1/soil-tests [get]
func (h *SoilHandler) ListSoilTests(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	tests, err := h.soilService.List(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Soil test listing")
	}
	return c.JSON(tests)
}

// CreateSoilTest godoc
// @Summary Record a soil test
// @Description Levels are Very Low, Low, Medium, High or Very High
// @Tags soil
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSoilTestRequest true "Soil test"
// @Success 201 {object} dto.SoilTestResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/soil-tests [post]
func (h *SoilHandler) CreateSoilTest(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateSoilTestRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.soilService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Soil test creation")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Recommendation godoc
// @Summary Soil-based fertilizer recommendation
// @Description Applies the nutrient and pH rules to the latest soil test. Without crop, the most recently planted crop is used.
// @Tags soil
// @Produce json
// @Security BearerAuth
// @Param crop query string false "Crop name"
// @Param advice query bool false "Ask the agronomy advisor for an explanation"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/recommendation [get]
func (h *SoilHandler) Recommendation(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	resp, err := h.soilService.Recommend(c.Context(), userID, c.Query("crop"), c.QueryBool("advice"))
	if err != nil {
		return respondError(c, h.logger, err, "Recommendation")
	}
	return c.JSON(resp)
}
