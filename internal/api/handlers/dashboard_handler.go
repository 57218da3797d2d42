package handlers

import (
	"agridash/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Dashboard godoc
// @Summary Farm dashboard
// @Description Profile, crops, total acreage, latest soil test with grades, recommendation for the most recent crop and weather
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	resp, err := h.dashboardService.Get(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Dashboard")
	}
	return c.JSON(resp)
}
