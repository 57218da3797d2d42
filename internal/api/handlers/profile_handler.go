package handlers

import (
	"agridash/internal/dto"
	"agridash/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	weatherService *service.WeatherService
	logger         *zap.Logger
}

func NewProfileHandler(profileService *service.ProfileService, weatherService *service.WeatherService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		weatherService: weatherService,
		logger:         logger,
	}
}

// GetProfile godoc
// @Summary Get profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	resp, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Profile lookup")
	}
	return c.JSON(resp)
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Only the fields present in the body are changed
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/profile [put]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.profileService.Update(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Profile update")
	}
	return c.JSON(resp)
}

// Weather godoc
// @Summary Weather for the farm location
// @Description Static conditions and a three-day forecast. Unknown locations fall back to Delhi.
// @Tags weather
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.WeatherResponse
// @Router /api/v1/weather [get]
func (h *ProfileHandler) Weather(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	profile, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Weather lookup")
	}
	return c.JSON(h.weatherService.ForLocation(profile.Location))
}
