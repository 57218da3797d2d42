package handlers

import (
	"agridash/internal/dto"
	"agridash/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register godoc
// @Summary Register a new farmer
// @Description Register with username, email, phone and password. Username and email are stored lower-cased.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration request"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /user/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "Registration")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login godoc
// @Summary Login
// @Description Login with username or email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /user/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "Login")
	}

	return c.JSON(resp)
}

// RefreshToken godoc
// @Summary Refresh access token
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token request"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /user/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.authService.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		return respondError(c, h.logger, err, "Token refresh")
	}

	return c.JSON(resp)
}

// ForgotPassword godoc
// @Summary Request a password reset link
// @Description Always answers with the same message whether or not the email is registered
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string
// @Router /user/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.authService.ForgotPassword(c.Context(), req.Email); err != nil {
		return respondError(c, h.logger, err, "Password reset request")
	}

	return c.JSON(dto.MessageResponse{
		Message: "If an account exists with that email, a password reset link has been sent.",
	})
}

// ResetPassword godoc
// @Summary Reset password
// @Description Set a new password using a reset token. Tokens are valid for one hour.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string
// @Router /user/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.authService.ResetPassword(c.Context(), &req); err != nil {
		return respondError(c, h.logger, err, "Password reset")
	}

	return c.JSON(dto.MessageResponse{Message: "Your password has been updated. You can now log in."})
}
