package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"agridash/internal/dto"
	"agridash/internal/models"
	"agridash/internal/repository"
	"agridash/pkg/auth"
	"agridash/pkg/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const resetTokenTTL = time.Hour

type AuthService struct {
	userRepo   UserStore
	jwtManager *auth.JWTManager
	mailer     mailer.Mailer
	publicURL  string
	logger     *zap.Logger
	now        func() time.Time
}

func NewAuthService(userRepo UserStore, jwtManager *auth.JWTManager, m mailer.Mailer, publicURL string, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		mailer:     m,
		publicURL:  strings.TrimRight(publicURL, "/"),
		logger:     logger,
		now:        time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	fullName := strings.TrimSpace(req.FullName)

	switch {
	case username == "":
		return nil, invalid("username", "Username is required.")
	case phone == "":
		return nil, invalid("phone", "Phone is required.")
	case fullName == "":
		return nil, invalid("full_name", "Full name is required.")
	case !emailPattern.MatchString(email):
		return nil, invalid("email", "Invalid email format.")
	}
	if err := validatePassword(req.Password, req.ConfirmPassword); err != nil {
		return nil, err
	}

	totalLand := models.DefaultTotalLand
	if raw := strings.TrimSpace(req.TotalLand); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, invalid("total_land", "Total land must be a number.")
		}
		totalLand = v
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = models.DefaultLocation
	}

	for _, f := range []struct{ column, value string }{
		{"username", username},
		{"email", email},
		{"phone", phone},
	} {
		exists, err := s.userRepo.Exists(ctx, f.column, f.value, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", f.column, err)
		}
		if exists {
			return nil, &UserExistsError{Field: f.column}
		}
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &models.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Phone:     phone,
		Password:  hashedPassword,
		FullName:  fullName,
		FarmName:  strings.TrimSpace(req.FarmName),
		Location:  location,
		TotalLand: totalLand,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()), zap.String("username", user.Username))
	return s.issueTokens(user)
}

// Login accepts either a username or an email as the identifier.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	identifier := strings.ToLower(strings.TrimSpace(req.Identifier))
	if identifier == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != auth.TokenTypeRefresh {
		return nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.issueTokens(user)
}

// ForgotPassword issues a reset token and mails a link. It reports success
// whether or not the email belongs to an account.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return invalid("email", "Invalid email format.")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Info("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := newResetToken()
	if err != nil {
		return err
	}
	if err := s.userRepo.SetResetToken(ctx, user.ID, token, s.now().Add(resetTokenTTL)); err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}

	msg := mailer.Message{
		To:      user.Email,
		Subject: "Password Reset Request",
		Body: fmt.Sprintf("To reset your password, visit the following link:\n%s/reset-password?token=%s\n\n"+
			"If you did not make this request, simply ignore this email and no changes will be made.",
			s.publicURL, token),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("Failed to send reset email", zap.String("user_id", user.ID.String()), zap.Error(err))
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return ErrInvalidResetToken
	}

	user, err := s.userRepo.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if user.TokenExpiry == nil || !s.now().Before(*user.TokenExpiry) {
		return ErrInvalidResetToken
	}

	if err := validatePassword(req.Password, req.ConfirmPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.logger.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID.String(), user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwtManager.GetTokenDuration().Seconds()),
		User: dto.UserResponse{
			ID:       user.ID.String(),
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

func newResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
