package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"agridash/internal/dto"
	"agridash/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService struct {
	userRepo UserStore
	logger   *zap.Logger
}

func NewProfileService(userRepo UserStore, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toProfileResponse(user)
	return &resp, nil
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !emailPattern.MatchString(email) {
			return nil, invalid("email", "Invalid email format.")
		}
		if email != user.Email {
			if err := s.ensureFree(ctx, "email", email, userID); err != nil {
				return nil, err
			}
		}
		user.Email = email
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone == "" {
			return nil, invalid("phone", "Phone is required.")
		}
		if phone != user.Phone {
			if err := s.ensureFree(ctx, "phone", phone, userID); err != nil {
				return nil, err
			}
		}
		user.Phone = phone
	}
	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return nil, invalid("full_name", "Full name is required.")
		}
		user.FullName = name
	}
	if req.FarmName != nil {
		user.FarmName = strings.TrimSpace(*req.FarmName)
	}
	if req.Location != nil {
		user.Location = strings.TrimSpace(*req.Location)
	}
	if req.TotalLand != nil {
		if v := *req.TotalLand; math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, invalid("total_land", "Total land must be a number.")
		}
		user.TotalLand = *req.TotalLand
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	s.logger.Info("Profile updated", zap.String("user_id", userID.String()))
	resp := toProfileResponse(user)
	return &resp, nil
}

func (s *ProfileService) ensureFree(ctx context.Context, column, value string, self uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, column, value, self)
	if err != nil {
		return err
	}
	if exists {
		return &UserExistsError{Field: column}
	}
	return nil
}
