package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"breate/backend/internal/auth"
	"breate/backend/internal/config"
	"breate/backend/internal/constants"
	"breate/backend/internal/db/repositories"
	"breate/backend/internal/metrics"
	"breate/backend/internal/models/dtos"
	models "breate/backend/internal/models/gorm"
)

type UserService struct {
	repo       *repositories.UserRepository
	cfg        *config.Config
	metricsReg *metrics.MetricsRegistry
}

func NewUserService(repo *repositories.UserRepository, cfg *config.Config, metricsReg *metrics.MetricsRegistry) *UserService {
	return &UserService{
		repo:       repo,
		cfg:        cfg,
		metricsReg: metricsReg,
	}
}

// Signup registers a new user with a bcrypt-hashed password.
func (s *UserService) Signup(ctx context.Context, req *dtos.SignupReq) (*dtos.UserSummary, error) {
	if req.Email == "" || req.Password == "" {
		return nil, NewError(ErrInvalidArgument, "Email and password are required")
	}

	taken, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, NewError(ErrConflict, constants.MsgEmailTaken)
	}

	if req.Username != nil && *req.Username != "" {
		taken, err := s.repo.UsernameExists(ctx, *req.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return nil, NewError(ErrConflict, constants.MsgUsernameTaken)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Username:     req.Username,
		ArchetypeID:  req.ArchetypeID,
		TierID:       req.TierID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.metricsReg != nil {
		s.metricsReg.UsersRegisteredTotal.Inc()
	}

	return &dtos.UserSummary{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		Bio:         user.Bio,
		ArchetypeID: user.ArchetypeID,
		TierID:      user.TierID,
	}, nil
}

// Login verifies credentials and issues the token pair. The access token's
// subject is the user's email.
func (s *UserService) Login(ctx context.Context, req *dtos.LoginReq) (*dtos.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(ErrUnauthorized, constants.MsgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, NewError(ErrUnauthorized, constants.MsgInvalidCredentials)
	}

	access, refresh, err := auth.GenerateTokenPair(
		user.Email, s.cfg.SecretKey, s.cfg.AccessTokenTTL, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &dtos.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}
