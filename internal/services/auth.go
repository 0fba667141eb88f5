package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/dto"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/repositories"
	apperrors "github.com/Ruban-raj-143/gearguard-maintenance/pkg/errors"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/service"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, payload dto.RefreshTokenDTO) (*dto.TokenPairDTO, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	jwtService service.JWTService
}

func NewAuthService(userRepo repositories.UserRepositoryInterface, jwtService service.JWTService) AuthServiceInterface {
	return &AuthService{userRepo: userRepo, jwtService: jwtService}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(int(user.ID))
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshTokenDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	if _, err := s.userRepo.FindUser(ctx, uint64(claims.UserID)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(claims.UserID)
}

func (s *AuthService) issueTokens(userID int) (*dto.TokenPairDTO, error) {
	accessToken, refreshToken, err := s.jwtService.GenerateTokens(userID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtService.GetAccessTokenTTL().Seconds()),
	}, nil
}
