package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/activitylog"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/auth"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/user"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/jwt"
	"github.com/chamcong-app/attendance-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtRepo    postgresql.JWTRepository
	jwtService jwt.Service
	recorder   activitylog.Recorder
}

func NewAuthService(
	userRepo user.UserRepository,
	jwtRepo postgresql.JWTRepository,
	jwtService jwt.Service,
	recorder activitylog.Recorder,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtRepo:    jwtRepo,
		jwtService: jwtService,
		recorder:   recorder,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	found, err := s.userRepo.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	// OAuth-only accounts have no password hash.
	if found.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*found.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !found.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	tokens, err := s.issueTokens(ctx, found, sessionReq)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	s.recorder.Record(ctx, &found.ID, activitylog.ActionLogin, "logged in with password")

	return tokens, nil
}

// LoginWithGoogle implements auth.AuthService. Google sign-in only works
// for accounts an admin already registered; there is no self sign-up.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string, googleID string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	found, err := s.userRepo.GetByEmail(ctx, googleEmail)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrGoogleAccountNotRegistered
		}
		return auth.TokenResponse{}, err
	}
	if !found.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}
	if found.OAuthProviderID != nil && *found.OAuthProviderID != googleID {
		return auth.TokenResponse{}, auth.ErrGoogleAccountNotRegistered
	}

	tokens, err := s.issueTokens(ctx, found, sessionReq)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	s.recorder.Record(ctx, &found.ID, activitylog.ActionLogin, "logged in with google")

	return tokens, nil
}

// RefreshToken implements auth.AuthService. The presented token is rotated:
// revoked and replaced by a fresh pair.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := s.jwtRepo.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	found, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !found.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	if err := s.jwtRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issueTokens(ctx, found, sessionReq)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.jwtRepo.RevokeRefreshToken(ctx, refreshToken)
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, u user.User, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.jwtRepo.CreateRefreshToken(ctx, u.ID, refreshToken, refreshExpiresAt, sessionReq); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}, nil
}
