package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, loginReq LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, googleEmail string, googleID string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
