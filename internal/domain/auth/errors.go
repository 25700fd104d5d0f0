package auth

import "errors"

var (
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrInvalidToken               = errors.New("invalid or missing token")
	ErrTokenExpired               = errors.New("token expired")
	ErrRefreshTokenRevoked        = errors.New("refresh token revoked")
	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
	ErrRefreshTokenCookieEmpty    = errors.New("refresh token cookie is empty")
	ErrGoogleAccessDenied         = errors.New("google access denied by user")
	ErrStateMismatch              = errors.New("oauth state mismatch")
	ErrGoogleEmailNotVerified     = errors.New("google account email is not verified")
	ErrGoogleAccountNotRegistered = errors.New("google account is not linked to any employee")
)
