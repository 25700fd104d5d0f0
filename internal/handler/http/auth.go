package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/auth"
	"github.com/chamcong-app/attendance-backend-go/internal/handler/http/response"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/jwt"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/oauth"
)

const oauthStateCookieName = "oauth_state"

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService   auth.AuthService
	googleService oauth.GoogleService
	jwtService    jwt.Service
	frontendURL   string
	callbackPath  string
}

func NewAuthHandler(authService auth.AuthService, googleService oauth.GoogleService, jwtService jwt.Service, frontendURL string, callbackPath string) AuthHandler {
	return &AuthHandlerImpl{
		authService:   authService,
		googleService: googleService,
		jwtService:    jwtService,
		frontendURL:   frontendURL,
		callbackPath:  callbackPath,
	}
}

func sessionFromRequest(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	tokens, err := h.authService.Login(r.Context(), req, sessionFromRequest(r))
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			slog.Error("login failed", "error", err)
		}
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.SuccessWithMessage(w, "Login successful", tokens)
}

// LoginWithGoogle starts the Google OAuth flow by redirecting to the consent
// screen. The state is mirrored into a short-lived cookie scoped to the
// callback path so it can be verified when Google redirects back.
func (h *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := h.googleService.GenerateState(r.UserAgent())
	if state == "" {
		response.InternalServerError(w, "Failed to initiate Google login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookieName,
		Value:    state,
		Path:     h.callbackPath,
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle handles the redirect back from Google. Errors redirect
// to the frontend callback page with an error code instead of rendering JSON,
// since the browser is mid-navigation.
func (h *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if errCode := r.URL.Query().Get("error"); errCode != "" {
		h.redirectWithError(w, r, "access_denied")
		return
	}

	stateCookie, err := r.Cookie(oauthStateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		h.redirectWithError(w, r, "state_mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		h.redirectWithError(w, r, "missing_code")
		return
	}

	token, err := h.googleService.VerifyToken(ctx, code)
	if err != nil {
		slog.Error("failed to exchange google authorization code", "error", err)
		h.redirectWithError(w, r, "token_exchange_failed")
		return
	}

	info, err := h.googleService.VerifyUser(ctx, token)
	if err != nil {
		slog.Error("failed to fetch google profile", "error", err)
		h.redirectWithError(w, r, "profile_fetch_failed")
		return
	}
	if !info.VerifiedEmail {
		h.redirectWithError(w, r, "email_not_verified")
		return
	}

	tokens, err := h.authService.LoginWithGoogle(ctx, info.Email, info.GoogleID, sessionFromRequest(r))
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrGoogleAccountNotRegistered):
			h.redirectWithError(w, r, "account_not_registered")
		default:
			slog.Error("google login failed", "error", err)
			h.redirectWithError(w, r, "login_failed")
		}
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))

	redirect := h.frontendURL + "/auth/callback/google?access_token=" + url.QueryEscape(tokens.AccessToken)
	http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
}

func (h *AuthHandlerImpl) redirectWithError(w http.ResponseWriter, r *http.Request, code string) {
	redirect := h.frontendURL + "/auth/callback/google?error=" + url.QueryEscape(code)
	http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
}

// refreshTokenFromRequest prefers the HttpOnly cookie and falls back to the
// JSON body for clients that cannot carry cookies.
func refreshTokenFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie("refresh_token")
	if err == nil {
		if cookie.Value == "" {
			return "", auth.ErrRefreshTokenCookieEmpty
		}
		return cookie.Value, nil
	}

	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if decodeErr := json.NewDecoder(r.Body).Decode(&body); decodeErr == nil && body.RefreshToken != "" {
		return body.RefreshToken, nil
	}

	return "", auth.ErrRefreshTokenCookieNotFound
}

// RefreshToken implements AuthHandler.
func (h *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := refreshTokenFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	tokens, err := h.authService.RefreshToken(r.Context(), refreshToken, sessionFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.Success(w, tokens)
}

// Logout implements AuthHandler.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := refreshTokenFromRequest(r)
	if err == nil {
		if revokeErr := h.authService.Logout(r.Context(), refreshToken); revokeErr != nil {
			slog.Warn("failed to revoke refresh token on logout", "error", revokeErr)
		}
	}

	http.SetCookie(w, h.jwtService.ClearedRefreshTokenCookie())
	response.SuccessWithMessage(w, "Logged out", nil)
}
