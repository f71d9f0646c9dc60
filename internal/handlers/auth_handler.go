package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fixmate_backend/internal/config"
	"fixmate_backend/internal/logger"
	"fixmate_backend/internal/middleware"
	"fixmate_backend/internal/ratelimit"
	"fixmate_backend/internal/services"
	"fixmate_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	limiter     *ratelimit.Limiter
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, limiter *ratelimit.Limiter) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		limiter:     limiter,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Signup(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	OK(c, http.StatusCreated, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// A successful login ends the failure window for this IP.
	if err := h.limiter.Reset(c.Request.Context(), c.ClientIP(), ratelimit.PurposeLogin); err != nil {
		logger.CtxWarn(c.Request.Context(), "failed to reset login rate limit", "error", err)
	}

	h.setSessionCookie(c, result.Token)
	OK(c, http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

// Logout clears the session cookie. Tokens are stateless so there is nothing
// to revoke server side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", h.secureCookies(), true)
	OK(c, http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.authService.VerifyEmail(req.Token); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"message": "Email verified"})
}

// ForgotPassword always answers the same way so addresses cannot be probed.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"message": "If the account exists, a reset email has been sent"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"message": "Password updated"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(middleware.GetUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"message": "Password updated"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	cfg := config.GetConfig()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.TokenCookieName,
		token,
		int(cfg.JWT.TTL/time.Second),
		"/", "",
		h.secureCookies(),
		true,
	)
}

func (h *AuthHandler) secureCookies() bool {
	return config.GetConfig().Server.Env == "production"
}
