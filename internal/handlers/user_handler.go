package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixmate_backend/internal/middleware"
	"fixmate_backend/internal/services"
	"fixmate_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetProfile(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"user": user})
}

// Onboarding saves the provider's typed partial, including self-service
// verification submit and withdraw.
func (h *UserHandler) Onboarding(c *gin.Context) {
	var req dto.OnboardingRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.SaveOnboarding(middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) ListProviders(c *gin.Context) {
	providers, err := h.userService.ListProviders()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"providers": providers})
}
