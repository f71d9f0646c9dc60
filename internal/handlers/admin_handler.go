package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixmate_backend/internal/services"
	"fixmate_backend/internal/services/dto"
)

type AdminHandler struct {
	*BaseHandler
	verificationService services.VerificationService
}

func NewAdminHandler(base *BaseHandler, verificationService services.VerificationService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:         base,
		verificationService: verificationService,
	}
}

func (h *AdminHandler) ListPendingProviders(c *gin.Context) {
	providers, err := h.verificationService.ListPending()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"providers": providers})
}

// VerifyProvider decides a pending verification request.
func (h *AdminHandler) VerifyProvider(c *gin.Context) {
	var req dto.VerifyProviderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.verificationService.Decide(c.Param("userId"), req.Action, req.RejectionReason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"provider": result})
}
