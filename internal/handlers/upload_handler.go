package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fixmate_backend/internal/appErrors"
	"fixmate_backend/internal/config"
	"fixmate_backend/internal/middleware"
	"fixmate_backend/internal/storage"
)

type UploadHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewUploadHandler(base *BaseHandler, store storage.Storage) *UploadHandler {
	return &UploadHandler{
		BaseHandler: base,
		store:       store,
	}
}

// UploadImage accepts a multipart image, stores it and returns its public
// URL. Only whitelisted image types within the size cap are accepted.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	cfg := config.GetConfig()

	fileHeader, err := c.FormFile("image")
	if err != nil {
		appErrors.HandleError(c, appErrors.ValidationMessage("Image file is required"))
		return
	}

	if fileHeader.Size > cfg.Upload.MaxSize {
		appErrors.HandleError(c, appErrors.ValidationMessage(
			fmt.Sprintf("File exceeds the %d MB limit", cfg.Upload.MaxSize/(1024*1024))))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedType(contentType, cfg.Upload.AllowedTypes) {
		appErrors.HandleError(c, appErrors.ValidationMessage("Unsupported file type: "+contentType))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErrors.HandleError(c, appErrors.InternalError(err))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	path := fmt.Sprintf("images/%s/%d-%s%s",
		middleware.GetUserID(c), time.Now().Unix(), uuid.NewString()[:8], ext)

	if err := h.store.Save(c.Request.Context(), path, file, contentType); err != nil {
		appErrors.HandleError(c, appErrors.InternalError(err))
		return
	}

	OK(c, http.StatusCreated, gin.H{"url": h.store.URL(path)})
}

func allowedType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
