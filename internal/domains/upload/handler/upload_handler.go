package handler

import (
	"io"
	"net/http"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/upload"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	service upload.Service
	cfg     config.UploadConfig
}

func NewUploadHandler(svc upload.Service, cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{service: svc, cfg: cfg}
}

// Upload - POST /upload
// multipart form: file (required, bounded by cfg.MaxBytes) and an
// optional prefix. Responds with the raw {url, pathname} pair the SPA
// consumes. A dead blob store yields the placeholder pair with 200:
// the frontend then falls back to an inline data URL instead of
// breaking the edit flow.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	defer file.Close()

	if header.Size > h.cfg.MaxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":  "file_too_large",
			"detail": "max 10MB",
		})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.cfg.MaxBytes+1))
	if err != nil || int64(len(data)) > h.cfg.MaxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":  "file_too_large",
			"detail": "max 10MB",
		})
		return
	}

	prefix := utils.NormalizePrefix(c.PostForm("prefix"), h.cfg.DefaultPrefix)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result, err := h.service.Store(c.Request.Context(), prefix, header.Filename, contentType, data)
	if err != nil {
		logger.Warn("upload store failed, returning placeholder", err)
		c.JSON(http.StatusOK, gin.H{
			"url":      h.cfg.PlaceholderURL,
			"pathname": h.cfg.PlaceholderURL,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
