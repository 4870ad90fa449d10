package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"portfolio-backend/internal/domains/siteconfig"
	"portfolio-backend/internal/domains/upload"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ResumeHandler serves the resume file referenced by the resolved
// config as a download. The file itself lives wherever the admin last
// put it: an uploaded blob object, or a data URL embedded in the
// config when the store was down at upload time.
type ResumeHandler struct {
	configs      siteconfig.Service
	uploads      upload.Service
	uploadPrefix string
}

func NewResumeHandler(configs siteconfig.Service, uploads upload.Service, uploadPrefix string) *ResumeHandler {
	return &ResumeHandler{
		configs:      configs,
		uploads:      uploads,
		uploadPrefix: uploadPrefix,
	}
}

// Download - GET /resume/download
func (h *ResumeHandler) Download(c *gin.Context) {
	cfg := h.configs.Resolve(c.Request.Context())
	res := cfg.Resume

	filename := "resume.pdf"
	if res.FileName != "" {
		filename = res.FileName
	}

	// embedded data URL beats a store round trip
	if res.FileDataURL != "" {
		if data, ok := decodeDataURL(res.FileDataURL); ok {
			serveAttachment(c, filename, data)
			return
		}
		logger.Warn("resume data URL is malformed, trying store", nil)
	}

	// a fileUrl under the upload prefix is an exact object key
	if strings.HasPrefix(res.FileURL, h.uploadPrefix) {
		data, err := h.uploads.Fetch(c.Request.Context(), res.FileURL)
		if err == nil {
			serveAttachment(c, filename, data)
			return
		}
		logger.Warn("resume fetch by key failed", err)
	}

	if res.FileName != "" {
		data, err := h.uploads.FindLatestByName(c.Request.Context(), h.uploadPrefix, res.FileName)
		if err == nil {
			serveAttachment(c, filename, data)
			return
		}
		logger.Warn("resume lookup by name failed", err)
	}

	// the compiled default points at a static asset the SPA hosts; the
	// API has nothing to stream
	response.Fail(c, http.StatusNotFound, response.CodeNotFound)
}

func serveAttachment(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// decodeDataURL unpacks "data:<mime>;base64,<payload>".
func decodeDataURL(dataURL string) ([]byte, bool) {
	idx := strings.Index(dataURL, ",")
	if !strings.HasPrefix(dataURL, "data:") || idx < 0 {
		return nil, false
	}

	payload := dataURL[idx+1:]
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, false
	}
	return data, true
}
