package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"portfolio-backend/internal/domains/siteconfig"
	"portfolio-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// maxConfigBytes bounds the PUT /config body. The whole site config is
// a few hundred KB of JSON even with embedded data URLs.
const maxConfigBytes = 4 << 20

type ConfigHandler struct {
	service siteconfig.Service
}

func NewConfigHandler(svc siteconfig.Service) *ConfigHandler {
	return &ConfigHandler{service: svc}
}

// Get - GET /config
// Always 200: resolution degrades through cache and default, it never
// fails.
func (h *ConfigHandler) Get(c *gin.Context) {
	cfg := h.service.Resolve(c.Request.Context())
	response.OK(c, http.StatusOK, cfg)
}

// Put - PUT /config
// Body is the full SiteConfig JSON (replace-write, no partial patch).
func (h *ConfigHandler) Put(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxConfigBytes))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeInvalidJSON)
		return
	}

	result, err := h.service.Save(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, siteconfig.ErrInvalidPayload) {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidJSON)
			return
		}
		response.Fail(c, siteconfig.GetHTTPStatusCode(err), response.CodeBlobUnavailable)
		return
	}

	response.OK(c, http.StatusOK, result)
}

// Versions - GET /config/versions
func (h *ConfigHandler) Versions(c *gin.Context) {
	versions, err := h.service.Versions(c.Request.Context())
	if err != nil {
		response.Fail(c, siteconfig.GetHTTPStatusCode(err), response.CodeBlobUnavailable)
		return
	}

	response.OK(c, http.StatusOK, versions)
}

// Restore - POST /config/versions/:ts/restore
// Re-saves a history snapshot as the current config.
func (h *ConfigHandler) Restore(c *gin.Context) {
	ts, err := strconv.ParseInt(c.Param("ts"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeMissingID)
		return
	}

	result, err := h.service.Restore(c.Request.Context(), ts)
	if err != nil {
		if errors.Is(err, siteconfig.ErrVersionNotFound) {
			response.Fail(c, http.StatusNotFound, response.CodeNotFound)
			return
		}
		response.Fail(c, siteconfig.GetHTTPStatusCode(err), response.CodeBlobUnavailable)
		return
	}

	response.OK(c, http.StatusOK, result)
}
