package handler

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/domains/message"
	"portfolio-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	service message.Service
}

func NewMessageHandler(svc message.Service) *MessageHandler {
	return &MessageHandler{service: svc}
}

// List - GET /messages
// Merged remote+mirror list, newest first. Never fails.
func (h *MessageHandler) List(c *gin.Context) {
	msgs := h.service.List(c.Request.Context())
	response.OK(c, http.StatusOK, msgs)
}

// Create - POST /messages
func (h *MessageHandler) Create(c *gin.Context) {
	var req message.CreateMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeMissingFields)
		return
	}

	msg, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, message.ErrStoreUnavailable) {
			// captured in the mirror; the submission is not lost
			response.FailWithData(c, http.StatusServiceUnavailable, response.CodeBlobUnavailable, msg)
			return
		}
		response.Fail(c, message.GetHTTPStatusCode(err), response.CodeMissingFields)
		return
	}

	response.OK(c, http.StatusCreated, msg)
}

// Update - PATCH /messages?id=ID
func (h *MessageHandler) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.CodeMissingID)
		return
	}

	var patch message.UpdateMessageReq
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeMissingFields)
		return
	}

	msg, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.CodeNotFound)
		case errors.Is(err, message.ErrStoreUnavailable):
			response.FailWithData(c, http.StatusServiceUnavailable, response.CodeBlobUnavailable, msg)
		default:
			response.Fail(c, message.GetHTTPStatusCode(err), response.CodeMissingFields)
		}
		return
	}

	response.OK(c, http.StatusOK, msg)
}

// Delete - DELETE /messages?id=ID
func (h *MessageHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.CodeMissingID)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusServiceUnavailable, response.CodeBlobUnavailable)
		return
	}

	response.OK(c, http.StatusOK, nil)
}

// ExportCSV - GET /messages/export
func (h *MessageHandler) ExportCSV(c *gin.Context) {
	data := h.service.ExportCSV(c.Request.Context())

	c.Header("Content-Disposition", `attachment; filename="messages.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
