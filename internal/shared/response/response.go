package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every JSON endpoint returns:
// {ok: bool, data?, error?}. The error field carries a short machine
// code ("invalid_json", "blob_unavailable", ...), not prose.
type Response struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Success responses
func OK(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		OK:   true,
		Data: data,
	})
}

// Error responses
func Fail(c *gin.Context, statusCode int, code string) {
	c.JSON(statusCode, Response{
		OK:    false,
		Error: code,
	})
}

// FailWithData reports an error while still handing back a payload,
// e.g. a message that was captured locally after the remote write failed.
func FailWithData(c *gin.Context, statusCode int, code string, data interface{}) {
	c.JSON(statusCode, Response{
		OK:    false,
		Error: code,
		Data:  data,
	})
}

// Common error codes
const (
	CodeInvalidJSON      = "invalid_json"
	CodeMissingFields    = "missing_fields"
	CodeMissingID        = "missing_id"
	CodeNotFound         = "not_found"
	CodeBlobUnavailable  = "blob_unavailable"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeUnauthorized     = "unauthorized"
	CodeServerError      = "server_error"
)
