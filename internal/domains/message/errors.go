package message

import (
	"errors"
	"net/http"
)

// ErrMissingFields: required input absent or invalid. No side effects.
var ErrMissingFields = errors.New("missing required fields")

// ErrNotFound: no message object exists remotely at the given id.
var ErrNotFound = errors.New("message not found")

// ErrStoreUnavailable: the remote write/delete failed. The local
// mirror has already absorbed the change where the contract asks for
// it, so the caller's data is not lost.
var ErrStoreUnavailable = errors.New("message store unavailable")

// GetHTTPStatusCode maps a domain error to an HTTP status.
func GetHTTPStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrMissingFields):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
