package siteconfig

import (
	"errors"
	"net/http"
)

// Sentinel errors for the config store. Compared with errors.Is() at
// the handler boundary and mapped to the envelope error codes there.

// ErrInvalidPayload: the caller sent something that is not a JSON
// object shaped like a SiteConfig. Detected before any write.
var ErrInvalidPayload = errors.New("invalid config payload")

// ErrStoreUnavailable: the authoritative "current" write failed. The
// previous current object is untouched.
var ErrStoreUnavailable = errors.New("config store unavailable")

// ErrVersionNotFound: no history snapshot exists at the requested
// timestamp.
var ErrVersionNotFound = errors.New("config version not found")

// GetHTTPStatusCode maps a domain error to an HTTP status.
func GetHTTPStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, ErrVersionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
