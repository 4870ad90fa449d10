package upload

import (
	"context"
	"errors"
)

// ErrNotFound: no stored object matches the request.
var ErrNotFound = errors.New("upload not found")

// Result is what the SPA needs to reference a stored file.
type Result struct {
	URL      string `json:"url"`
	Pathname string `json:"pathname"`
}

// Service stores uploaded files in the blob store under
// {prefix}{timestamp}_{sanitizedFilename} keys.
type Service interface {
	// Store writes the file and returns its URL and object key.
	Store(ctx context.Context, prefix, filename, contentType string, data []byte) (*Result, error)

	// Fetch reads a stored object back, e.g. for the resume download.
	Fetch(ctx context.Context, pathname string) ([]byte, error)

	// FindLatestByName locates the newest upload whose sanitized
	// filename matches name and returns its content.
	FindLatestByName(ctx context.Context, prefix, name string) ([]byte, error)
}
