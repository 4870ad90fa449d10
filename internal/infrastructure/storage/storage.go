package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no object exists at the requested key.
// Callers must be able to tell "object missing" apart from "store down":
// the former maps to 404, the latter to the local fallback path.
var ErrNotFound = errors.New("object not found")

// ObjectInfo describes one stored object.
type ObjectInfo struct {
	Key  string // path inside the bucket, e.g. "messages/m123.json"
	URL  string // public URL of the object
	Size int64
}

// ObjectStore is the blob-store contract shared by the config, message
// and upload layers. One object per key, replace-write semantics, no
// transactions: last write to a key wins.
type ObjectStore interface {
	// Put writes data at key, overwriting any previous object there.
	// Returns the public URL of the stored object.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Get reads the full object at key. Returns ErrNotFound when the
	// key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// List enumerates all objects under prefix.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// Delete removes the object at key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}
