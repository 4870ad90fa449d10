package message

import "context"

// Service is the caller-facing contract of the message store.
type Service interface {
	// List merges the remote collection with the local mirror, remote
	// winning per id, newest first. Never returns an error: a dead
	// remote degrades to the local-only list.
	List(ctx context.Context) []ContactMessage

	// Create validates and appends a new message. On a remote write
	// failure the message is captured in the local mirror and returned
	// together with ErrStoreUnavailable, not dropped.
	// Errors: ErrMissingFields, ErrStoreUnavailable.
	Create(ctx context.Context, req CreateMessageReq) (*ContactMessage, error)

	// Update shallow-merges patch onto the stored message and writes
	// it back. Errors: ErrMissingFields, ErrNotFound,
	// ErrStoreUnavailable.
	Update(ctx context.Context, id string, patch UpdateMessageReq) (*ContactMessage, error)

	// Delete removes the message remotely and from the mirror. The
	// mirror entry goes away even when the remote delete fails, so a
	// stale copy cannot reappear in a later merge.
	// Errors: ErrStoreUnavailable.
	Delete(ctx context.Context, id string) error

	// ExportCSV renders the merged list as CSV for the admin panel.
	ExportCSV(ctx context.Context) []byte
}
