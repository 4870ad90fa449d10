package message

import "context"

// Repository is the uniform contract over a message collection. Two
// implementations exist: the remote blob store (authoritative) and the
// local JSON mirror (offline fallback). The service composes them per
// operation; the list-merge precedence lives in MergeByID.
type Repository interface {
	// List returns every message in the collection, in no particular
	// order.
	List(ctx context.Context) ([]ContactMessage, error)

	// Get returns the message with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*ContactMessage, error)

	// Put replace-writes a message at its id-derived address.
	Put(ctx context.Context, msg ContactMessage) error

	// Delete removes the message with the given id. Deleting an absent
	// id is not an error.
	Delete(ctx context.Context, id string) error
}
