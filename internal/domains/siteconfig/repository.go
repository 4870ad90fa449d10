package siteconfig

import "context"

// Object addressing convention in the blob store.
const (
	CurrentKey    = "config/current.json" // the "current" pointer
	HistoryPrefix = "config/"             // history entries: config/<unix-ms>.json
)

// Repository is the durable side of the config store. The "current"
// pointer and the timestamped history entries are separate objects with
// no transaction across them: SaveCurrent is the single authoritative
// mutation, SaveVersion is auxiliary.
//
// Payloads are raw bytes, not parsed structs: history snapshots must
// stay byte-identical to what the admin submitted.
type Repository interface {
	// LoadCurrent reads the current config object. storage.ErrNotFound
	// when none was ever written.
	LoadCurrent(ctx context.Context) ([]byte, error)

	// SaveCurrent replace-writes the current pointer.
	SaveCurrent(ctx context.Context, raw []byte) error

	// SaveVersion writes an immutable history snapshot keyed by ts.
	SaveVersion(ctx context.Context, ts int64, raw []byte) error

	// LoadVersion reads one history snapshot.
	LoadVersion(ctx context.Context, ts int64) ([]byte, error)

	// ListVersions enumerates history snapshots, newest first.
	ListVersions(ctx context.Context) ([]ConfigVersion, error)

	// DeleteVersion removes one history snapshot (pruning).
	DeleteVersion(ctx context.Context, ts int64) error
}
