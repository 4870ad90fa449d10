package siteconfig

import "context"

// SaveResult reports what a successful save actually did. The history
// write and the pruning pass are best effort; their failures are
// warnings, never a failed save.
type SaveResult struct {
	Timestamp      int64    `json:"timestamp"`
	HistoryWritten bool     `json:"historyWritten"`
	PrunedVersions int      `json:"prunedVersions,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}

// Service is the caller-facing contract of the config store resolver.
type Service interface {
	// Resolve returns the current site config: remote, else cached,
	// else compiled default, always shallow-merged over the default.
	// Never returns an error.
	Resolve(ctx context.Context) SiteConfig

	// Save validates raw, replace-writes the current pointer, appends
	// a history snapshot and prunes old ones (both best effort).
	// Errors: ErrInvalidPayload, ErrStoreUnavailable.
	Save(ctx context.Context, raw []byte) (*SaveResult, error)

	// Versions lists history snapshots, newest first.
	Versions(ctx context.Context) ([]ConfigVersion, error)

	// Restore re-saves the snapshot at ts as the current config.
	// Errors: ErrVersionNotFound, ErrStoreUnavailable.
	Restore(ctx context.Context, ts int64) (*SaveResult, error)
}
