package repository

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"portfolio-backend/internal/domains/siteconfig"
	"portfolio-backend/internal/infrastructure/storage"
)

// history entries look like config/1716823945123.json
var historyKeyPattern = regexp.MustCompile(`^config/(\d+)\.json$`)

// BlobRepository stores the config objects in the blob store.
type BlobRepository struct {
	store storage.ObjectStore
}

func NewBlobRepository(store storage.ObjectStore) *BlobRepository {
	return &BlobRepository{store: store}
}

func (r *BlobRepository) LoadCurrent(ctx context.Context) ([]byte, error) {
	return r.store.Get(ctx, siteconfig.CurrentKey)
}

func (r *BlobRepository) SaveCurrent(ctx context.Context, raw []byte) error {
	if _, err := r.store.Put(ctx, siteconfig.CurrentKey, raw, "application/json"); err != nil {
		return fmt.Errorf("save current config: %w", err)
	}
	return nil
}

func (r *BlobRepository) SaveVersion(ctx context.Context, ts int64, raw []byte) error {
	if _, err := r.store.Put(ctx, versionKey(ts), raw, "application/json"); err != nil {
		return fmt.Errorf("save config version %d: %w", ts, err)
	}
	return nil
}

func (r *BlobRepository) LoadVersion(ctx context.Context, ts int64) ([]byte, error) {
	return r.store.Get(ctx, versionKey(ts))
}

func (r *BlobRepository) ListVersions(ctx context.Context) ([]siteconfig.ConfigVersion, error) {
	infos, err := r.store.List(ctx, siteconfig.HistoryPrefix)
	if err != nil {
		return nil, fmt.Errorf("list config versions: %w", err)
	}

	var versions []siteconfig.ConfigVersion
	for _, info := range infos {
		m := historyKeyPattern.FindStringSubmatch(info.Key)
		if m == nil {
			// skips config/current.json and anything foreign
			continue
		}
		ts, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		versions = append(versions, siteconfig.ConfigVersion{
			Timestamp: ts,
			Key:       info.Key,
			Size:      info.Size,
		})
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Timestamp > versions[j].Timestamp
	})
	return versions, nil
}

func (r *BlobRepository) DeleteVersion(ctx context.Context, ts int64) error {
	if err := r.store.Delete(ctx, versionKey(ts)); err != nil {
		return fmt.Errorf("delete config version %d: %w", ts, err)
	}
	return nil
}

func versionKey(ts int64) string {
	return fmt.Sprintf("%s%d.json", siteconfig.HistoryPrefix, ts)
}
