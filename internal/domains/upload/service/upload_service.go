package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/domains/upload"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/utils"
)

type uploadService struct {
	store   storage.ObjectStore
	timeout time.Duration
}

func NewUploadService(store storage.ObjectStore, timeout time.Duration) upload.Service {
	return &uploadService{store: store, timeout: timeout}
}

func (s *uploadService) Store(ctx context.Context, prefix, filename, contentType string, data []byte) (*upload.Result, error) {
	key := fmt.Sprintf("%s%d_%s", prefix, time.Now().UnixMilli(), utils.SanitizeFilename(filename))

	wctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	url, err := s.store.Put(wctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("store upload %s: %w", key, err)
	}

	return &upload.Result{URL: url, Pathname: key}, nil
}

func (s *uploadService) Fetch(ctx context.Context, pathname string) ([]byte, error) {
	rctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	data, err := s.store.Get(rctx, pathname)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, upload.ErrNotFound
		}
		return nil, fmt.Errorf("fetch %s: %w", pathname, err)
	}
	return data, nil
}

// FindLatestByName scans the upload prefix for keys of the form
// {prefix}{timestamp}_{name}. Keys embed their write time, so the
// lexicographically largest matching key is the newest upload.
func (s *uploadService) FindLatestByName(ctx context.Context, prefix, name string) ([]byte, error) {
	rctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	infos, err := s.store.List(rctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}

	suffix := "_" + utils.SanitizeFilename(name)
	var latest string
	for _, info := range infos {
		if strings.HasSuffix(info.Key, suffix) && info.Key > latest {
			latest = info.Key
		}
	}
	if latest == "" {
		return nil, upload.ErrNotFound
	}

	return s.store.Get(rctx, latest)
}
