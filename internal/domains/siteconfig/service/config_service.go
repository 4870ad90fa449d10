package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"portfolio-backend/internal/domains/siteconfig"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

const (
	// cache key for the last successfully resolved config
	cacheKeyCurrent = "siteconfig:current"

	// how many history snapshots survive a pruning pass
	historyKeep = 3
)

type configService struct {
	repo     siteconfig.Repository
	cache    cache.Cache
	defaults siteconfig.SiteConfig
	timeout  time.Duration

	mu     sync.Mutex
	lastTS int64
}

func NewConfigService(repo siteconfig.Repository, c cache.Cache, timeout time.Duration) siteconfig.Service {
	return &configService{
		repo:     repo,
		cache:    c,
		defaults: siteconfig.DefaultConfig(),
		timeout:  timeout,
	}
}

// Resolve walks the source layers in priority order: remote current
// object, last-known-good cache, compiled default. Every outcome is
// shallow-merged over the default so no top-level section is ever
// missing. All failure modes degrade, none propagate.
func (s *configService) Resolve(ctx context.Context) siteconfig.SiteConfig {
	rctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.repo.LoadCurrent(rctx)
	if err == nil {
		var cfg siteconfig.SiteConfig
		if jsonErr := json.Unmarshal(raw, &cfg); jsonErr == nil {
			// opportunistically refresh the last-known-good copy
			if cacheErr := s.cache.Set(ctx, cacheKeyCurrent, cfg, 0); cacheErr != nil {
				logger.Warn("config cache refresh failed", cacheErr)
			}
			return siteconfig.MergeWithDefault(cfg, s.defaults)
		} else {
			logger.Warn("stored config is not valid JSON, falling back", jsonErr)
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		logger.Warn("remote config unavailable, falling back", err)
	}

	var cached siteconfig.SiteConfig
	if found, cacheErr := s.cache.Get(ctx, cacheKeyCurrent, &cached); cacheErr == nil && found {
		return siteconfig.MergeWithDefault(cached, s.defaults)
	}

	return siteconfig.MergeWithDefault(siteconfig.SiteConfig{}, s.defaults)
}

// Save performs the write path: current pointer first (the single
// authoritative mutation), then the history snapshot and the pruning
// pass, both best effort. A history failure never corrupts the current
// pointer and never fails the save.
func (s *configService) Save(ctx context.Context, raw []byte) (*siteconfig.SaveResult, error) {
	cfg, err := parsePayload(raw)
	if err != nil {
		return nil, err
	}

	wctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.SaveCurrent(wctx, raw); err != nil {
		logger.Error("current config write failed", err)
		return nil, fmt.Errorf("%w: %v", siteconfig.ErrStoreUnavailable, err)
	}

	ts := s.nextTimestamp()
	result := &siteconfig.SaveResult{Timestamp: ts, HistoryWritten: true}

	if err := s.repo.SaveVersion(wctx, ts, raw); err != nil {
		logger.Warn("history snapshot write failed", err)
		result.HistoryWritten = false
		result.Warnings = append(result.Warnings, "history_write_failed")
	} else {
		result.PrunedVersions = s.pruneHistory(wctx, result)
	}

	if cacheErr := s.cache.Set(ctx, cacheKeyCurrent, cfg, 0); cacheErr != nil {
		logger.Warn("config cache refresh failed", cacheErr)
	}

	return result, nil
}

func (s *configService) Versions(ctx context.Context) ([]siteconfig.ConfigVersion, error) {
	vctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	versions, err := s.repo.ListVersions(vctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", siteconfig.ErrStoreUnavailable, err)
	}
	return versions, nil
}

func (s *configService) Restore(ctx context.Context, ts int64) (*siteconfig.SaveResult, error) {
	rctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.repo.LoadVersion(rctx, ts)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, siteconfig.ErrVersionNotFound
		}
		return nil, fmt.Errorf("%w: %v", siteconfig.ErrStoreUnavailable, err)
	}

	return s.Save(ctx, raw)
}

// nextTimestamp hands out strictly increasing history keys. Two saves
// landing in the same millisecond must not share a snapshot address.
func (s *configService) nextTimestamp() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := time.Now().UnixMilli()
	if ts <= s.lastTS {
		ts = s.lastTS + 1
	}
	s.lastTS = ts
	return ts
}

// pruneHistory keeps the newest historyKeep snapshots. Failures only
// downgrade to warnings.
func (s *configService) pruneHistory(ctx context.Context, result *siteconfig.SaveResult) int {
	versions, err := s.repo.ListVersions(ctx)
	if err != nil {
		logger.Warn("history listing for prune failed", err)
		result.Warnings = append(result.Warnings, "history_prune_failed")
		return 0
	}

	pruned := 0
	for _, v := range versions[min(historyKeep, len(versions)):] {
		if err := s.repo.DeleteVersion(ctx, v.Timestamp); err != nil {
			logger.Warn("history prune delete failed", err)
			result.Warnings = append(result.Warnings, "history_prune_failed")
			continue
		}
		pruned++
	}
	return pruned
}

// parsePayload enforces the minimal shape contract: a JSON object that
// unmarshals into SiteConfig. Arrays, scalars and malformed input fail
// fast with ErrInvalidPayload before anything is written.
func parsePayload(raw []byte) (siteconfig.SiteConfig, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil || probe == nil {
		// probe == nil catches a literal "null" body
		return siteconfig.SiteConfig{}, siteconfig.ErrInvalidPayload
	}

	var cfg siteconfig.SiteConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return siteconfig.SiteConfig{}, siteconfig.ErrInvalidPayload
	}
	return cfg, nil
}
