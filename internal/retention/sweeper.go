// Package retention clears out aged uploads and expired in-memory state on a
// schedule so a long-running process does not accumulate stale data.
package retention

import (
	"context"
	"time"

	"chromalyze-backend/internal/shared/storage/object"
	"chromalyze-backend/internal/shared/telemetry"
)

const (
	// DefaultFileMaxAge is how long stored uploads are kept.
	DefaultFileMaxAge = 24 * time.Hour

	DefaultFileInterval    = time.Hour
	DefaultCacheInterval   = 5 * time.Minute
	DefaultLimiterInterval = time.Minute
)

// MemorySweeper is any in-memory store that can drop expired entries and
// report how many it removed.
type MemorySweeper interface {
	Sweep() int
}

// Sweeper runs periodic best-effort cleanup: stored uploads past their
// retention age, expired cache entries, and idle rate-limiter clients.
// Failures are logged and never stop the loop.
type Sweeper struct {
	Store      object.ObjectStore
	FileMaxAge time.Duration

	Cache   MemorySweeper
	Limiter MemorySweeper

	FileInterval    time.Duration
	CacheInterval   time.Duration
	LimiterInterval time.Duration

	Now func() time.Time
}

func (s *Sweeper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Sweeper) intervals() (files, cache, limiter time.Duration) {
	files, cache, limiter = s.FileInterval, s.CacheInterval, s.LimiterInterval
	if files <= 0 {
		files = DefaultFileInterval
	}
	if cache <= 0 {
		cache = DefaultCacheInterval
	}
	if limiter <= 0 {
		limiter = DefaultLimiterInterval
	}
	return files, cache, limiter
}

// Run blocks until ctx is cancelled, firing each sweep on its own interval.
// Callers start it with `go sweeper.Run(ctx)`.
func (s *Sweeper) Run(ctx context.Context) {
	fileEvery, cacheEvery, limiterEvery := s.intervals()

	fileTicker := time.NewTicker(fileEvery)
	cacheTicker := time.NewTicker(cacheEvery)
	limiterTicker := time.NewTicker(limiterEvery)
	defer fileTicker.Stop()
	defer cacheTicker.Stop()
	defer limiterTicker.Stop()

	telemetry.Info("retention.started", map[string]any{
		"file_interval_s":    fileEvery.Seconds(),
		"cache_interval_s":   cacheEvery.Seconds(),
		"limiter_interval_s": limiterEvery.Seconds(),
	})

	for {
		select {
		case <-ctx.Done():
			telemetry.Info("retention.stopped", nil)
			return
		case <-fileTicker.C:
			s.SweepFiles(ctx)
		case <-cacheTicker.C:
			s.SweepCache()
		case <-limiterTicker.C:
			s.SweepLimiter()
		}
	}
}

// SweepFiles deletes stored uploads older than the retention age. Each delete
// is independent; one failure does not stop the rest.
func (s *Sweeper) SweepFiles(ctx context.Context) int {
	if s.Store == nil {
		return 0
	}
	maxAge := s.FileMaxAge
	if maxAge <= 0 {
		maxAge = DefaultFileMaxAge
	}
	cutoff := s.now().Add(-maxAge)

	keys, err := s.Store.ListOlderThan(ctx, cutoff)
	if err != nil {
		telemetry.Error("retention.list_failed", map[string]any{"error": err.Error()})
		return 0
	}

	removed := 0
	for _, key := range keys {
		if err := s.Store.Delete(ctx, key); err != nil {
			telemetry.Error("retention.delete_failed", map[string]any{
				"storage_key": key,
				"error":       err.Error(),
			})
			continue
		}
		removed++
	}
	if removed > 0 {
		telemetry.Info("retention.files_swept", map[string]any{"removed": removed})
	}
	return removed
}

// SweepCache drops expired cached responses.
func (s *Sweeper) SweepCache() int {
	if s.Cache == nil {
		return 0
	}
	removed := s.Cache.Sweep()
	if removed > 0 {
		telemetry.Info("retention.cache_swept", map[string]any{"removed": removed})
	}
	return removed
}

// SweepLimiter drops rate-limiter clients with no activity in the window.
func (s *Sweeper) SweepLimiter() int {
	if s.Limiter == nil {
		return 0
	}
	removed := s.Limiter.Sweep()
	if removed > 0 {
		telemetry.Info("retention.limiter_swept", map[string]any{"removed": removed})
	}
	return removed
}
