package analyses

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use. It
// backs local development when no DATABASE_URL is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Analysis
	now  func() time.Time
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID: make(map[string]Analysis),
		now:  time.Now,
	}
}

// Create stores the analysis.
func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[analysis.ID] = analysis
	return nil
}

// GetByID returns an analysis by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.byID[analysisID]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

// UpdateStatus applies upd to an existing analysis. Lifecycle timestamps not
// supplied explicitly are filled from the transition: entering processing
// sets StartedAt, entering a terminal status sets CompletedAt.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, analysisID string, upd Update) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	analysis, ok := r.byID[analysisID]
	if !ok {
		return ErrNotFound
	}

	analysis.Status = upd.Status
	if upd.FaceShape != nil {
		analysis.FaceShape = upd.FaceShape
	}
	if upd.ColorSeason != nil {
		analysis.ColorSeason = upd.ColorSeason
	}
	if upd.FacesDetected != nil {
		analysis.FacesDetected = *upd.FacesDetected
	}
	if upd.ErrorDetail != nil {
		analysis.ErrorDetail = upd.ErrorDetail
	}
	if upd.StartedAt != nil {
		analysis.StartedAt = upd.StartedAt
	} else if upd.Status == StatusProcessing && analysis.StartedAt == nil {
		now := r.now().UTC()
		analysis.StartedAt = &now
	}
	if upd.CompletedAt != nil {
		analysis.CompletedAt = upd.CompletedAt
	} else if (upd.Status == StatusCompleted || upd.Status == StatusFailed) && analysis.CompletedAt == nil {
		now := r.now().UTC()
		analysis.CompletedAt = &now
	}

	r.byID[analysisID] = analysis
	return nil
}
