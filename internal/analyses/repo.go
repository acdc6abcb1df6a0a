package analyses

import (
	"context"
	"time"
)

// Update carries the mutable fields of an analysis record. Nil pointers leave
// the stored value untouched.
type Update struct {
	Status        string
	FaceShape     *string
	ColorSeason   *string
	FacesDetected *int
	ErrorDetail   *string
	StartedAt     *time.Time
	CompletedAt   *time.Time
}

// Repo defines persistence operations for analyses.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, analysisID string) (Analysis, error)
	UpdateStatus(ctx context.Context, analysisID string, upd Update) error
}
