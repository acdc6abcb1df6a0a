package object

import (
	"context"
	"io"
	"time"
)

// ObjectStore defines the contract for saving, retrieving, and expiring
// uploaded image objects. Keys are flat names of the form "<id>.<ext>".
type ObjectStore interface {
	Save(ctx context.Context, key string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	ListOlderThan(ctx context.Context, cutoff time.Time) ([]string, error)
}
