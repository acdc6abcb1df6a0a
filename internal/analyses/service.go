package analyses

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"chromalyze-backend/internal/classify"
	"chromalyze-backend/internal/shared/storage/object"
	"chromalyze-backend/internal/shared/telemetry"
	"chromalyze-backend/internal/shared/util"
	"chromalyze-backend/internal/vision"
)

// DefaultMaxFileSize caps uploads at 10 MiB.
const DefaultMaxFileSize = 10 << 20

// allowedExtensions is the upload allow-list.
var allowedExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "bmp": true,
}

// Classifier runs the classification cascade over a prepared subject.
type Classifier interface {
	Classify(ctx context.Context, subj *classify.Subject) classify.Result
}

// Service owns the analysis job lifecycle: validation, storage, asynchronous
// classification, and staleness handling on reads.
type Service struct {
	Repo     Repo
	Store    object.ObjectStore
	Detector vision.Detector
	Cascade  Classifier

	// MaxFileSize defaults to DefaultMaxFileSize when zero.
	MaxFileSize int64

	// StalenessHorizon marks processing jobs older than this as failed on
	// read. Zero disables the check.
	StalenessHorizon time.Duration

	Now func() time.Time

	mu   sync.Mutex
	done map[string]chan struct{}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) maxFileSize() int64 {
	if s.MaxFileSize > 0 {
		return s.MaxFileSize
	}
	return DefaultMaxFileSize
}

// Submit validates and stores an upload, creates a pending record, and kicks
// off asynchronous classification. Validation failures leave no file and no
// record.
func (s *Service) Submit(ctx context.Context, fileName string, size int64, r io.Reader) (Analysis, error) {
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Analysis{}, ErrMissingFileName
	}
	ext := util.FileExt(sanitized)
	if !allowedExtensions[ext] {
		return Analysis{}, fmt.Errorf("%w: .%s", ErrInvalidFileType, ext)
	}
	if size <= 0 {
		return Analysis{}, ErrEmptyFile
	}
	if size > s.maxFileSize() {
		return Analysis{}, ErrFileTooLarge
	}

	id := uuid.NewString()
	key := id + "." + ext

	// The size header can lie, so the copy itself is capped too.
	written, err := s.Store.Save(ctx, key, io.LimitReader(r, s.maxFileSize()+1))
	if err != nil {
		return Analysis{}, fmt.Errorf("store upload: %w", err)
	}
	if written > s.maxFileSize() {
		s.cleanupStored(ctx, key)
		return Analysis{}, ErrFileTooLarge
	}
	if written == 0 {
		s.cleanupStored(ctx, key)
		return Analysis{}, ErrEmptyFile
	}

	analysis := Analysis{
		ID:         id,
		Status:     StatusPending,
		FileName:   sanitized,
		StorageKey: key,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.Repo.Create(ctx, analysis); err != nil {
		s.cleanupStored(ctx, key)
		return Analysis{}, fmt.Errorf("create record: %w", err)
	}

	telemetry.Info("analysis.status", map[string]any{
		"analysis_id": id,
		"status":      StatusPending,
		"file_name":   sanitized,
		"size_bytes":  written,
	})

	s.mu.Lock()
	if s.done == nil {
		s.done = make(map[string]chan struct{})
	}
	ch := make(chan struct{})
	s.done[id] = ch
	s.mu.Unlock()

	go s.runAnalysis(context.Background(), id, key, ch)

	return analysis, nil
}

// Wait blocks until the job's background goroutine finishes. Unknown ids
// return immediately.
func (s *Service) Wait(analysisID string) {
	s.mu.Lock()
	ch, ok := s.done[analysisID]
	s.mu.Unlock()
	if ok {
		<-ch
	}
}

func (s *Service) runAnalysis(ctx context.Context, analysisID, storageKey string, done chan struct{}) {
	// The map entry goes away before the channel closes, so a waiter that
	// unblocks never observes the finished job still tracked.
	defer func() {
		s.mu.Lock()
		delete(s.done, analysisID)
		s.mu.Unlock()
		close(done)
	}()
	defer func() {
		if r := recover(); r != nil {
			s.failAnalysis(ctx, analysisID, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := s.Repo.UpdateStatus(ctx, analysisID, Update{Status: StatusProcessing}); err != nil {
		telemetry.Error("analysis.update_failed", map[string]any{
			"analysis_id": analysisID,
			"error":       err.Error(),
		})
		return
	}
	telemetry.Info("analysis.status", map[string]any{
		"analysis_id": analysisID,
		"status":      StatusProcessing,
	})

	rc, err := s.Store.Open(ctx, storageKey)
	if err != nil {
		s.failAnalysis(ctx, analysisID, fmt.Errorf("open stored image: %w", err))
		return
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		s.failAnalysis(ctx, analysisID, fmt.Errorf("read stored image: %w", err))
		return
	}

	subj := s.buildSubject(analysisID, data)
	res := s.Cascade.Classify(ctx, subj)

	faces := len(subj.Faces)
	if err := s.Repo.UpdateStatus(ctx, analysisID, Update{
		Status:        StatusCompleted,
		FaceShape:     &res.FaceShape,
		ColorSeason:   &res.ColorSeason,
		FacesDetected: &faces,
	}); err != nil {
		telemetry.Error("analysis.update_failed", map[string]any{
			"analysis_id": analysisID,
			"error":       err.Error(),
		})
		return
	}

	telemetry.Info("analysis.status", map[string]any{
		"analysis_id":    analysisID,
		"status":         StatusCompleted,
		"face_shape":     res.FaceShape,
		"color_season":   res.ColorSeason,
		"faces_detected": faces,
		"stage":          res.Stage,
		"confidence":     res.Confidence,
	})
}

// buildSubject decodes the upload and gathers faces and landmarks. Decode
// failures are not fatal; stages that need pixels decline and the terminal
// stage supplies defaults.
func (s *Service) buildSubject(analysisID string, data []byte) *classify.Subject {
	subj := &classify.Subject{Bytes: data}

	img, format, err := vision.Decode(data)
	if err != nil {
		telemetry.Info("analysis.decode_failed", map[string]any{
			"analysis_id": analysisID,
			"error":       err.Error(),
		})
		return subj
	}
	subj.Image = img
	subj.Format = format

	if s.Detector != nil {
		subj.Faces = s.Detector.Detect(img)
	}
	if face, ok := subj.LargestFace(); ok {
		lm := vision.EstimateLandmarks(img, face.Rect)
		subj.Landmarks = &lm
	}
	return subj
}

func (s *Service) failAnalysis(ctx context.Context, analysisID string, cause error) {
	detail := cause.Error()
	if err := s.Repo.UpdateStatus(ctx, analysisID, Update{
		Status:      StatusFailed,
		ErrorDetail: &detail,
	}); err != nil {
		telemetry.Error("analysis.update_failed", map[string]any{
			"analysis_id": analysisID,
			"error":       err.Error(),
			"cause":       detail,
		})
		return
	}
	telemetry.Error("analysis.status", map[string]any{
		"analysis_id": analysisID,
		"status":      StatusFailed,
		"error":       detail,
	})
}

// Get returns a job by id. A processing job older than the staleness horizon
// is reported as failed; the record is updated best-effort so later reads
// agree.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		return Analysis{}, err
	}

	if s.StalenessHorizon > 0 && analysis.Status == StatusProcessing && analysis.StartedAt != nil {
		if s.now().Sub(*analysis.StartedAt) > s.StalenessHorizon {
			detail := "analysis timed out"
			analysis.Status = StatusFailed
			analysis.ErrorDetail = &detail
			if err := s.Repo.UpdateStatus(ctx, analysisID, Update{
				Status:      StatusFailed,
				ErrorDetail: &detail,
			}); err != nil {
				telemetry.Error("analysis.update_failed", map[string]any{
					"analysis_id": analysisID,
					"error":       err.Error(),
				})
			}
		}
	}
	return analysis, nil
}

func (s *Service) cleanupStored(ctx context.Context, key string) {
	if err := s.Store.Delete(ctx, key); err != nil {
		telemetry.Error("analysis.cleanup_failed", map[string]any{
			"storage_key": key,
			"error":       err.Error(),
		})
	}
}
