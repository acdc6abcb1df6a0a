package analyses

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis record.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
	id, status, file_name, storage_key, face_shape, color_season,
	faces_detected, error_detail, created_at, started_at, completed_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.Status,
		analysis.FileName,
		analysis.StorageKey,
		analysis.FaceShape,
		analysis.ColorSeason,
		analysis.FacesDetected,
		analysis.ErrorDetail,
		analysis.CreatedAt,
		analysis.StartedAt,
		analysis.CompletedAt,
	)
	return err
}

// GetByID returns an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT id, status, file_name, storage_key, face_shape, color_season,
       faces_detected, error_detail, created_at, started_at, completed_at
FROM analyses
WHERE id = $1
LIMIT 1`

	var a Analysis
	var faceShape, colorSeason, errorDetail sql.NullString
	var startedAt, completedAt sql.NullTime

	err := r.DB.QueryRowContext(ctx, query, analysisID).Scan(
		&a.ID,
		&a.Status,
		&a.FileName,
		&a.StorageKey,
		&faceShape,
		&colorSeason,
		&a.FacesDetected,
		&errorDetail,
		&a.CreatedAt,
		&startedAt,
		&completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, ErrNotFound
	}
	if err != nil {
		return Analysis{}, err
	}

	if faceShape.Valid {
		a.FaceShape = &faceShape.String
	}
	if colorSeason.Valid {
		a.ColorSeason = &colorSeason.String
	}
	if errorDetail.Valid {
		a.ErrorDetail = &errorDetail.String
	}
	if startedAt.Valid {
		t := startedAt.Time
		a.StartedAt = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		a.CompletedAt = &t
	}
	return a, nil
}

// UpdateStatus applies upd to an existing analysis. COALESCE keeps stored
// values where the update carries nil; lifecycle timestamps fall back to
// now() on the matching transition.
func (r *PGRepo) UpdateStatus(ctx context.Context, analysisID string, upd Update) error {
	const query = `
UPDATE analyses
SET status = $2,
    face_shape = COALESCE($3, face_shape),
    color_season = COALESCE($4, color_season),
    faces_detected = COALESCE($5, faces_detected),
    error_detail = COALESCE($6, error_detail),
    started_at = COALESCE($7, started_at, CASE WHEN $2 = 'processing' THEN now() END),
    completed_at = COALESCE($8, completed_at, CASE WHEN $2 IN ('completed', 'failed') THEN now() END)
WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query,
		analysisID,
		upd.Status,
		upd.FaceShape,
		upd.ColorSeason,
		upd.FacesDetected,
		upd.ErrorDetail,
		upd.StartedAt,
		upd.CompletedAt,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
