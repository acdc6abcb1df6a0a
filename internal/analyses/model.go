package analyses

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Analysis represents one image analysis job.
type Analysis struct {
	ID            string     `json:"id"`
	Status        string     `json:"status"`
	FileName      string     `json:"fileName"`
	StorageKey    string     `json:"storageKey"`
	FaceShape     *string    `json:"faceShape,omitempty"`
	ColorSeason   *string    `json:"colorSeason,omitempty"`
	FacesDetected int        `json:"facesDetected"`
	ErrorDetail   *string    `json:"errorDetail,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}
