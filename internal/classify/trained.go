package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"math"
	"os"

	"chromalyze-backend/internal/shared/telemetry"
	"chromalyze-backend/internal/vision"
)

// faceCropMargin widens the detected face box before cropping so the crop
// covers hairline and jaw the way the training data did.
const faceCropMargin = 0.2

// trainedWeights is the on-disk artifact format: a linear softmax classifier
// over a flattened normalized grayscale crop.
type trainedWeights struct {
	InputSize int         `json:"input_size"`
	Classes   []string    `json:"classes"`
	Weights   [][]float64 `json:"weights"`
	Biases    []float64   `json:"biases"`
}

// TrainedStage classifies face shape with a pre-trained linear model. When no
// weights artifact exists the stage is constructed disabled and declines
// every subject.
type TrainedStage struct {
	model *trainedWeights
}

// NewTrainedStage loads the weights artifact at path. A missing file is not
// an error; the stage just stays disabled. A present but malformed file is
// reported.
func NewTrainedStage(path string) (*TrainedStage, error) {
	if path == "" {
		return &TrainedStage{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			telemetry.Info("classify.trained_disabled", map[string]any{"path": path})
			return &TrainedStage{}, nil
		}
		return nil, fmt.Errorf("read weights: %w", err)
	}

	var w trainedWeights
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parse weights: %w", err)
	}
	if err := validateWeights(&w); err != nil {
		return nil, fmt.Errorf("invalid weights artifact: %w", err)
	}
	return &TrainedStage{model: &w}, nil
}

func validateWeights(w *trainedWeights) error {
	if w.InputSize <= 0 {
		return fmt.Errorf("input_size must be positive")
	}
	if len(w.Classes) == 0 {
		return fmt.Errorf("classes is empty")
	}
	if len(w.Weights) != len(w.Classes) || len(w.Biases) != len(w.Classes) {
		return fmt.Errorf("weights/biases rows must match classes")
	}
	want := w.InputSize * w.InputSize
	for i, row := range w.Weights {
		if len(row) != want {
			return fmt.Errorf("weights row %d has %d values, want %d", i, len(row), want)
		}
	}
	return nil
}

func (s *TrainedStage) Name() string { return "trained" }

// Enabled reports whether a weights artifact was loaded.
func (s *TrainedStage) Enabled() bool { return s.model != nil }

func (s *TrainedStage) Classify(ctx context.Context, subj *Subject) (Result, error) {
	if s.model == nil {
		return Result{}, fmt.Errorf("%w: no model loaded", ErrDecline)
	}
	if subj.Image == nil {
		return Result{}, fmt.Errorf("%w: no decoded image", ErrDecline)
	}
	face, ok := subj.LargestFace()
	if !ok {
		return Result{}, fmt.Errorf("%w: no face detected", ErrDecline)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	rect := expandRect(face.Rect, faceCropMargin)
	pixels := vision.CropScaleGray(subj.Image, rect, s.model.InputSize)
	if pixels == nil {
		return Result{}, fmt.Errorf("%w: empty face crop", ErrDecline)
	}

	probs := s.softmax(pixels)
	bestIdx := 0
	for i := range probs {
		if probs[i] > probs[bestIdx] {
			bestIdx = i
		}
	}

	return Result{
		FaceShape:  s.model.Classes[bestIdx],
		Confidence: probs[bestIdx],
		Stage:      s.Name(),
	}, nil
}

func (s *TrainedStage) softmax(pixels []float64) []float64 {
	logits := make([]float64, len(s.model.Classes))
	for i, row := range s.model.Weights {
		sum := s.model.Biases[i]
		for j, p := range pixels {
			sum += row[j] * p
		}
		logits[i] = sum
	}

	maxLogit := logits[0]
	for _, l := range logits[1:] {
		if l > maxLogit {
			maxLogit = l
		}
	}
	total := 0.0
	out := make([]float64, len(logits))
	for i, l := range logits {
		out[i] = math.Exp(l - maxLogit)
		total += out[i]
	}
	for i := range out {
		out[i] /= total
	}
	return out
}

func expandRect(r image.Rectangle, margin float64) image.Rectangle {
	dx := int(float64(r.Dx()) * margin / 2)
	dy := int(float64(r.Dy()) * margin / 2)
	return image.Rect(r.Min.X-dx, r.Min.Y-dy, r.Max.X+dx, r.Max.Y+dy)
}
