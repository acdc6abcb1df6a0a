package classify

import (
	"context"
	"errors"

	"chromalyze-backend/internal/shared/telemetry"
)

// Stage is one classifier in the cascade.
type Stage interface {
	Name() string
	Classify(ctx context.Context, subj *Subject) (Result, error)
}

// Cascade runs stages in order, filling face shape and color season from the
// first stage that supplies each. Stages decline with ErrDecline; any other
// error is logged and treated as a decline so later stages still run.
type Cascade struct {
	stages        []Stage
	minConfidence map[string]float64
}

// NewCascade builds a cascade over the given stages. minConfidence maps stage
// names to the confidence a result must reach to be accepted; absent entries
// accept any confidence.
func NewCascade(stages []Stage, minConfidence map[string]float64) *Cascade {
	if minConfidence == nil {
		minConfidence = map[string]float64{}
	}
	return &Cascade{stages: stages, minConfidence: minConfidence}
}

// Classify runs the cascade. The returned result always carries a known face
// shape and season; stages that produced nothing are covered by defaults.
func (c *Cascade) Classify(ctx context.Context, subj *Subject) Result {
	out := Result{Stage: "default"}

	for _, stage := range c.stages {
		if out.FaceShape != "" && out.ColorSeason != "" {
			break
		}

		res, err := stage.Classify(ctx, subj)
		if err != nil {
			if !errors.Is(err, ErrDecline) {
				telemetry.Error("classify.stage_error", map[string]any{
					"stage": stage.Name(),
					"error": err.Error(),
				})
			}
			continue
		}
		if min, ok := c.minConfidence[stage.Name()]; ok && res.Confidence < min {
			telemetry.Info("classify.below_threshold", map[string]any{
				"stage":      stage.Name(),
				"confidence": res.Confidence,
				"threshold":  min,
			})
			continue
		}

		accepted := false
		if out.FaceShape == "" && KnownFaceShape(res.FaceShape) {
			out.FaceShape = res.FaceShape
			accepted = true
		}
		if out.ColorSeason == "" && KnownSeason(res.ColorSeason) {
			out.ColorSeason = res.ColorSeason
			accepted = true
		}
		if accepted {
			out.Stage = stage.Name()
			if res.Confidence > out.Confidence {
				out.Confidence = res.Confidence
			}
		}
	}

	if out.FaceShape == "" {
		out.FaceShape = DefaultFaceShape
	}
	if out.ColorSeason == "" {
		out.ColorSeason = DefaultColorSeason
	}
	return out
}
