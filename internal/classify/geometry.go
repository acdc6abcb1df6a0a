package classify

import (
	"context"
	"fmt"
	"image"
	"math"

	"chromalyze-backend/internal/vision"
)

// geometryConfidence is the fixed confidence of the ratio rule table.
const geometryConfidence = 0.85

// GeometryStage classifies face shape from landmark proportions and color
// season from Lab skin statistics. It declines when no landmarks were
// estimated; when skin stats are unusable it yields face shape only.
type GeometryStage struct{}

func (GeometryStage) Name() string { return "geometry" }

func (g GeometryStage) Classify(ctx context.Context, subj *Subject) (Result, error) {
	if subj.Image == nil {
		return Result{}, fmt.Errorf("%w: no decoded image", ErrDecline)
	}
	lm := subj.Landmarks
	if lm == nil || lm.FaceWidth <= 0 || lm.ForeheadWidth <= 0 {
		return Result{}, fmt.Errorf("%w: no landmarks", ErrDecline)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	shape := shapeFromRatios(lm.FaceHeight/lm.FaceWidth, lm.JawWidth/lm.ForeheadWidth)

	res := Result{
		FaceShape:  shape,
		Confidence: geometryConfidence,
		Stage:      g.Name(),
	}
	if face, ok := subj.LargestFace(); ok {
		res.ColorSeason = seasonFromSkinStats(subj.Image, face.Rect)
	}
	return res, nil
}

// shapeFromRatios applies the ratio rule table. Rules are ordered and the
// first match wins; boundary values land on the earlier rule.
func shapeFromRatios(heightWidth, jawForehead float64) string {
	switch {
	case jawForehead < 0.8:
		return "Heart"
	case heightWidth > 1.5:
		return "Oblong"
	case heightWidth >= 1.3 && heightWidth <= 1.5 && jawForehead >= 0.8 && jawForehead <= 1.1:
		return "Oval"
	case heightWidth < 1.3 && jawForehead > 1.1:
		return "Round"
	default:
		return "Square"
	}
}

// seasonFromSkinStats determines a color season from Lab skin measurements:
// undertone from the a/b axes, contrast between skin and hair lightness, and
// chroma. Returns "" when the measurements are unusable.
func seasonFromSkinStats(img image.Image, face image.Rectangle) string {
	skin := vision.RegionLab(img, face)
	if skin.L <= 0 {
		return ""
	}

	// Hair lightness is estimated from the top quarter of the image.
	bounds := img.Bounds()
	hairRect := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+bounds.Dy()/4)
	hair := vision.RegionLab(img, hairRect)

	contrast := math.Abs(skin.L-hair.L) / 100.0
	if contrast > 1.0 {
		contrast = 1.0
	}
	chroma := math.Hypot(skin.A-128, skin.B-128)

	switch vision.Undertone(skin) {
	case "cool":
		switch {
		case contrast > 0.6 && chroma > 15:
			return "Clear Winter"
		case contrast > 0.6:
			return "Cool Winter"
		case skin.L > 60:
			return "Light Summer"
		default:
			return "Soft Summer"
		}
	case "warm":
		switch {
		case contrast > 0.6 && chroma > 15:
			return "Clear Spring"
		case contrast > 0.6:
			return "Deep Autumn"
		case skin.L > 60:
			return "Light Spring"
		default:
			return "Soft Autumn"
		}
	default:
		if contrast > 0.6 {
			return "Deep Winter"
		}
		return "Cool Summer"
	}
}
