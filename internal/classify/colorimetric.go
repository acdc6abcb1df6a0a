package classify

import (
	"context"

	"chromalyze-backend/internal/vision"
)

// colorimetricConfidence reflects that the HSV heuristic is a coarse
// last-resort signal.
const colorimetricConfidence = 0.5

// ColorimetricStage derives a color season from average HSV over the face
// region, or the whole image when no face was detected. It is the terminal
// stage and never declines; an undecodable image yields the fixed defaults.
type ColorimetricStage struct{}

func (ColorimetricStage) Name() string { return "colorimetric" }

func (c ColorimetricStage) Classify(ctx context.Context, subj *Subject) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if subj.Image == nil {
		return Result{
			FaceShape:   DefaultFaceShape,
			ColorSeason: DefaultColorSeason,
			Confidence:  0.3,
			Stage:       c.Name(),
		}, nil
	}

	region := subj.Image.Bounds()
	if face, ok := subj.LargestFace(); ok {
		region = face.Rect
	}
	stats := vision.RegionHSV(subj.Image, region)

	return Result{
		ColorSeason: seasonFromHSV(stats),
		Confidence:  colorimetricConfidence,
		Stage:       c.Name(),
	}, nil
}

// seasonFromHSV maps three binary axes onto a season. Hue under 20 or over
// 170 (OpenCV half-degree range) reads as cool; value over 150 as light;
// saturation over 120 as clear.
func seasonFromHSV(stats vision.HSVStats) string {
	cool := stats.Hue < 20 || stats.Hue > 170
	light := stats.Value > 150
	clear := stats.Saturation > 120

	switch {
	case cool && light && clear:
		return "Clear Winter"
	case cool && light:
		return "Light Summer"
	case cool && clear:
		return "Deep Winter"
	case cool:
		return "Soft Summer"
	case light && clear:
		return "Warm Spring"
	case light:
		return "Light Spring"
	case clear:
		return "Deep Autumn"
	default:
		return "Warm Autumn"
	}
}
