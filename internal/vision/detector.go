package vision

import (
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
)

// Face is one detected face region.
type Face struct {
	Rect    image.Rectangle
	Quality float32
}

// Detector locates faces in a decoded image.
type Detector interface {
	Detect(img image.Image) []Face
}

// minDetectionQuality filters low-confidence cascade hits.
const minDetectionQuality = 5.0

// CascadeDetector detects faces with a pigo binary cascade.
type CascadeDetector struct {
	classifier *pigo.Pigo
}

// NewCascadeDetector loads a pigo cascade file from disk.
func NewCascadeDetector(cascadePath string) (*CascadeDetector, error) {
	data, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("read cascade file: %w", err)
	}
	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("unpack cascade: %w", err)
	}
	return &CascadeDetector{classifier: classifier}, nil
}

// Detect runs the cascade over the image and returns clustered face boxes
// ordered as produced by the classifier.
func (d *CascadeDetector) Detect(img image.Image) []Face {
	bounds := img.Bounds()
	cols := bounds.Dx()
	rows := bounds.Dy()
	if cols == 0 || rows == 0 {
		return nil
	}

	src := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			src.Set(x, y, img.At(x, y))
		}
	}
	pixels := pigo.RgbToGrayscale(src)

	minSize := rows / 10
	if minSize < 20 {
		minSize = 20
	}
	params := pigo.CascadeParams{
		MinSize:     minSize,
		MaxSize:     rows,
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := d.classifier.RunCascade(params, 0.0)
	dets = d.classifier.ClusterDetections(dets, 0.2)

	var faces []Face
	for _, det := range dets {
		if det.Q < minDetectionQuality {
			continue
		}
		half := det.Scale / 2
		rect := image.Rect(det.Col-half, det.Row-half, det.Col+half, det.Row+half)
		rect = rect.Add(bounds.Min).Intersect(bounds)
		if rect.Empty() {
			continue
		}
		faces = append(faces, Face{Rect: rect, Quality: det.Q})
	}
	return faces
}

// UnavailableDetector is used when no cascade file is configured. It reports
// zero faces so downstream stages fall back to whole-image analysis.
type UnavailableDetector struct{}

func (UnavailableDetector) Detect(img image.Image) []Face { return nil }
