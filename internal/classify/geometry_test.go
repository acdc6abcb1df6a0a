package classify

import (
	"context"
	"image"
	"testing"

	"chromalyze-backend/internal/vision"
)

func TestShapeFromRatios(t *testing.T) {
	tests := []struct {
		name        string
		heightWidth float64
		jawForehead float64
		want        string
	}{
		{name: "narrow jaw is heart", heightWidth: 1.4, jawForehead: 0.79, want: "Heart"},
		{name: "tall face is oblong", heightWidth: 1.51, jawForehead: 1.0, want: "Oblong"},
		{name: "balanced is oval", heightWidth: 1.4, jawForehead: 1.0, want: "Oval"},
		{name: "short wide jaw is round", heightWidth: 1.2, jawForehead: 1.2, want: "Round"},
		{name: "short balanced jaw is square", heightWidth: 1.2, jawForehead: 1.0, want: "Square"},
		{name: "heart boundary goes to heart", heightWidth: 1.6, jawForehead: 0.79, want: "Heart"},
		{name: "oblong boundary stays oval", heightWidth: 1.5, jawForehead: 1.0, want: "Oval"},
		{name: "jaw boundary stays oval", heightWidth: 1.3, jawForehead: 0.8, want: "Oval"},
	}
	for _, tt := range tests {
		if got := shapeFromRatios(tt.heightWidth, tt.jawForehead); got != tt.want {
			t.Fatalf("%s: shapeFromRatios(%.2f, %.2f) = %s, want %s", tt.name, tt.heightWidth, tt.jawForehead, got, tt.want)
		}
	}
}

func TestGeometryDeclinesWithoutLandmarks(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	_, err := GeometryStage{}.Classify(context.Background(), &Subject{Image: img})
	if err == nil {
		t.Fatalf("expected decline")
	}

	_, err = GeometryStage{}.Classify(context.Background(), &Subject{})
	if err == nil {
		t.Fatalf("expected decline for nil image")
	}
}

func TestGeometryClassifiesOvalFromLandmarks(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 140))
	subj := &Subject{
		Image: img,
		Landmarks: &vision.Landmarks{
			FaceWidth:     80,
			FaceHeight:    112,
			JawWidth:      76,
			ForeheadWidth: 80,
		},
	}
	res, err := GeometryStage{}.Classify(context.Background(), subj)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.FaceShape != "Oval" {
		t.Fatalf("expected Oval, got %s", res.FaceShape)
	}
	if res.Confidence != 0.85 {
		t.Fatalf("expected confidence 0.85, got %f", res.Confidence)
	}
	if res.ColorSeason != "" {
		t.Fatalf("expected no season without a detected face, got %s", res.ColorSeason)
	}
}
