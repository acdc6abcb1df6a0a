package vision

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"testing"

	"golang.org/x/image/bmp"
)

func TestDecodeSupportedFormats(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))

	var pngBuf, jpegBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := jpeg.Encode(&jpegBuf, src, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatalf("encode bmp: %v", err)
	}

	tests := []struct {
		format string
		data   []byte
	}{
		{format: "png", data: pngBuf.Bytes()},
		{format: "jpeg", data: jpegBuf.Bytes()},
		{format: "bmp", data: bmpBuf.Bytes()},
	}
	for _, tt := range tests {
		img, format, err := Decode(tt.data)
		if err != nil {
			t.Fatalf("%s: %v", tt.format, err)
		}
		if format != tt.format {
			t.Fatalf("expected format %s, got %s", tt.format, format)
		}
		if img.Bounds().Dx() != 8 {
			t.Fatalf("%s: wrong bounds %v", tt.format, img.Bounds())
		}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, _, err := Decode([]byte("not an image")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestCropScaleGrayNormalizes(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	pixels := CropScaleGray(img, image.Rect(0, 0, 32, 32), 8)
	if len(pixels) != 64 {
		t.Fatalf("expected 64 pixels, got %d", len(pixels))
	}
	for i, p := range pixels {
		if math.Abs(p-1.0) > 1e-9 {
			t.Fatalf("pixel %d: expected 1.0, got %f", i, p)
		}
	}

	if got := CropScaleGray(img, image.Rect(100, 100, 120, 120), 8); got != nil {
		t.Fatalf("expected nil for out-of-bounds crop")
	}
}

var skin = color.NRGBA{R: 224, G: 172, B: 140, A: 255}

func TestIsSkinTone(t *testing.T) {
	r, g, b, a := skin.RGBA()
	if !isSkinTone(r, g, b, a) {
		t.Fatalf("expected skin tone to match")
	}
	blue := color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	r, g, b, a = blue.RGBA()
	if isSkinTone(r, g, b, a) {
		t.Fatalf("expected blue to be rejected")
	}
}

// paintTaperedFace draws a skin-toned shape that narrows toward the bottom,
// so the forehead scan line is wider than the jaw scan line.
func paintTaperedFace(img *image.NRGBA, face image.Rectangle) {
	height := face.Dy()
	for y := face.Min.Y; y < face.Max.Y; y++ {
		progress := float64(y-face.Min.Y) / float64(height)
		halfWidth := int(float64(face.Dx()) / 2 * (1.0 - 0.5*progress))
		centerX := face.Min.X + face.Dx()/2
		for x := centerX - halfWidth; x < centerX+halfWidth; x++ {
			img.SetNRGBA(x, y, skin)
		}
	}
}

func TestEstimateLandmarksTaperedFace(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 120))
	face := image.Rect(10, 10, 90, 110)
	paintTaperedFace(img, face)

	lm := EstimateLandmarks(img, face)
	if lm.ForeheadWidth <= lm.JawWidth {
		t.Fatalf("expected forehead wider than jaw, got forehead=%f jaw=%f", lm.ForeheadWidth, lm.JawWidth)
	}
	if lm.FaceHeight != 100 {
		t.Fatalf("expected face height 100, got %f", lm.FaceHeight)
	}
	ratio := lm.JawWidth / lm.ForeheadWidth
	if ratio >= 0.8 {
		t.Fatalf("expected strongly tapered jaw/forehead ratio, got %f", ratio)
	}
}

func TestEstimateLandmarksEmptyBox(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	lm := EstimateLandmarks(img, image.Rect(50, 50, 60, 60))
	if lm != (Landmarks{}) {
		t.Fatalf("expected zero landmarks, got %+v", lm)
	}
}

func TestRGBToHSVRanges(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		h, s, v float64
	}{
		{name: "red", r: 255, g: 0, b: 0, h: 0, s: 255, v: 255},
		{name: "green", r: 0, g: 255, b: 0, h: 60, s: 255, v: 255},
		{name: "blue", r: 0, g: 0, b: 255, h: 120, s: 255, v: 255},
		{name: "black", r: 0, g: 0, b: 0, h: 0, s: 0, v: 0},
		{name: "white", r: 255, g: 255, b: 255, h: 0, s: 0, v: 255},
	}
	for _, tt := range tests {
		h, s, v := rgbToHSV(tt.r, tt.g, tt.b)
		if math.Abs(h-tt.h) > 0.5 || math.Abs(s-tt.s) > 0.5 || math.Abs(v-tt.v) > 0.5 {
			t.Fatalf("%s: got h=%f s=%f v=%f, want h=%f s=%f v=%f", tt.name, h, s, v, tt.h, tt.s, tt.v)
		}
	}
}

func TestRegionHSVUniformImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	stats := RegionHSV(img, img.Bounds())
	if math.Abs(stats.Hue) > 0.5 || math.Abs(stats.Saturation-255) > 0.5 || math.Abs(stats.Value-255) > 0.5 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestUndertoneClassification(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want string
	}{
		{name: "warm", a: 130, b: 140, want: "warm"},
		{name: "cool", a: 145, b: 135, want: "cool"},
		{name: "neutral", a: 131, b: 132, want: "neutral"},
	}
	for _, tt := range tests {
		got := Undertone(LabStats{A: tt.a, B: tt.b})
		if got != tt.want {
			t.Fatalf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestRegionLabWarmSkinLeansYellow(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetNRGBA(x, y, skin)
		}
	}
	stats := RegionLab(img, img.Bounds())
	if Undertone(stats) != "warm" {
		t.Fatalf("expected warm undertone for golden skin swatch, got %s (a=%f b=%f)", Undertone(stats), stats.A, stats.B)
	}
}

func TestUnavailableDetectorReportsNoFaces(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	if faces := (UnavailableDetector{}).Detect(img); faces != nil {
		t.Fatalf("expected no faces, got %v", faces)
	}
}
