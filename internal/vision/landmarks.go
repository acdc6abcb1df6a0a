package vision

import (
	"image"
)

// Landmarks holds the facial measurements the geometry classifier needs.
// Widths are measured in pixels along horizontal scan lines of the face box.
type Landmarks struct {
	FaceWidth     float64
	FaceHeight    float64
	JawWidth      float64
	ForeheadWidth float64
}

// EstimateLandmarks measures face proportions inside a detected face box by
// scanning skin-toned pixel runs at three heights: forehead near the top,
// cheeks at the middle, jaw near the bottom.
func EstimateLandmarks(img image.Image, face image.Rectangle) Landmarks {
	face = face.Intersect(img.Bounds())
	if face.Empty() {
		return Landmarks{}
	}

	height := float64(face.Dy())
	foreheadY := face.Min.Y + int(0.2*height)
	cheekY := face.Min.Y + face.Dy()/2
	jawY := face.Min.Y + int(0.8*height)

	forehead := skinRunWidth(img, face, foreheadY)
	cheek := skinRunWidth(img, face, cheekY)
	jaw := skinRunWidth(img, face, jawY)

	// A washed-out scan line falls back to the box width so ratios stay
	// defined for low-quality crops.
	fallback := float64(face.Dx())
	if forehead == 0 {
		forehead = fallback
	}
	if cheek == 0 {
		cheek = fallback
	}
	if jaw == 0 {
		jaw = fallback
	}

	return Landmarks{
		FaceWidth:     cheek,
		FaceHeight:    height,
		JawWidth:      jaw,
		ForeheadWidth: forehead,
	}
}

// skinRunWidth measures the widest contiguous run of skin-toned pixels on
// one scan line, averaged over the line and its two neighbors to smooth
// noise.
func skinRunWidth(img image.Image, face image.Rectangle, y int) float64 {
	total := 0.0
	lines := 0
	for dy := -1; dy <= 1; dy++ {
		line := y + dy
		if line < face.Min.Y || line >= face.Max.Y {
			continue
		}
		total += float64(widestSkinRun(img, face.Min.X, face.Max.X, line))
		lines++
	}
	if lines == 0 {
		return 0
	}
	return total / float64(lines)
}

func widestSkinRun(img image.Image, x0, x1, y int) int {
	best := 0
	run := 0
	for x := x0; x < x1; x++ {
		if isSkinTone(img.At(x, y).RGBA()) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// isSkinTone applies the standard YCbCr chrominance gate for skin pixels
// (77 <= Cb <= 127, 133 <= Cr <= 173).
func isSkinTone(r, g, b, _ uint32) bool {
	rf := float64(r >> 8)
	gf := float64(g >> 8)
	bf := float64(b >> 8)

	cb := 128 - 0.168736*rf - 0.331264*gf + 0.5*bf
	cr := 128 + 0.5*rf - 0.418688*gf - 0.081312*bf

	return cb >= 77 && cb <= 127 && cr >= 133 && cr <= 173
}
