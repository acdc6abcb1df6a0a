package vision

import (
	"image"
	"math"
)

// HSVStats are per-channel averages over a region, using the OpenCV-style
// ranges: hue in [0, 180), saturation and value in [0, 255].
type HSVStats struct {
	Hue        float64
	Saturation float64
	Value      float64
}

// RegionHSV averages HSV channels over rect. An empty intersection with the
// image bounds yields zero stats.
func RegionHSV(img image.Image, rect image.Rectangle) HSVStats {
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return HSVStats{}
	}

	var sumH, sumS, sumV float64
	count := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			h, s, v := rgbToHSV(float64(r>>8), float64(g>>8), float64(b>>8))
			sumH += h
			sumS += s
			sumV += v
			count++
		}
	}
	return HSVStats{
		Hue:        sumH / float64(count),
		Saturation: sumS / float64(count),
		Value:      sumV / float64(count),
	}
}

// rgbToHSV converts 8-bit RGB to OpenCV-range HSV (H in [0,180), S and V in
// [0,255]).
func rgbToHSV(r, g, b float64) (float64, float64, float64) {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	v := maxC
	s := 0.0
	if maxC > 0 {
		s = delta / maxC * 255.0
	}

	h := 0.0
	if delta > 0 {
		switch maxC {
		case r:
			h = 60 * math.Mod((g-b)/delta, 6)
		case g:
			h = 60 * ((b-r)/delta + 2)
		case b:
			h = 60 * ((r-g)/delta + 4)
		}
		if h < 0 {
			h += 360
		}
	}
	return h / 2, s, v
}

// LabStats are mean CIELAB coordinates over a region, offset to the 8-bit
// convention where a and b center on 128.
type LabStats struct {
	L float64
	A float64
	B float64
}

// RegionLab averages Lab channels over rect.
func RegionLab(img image.Image, rect image.Rectangle) LabStats {
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return LabStats{}
	}

	var sumL, sumA, sumB float64
	count := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			l, a, bb := rgbToLab(float64(r>>8)/255, float64(g>>8)/255, float64(b>>8)/255)
			sumL += l
			sumA += a
			sumB += bb
			count++
		}
	}
	return LabStats{
		L: sumL / float64(count),
		A: sumA/float64(count) + 128,
		B: sumB/float64(count) + 128,
	}
}

// Undertone classifies a Lab chromaticity pair as warm, cool, or neutral.
// A b-channel lead of more than 2 means yellow-leaning (warm); an a-channel
// lead of more than 2 means red-leaning (cool).
func Undertone(stats LabStats) string {
	switch {
	case stats.B > stats.A+2:
		return "warm"
	case stats.A > stats.B+2:
		return "cool"
	default:
		return "neutral"
	}
}

func rgbToLab(r, g, b float64) (float64, float64, float64) {
	// sRGB to linear
	lin := func(c float64) float64 {
		if c > 0.04045 {
			return math.Pow((c+0.055)/1.055, 2.4)
		}
		return c / 12.92
	}
	r, g, b = lin(r), lin(g), lin(b)

	// linear RGB to XYZ (D65)
	x := 0.4124*r + 0.3576*g + 0.1805*b
	y := 0.2126*r + 0.7152*g + 0.0722*b
	z := 0.0193*r + 0.1192*g + 0.9505*b

	// XYZ to Lab
	f := func(t float64) float64 {
		if t > 0.008856 {
			return math.Cbrt(t)
		}
		return 7.787*t + 16.0/116.0
	}
	fx := f(x / 0.95047)
	fy := f(y)
	fz := f(z / 1.08883)

	l := 116*fy - 16
	a := 500 * (fx - fy)
	bb := 200 * (fy - fz)
	return l, a, bb
}
