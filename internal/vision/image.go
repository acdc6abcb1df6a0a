package vision

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}

// Decode parses image bytes in any supported format (jpeg, png, bmp) and
// returns the decoded image plus the format name.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// CropScaleGray crops rect out of img, scales the crop to size x size, and
// returns row-major grayscale intensities normalized to [0, 1].
func CropScaleGray(img image.Image, rect image.Rectangle, size int) []float64 {
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() || size <= 0 {
		return nil
	}

	scaled := image.NewGray(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, rect, draw.Src, nil)

	out := make([]float64, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			out[y*size+x] = float64(scaled.GrayAt(x, y).Y) / 255.0
		}
	}
	return out
}
