package classify

import (
	"image"

	"chromalyze-backend/internal/vision"
)

// Subject bundles everything stages may need to classify one upload. Image is
// nil when decoding failed; stages that need pixels decline in that case.
type Subject struct {
	Image     image.Image
	Format    string
	Bytes     []byte
	Faces     []vision.Face
	Landmarks *vision.Landmarks
}

// LargestFace returns the biggest detected face box and whether one exists.
func (s *Subject) LargestFace() (vision.Face, bool) {
	var best vision.Face
	found := false
	for _, f := range s.Faces {
		if !found || area(f.Rect) > area(best.Rect) {
			best = f
			found = true
		}
	}
	return best, found
}

func area(r image.Rectangle) int {
	return r.Dx() * r.Dy()
}
