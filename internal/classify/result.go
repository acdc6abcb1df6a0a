package classify

import "errors"

// ErrDecline signals that a stage cannot produce a result for this subject
// and the cascade should try the next stage.
var ErrDecline = errors.New("stage declined")

// Known face shape and season labels.
const (
	DefaultFaceShape   = "Oval"
	DefaultColorSeason = "Warm Autumn"
)

var knownFaceShapes = map[string]bool{
	"Oval": true, "Round": true, "Square": true, "Heart": true,
	"Diamond": true, "Oblong": true, "Triangle": true,
}

var knownSeasons = map[string]bool{
	"Light Spring": true, "Warm Spring": true, "Clear Spring": true,
	"Light Summer": true, "Cool Summer": true, "Soft Summer": true,
	"Soft Autumn": true, "Warm Autumn": true, "Deep Autumn": true,
	"Deep Winter": true, "Cool Winter": true, "Clear Winter": true,
}

// KnownFaceShape reports whether label is one of the seven face shapes.
func KnownFaceShape(label string) bool { return knownFaceShapes[label] }

// KnownSeason reports whether label is one of the twelve seasons.
func KnownSeason(label string) bool { return knownSeasons[label] }

// Result is one stage's answer. A stage may fill only one of the two labels;
// the cascade merges across stages.
type Result struct {
	FaceShape   string
	ColorSeason string
	Confidence  float64
	Stage       string
}
