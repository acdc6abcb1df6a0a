package recommend

import (
	"fmt"
	"strings"
)

// QuickTips condenses a face shape's advice into a handful of sentences
// suitable for a summary view.
func QuickTips(faceShape string) []string {
	tips := TipsFor(faceShape)

	out := []string{
		fmt.Sprintf("Your %s face shape: %s", strings.ToLower(faceShape), tips.Description),
	}
	if len(tips.Hairstyles.Recommended) > 0 {
		top := tips.Hairstyles.Recommended
		if len(top) > 3 {
			top = top[:3]
		}
		out = append(out, "Best hairstyles: "+strings.Join(top, ", "))
	}
	if tips.Makeup.Contouring != "" {
		out = append(out, "Makeup tip: "+tips.Makeup.Contouring)
	}
	return out
}
