package recommend

// Color is a named swatch with its approximate hex representation.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Palette describes a seasonal color palette.
type Palette struct {
	Description string  `json:"description"`
	Recommended []Color `json:"recommended"`
	Avoid       []Color `json:"avoid"`
}

// seasonPalettes holds the standard twelve-season palettes. Hex codes are
// approximate representations of common color theory interpretations.
var seasonPalettes = map[string]Palette{
	"Light Spring": {
		Description: "Light, warm, and bright. Think delicate spring blossoms.",
		Recommended: []Color{
			{Name: "Light Peach", Hex: "#FFDAB9"},
			{Name: "Soft Yellow", Hex: "#FFFACD"},
			{Name: "Mint Green", Hex: "#98FB98"},
			{Name: "Aqua Blue", Hex: "#AFEEEE"},
			{Name: "Coral Pink", Hex: "#FF7F50"},
			{Name: "Light Gold", Hex: "#EEE8AA"},
			{Name: "Powder Blue", Hex: "#B0E0E6"},
			{Name: "Ivory", Hex: "#FFFFF0"},
		},
		Avoid: []Color{
			{Name: "Black", Hex: "#000000"},
			{Name: "Dark Burgundy", Hex: "#800020"},
			{Name: "Olive Green", Hex: "#808000"},
			{Name: "Mustard Yellow", Hex: "#FFDB58"},
			{Name: "Deep Teal", Hex: "#008080"},
		},
	},
	"Warm Spring": {
		Description: "Warm, clear, and vibrant. Think tropical flowers and sunshine.",
		Recommended: []Color{
			{Name: "Warm Coral", Hex: "#FF7F50"},
			{Name: "Golden Yellow", Hex: "#FFDA57"},
			{Name: "Lime Green", Hex: "#32CD32"},
			{Name: "Turquoise", Hex: "#40E0D0"},
			{Name: "Creamy White", Hex: "#FFFDD0"},
			{Name: "Tomato Red", Hex: "#FF6347"},
			{Name: "Bright Navy", Hex: "#0000CD"},
			{Name: "Peach", Hex: "#FFDAB9"},
		},
		Avoid: []Color{
			{Name: "Cool Gray", Hex: "#808080"},
			{Name: "Dusty Rose", Hex: "#D8BFD8"},
			{Name: "Icy Blue", Hex: "#ADD8E6"},
			{Name: "Black", Hex: "#000000"},
			{Name: "Silver", Hex: "#C0C0C0"},
		},
	},
	"Clear Spring": {
		Description: "Clear, bright, warm, and high contrast. Think vivid, clear colors.",
		Recommended: []Color{
			{Name: "Bright Red", Hex: "#FF0000"},
			{Name: "Emerald Green", Hex: "#2E8B57"},
			{Name: "Royal Blue", Hex: "#4169E1"},
			{Name: "Hot Pink", Hex: "#FF69B4"},
			{Name: "True Yellow", Hex: "#FFFF00"},
			{Name: "Black", Hex: "#000000"},
			{Name: "Pure White", Hex: "#FFFFFF"},
			{Name: "Bright Coral", Hex: "#FF7F50"},
		},
		Avoid: []Color{
			{Name: "Muted Mauve", Hex: "#E0B0FF"},
			{Name: "Dusty Brown", Hex: "#A0522D"},
			{Name: "Olive Green", Hex: "#808000"},
			{Name: "Beige", Hex: "#F5F5DC"},
			{Name: "Grayish Blue", Hex: "#A2A2D0"},
		},
	},
	"Light Summer": {
		Description: "Light, cool, and soft. Think hazy summer skies and delicate florals.",
		Recommended: []Color{
			{Name: "Powder Blue", Hex: "#B0E0E6"},
			{Name: "Soft Pink", Hex: "#FFB6C1"},
			{Name: "Lavender", Hex: "#E6E6FA"},
			{Name: "Light Gray", Hex: "#D3D3D3"},
			{Name: "Mint Green", Hex: "#98FB98"},
			{Name: "Rose Beige", Hex: "#F5F5DC"},
			{Name: "Sky Blue", Hex: "#87CEEB"},
			{Name: "Soft White", Hex: "#F8F8FF"},
		},
		Avoid: []Color{
			{Name: "Black", Hex: "#000000"},
			{Name: "Bright Orange", Hex: "#FFA500"},
			{Name: "Golden Yellow", Hex: "#FFDA57"},
			{Name: "Olive Green", Hex: "#808000"},
			{Name: "Mustard", Hex: "#FFDB58"},
		},
	},
	"Cool Summer": {
		Description: "Cool, muted, and elegant. Think deep ocean blues and rose gardens.",
		Recommended: []Color{
			{Name: "Cool Blue", Hex: "#4682B4"},
			{Name: "Rose Pink", Hex: "#FF66CC"},
			{Name: "Gray Blue", Hex: "#6A5ACD"},
			{Name: "Soft Fuchsia", Hex: "#C71585"},
			{Name: "Emerald Green (cool)", Hex: "#009B77"},
			{Name: "Charcoal Gray", Hex: "#36454F"},
			{Name: "Burgundy (cool)", Hex: "#800020"},
			{Name: "Silver Gray", Hex: "#C0C0C0"},
		},
		Avoid: []Color{
			{Name: "Orange", Hex: "#FFA500"},
			{Name: "Golden Yellow", Hex: "#FFDA57"},
			{Name: "Warm Brown", Hex: "#A0522D"},
			{Name: "Olive Green", Hex: "#808000"},
			{Name: "Peach", Hex: "#FFDAB9"},
		},
	},
	"Soft Summer": {
		Description: "Soft, muted, cool with a neutral lean. Think misty landscapes.",
		Recommended: []Color{
			{Name: "Dusty Rose", Hex: "#D8BFD8"},
			{Name: "Jade Green", Hex: "#00A86B"},
			{Name: "Gray-Blue", Hex: "#A2A2D0"},
			{Name: "Soft Teal", Hex: "#4682B4"},
			{Name: "Rose Brown", Hex: "#BC8F8F"},
			{Name: "Stone Gray", Hex: "#778899"},
			{Name: "Muted Plum", Hex: "#DDA0DD"},
			{Name: "Off-White", Hex: "#FAF0E6"},
		},
		Avoid: []Color{
			{Name: "Bright Yellow", Hex: "#FFFF00"},
			{Name: "Electric Blue", Hex: "#7DF9FF"},
			{Name: "Pure Black", Hex: "#000000"},
			{Name: "Bright Orange", Hex: "#FFA500"},
			{Name: "Hot Pink", Hex: "#FF69B4"},
		},
	},
	"Soft Autumn": {
		Description: "Soft, muted, warm with a neutral lean. Think gentle autumn fields.",
		Recommended: []Color{
			{Name: "Olive Green", Hex: "#808000"},
			{Name: "Muted Gold", Hex: "#B08D57"},
			{Name: "Salmon Pink", Hex: "#FA8072"},
			{Name: "Warm Beige", Hex: "#F5F5DC"},
			{Name: "Mahogany", Hex: "#C04000"},
			{Name: "Butter Yellow", Hex: "#FFFACD"},
			{Name: "Soft Teal (warm)", Hex: "#008080"},
			{Name: "Cream", Hex: "#FFFDD0"},
		},
		Avoid: []Color{
			{Name: "Bright Fuchsia", Hex: "#FF00FF"},
			{Name: "Icy Blue", Hex: "#ADD8E6"},
			{Name: "Pure Black", Hex: "#000000"},
			{Name: "Silver", Hex: "#C0C0C0"},
			{Name: "Cool Gray", Hex: "#808080"},
		},
	},
	"Warm Autumn": {
		Description: "Warm, rich, and earthy. Think autumn leaves and spices.",
		Recommended: []Color{
			{Name: "Terracotta", Hex: "#E2725B"},
			{Name: "Mustard Yellow", Hex: "#FFDB58"},
			{Name: "Olive Green", Hex: "#808000"},
			{Name: "Deep Peach", Hex: "#FFCBA4"},
			{Name: "Chocolate Brown", Hex: "#D2691E"},
			{Name: "Forest Green", Hex: "#228B22"},
			{Name: "Burnt Orange", Hex: "#CC5500"},
			{Name: "Gold", Hex: "#FFD700"},
		},
		Avoid: []Color{
			{Name: "Cool Pink", Hex: "#FFC0CB"},
			{Name: "Silver", Hex: "#C0C0C0"},
			{Name: "Icy Blue", Hex: "#ADD8E6"},
			{Name: "Black", Hex: "#000000"},
			{Name: "Pure White", Hex: "#FFFFFF"},
		},
	},
	"Deep Autumn": {
		Description: "Deep, warm, and rich. Think dark woods and embers.",
		Recommended: []Color{
			{Name: "Deep Olive", Hex: "#556B2F"},
			{Name: "Chocolate Brown", Hex: "#7B3F00"},
			{Name: "Burnt Orange", Hex: "#CC5500"},
			{Name: "Mustard Yellow", Hex: "#FFDB58"},
			{Name: "Forest Green", Hex: "#228B22"},
			{Name: "Deep Teal (warm)", Hex: "#008080"},
			{Name: "Burgundy (warm)", Hex: "#8B0000"},
			{Name: "Cream", Hex: "#FFFDD0"},
		},
		Avoid: []Color{
			{Name: "Pastel Pink", Hex: "#FFD1DC"},
			{Name: "Icy Blue", Hex: "#ADD8E6"},
			{Name: "Silver", Hex: "#C0C0C0"},
			{Name: "Bright Fuchsia", Hex: "#FF00FF"},
			{Name: "Pure White", Hex: "#FFFFFF"},
		},
	},
	"Deep Winter": {
		Description: "Deep, cool, and clear. Think rich jewel tones and stark contrasts.",
		Recommended: []Color{
			{Name: "Black", Hex: "#000000"},
			{Name: "Pure White", Hex: "#FFFFFF"},
			{Name: "Ruby Red", Hex: "#E0115F"},
			{Name: "Emerald Green", Hex: "#50C878"},
			{Name: "Sapphire Blue", Hex: "#0F52BA"},
			{Name: "Deep Fuchsia", Hex: "#C154C1"},
			{Name: "Charcoal Gray", Hex: "#36454F"},
			{Name: "Icy Blue", Hex: "#ADD8E6"},
		},
		Avoid: []Color{
			{Name: "Orange", Hex: "#FFA500"},
			{Name: "Golden Yellow", Hex: "#FFDA57"},
			{Name: "Olive Green", Hex: "#808000"},
			{Name: "Beige", Hex: "#F5F5DC"},
			{Name: "Warm Brown", Hex: "#A0522D"},
		},
	},
	"Cool Winter": {
		Description: "Cool, intense, and sharp. Think icy landscapes and bold contrasts.",
		Recommended: []Color{
			{Name: "True Blue", Hex: "#0000FF"},
			{Name: "Icy Pink", Hex: "#FFB6C1"},
			{Name: "Deep Purple", Hex: "#800080"},
			{Name: "Silver", Hex: "#C0C0C0"},
			{Name: "Black", Hex: "#000000"},
			{Name: "Pure White", Hex: "#FFFFFF"},
			{Name: "Cool Red (Blue-based)", Hex: "#C71585"},
			{Name: "Charcoal Gray", Hex: "#36454F"},
		},
		Avoid: []Color{
			{Name: "Orange", Hex: "#FFA500"},
			{Name: "Gold", Hex: "#FFD700"},
			{Name: "Mustard Yellow", Hex: "#FFDB58"},
			{Name: "Olive Green", Hex: "#808000"},
			{Name: "Warm Brown", Hex: "#A0522D"},
		},
	},
	"Clear Winter": {
		Description: "Clear, bright, cool, and high contrast. Think primary colors and sharp clarity.",
		Recommended: []Color{
			{Name: "True Red", Hex: "#FF0000"},
			{Name: "Royal Blue", Hex: "#4169E1"},
			{Name: "Emerald Green", Hex: "#2E8B57"},
			{Name: "Hot Pink", Hex: "#FF69B4"},
			{Name: "Black", Hex: "#000000"},
			{Name: "Pure White", Hex: "#FFFFFF"},
			{Name: "Icy Yellow", Hex: "#FFFACD"},
			{Name: "Bright Purple", Hex: "#BF00FF"},
		},
		Avoid: []Color{
			{Name: "Dusty Rose", Hex: "#D8BFD8"},
			{Name: "Olive Green", Hex: "#808000"},
			{Name: "Beige", Hex: "#F5F5DC"},
			{Name: "Muted Gold", Hex: "#B08D57"},
			{Name: "Warm Brown", Hex: "#A0522D"},
		},
	},
}

// PaletteFor returns the palette for a twelve-season name.
func PaletteFor(season string) (Palette, bool) {
	p, ok := seasonPalettes[season]
	return p, ok
}

// Seasons lists every known season name.
func Seasons() []string {
	names := make([]string, 0, len(seasonPalettes))
	for name := range seasonPalettes {
		names = append(names, name)
	}
	return names
}
