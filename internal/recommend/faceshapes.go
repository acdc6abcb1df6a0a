package recommend

// StyleAdvice pairs recommended choices with ones to avoid.
type StyleAdvice struct {
	Recommended []string `json:"recommended"`
	Avoid       []string `json:"avoid"`
}

// MakeupAdvice covers the main makeup decision points for a face shape.
type MakeupAdvice struct {
	Contouring string `json:"contouring"`
	Eyebrows   string `json:"eyebrows"`
	Eyes       string `json:"eyes"`
	Lips       string `json:"lips"`
}

// AccessoryAdvice covers accessory choices for a face shape.
type AccessoryAdvice struct {
	Earrings string `json:"earrings"`
	Glasses  string `json:"glasses"`
	Hats     string `json:"hats"`
}

// FaceShapeTips is the full advice entry for one face shape.
type FaceShapeTips struct {
	Description string          `json:"description"`
	Strengths   []string        `json:"strengths"`
	Hairstyles  StyleAdvice     `json:"hairstyles"`
	Makeup      MakeupAdvice    `json:"makeup"`
	Accessories AccessoryAdvice `json:"accessories"`
}

var faceShapeTips = map[string]FaceShapeTips{
	"Oval": {
		Description: "Oval faces are considered the ideal face shape with balanced proportions. You have versatile features that work well with most styles.",
		Strengths: []string{
			"Naturally balanced proportions",
			"Versatile for most hairstyles and makeup looks",
			"Well-defined cheekbones",
			"Harmonious facial features",
		},
		Hairstyles: StyleAdvice{
			Recommended: []string{
				"Almost any hairstyle works well",
				"Long layers to enhance natural balance",
				"Side-swept bangs",
				"Bob cuts at any length",
				"Pixie cuts for bold looks",
				"Updos and ponytails",
			},
			Avoid: []string{
				"Styles that completely hide your face shape",
				"Extremely heavy, blunt bangs that cover the forehead entirely",
			},
		},
		Makeup: MakeupAdvice{
			Contouring: "Minimal contouring needed. Light highlighting on cheekbones and bridge of nose.",
			Eyebrows:   "Follow your natural brow shape. Soft arches work beautifully.",
			Eyes:       "Any eye makeup style works. Experiment with different looks.",
			Lips:       "All lip shapes and colors are flattering.",
		},
		Accessories: AccessoryAdvice{
			Earrings: "All styles work - studs, hoops, dangles, chandeliers",
			Glasses:  "Most frame shapes are flattering",
			Hats:     "Wide variety of hat styles suit oval faces",
		},
	},
	"Round": {
		Description: "Round faces have soft, curved lines with similar width and length. The goal is to add definition and create the illusion of length.",
		Strengths: []string{
			"Youthful, soft appearance",
			"Smooth, curved jawline",
			"Full cheeks that can be beautifully highlighted",
			"Naturally feminine features",
		},
		Hairstyles: StyleAdvice{
			Recommended: []string{
				"Long layers that fall below the chin",
				"Side parts to create asymmetry",
				"Voluminous styles on top",
				"Long, straight hair",
				"Angled bobs (longer in front)",
				"High ponytails and updos",
			},
			Avoid: []string{
				"Blunt, chin-length bobs",
				"Center parts",
				"Styles that add width at the sides",
				"Very short, cropped styles",
				"Curls that add volume at the sides",
			},
		},
		Makeup: MakeupAdvice{
			Contouring: "Contour along the sides of the face and under the jawline. Highlight the center of the face vertically.",
			Eyebrows:   "Create height with arched brows to elongate the face.",
			Eyes:       "Elongated eye makeup. Wing eyeliner upward and outward.",
			Lips:       "Slightly overlining the lips can add definition.",
		},
		Accessories: AccessoryAdvice{
			Earrings: "Long, dangly earrings to create vertical lines",
			Glasses:  "Rectangular or angular frames",
			Hats:     "Avoid wide-brimmed hats; choose styles with height",
		},
	},
	"Square": {
		Description: "Square faces have strong, angular features with a broad forehead and jawline. The goal is to soften angles and add curves.",
		Strengths: []string{
			"Strong, defined jawline",
			"Striking, powerful appearance",
			"Well-defined facial structure",
			"Naturally bold features",
		},
		Hairstyles: StyleAdvice{
			Recommended: []string{
				"Soft, layered cuts",
				"Side-swept bangs",
				"Waves and curls to soften angles",
				"Long hair with soft layers",
				"Asymmetrical styles",
				"Rounded bob cuts",
			},
			Avoid: []string{
				"Blunt, straight-across bangs",
				"Very short, geometric cuts",
				"Styles that emphasize the jawline",
				"Center parts with straight hair",
				"Slicked-back styles",
			},
		},
		Makeup: MakeupAdvice{
			Contouring: "Soften the jawline with contouring. Round out the forehead corners.",
			Eyebrows:   "Soft, rounded brow shapes rather than angular",
			Eyes:       "Rounded eye makeup shapes. Avoid harsh, angular lines.",
			Lips:       "Rounded lip shapes. Avoid overly defined, angular lip lines.",
		},
		Accessories: AccessoryAdvice{
			Earrings: "Rounded hoops, curved designs, avoid geometric shapes",
			Glasses:  "Round or oval frames to soften angular features",
			Hats:     "Soft, rounded hat styles",
		},
	},
	"Heart": {
		Description: "Heart-shaped faces have a wider forehead and narrower chin. The goal is to balance the upper and lower portions of the face.",
		Strengths: []string{
			"Striking, memorable features",
			"Beautiful, prominent cheekbones",
			"Delicate, pointed chin",
			"Naturally photogenic angles",
		},
		Hairstyles: StyleAdvice{
			Recommended: []string{
				"Chin-length bobs to add width at the jawline",
				"Side-swept bangs to minimize forehead width",
				"Layers that start at the chin",
				"Styles that add volume at the bottom",
				"Wispy, textured bangs",
				"Hair tucked behind ears to show jawline",
			},
			Avoid: []string{
				"Very short styles that emphasize the forehead",
				"Slicked-back styles",
				"Heavy, full bangs",
				"Styles that add volume on top",
				"Center parts with no bangs",
			},
		},
		Makeup: MakeupAdvice{
			Contouring: "Minimize forehead width, add definition to the chin area.",
			Eyebrows:   "Keep brows proportional, not too thick or thin",
			Eyes:       "Balance is key - don't overemphasize the upper portion",
			Lips:       "Fuller lip looks can help balance the narrow chin.",
		},
		Accessories: AccessoryAdvice{
			Earrings: "Wider styles at the bottom, teardrops, triangular shapes",
			Glasses:  "Bottom-heavy frames or cat-eye styles",
			Hats:     "Styles that don't add width to the forehead",
		},
	},
	"Diamond": {
		Description: "Diamond faces have narrow foreheads and jawlines with wider cheekbones. The goal is to balance the proportions.",
		Strengths: []string{
			"Striking, defined cheekbones",
			"Unique, memorable face shape",
			"Naturally sculpted appearance",
			"Beautiful bone structure",
		},
		Hairstyles: StyleAdvice{
			Recommended: []string{
				"Styles that add width to forehead and chin",
				"Side-swept bangs",
				"Chin-length layers",
				"Textured, voluminous styles",
				"Deep side parts",
				"Styles that frame the face softly",
			},
			Avoid: []string{
				"Styles that emphasize cheekbone width",
				"Very short, cropped styles",
				"Slicked-back looks",
				"Styles pulled tight at the temples",
				"Center parts",
			},
		},
		Makeup: MakeupAdvice{
			Contouring: "Add width to forehead and chin, minimize cheekbone prominence",
			Eyebrows:   "Fuller brows to add width to the forehead area",
			Eyes:       "Horizontal eye makeup to add width",
			Lips:       "Fuller lips to balance narrow chin",
		},
		Accessories: AccessoryAdvice{
			Earrings: "Studs or small hoops that don't emphasize width",
			Glasses:  "Frames that add width to forehead and chin areas",
			Hats:     "Styles that add width to the forehead",
		},
	},
	"Oblong": {
		Description: "Oblong faces are longer than they are wide. The goal is to create the illusion of width and minimize length.",
		Strengths: []string{
			"Elegant, sophisticated appearance",
			"Naturally refined features",
			"Photogenic profile",
			"Graceful proportions",
		},
		Hairstyles: StyleAdvice{
			Recommended: []string{
				"Blunt bangs to shorten the forehead",
				"Layered cuts that add width",
				"Bob cuts at chin or shoulder length",
				"Waves and curls for added volume",
				"Side parts with volume",
				"Styles that add width at the sides",
			},
			Avoid: []string{
				"Very long, straight hair",
				"High ponytails and updos",
				"Styles that add height on top",
				"Center parts with no bangs",
				"Sleek, flat styles",
			},
		},
		Makeup: MakeupAdvice{
			Contouring: "Add width with horizontal contouring techniques",
			Eyebrows:   "Horizontal, straight brows rather than high arches",
			Eyes:       "Horizontal eye makeup, avoid too much vertical emphasis",
			Lips:       "Wider lip shapes to add horizontal emphasis",
		},
		Accessories: AccessoryAdvice{
			Earrings: "Wide hoops, button earrings, horizontal designs",
			Glasses:  "Wide frames that add horizontal emphasis",
			Hats:     "Wide-brimmed styles",
		},
	},
	"Triangle": {
		Description: "Triangle faces have a narrow forehead and wider jawline. The goal is to balance by adding width to the upper face.",
		Strengths: []string{
			"Strong, defined jawline",
			"Unique, striking appearance",
			"Naturally bold features",
			"Distinctive bone structure",
		},
		Hairstyles: StyleAdvice{
			Recommended: []string{
				"Styles that add volume on top",
				"Side-swept bangs",
				"Layered cuts with volume at the crown",
				"Asymmetrical styles",
				"Textured, voluminous styles",
				"Styles that widen the forehead area",
			},
			Avoid: []string{
				"Styles that add width at the jawline",
				"Very short styles",
				"Slicked-back looks",
				"Styles that emphasize the jaw",
				"Heavy, straight bangs",
			},
		},
		Makeup: MakeupAdvice{
			Contouring: "Add width to forehead, minimize jawline width",
			Eyebrows:   "Fuller, more prominent brows to balance the face",
			Eyes:       "Emphasize the upper portion of the face",
			Lips:       "Keep lip emphasis moderate to not compete with the jawline",
		},
		Accessories: AccessoryAdvice{
			Earrings: "Styles that add width to the upper face",
			Glasses:  "Top-heavy frames or cat-eye styles",
			Hats:     "Styles that add width to the forehead area",
		},
	},
}

// TipsFor returns the advice entry for a face shape. Unknown shapes fall
// back to Oval, which suits most styles.
func TipsFor(faceShape string) FaceShapeTips {
	if tips, ok := faceShapeTips[faceShape]; ok {
		return tips
	}
	return faceShapeTips["Oval"]
}

// FaceShapes lists every known face shape name.
func FaceShapes() []string {
	names := make([]string, 0, len(faceShapeTips))
	for name := range faceShapeTips {
		names = append(names, name)
	}
	return names
}
