package taxonomy

import (
	"fmt"
	"slices"
)

var techniques = []Technique{
	{
		Key:          "symmetrical_radial",
		Family:       FamilyBalance,
		Description:  "Equal visual weight radiating from center",
		Arrangements: []string{"dome", "round", "triangular"},
		Effect:       "formal, stable, traditional",
	},
	{
		Key:          "symmetrical_bilateral",
		Family:       FamilyBalance,
		Description:  "Mirror image left and right",
		Arrangements: []string{"triangular", "vertical", "fan"},
		Effect:       "formal, classical, orderly",
	},
	{
		Key:          "asymmetrical",
		Family:       FamilyBalance,
		Description:  "Unequal but balanced visual weight",
		Arrangements: []string{"crescent", "hogarth", "ikebana"},
		Effect:       "dynamic, natural, contemporary",
	},
	{
		Key:         "golden_ratio",
		Family:      FamilyProportion,
		Description: "1.618:1 ratio between elements",
		Application: "height to width, focal to filler, container to arrangement",
	},
	{
		Key:         "rule_of_thirds",
		Family:      FamilyProportion,
		Description: "Divide into thirds horizontally and vertically",
		Application: "place focal points at intersections",
	},
	{
		Key:         "height_to_container",
		Family:      FamilyProportion,
		Traditional: "1.5 to 2 times container height",
		Modern:      "can break rules for dramatic effect",
		Horizontal:  "container height to arrangement width 1:3",
	},
	{
		Key:         "single_dominant",
		Family:      FamilyFocalPoints,
		Description: "One clear center of interest",
		Technique:   "largest bloom at center or asymmetric position",
		Effect:      "clear hierarchy, classical",
	},
	{
		Key:         "multiple_secondary",
		Family:      FamilyFocalPoints,
		Description: "Primary focal with supporting accents",
		Technique:   "triangle of focal flowers",
		Effect:      "visual journey, sophisticated",
	},
	{
		Key:         "distributed",
		Family:      FamilyFocalPoints,
		Description: "Interest spread throughout",
		Technique:   "no single dominant element",
		Effect:      "garden-style, natural",
	},
	{
		Key:         "vertical_lift",
		Family:      FamilyMovement,
		Description: "Upward reaching energy",
		Technique:   "line flowers, tall stems, upright forms",
		Effect:      "aspiration, celebration, growth",
	},
	{
		Key:         "horizontal_sweep",
		Family:      FamilyMovement,
		Description: "Side-to-side flow",
		Technique:   "trailing elements, lateral branches",
		Effect:      "calm, peaceful, grounding",
	},
	{
		Key:         "spiral_rotation",
		Family:      FamilyMovement,
		Description: "Circular flow around center",
		Technique:   "stems arranged in spiral, flowers face different directions",
		Effect:      "dynamic, natural, garden-style",
	},
	{
		Key:         "cascade_fall",
		Family:      FamilyMovement,
		Description: "Downward waterfall motion",
		Technique:   "trailing ivy, hanging amaranthus, weighted bottom",
		Effect:      "drama, elegance, gravity",
	},
	{
		Key:         "radiation",
		Family:      FamilyMovement,
		Description: "Outward burst from center",
		Technique:   "stems angle out from central point",
		Effect:      "energy, explosion, celebration",
	},
	{
		Key:         "smooth_rough_contrast",
		Family:      FamilyTexture,
		Description: "Juxtapose sleek and textured elements",
		Examples:    "glossy calla lilies with spiky thistle",
		Effect:      "visual interest, sophisticated",
	},
	{
		Key:         "delicate_bold_mix",
		Family:      FamilyTexture,
		Description: "Combine fine and substantial forms",
		Examples:    "baby's breath with large roses",
		Effect:      "balance, dimension",
	},
	{
		Key:         "monochromatic_texture",
		Family:      FamilyTexture,
		Description: "Same color, varied textures",
		Examples:    "white roses, ranunculus, stock, baby's breath",
		Effect:      "subtle sophistication, cohesive",
	},
	{
		Key:         "packed_abundant",
		Family:      FamilyDensity,
		Description: "Full mass, minimal negative space",
		Style:       "European garden, romantic",
		Effect:      "lush, generous, romantic",
	},
	{
		Key:         "airy_spacious",
		Family:      FamilyDensity,
		Description: "Minimal stems, maximum negative space",
		Style:       "Ikebana, contemporary minimalist",
		Effect:      "elegant, modern, sculptural",
	},
	{
		Key:         "clustered_with_voids",
		Family:      FamilyDensity,
		Description: "Dense groupings separated by open space",
		Style:       "Contemporary, structural",
		Effect:      "drama, graphic, intentional",
	},
}

type techniqueKey struct {
	family TechniqueFamily
	key    string
}

var techniqueIndex = func() map[techniqueKey]int {
	idx := make(map[techniqueKey]int, len(techniques))
	for i, t := range techniques {
		k := techniqueKey{t.Family, t.Key}
		if _, dup := idx[k]; dup {
			panic(fmt.Sprintf("taxonomy: duplicate technique %s/%s", t.Family, t.Key))
		}
		idx[k] = i
	}
	return idx
}()

// TechniqueFor looks a technique up by family and key.
func TechniqueFor(family TechniqueFamily, key string) (Technique, bool) {
	i, ok := techniqueIndex[techniqueKey{family, key}]
	if !ok {
		return Technique{}, false
	}
	t := techniques[i]
	t.Arrangements = slices.Clone(t.Arrangements)
	return t, true
}

// MustTechnique is TechniqueFor for entries known to exist in the table.
func MustTechnique(family TechniqueFamily, key string) Technique {
	t, ok := TechniqueFor(family, key)
	if !ok {
		panic(fmt.Errorf("%w: %s/%s", ErrUnknownTechnique, family, key))
	}
	return t
}

// Techniques returns the techniques of one family in table order.
func Techniques(family TechniqueFamily) []Technique {
	var out []Technique
	for _, t := range techniques {
		if t.Family == family {
			t.Arrangements = slices.Clone(t.Arrangements)
			out = append(out, t)
		}
	}
	return out
}

// TechniqueTable returns the techniques keyed by family then key.
func TechniqueTable() *Table[*Table[Technique]] {
	out := NewTable[*Table[Technique]](len(TechniqueFamilies()))
	for _, f := range TechniqueFamilies() {
		out.Set(string(f), NewTable[Technique](0))
	}
	for _, t := range techniques {
		t.Arrangements = slices.Clone(t.Arrangements)
		family, _ := out.Get(string(t.Family))
		family.Set(t.Key, t)
	}
	return out
}
