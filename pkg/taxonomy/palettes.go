package taxonomy

import (
	"fmt"
	"slices"
)

var palettes = []ColorPalette{
	{
		Name:        "monochromatic",
		Description: "Single color in varying shades and tints",
		Examples:    []string{"all white", "blush to deep pink", "cream to chocolate"},
		Effect:      "sophisticated, cohesive, elegant",
		Occasions:   []string{"wedding", "formal", "minimalist"},
	},
	{
		Name:        "analogous",
		Description: "Colors adjacent on color wheel",
		Examples:    []string{"yellow-orange-red", "blue-purple-violet", "yellow-green-blue"},
		Effect:      "harmonious, natural, pleasing",
		Occasions:   []string{"everyday", "celebration", "garden-style"},
	},
	{
		Name:        "complementary",
		Description: "Opposite colors on wheel",
		Examples:    []string{"purple-yellow", "blue-orange", "red-green"},
		Effect:      "vibrant, energetic, bold contrast",
		Occasions:   []string{"celebration", "modern", "attention-grabbing"},
	},
	{
		Name:        "triadic",
		Description: "Three colors evenly spaced on wheel",
		Examples:    []string{"red-yellow-blue", "orange-green-purple"},
		Effect:      "vibrant, balanced, rich",
		Occasions:   []string{"festive", "children", "joyful"},
	},
	{
		Name:      "romantic",
		Colors:    []string{"blush pink", "cream", "soft peach", "ivory", "champagne"},
		Effect:    "soft, dreamy, feminine, gentle",
		Occasions: []string{"wedding", "bridal shower", "anniversary"},
	},
	{
		Name:      "elegant",
		Colors:    []string{"deep burgundy", "cream", "forest green", "white", "gold accent"},
		Effect:    "sophisticated, refined, formal",
		Occasions: []string{"gala", "formal dinner", "luxury events"},
	},
	{
		Name:      "vibrant",
		Colors:    []string{"magenta", "orange", "hot pink", "yellow", "coral"},
		Effect:    "energetic, joyful, bold",
		Occasions: []string{"birthday", "tropical", "celebration"},
	},
	{
		Name:      "spring",
		Colors:    []string{"tulip yellow", "daffodil", "lavender", "soft pink", "fresh green"},
		Effect:    "fresh, renewal, optimistic",
		Seasons:   []string{"spring"},
		Occasions: []string{"easter", "spring wedding"},
	},
	{
		Name:      "summer",
		Colors:    []string{"bright yellow", "coral", "hot pink", "orange", "lime green"},
		Effect:    "warm, abundant, lively",
		Seasons:   []string{"summer"},
		Occasions: []string{"garden party", "outdoor celebration"},
	},
	{
		Name:      "autumn",
		Colors:    []string{"rust orange", "burgundy", "golden yellow", "bronze", "deep red"},
		Effect:    "warm, rich, harvest",
		Seasons:   []string{"fall"},
		Occasions: []string{"thanksgiving", "fall wedding"},
	},
	{
		Name:      "winter",
		Colors:    []string{"deep red", "white", "evergreen", "silver", "navy"},
		Effect:    "crisp, festive, elegant",
		Seasons:   []string{"winter"},
		Occasions: []string{"christmas", "winter formal"},
	},
}

var paletteIndex = func() map[string]int {
	idx := make(map[string]int, len(palettes))
	for i, p := range palettes {
		if _, dup := idx[p.Name]; dup {
			panic(fmt.Sprintf("taxonomy: duplicate palette %s", p.Name))
		}
		idx[p.Name] = i
	}
	return idx
}()

func (p ColorPalette) clone() ColorPalette {
	p.Examples = slices.Clone(p.Examples)
	p.Colors = slices.Clone(p.Colors)
	p.Occasions = slices.Clone(p.Occasions)
	p.Seasons = slices.Clone(p.Seasons)
	return p
}

// PaletteNames returns the palette names in table order.
func PaletteNames() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}

// Palettes returns every palette in table order.
func Palettes() []ColorPalette {
	out := make([]ColorPalette, len(palettes))
	for i, p := range palettes {
		out[i] = p.clone()
	}
	return out
}

func Palette(name string) (ColorPalette, bool) {
	i, ok := paletteIndex[name]
	if !ok {
		return ColorPalette{}, false
	}
	return palettes[i].clone(), true
}

// MustPalette is Palette for names known to exist in the table.
func MustPalette(name string) ColorPalette {
	p, ok := Palette(name)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnknownPalette, name))
	}
	return p
}

// PaletteTable returns the palettes keyed by name.
func PaletteTable() *Table[ColorPalette] {
	out := NewTable[ColorPalette](len(palettes))
	for _, p := range palettes {
		out.Set(p.Name, p.clone())
	}
	return out
}
