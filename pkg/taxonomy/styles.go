package taxonomy

import (
	"fmt"
	"strings"
)

var styles = []StyleEntry{
	{
		Category:        CategoryIkebana,
		Type:            "moribana",
		Description:     "Low bowl arrangement, naturalistic landscape",
		Container:       "shallow bowl, suiban",
		Characteristics: "horizontal emphasis, nature scenery, kenzan pin holder",
		Balance:         BalanceAsymmetrical,
		Complexity:      ComplexityHigh,
	},
	{
		Category:        CategoryIkebana,
		Type:            "nageire",
		Description:     "Tall vase arrangement, flowing asymmetrical",
		Container:       "tall cylindrical vase",
		Characteristics: "natural grace, no mechanics visible, stem supports stem",
		Balance:         BalanceAsymmetrical,
		Complexity:      ComplexityMedium,
	},
	{
		Category:        CategoryIkebana,
		Type:            "rikka",
		Description:     "Formal standing flowers, classical seven-branch",
		Container:       "bronze or ceramic vase",
		Characteristics: "symbolic cosmic mountain, rigid structure, ceremonial",
		Balance:         BalanceSymmetrical,
		Complexity:      ComplexityVeryHigh,
	},
	{
		Category:        CategoryWesternClassical,
		Type:            "cascade",
		Description:     "Waterfall flow with trailing elements",
		Container:       "elevated pedestal vase or urn",
		Characteristics: "dramatic downward movement, trailing vines, 1.5x container height drop",
		Balance:         BalanceAsymmetrical,
		Complexity:      ComplexityHigh,
	},
	{
		Category:        CategoryWesternClassical,
		Type:            "crescent",
		Description:     "Curved asymmetrical arc, moon-shaped",
		Container:       "low bowl or compote",
		Characteristics: "graceful curve, negative space emphasis, 60-degree arc",
		Balance:         BalanceAsymmetrical,
		Complexity:      ComplexityMedium,
	},
	{
		Category:        CategoryWesternClassical,
		Type:            "hogarth",
		Description:     "S-curve, line of beauty",
		Container:       "pedestal vase or urn",
		Characteristics: "flowing S-shape, dynamic movement, elegant proportion",
		Balance:         BalanceAsymmetrical,
		Complexity:      ComplexityHigh,
	},
	{
		Category:        CategoryWesternClassical,
		Type:            "dome",
		Description:     "Rounded symmetrical mass",
		Container:       "low bowl, vase, or compote",
		Characteristics: "equal dimensions all sides, full 360-degree viewing, dense",
		Balance:         BalanceRadialSymmetrical,
		Complexity:      ComplexityLow,
	},
	{
		Category:        CategoryWesternClassical,
		Type:            "triangular",
		Description:     "Stable pyramid form",
		Container:       "any stable base",
		Characteristics: "wide base tapering to point, classical proportion, formal",
		Balance:         BalanceSymmetrical,
		Complexity:      ComplexityLow,
	},
	{
		Category:        CategoryWesternClassical,
		Type:            "vertical",
		Description:     "Tall upright emphasis",
		Container:       "tall narrow vase",
		Characteristics: "height 2-3x container, upward movement, line flowers dominant",
		Balance:         BalanceEither,
		Complexity:      ComplexityLow,
	},
	{
		Category:        CategoryWesternClassical,
		Type:            "horizontal",
		Description:     "Low spreading centerpiece",
		Container:       "long low container or candelabra",
		Characteristics: "width 3x height, table centerpiece, conversation-friendly",
		Balance:         BalanceSymmetrical,
		Complexity:      ComplexityMedium,
	},
	{
		Category:        CategoryContemporary,
		Type:            "minimalist",
		Description:     "Few stems, negative space emphasis",
		Container:       "simple geometric vessel",
		Characteristics: "3-7 stems maximum, sculptural form, breathing space",
		Balance:         BalanceAsymmetrical,
		Complexity:      ComplexityMedium,
	},
	{
		Category:        CategoryContemporary,
		Type:            "structural",
		Description:     "Architectural, geometric forms",
		Container:       "modern cube, cylinder, or asymmetric",
		Characteristics: "bold lines, repetition, graphic shapes, non-traditional materials",
		Balance:         BalanceOftenAsymmetrical,
		Complexity:      ComplexityHigh,
	},
	{
		Category:        CategoryContemporary,
		Type:            "garden_style",
		Description:     "Loose, natural, abundant",
		Container:       "rustic basket, vintage vessel",
		Characteristics: "just-picked feel, varied textures, romantic fullness, organic",
		Balance:         BalanceAsymmetrical,
		Complexity:      ComplexityMedium,
	},
	{
		Category:        CategoryContemporary,
		Type:            "parallel",
		Description:     "Stems grouped in vertical lines",
		Container:       "rectangular or cylindrical",
		Characteristics: "stems visible through glass, grouped bundles, modern clean",
		Balance:         BalanceEither,
		Complexity:      ComplexityLow,
	},
}

var styleCategories = []string{CategoryIkebana, CategoryWesternClassical, CategoryContemporary}

type styleKey struct{ category, typ string }

var styleIndex = func() map[styleKey]int {
	idx := make(map[styleKey]int, len(styles))
	for i, s := range styles {
		k := styleKey{s.Category, s.Type}
		if _, dup := idx[k]; dup {
			panic(fmt.Sprintf("taxonomy: duplicate style %s/%s", s.Category, s.Type))
		}
		idx[k] = i
	}
	return idx
}()

// StyleCategories returns the traditions in table order.
func StyleCategories() []string {
	return append([]string(nil), styleCategories...)
}

// Styles returns every style in table order.
func Styles() []StyleEntry {
	return append([]StyleEntry(nil), styles...)
}

// Style returns the entry for a (category, type) pair.
func Style(category, typ string) (StyleEntry, bool) {
	i, ok := styleIndex[styleKey{category, typ}]
	if !ok {
		return StyleEntry{}, false
	}
	return styles[i], true
}

// MustStyle is Style for pairs known to exist in the table.
func MustStyle(category, typ string) StyleEntry {
	s, ok := Style(category, typ)
	if !ok {
		panic(fmt.Errorf("%w: %s/%s", ErrUnknownStyle, category, typ))
	}
	return s
}

// FindStyle resolves a style by its type name, or by "category/type".
// Matching is case-insensitive.
func FindStyle(name string) (StyleEntry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if category, typ, ok := strings.Cut(name, "/"); ok {
		return Style(category, typ)
	}
	for _, s := range styles {
		if s.Type == name {
			return s, true
		}
	}
	return StyleEntry{}, false
}

// StyleTable returns the styles keyed by category then type.
func StyleTable() *Table[*Table[StyleEntry]] {
	out := NewTable[*Table[StyleEntry]](len(styleCategories))
	for _, c := range styleCategories {
		out.Set(c, NewTable[StyleEntry](0))
	}
	for _, s := range styles {
		types, _ := out.Get(s.Category)
		types.Set(s.Type, s)
	}
	return out
}
