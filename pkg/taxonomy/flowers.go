package taxonomy

import (
	"fmt"
	"strings"
)

var flowers = []FlowerEntry{
	{
		Key:             "roses",
		Role:            RoleFocal,
		Types:           []string{"garden roses", "spray roses", "hybrid tea", "English roses"},
		Characteristics: "classic beauty, layered petals, focal point dominance",
		ColorRange:      "full spectrum",
		Size:            "large 3-5 inches",
		Seasons:         []string{"spring", "summer", "fall"},
		Symbolism:       "love, romance, elegance",
	},
	{
		Key:             "peonies",
		Role:            RoleFocal,
		Types:           []string{"herbaceous", "tree peony", "Itoh hybrid"},
		Characteristics: "lush ruffled petals, full bloom drama, short season",
		ColorRange:      "white, pink, coral, burgundy",
		Size:            "very large 4-6 inches",
		Seasons:         []string{"late spring", "early summer"},
		Symbolism:       "prosperity, honor, romance",
	},
	{
		Key:             "lilies",
		Role:            RoleFocal,
		Types:           []string{"oriental", "asiatic", "calla", "trumpet"},
		Characteristics: "dramatic form, strong fragrance (oriental), architectural",
		ColorRange:      "full spectrum",
		Size:            "large 4-6 inches per bloom",
		Seasons:         []string{"summer", "fall"},
		Symbolism:       "purity, majesty, sophistication",
	},
	{
		Key:             "orchids",
		Role:            RoleFocal,
		Types:           []string{"phalaenopsis", "cymbidium", "dendrobium", "vanda"},
		Characteristics: "exotic elegance, long-lasting, tropical",
		ColorRange:      "white, pink, purple, yellow, green",
		Size:            "medium 2-4 inches",
		Seasons:         []string{"year-round"},
		Symbolism:       "luxury, refinement, beauty",
	},
	{
		Key:             "hydrangeas",
		Role:            RoleFocal,
		Types:           []string{"mophead", "lacecap", "paniculata", "oakleaf"},
		Characteristics: "full mass, color-changing, garden feel",
		ColorRange:      "blue, pink, white, green, purple",
		Size:            "very large 6-8 inch heads",
		Seasons:         []string{"summer", "fall"},
		Symbolism:       "gratitude, abundance, heartfelt emotion",
	},
	{
		Key:             "sunflowers",
		Role:            RoleFocal,
		Types:           []string{"giant", "teddy bear", "moulin rouge", "autumn beauty"},
		Characteristics: "bold face, cheerful, rustic charm",
		ColorRange:      "yellow, orange, burgundy, bronze",
		Size:            "large 4-10 inches",
		Seasons:         []string{"summer", "fall"},
		Symbolism:       "happiness, loyalty, longevity",
	},
	{
		Key:             "dahlias",
		Role:            RoleFocal,
		Types:           []string{"dinner plate", "cactus", "pompon", "decorative"},
		Characteristics: "geometric petals, bold color, garden luxury",
		ColorRange:      "full spectrum except blue",
		Size:            "small to very large 2-10 inches",
		Seasons:         []string{"late summer", "fall"},
		Symbolism:       "elegance, dignity, commitment",
	},
	{
		Key:             "snapdragons",
		Role:            RoleLine,
		Characteristics: "vertical spikes, graduated blooms, height emphasis",
		ColorRange:      "full spectrum",
		Height:          "18-36 inches",
		Use:             "creates vertical movement and height",
	},
	{
		Key:             "delphiniums",
		Role:            RoleLine,
		Characteristics: "tall elegant columns, cottage garden feel",
		ColorRange:      "blue, purple, pink, white",
		Height:          "24-48 inches",
		Use:             "dramatic height, romantic spires",
	},
	{
		Key:             "gladiolus",
		Role:            RoleLine,
		Characteristics: "sword-like stems, formal linear",
		ColorRange:      "full spectrum",
		Height:          "24-60 inches",
		Use:             "strong vertical lines, classical elegance",
	},
	{
		Key:             "liatris",
		Role:            RoleLine,
		Characteristics: "fuzzy textured spikes, blooms top-down",
		ColorRange:      "purple, white",
		Height:          "18-36 inches",
		Use:             "unique texture, prairie wildflower feel",
	},
	{
		Key:             "bells_of_ireland",
		Role:            RoleLine,
		Characteristics: "green architectural spires, shell-like calyxes",
		ColorRange:      "lime green",
		Height:          "24-36 inches",
		Use:             "fresh green accent, Irish symbolism",
	},
	{
		Key:             "stock",
		Role:            RoleLine,
		Characteristics: "fragrant vertical clusters, cottage garden",
		ColorRange:      "white, pink, purple, lavender",
		Height:          "18-30 inches",
		Use:             "fragrance, soft spires, romantic",
	},
	{
		Key:             "baby_breath",
		Role:            RoleFiller,
		Characteristics: "cloud-like delicate, tiny white blooms",
		Use:             "softens arrangements, creates airiness, classic filler",
		Texture:         "fine, misty",
	},
	{
		Key:             "waxflower",
		Role:            RoleFiller,
		Characteristics: "tiny clustered blooms, long-lasting, waxy texture",
		ColorRange:      "white, pink, purple",
		Use:             "elegant filler, wedding favorite",
	},
	{
		Key:             "statice",
		Role:            RoleFiller,
		Characteristics: "papery textured, long-lasting, dried feel",
		ColorRange:      "purple, white, yellow, pink",
		Use:             "texture contrast, everlasting quality",
	},
	{
		Key:             "solidago",
		Role:            RoleFiller,
		Characteristics: "golden plumes, wild meadow feel",
		ColorRange:      "yellow, gold",
		Use:             "fall arrangements, cheerful accent",
	},
	{
		Key:             "alstroemeria",
		Role:            RoleFiller,
		Characteristics: "small lily-like, long vase life, multiple blooms",
		ColorRange:      "full spectrum",
		Use:             "versatile filler, budget-friendly",
	},
	{
		Key:             "hypericum",
		Role:            RoleFiller,
		Characteristics: "berry-like, unique texture",
		ColorRange:      "red, burgundy, white, green",
		Use:             "adds interest, festive accent",
	},
	{
		Key:             "thistle",
		Role:            RoleTexture,
		Characteristics: "spiky, architectural, edgy",
		ColorRange:      "purple, blue, white",
		Use:             "modern edge, texture contrast",
	},
	{
		Key:             "protea",
		Role:            RoleTexture,
		Characteristics: "bold sculptural, exotic",
		ColorRange:      "pink, coral, cream",
		Use:             "focal drama, tropical luxury",
	},
	{
		Key:             "scabiosa",
		Role:            RoleTexture,
		Characteristics: "pincushion center, whimsical",
		ColorRange:      "deep burgundy, purple, white",
		Use:             "unique texture, romantic gardens",
	},
	{
		Key:             "ranunculus",
		Role:            RoleTexture,
		Characteristics: "layered tissue-paper petals, romantic",
		ColorRange:      "full spectrum",
		Use:             "texture richness, elegant beauty",
	},
}

var flowerIndex = func() map[string]int {
	idx := make(map[string]int, len(flowers))
	for i := range flowers {
		f := &flowers[i]
		if !f.Role.IsValid() {
			panic(fmt.Sprintf("taxonomy: flower %s has invalid role %q", f.Key, f.Role))
		}
		if _, dup := idx[f.Key]; dup {
			panic(fmt.Sprintf("taxonomy: flower %s filed under more than one role", f.Key))
		}
		f.Name = DisplayName(f.Key)
		idx[f.Key] = i
	}
	return idx
}()

// DisplayName turns a table key into the name used in prose.
func DisplayName(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

// Flowers returns every flower, grouped by role in role order.
func Flowers() []FlowerEntry {
	out := make([]FlowerEntry, 0, len(flowers))
	for _, f := range flowers {
		out = append(out, f.Named(f.Name))
	}
	return out
}

// FlowersByRole returns the flowers filed under one role, in table order.
func FlowersByRole(role Role) []FlowerEntry {
	var out []FlowerEntry
	for _, f := range flowers {
		if f.Role == role {
			out = append(out, f.Named(f.Name))
		}
	}
	return out
}

// Flower looks a flower up by its table key.
func Flower(key string) (FlowerEntry, bool) {
	i, ok := flowerIndex[key]
	if !ok {
		return FlowerEntry{}, false
	}
	return flowers[i].Named(flowers[i].Name), true
}

// MustFlower is Flower for keys known to exist in the table.
func MustFlower(key string) FlowerEntry {
	f, ok := Flower(key)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnknownFlower, key))
	}
	return f
}

// FlowerTable returns the flowers keyed by role then table key.
func FlowerTable() *Table[*Table[FlowerEntry]] {
	out := NewTable[*Table[FlowerEntry]](len(Roles()))
	for _, r := range Roles() {
		out.Set(string(r), NewTable[FlowerEntry](0))
	}
	for _, f := range flowers {
		role, _ := out.Get(string(f.Role))
		role.Set(f.Key, f.Named(f.Name))
	}
	return out
}
