package taxonomy

import "fmt"

var foliage = []FoliageEntry{
	{
		Key:             "ferns",
		Category:        FoliageStructural,
		Types:           []string{"leather fern", "tree fern", "sword fern"},
		Characteristics: "feathery fronds, classical backdrop",
		Use:             "traditional base, soft texture",
	},
	{
		Key:             "eucalyptus",
		Category:        FoliageStructural,
		Types:           []string{"seeded", "silver dollar", "baby blue"},
		Characteristics: "silvery-blue leaves, aromatic, trendy",
		Use:             "modern texture, color accent, fragrance",
	},
	{
		Key:             "ruscus",
		Category:        FoliageStructural,
		Characteristics: "glossy pointed leaves, sturdy stems",
		Use:             "foundation greenery, long-lasting",
	},
	{
		Key:             "salal",
		Category:        FoliageStructural,
		Characteristics: "rounded glossy leaves, pacific northwest",
		Use:             "backdrop greenery, filler",
	},
	{
		Key:             "ivy",
		Category:        FoliageAccent,
		Types:           []string{"English ivy", "variegated ivy"},
		Characteristics: "trailing vines, romantic drape",
		Use:             "softens edges, cascading effect",
	},
	{
		Key:             "pittosporum",
		Category:        FoliageAccent,
		Characteristics: "small rounded leaves, delicate sprays",
		Use:             "airy filler, soft texture",
	},
	{
		Key:             "dusty_miller",
		Category:        FoliageAccent,
		Characteristics: "silvery fuzzy leaves, soft focus",
		Use:             "color contrast, romantic softness",
	},
	{
		Key:             "olive_branches",
		Category:        FoliageAccent,
		Characteristics: "silvery-green, Mediterranean, symbolic",
		Use:             "rustic elegance, peace symbolism",
	},
	{
		Key:             "monstera",
		Category:        FoliageDramatic,
		Characteristics: "large split leaves, tropical bold",
		Use:             "modern drama, tropical theme",
	},
	{
		Key:             "palm",
		Category:        FoliageDramatic,
		Types:           []string{"fan palm", "phoenix palm"},
		Characteristics: "architectural fronds, tropical",
		Use:             "bold statement, event decor",
	},
	{
		Key:             "aspidistra",
		Category:        FoliageDramatic,
		Characteristics: "large blade leaves, manipulable",
		Use:             "wraps, structural elements",
	},
}

var foliageIndex = func() map[string]int {
	idx := make(map[string]int, len(foliage))
	for i := range foliage {
		f := &foliage[i]
		if _, dup := idx[f.Key]; dup {
			panic(fmt.Sprintf("taxonomy: duplicate foliage %s", f.Key))
		}
		f.Name = DisplayName(f.Key)
		idx[f.Key] = i
	}
	return idx
}()

func (f FoliageEntry) clone() FoliageEntry {
	f.Types = append([]string(nil), f.Types...)
	return f
}

// AllFoliage returns every foliage entry, grouped by category in category
// order.
func AllFoliage() []FoliageEntry {
	out := make([]FoliageEntry, 0, len(foliage))
	for _, f := range foliage {
		out = append(out, f.clone())
	}
	return out
}

// Foliage looks a foliage entry up by its table key.
func Foliage(key string) (FoliageEntry, bool) {
	i, ok := foliageIndex[key]
	if !ok {
		return FoliageEntry{}, false
	}
	return foliage[i].clone(), true
}

// MustFoliage is Foliage for keys known to exist in the table.
func MustFoliage(key string) FoliageEntry {
	f, ok := Foliage(key)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnknownFoliage, key))
	}
	return f
}

// FoliageTable returns the foliage keyed by category then table key.
func FoliageTable() *Table[*Table[FoliageEntry]] {
	out := NewTable[*Table[FoliageEntry]](len(FoliageCategories()))
	for _, c := range FoliageCategories() {
		out.Set(string(c), NewTable[FoliageEntry](0))
	}
	for _, f := range foliage {
		category, _ := out.Get(string(f.Category))
		category.Set(f.Key, f.clone())
	}
	return out
}
