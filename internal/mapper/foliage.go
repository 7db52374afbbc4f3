package mapper

import (
	"strings"

	"github.com/manash/floralgen/pkg/taxonomy"
)

// FoliageRule suggests foliage for a style when the intent names none.
// An empty Type matches every style in Category; an empty Category matches
// every style.
type FoliageRule struct {
	Category string
	Type     string
	Picks    []string
}

func (r FoliageRule) Matches(style taxonomy.StyleEntry) bool {
	if r.Category != "" && r.Category != style.Category {
		return false
	}
	return r.Type == "" || r.Type == style.Type
}

var foliageRules = []FoliageRule{
	{Category: taxonomy.CategoryContemporary, Type: "minimalist", Picks: []string{"eucalyptus"}},
	{Category: taxonomy.CategoryContemporary, Type: "garden_style", Picks: []string{"eucalyptus", "ivy"}},
	{Category: taxonomy.CategoryIkebana, Picks: []string{"aspidistra"}},
	{Picks: []string{"ruscus"}},
}

// FoliageRules returns the style-based foliage rules in priority order.
func FoliageRules() []FoliageRule {
	out := make([]FoliageRule, len(foliageRules))
	copy(out, foliageRules)
	return out
}

// DetectFoliage returns every foliage named in the lower-cased intent, in
// table order, or the foliage suggested for style. The result is never
// empty.
func DetectFoliage(text string, style taxonomy.StyleEntry) []taxonomy.FoliageEntry {
	var found []taxonomy.FoliageEntry
	for _, f := range taxonomy.AllFoliage() {
		if strings.Contains(text, f.Name) {
			found = append(found, f)
		}
	}
	if len(found) > 0 {
		return found
	}

	for _, r := range foliageRules {
		if !r.Matches(style) {
			continue
		}
		for _, key := range r.Picks {
			found = append(found, taxonomy.MustFoliage(key))
		}
		return found
	}
	return found
}
