package mapper

import (
	"strings"

	"github.com/manash/floralgen/pkg/taxonomy"
)

// How an occasion hint was resolved.
const (
	MatchKey     = "key"
	MatchAlias   = "alias"
	MatchGeneral = "general"
)

const generalNotes = "versatile arrangement suitable for various contexts"

// OccasionSpec is the occasion requirement attached to a mapping. Contexts
// is empty for the general fallback, which carries Notes instead.
type OccasionSpec struct {
	Occasion  string                              `json:"occasion"`
	MatchedBy string                              `json:"matched_by"`
	Contexts  map[string]taxonomy.OccasionContext `json:"contexts,omitempty"`
	Notes     string                              `json:"notes,omitempty"`
}

// GeneralOccasionSpec is returned for hints that resolve to no occasion.
func GeneralOccasionSpec() OccasionSpec {
	return OccasionSpec{Occasion: GeneralOccasion, MatchedBy: MatchGeneral, Notes: generalNotes}
}

// MapOccasion resolves an occasion hint by exact key, then through the
// alias table (whole hint first, then each word), and otherwise returns the
// general record.
func MapOccasion(occasion string) OccasionSpec {
	hint := strings.ToLower(strings.TrimSpace(occasion))

	if o, ok := taxonomy.LookupOccasion(hint); ok {
		return OccasionSpec{Occasion: o.Name, MatchedBy: MatchKey, Contexts: o.ContextMap()}
	}

	candidates := append([]string{hint}, strings.Fields(hint)...)
	for _, c := range candidates {
		name, ok := taxonomy.OccasionAlias(c)
		if !ok {
			if _, exact := taxonomy.LookupOccasion(c); !exact {
				continue
			}
			name = c
		}
		o, _ := taxonomy.LookupOccasion(name)
		return OccasionSpec{Occasion: o.Name, MatchedBy: MatchAlias, Contexts: o.ContextMap()}
	}

	return GeneralOccasionSpec()
}

// CultureFor returns the cultural tradition a style belongs to.
func CultureFor(style taxonomy.StyleEntry) taxonomy.CulturalTradition {
	return taxonomy.MustTradition(traditionKey(style))
}

func traditionKey(style taxonomy.StyleEntry) string {
	switch {
	case style.Category == taxonomy.CategoryIkebana:
		return taxonomy.TraditionJapaneseIkebana
	case style.Category == taxonomy.CategoryContemporary && style.Type == "garden_style":
		return taxonomy.TraditionEuropeanGarden
	case style.Category == taxonomy.CategoryContemporary:
		return taxonomy.TraditionContemporaryWestern
	default:
		return taxonomy.TraditionEuropeanGarden
	}
}
