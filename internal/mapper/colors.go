package mapper

import "github.com/manash/floralgen/pkg/taxonomy"

// ColorRule selects a palette when any trigger appears in the intent.
type ColorRule struct {
	Triggers []string
	Palette  string
}

var colorRules = func() []ColorRule {
	var rules []ColorRule
	for _, name := range taxonomy.PaletteNames() {
		rules = append(rules, ColorRule{Triggers: []string{name}, Palette: name})
	}
	return append(rules,
		ColorRule{Triggers: []string{"spring"}, Palette: "spring"},
		ColorRule{Triggers: []string{"summer"}, Palette: "summer"},
		ColorRule{Triggers: []string{"autumn", "fall"}, Palette: "autumn"},
		ColorRule{Triggers: []string{"winter"}, Palette: "winter"},
		ColorRule{Triggers: []string{"romantic", "wedding"}, Palette: "romantic"},
		ColorRule{Triggers: []string{"elegant", "formal"}, Palette: "elegant"},
		ColorRule{Triggers: []string{"vibrant", "bold"}, Palette: "vibrant"},
	)
}()

// ColorRules returns the palette rules in priority order: palette names
// first, then seasons, then moods.
func ColorRules() []ColorRule {
	out := make([]ColorRule, len(colorRules))
	copy(out, colorRules)
	return out
}

// DefaultPalette is used when nothing else selects a palette.
const DefaultPalette = "analogous"

// DetectColors picks one palette for a lower-cased intent. The preference
// applies only when no rule fires and it names a palette. occasion is
// accepted for callers that have one but does not take part in selection.
func DetectColors(text, preference, occasion string) taxonomy.ColorPalette {
	for _, r := range colorRules {
		if containsAny(text, r.Triggers...) {
			return taxonomy.MustPalette(r.Palette)
		}
	}
	if p, ok := taxonomy.Palette(preference); ok {
		return p
	}
	return taxonomy.MustPalette(DefaultPalette)
}
