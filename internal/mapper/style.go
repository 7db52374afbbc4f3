package mapper

import (
	"strings"

	"github.com/manash/floralgen/pkg/taxonomy"
)

// StyleRule binds trigger phrases to one style. When Requires is set the
// text must also contain that phrase for the rule to fire.
type StyleRule struct {
	Triggers []string
	Requires string
	Category string
	Type     string
}

func (r StyleRule) Matches(text string) bool {
	if !containsAny(text, r.Triggers...) {
		return false
	}
	return r.Requires == "" || strings.Contains(text, r.Requires)
}

var styleRules = []StyleRule{
	{Triggers: []string{"ikebana", "japanese"}, Requires: "moribana", Category: taxonomy.CategoryIkebana, Type: "moribana"},
	{Triggers: []string{"ikebana", "japanese"}, Category: taxonomy.CategoryIkebana, Type: "nageire"},
	{Triggers: []string{"cascade", "waterfall", "trailing"}, Category: taxonomy.CategoryWesternClassical, Type: "cascade"},
	{Triggers: []string{"dome", "round", "centerpiece"}, Category: taxonomy.CategoryWesternClassical, Type: "dome"},
	{Triggers: []string{"minimal", "modern", "contemporary"}, Category: taxonomy.CategoryContemporary, Type: "minimalist"},
	{Triggers: []string{"garden", "loose", "natural", "romantic"}, Category: taxonomy.CategoryContemporary, Type: "garden_style"},
	{Triggers: []string{"crescent", "curve"}, Category: taxonomy.CategoryWesternClassical, Type: "crescent"},
}

// StyleRules returns the style rules in priority order.
func StyleRules() []StyleRule {
	out := make([]StyleRule, len(styleRules))
	copy(out, styleRules)
	return out
}

// DefaultStyle is used when neither the text nor the preference names a style.
func DefaultStyle() taxonomy.StyleEntry {
	return taxonomy.MustStyle(taxonomy.CategoryContemporary, "garden_style")
}

// DetectStyle picks the style for a lower-cased intent. A preference other
// than "any" is consulted only when no rule fires.
func DetectStyle(text, preference string) taxonomy.StyleEntry {
	for _, r := range styleRules {
		if r.Matches(text) {
			return taxonomy.MustStyle(r.Category, r.Type)
		}
	}

	if preference != AnyStyle {
		if s, ok := taxonomy.FindStyle(preference); ok {
			return s
		}
	}

	return DefaultStyle()
}
