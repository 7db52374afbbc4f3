// Package mapper turns a free-text arrangement description into taxonomy
// entries: style, flowers by role, foliage, a color palette, six structural
// technique choices, occasion requirements and a cultural tradition.
//
// Every detector is an ordered rule list evaluated first match wins, so the
// priority order can be read (and tested) as data. Matching is plain
// case-insensitive substring containment.
package mapper

import (
	"strings"

	"github.com/manash/floralgen/pkg/taxonomy"
)

// Default hint values, used when the caller has no preference.
const (
	AnyStyle        = "any"
	GeneralOccasion = "general"
	HarmoniousColor = "harmonious"
)

// Hints are the optional caller preferences that steer detection when the
// intent text itself carries no signal.
type Hints struct {
	Style    string
	Occasion string
	Colors   string
}

func DefaultHints() Hints {
	return Hints{
		Style:    AnyStyle,
		Occasion: GeneralOccasion,
		Colors:   HarmoniousColor,
	}
}

func (h Hints) withDefaults() Hints {
	d := DefaultHints()
	if strings.TrimSpace(h.Style) == "" {
		h.Style = d.Style
	}
	if strings.TrimSpace(h.Occasion) == "" {
		h.Occasion = d.Occasion
	}
	if strings.TrimSpace(h.Colors) == "" {
		h.Colors = d.Colors
	}
	return h
}

// Result is the outcome of mapping one intent. It is built fresh per call.
type Result struct {
	Intent    string                     `json:"user_intent"`
	Style     taxonomy.StyleEntry        `json:"style"`
	Flowers   FlowerSet                  `json:"flowers"`
	Foliage   []taxonomy.FoliageEntry    `json:"foliage"`
	Colors    taxonomy.ColorPalette      `json:"colors"`
	Structure Structure                  `json:"structure"`
	Occasion  OccasionSpec               `json:"occasion"`
	Culture   taxonomy.CulturalTradition `json:"cultural_context"`
}

// Map runs every detector over intent and assembles the result. It never
// fails: unrecognised input falls through to documented defaults.
func Map(intent string, hints Hints) *Result {
	hints = hints.withDefaults()
	text := strings.ToLower(intent)

	style := DetectStyle(text, hints.Style)
	colors := DetectColors(text, hints.Colors, hints.Occasion)

	return &Result{
		Intent:    intent,
		Style:     style,
		Flowers:   DetectFlowers(text, hints.Occasion),
		Foliage:   DetectFoliage(text, style),
		Colors:    colors,
		Structure: MapStructure(style, colors),
		Occasion:  MapOccasion(hints.Occasion),
		Culture:   CultureFor(style),
	}
}

// Prompt formats the result as a single descriptive sentence.
func (r *Result) Prompt() string {
	return Format(r)
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
