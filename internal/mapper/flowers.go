package mapper

import (
	"strings"

	"github.com/manash/floralgen/pkg/taxonomy"
)

// FlowerSet groups detected flowers by role. All four slices are always
// non-nil so every role key is present when encoded.
type FlowerSet struct {
	Focal   []taxonomy.FlowerEntry `json:"focal"`
	Line    []taxonomy.FlowerEntry `json:"line"`
	Filler  []taxonomy.FlowerEntry `json:"filler"`
	Texture []taxonomy.FlowerEntry `json:"texture"`
}

func NewFlowerSet() FlowerSet {
	return FlowerSet{
		Focal:   []taxonomy.FlowerEntry{},
		Line:    []taxonomy.FlowerEntry{},
		Filler:  []taxonomy.FlowerEntry{},
		Texture: []taxonomy.FlowerEntry{},
	}
}

// Add files f under its own role.
func (s *FlowerSet) Add(f taxonomy.FlowerEntry) {
	switch f.Role {
	case taxonomy.RoleFocal:
		s.Focal = append(s.Focal, f)
	case taxonomy.RoleLine:
		s.Line = append(s.Line, f)
	case taxonomy.RoleFiller:
		s.Filler = append(s.Filler, f)
	case taxonomy.RoleTexture:
		s.Texture = append(s.Texture, f)
	}
}

func (s FlowerSet) ByRole(role taxonomy.Role) []taxonomy.FlowerEntry {
	switch role {
	case taxonomy.RoleFocal:
		return s.Focal
	case taxonomy.RoleLine:
		return s.Line
	case taxonomy.RoleFiller:
		return s.Filler
	case taxonomy.RoleTexture:
		return s.Texture
	}
	return nil
}

func (s FlowerSet) Len() int {
	return len(s.Focal) + len(s.Line) + len(s.Filler) + len(s.Texture)
}

// Names returns the display names of the flowers under one role.
func (s FlowerSet) Names(role taxonomy.Role) []string {
	entries := s.ByRole(role)
	names := make([]string, len(entries))
	for i, f := range entries {
		names[i] = f.Name
	}
	return names
}

// AllNames returns every display name in role order.
func (s FlowerSet) AllNames() []string {
	names := make([]string, 0, s.Len())
	for _, r := range taxonomy.Roles() {
		names = append(names, s.Names(r)...)
	}
	return names
}

// FlowerPick names one flower a fallback suggests. Name overrides the
// display name when set.
type FlowerPick struct {
	Key  string
	Name string
}

// FlowerFallback is a curated suggestion used when the intent names no
// flower. OccasionTriggers are tested against the occasion hint, Triggers
// against the intent. A fallback with neither always fires.
type FlowerFallback struct {
	Name             string
	OccasionTriggers []string
	Triggers         []string
	Picks            []FlowerPick
}

func (f FlowerFallback) Matches(text, occasion string) bool {
	if len(f.OccasionTriggers) == 0 && len(f.Triggers) == 0 {
		return true
	}
	return containsAny(occasion, f.OccasionTriggers...) || containsAny(text, f.Triggers...)
}

// Suggest builds the flower set this fallback contributes.
func (f FlowerFallback) Suggest() FlowerSet {
	set := NewFlowerSet()
	for _, p := range f.Picks {
		entry := taxonomy.MustFlower(p.Key)
		if p.Name != "" {
			entry = entry.Named(p.Name)
		}
		set.Add(entry)
	}
	return set
}

var flowerFallbacks = []FlowerFallback{
	{
		Name:             "wedding",
		OccasionTriggers: []string{"wedding"},
		Triggers:         []string{"wedding", "bridal"},
		Picks:            []FlowerPick{{Key: "roses", Name: "garden roses"}, {Key: "peonies"}, {Key: "baby_breath"}},
	},
	{
		Name:     "romantic",
		Triggers: []string{"romantic", "anniversary"},
		Picks:    []FlowerPick{{Key: "roses"}, {Key: "ranunculus"}},
	},
	{
		Name:     "vibrant",
		Triggers: []string{"vibrant", "celebration", "birthday"},
		Picks:    []FlowerPick{{Key: "sunflowers"}, {Key: "dahlias"}},
	},
	{
		Name:     "elegant",
		Triggers: []string{"elegant", "formal"},
		Picks:    []FlowerPick{{Key: "orchids"}, {Key: "lilies"}},
	},
	{
		Name:  "default",
		Picks: []FlowerPick{{Key: "roses"}, {Key: "waxflower"}},
	},
}

// FlowerFallbacks returns the fallbacks in priority order. The last one
// always fires.
func FlowerFallbacks() []FlowerFallback {
	out := make([]FlowerFallback, len(flowerFallbacks))
	copy(out, flowerFallbacks)
	return out
}

// DetectFlowers collects every flower named in the lower-cased intent under
// its role. When none is named, the first matching fallback supplies a
// curated set instead.
func DetectFlowers(text, occasion string) FlowerSet {
	set := NewFlowerSet()
	for _, f := range taxonomy.Flowers() {
		if strings.Contains(text, f.Name) {
			set.Add(f)
		}
	}
	if set.Len() > 0 {
		return set
	}

	occasion = strings.ToLower(occasion)
	for _, fb := range flowerFallbacks {
		if fb.Matches(text, occasion) {
			return fb.Suggest()
		}
	}
	return set
}
