package taxonomy

import (
	"fmt"
	"maps"
	"slices"
)

// Cultural tradition keys.
const (
	TraditionJapaneseIkebana     = "japanese_ikebana"
	TraditionEuropeanGarden      = "european_garden"
	TraditionVictorian           = "victorian"
	TraditionContemporaryWestern = "contemporary_western"
)

var traditions = []CulturalTradition{
	{
		Key:        TraditionJapaneseIkebana,
		Philosophy: "minimalism, asymmetry, nature appreciation, spiritual practice",
		Principles: []string{
			"heaven-earth-man triangle",
			"negative space as important as flowers",
			"seasonal awareness",
		},
		KeyConcepts: map[string]string{
			"ma":             "negative space, pause, interval",
			"wabi_sabi":      "imperfect beauty, transience",
			"shin_soe_hikae": "primary, secondary, tertiary elements",
		},
	},
	{
		Key:             TraditionEuropeanGarden,
		Philosophy:      "abundance, romance, natural beauty",
		Principles:      []string{"lush fullness", "color harmony", "garden-fresh aesthetic"},
		Characteristics: "loose, organic, just-picked feel, varied textures",
	},
	{
		Key:             TraditionVictorian,
		Philosophy:      "language of flowers, tight structure, formal beauty",
		Principles:      []string{"symbolic meanings", "tight massing", "structured form"},
		Characteristics: "dense, formal, symbolic, tussie-mussie style",
	},
	{
		Key:             TraditionContemporaryWestern,
		Philosophy:      "artistic expression, breaking tradition, individual style",
		Principles:      []string{"rule-breaking", "artistic interpretation", "personal expression"},
		Characteristics: "varied widely, structural, unexpected materials",
	},
}

func init() {
	for i := range traditions {
		traditions[i].Name = DisplayName(traditions[i].Key)
	}
}

func (t CulturalTradition) clone() CulturalTradition {
	t.Principles = slices.Clone(t.Principles)
	t.KeyConcepts = maps.Clone(t.KeyConcepts)
	return t
}

func Tradition(key string) (CulturalTradition, bool) {
	for _, t := range traditions {
		if t.Key == key {
			return t.clone(), true
		}
	}
	return CulturalTradition{}, false
}

// MustTradition is Tradition for keys known to exist in the table.
func MustTradition(key string) CulturalTradition {
	t, ok := Tradition(key)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnknownTradition, key))
	}
	return t
}

// Traditions returns every tradition in table order.
func Traditions() []CulturalTradition {
	out := make([]CulturalTradition, len(traditions))
	for i, t := range traditions {
		out[i] = t.clone()
	}
	return out
}

// TraditionTable returns the traditions keyed by key.
func TraditionTable() *Table[CulturalTradition] {
	out := NewTable[CulturalTradition](len(traditions))
	for _, t := range traditions {
		out.Set(t.Key, t.clone())
	}
	return out
}
