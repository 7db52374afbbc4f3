package taxonomy

import "maps"

var occasions = []Occasion{
	{
		Name: "wedding",
		Contexts: []OccasionContext{
			{
				Key:          "ceremony",
				Arrangements: []string{"altar arrangements", "aisle markers", "chuppah flowers"},
				Styles:       []string{"romantic", "elegant", "dramatic"},
				Scale:        "large, architectural",
			},
			{
				Key:          "reception",
				Arrangements: []string{"centerpieces", "cake flowers", "sweetheart table"},
				Styles:       []string{"romantic", "garden-style", "elegant"},
				Scale:        "medium, conversation-friendly",
			},
			{
				Key:          "bridal_party",
				Arrangements: []string{"bouquets", "boutonnieres", "corsages"},
				Styles:       []string{"cohesive with ceremony", "hand-tied", "wearable"},
				Scale:        "personal, scaled to person",
			},
		},
	},
	{
		Name: "funeral",
		Contexts: []OccasionContext{
			{
				Key:             "standing_spray",
				Description:     "Easel-mounted vertical arrangement",
				Characteristics: "formal, respectful, traditional symbolism",
			},
			{
				Key:             "casket_spray",
				Description:     "Long horizontal arrangement for casket",
				Characteristics: "full coverage, masculine or feminine styling",
			},
			{
				Key:             "wreath",
				Description:     "Circular form symbolizing eternal life",
				Characteristics: "traditional, symmetrical, symbolic",
			},
			{
				Key:             "sympathy_basket",
				Description:     "Comforting arrangement for home",
				Characteristics: "thoughtful, lasting, garden-style",
			},
		},
	},
	{
		Name: "celebration",
		Contexts: []OccasionContext{
			{
				Key:             "birthday",
				Characteristics: "joyful, colorful, personal to recipient",
				Styles:          []string{"vibrant", "fun", "favorite colors"},
			},
			{
				Key:             "anniversary",
				Characteristics: "romantic, meaningful, often roses",
				Styles:          []string{"elegant", "romantic", "traditional flowers"},
			},
			{
				Key:             "congratulations",
				Characteristics: "bright, uplifting, celebratory",
				Styles:          []string{"vibrant", "contemporary", "bold"},
			},
			{
				Key:             "get_well",
				Characteristics: "cheerful, uplifting, fragrance-free",
				Styles:          []string{"bright colors", "garden-style", "optimistic"},
			},
		},
	},
	{
		Name: "everyday",
		Contexts: []OccasionContext{
			{
				Key:             "home_decor",
				Characteristics: "seasonally appropriate, complements interior",
				Styles:          []string{"garden-style", "minimalist", "whatever brings joy"},
			},
			{
				Key:             "hostess_gift",
				Characteristics: "thoughtful, pre-arranged, ready to display",
				Styles:          []string{"elegant", "seasonal", "generous but not overwhelming"},
			},
		},
	},
}

// occasionAliases maps words a caller may use for an occasion onto its
// table key. Sub-context names are added at init.
var occasionAliases = func() map[string]string {
	aliases := map[string]string{
		"bridal":      "wedding",
		"bride":       "wedding",
		"bouquet":     "wedding",
		"boutonniere": "wedding",
		"corsage":     "wedding",
		"altar":       "wedding",
		"chuppah":     "wedding",
		"engagement":  "wedding",
		"sympathy":    "funeral",
		"memorial":    "funeral",
		"condolence":  "funeral",
		"casket":      "funeral",
		"graduation":  "celebration",
		"party":       "celebration",
		"get well":    "celebration",
		"home":        "everyday",
		"gift":        "everyday",
		"hostess":     "everyday",
	}
	for _, o := range occasions {
		for _, c := range o.Contexts {
			aliases[c.Key] = o.Name
			aliases[DisplayName(c.Key)] = o.Name
		}
	}
	return aliases
}()

// OccasionNames returns the top-level occasion keys in table order.
func OccasionNames() []string {
	names := make([]string, len(occasions))
	for i, o := range occasions {
		names[i] = o.Name
	}
	return names
}

// LookupOccasion returns the occasion with exactly this key.
func LookupOccasion(name string) (Occasion, bool) {
	for _, o := range occasions {
		if o.Name == name {
			ctxs := make([]OccasionContext, len(o.Contexts))
			for i, c := range o.Contexts {
				ctxs[i] = cloneContext(c)
			}
			return Occasion{Name: o.Name, Contexts: ctxs}, true
		}
	}
	return Occasion{}, false
}

// OccasionAlias resolves an alias such as "reception" or "sympathy" to an
// occasion key.
func OccasionAlias(word string) (string, bool) {
	name, ok := occasionAliases[word]
	return name, ok
}

// OccasionAliases returns a copy of the alias table.
func OccasionAliases() map[string]string {
	return maps.Clone(occasionAliases)
}

// OccasionTable returns every occasion's sub-contexts keyed by occasion.
func OccasionTable() *Table[*Table[OccasionContext]] {
	out := NewTable[*Table[OccasionContext]](len(occasions))
	for _, o := range occasions {
		contexts := NewTable[OccasionContext](len(o.Contexts))
		for _, c := range o.Contexts {
			contexts.Set(c.Key, cloneContext(c))
		}
		out.Set(o.Name, contexts)
	}
	return out
}
