package taxonomy

// Coverage counts the entries in each table.
type Coverage struct {
	Styles            int `json:"styles"`
	StyleCategories   int `json:"style_categories"`
	Flowers           int `json:"flowers"`
	FlowerRoles       int `json:"flower_roles"`
	Foliage           int `json:"foliage"`
	FoliageCategories int `json:"foliage_categories"`
	Palettes          int `json:"palettes"`
	Techniques        int `json:"techniques"`
	TechniqueFamilies int `json:"technique_families"`
	Occasions         int `json:"occasions"`
	Traditions        int `json:"traditions"`
}

func Stats() Coverage {
	return Coverage{
		Styles:            len(styles),
		StyleCategories:   len(styleCategories),
		Flowers:           len(flowers),
		FlowerRoles:       len(Roles()),
		Foliage:           len(foliage),
		FoliageCategories: len(FoliageCategories()),
		Palettes:          len(palettes),
		Techniques:        len(techniques),
		TechniqueFamilies: len(TechniqueFamilies()),
		Occasions:         len(occasions),
		Traditions:        len(traditions),
	}
}
