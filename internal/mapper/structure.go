package mapper

import "github.com/manash/floralgen/pkg/taxonomy"

// Structure holds one technique choice from each structural family.
type Structure struct {
	Balance    taxonomy.Technique `json:"balance"`
	Movement   taxonomy.Technique `json:"movement"`
	Proportion taxonomy.Technique `json:"proportion"`
	Focal      taxonomy.Technique `json:"focal"`
	Density    taxonomy.Technique `json:"density"`
	Texture    taxonomy.Technique `json:"texture"`
}

// MapStructure derives the structural techniques for a style. colors is
// part of the contract but no field depends on it yet: proportion is
// always the golden ratio.
func MapStructure(style taxonomy.StyleEntry, colors taxonomy.ColorPalette) Structure {
	return Structure{
		Balance:    taxonomy.MustTechnique(taxonomy.FamilyBalance, balanceKey(style)),
		Movement:   taxonomy.MustTechnique(taxonomy.FamilyMovement, movementKey(style)),
		Proportion: taxonomy.MustTechnique(taxonomy.FamilyProportion, "golden_ratio"),
		Focal:      taxonomy.MustTechnique(taxonomy.FamilyFocalPoints, focalKey(style)),
		Density:    taxonomy.MustTechnique(taxonomy.FamilyDensity, densityKey(style)),
		Texture:    taxonomy.MustTechnique(taxonomy.FamilyTexture, "smooth_rough_contrast"),
	}
}

func balanceKey(style taxonomy.StyleEntry) string {
	switch style.Balance {
	case taxonomy.BalanceSymmetrical, taxonomy.BalanceRadialSymmetrical:
		return "symmetrical_radial"
	default:
		return "asymmetrical"
	}
}

func movementKey(style taxonomy.StyleEntry) string {
	switch style.Type {
	case "cascade":
		return "cascade_fall"
	case "vertical":
		return "vertical_lift"
	case "horizontal":
		return "horizontal_sweep"
	default:
		return "spiral_rotation"
	}
}

func focalKey(style taxonomy.StyleEntry) string {
	if style.Category != taxonomy.CategoryContemporary {
		return "multiple_secondary"
	}
	switch style.Type {
	case "minimalist":
		return "single_dominant"
	case "garden_style":
		return "distributed"
	default:
		return "multiple_secondary"
	}
}

func densityKey(style taxonomy.StyleEntry) string {
	if style.Category != taxonomy.CategoryContemporary {
		return "clustered_with_voids"
	}
	switch style.Type {
	case "minimalist":
		return "airy_spacious"
	case "garden_style":
		return "packed_abundant"
	default:
		return "clustered_with_voids"
	}
}
