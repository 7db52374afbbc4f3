package mapper

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/manash/floralgen/pkg/taxonomy"
)

const defaultCharacteristics = "beautiful composition"

// Format renders a mapping as one comma-separated sentence. Clauses whose
// source list is empty are left out.
func Format(r *Result) string {
	title := cases.Title(language.English)
	parts := []string{
		title.String(taxonomy.DisplayName(r.Style.Type)) + " floral arrangement",
		"in " + r.Style.Container,
	}

	if names := r.Flowers.Names(taxonomy.RoleFocal); len(names) > 0 {
		parts = append(parts, "featuring "+strings.Join(names, ", ")+" as focal flowers")
	}
	if names := r.Flowers.Names(taxonomy.RoleLine); len(names) > 0 {
		parts = append(parts, "with "+strings.Join(names, ", ")+" creating vertical lines")
	}
	if names := r.Flowers.Names(taxonomy.RoleFiller); len(names) > 0 {
		parts = append(parts, "filled with "+strings.Join(names, ", "))
	}
	if names := FoliageNames(r.Foliage); len(names) > 0 {
		parts = append(parts, "accented with "+strings.Join(names, ", ")+" foliage")
	}
	if r.Colors.HasColors() {
		parts = append(parts, "in "+strings.Join(r.Colors.Colors, ", ")+" palette")
	}

	characteristics := r.Style.Characteristics
	if characteristics == "" {
		characteristics = defaultCharacteristics
	}
	parts = append(parts,
		"using "+r.Structure.Balance.Description,
		"with "+r.Structure.Movement.Description,
		"creating "+characteristics,
	)

	return strings.Join(parts, ", ")
}

func FoliageNames(foliage []taxonomy.FoliageEntry) []string {
	names := make([]string, len(foliage))
	for i, f := range foliage {
		names[i] = f.Name
	}
	return names
}
