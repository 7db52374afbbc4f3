package tools

import (
	"fmt"
	"strings"

	"github.com/manash/floralgen/internal/version"
	"github.com/manash/floralgen/pkg/taxonomy"
)

// Taxonomy table names accepted by Table.
const (
	TableStyles     = "styles"
	TableFlowers    = "flowers"
	TableFoliage    = "foliage"
	TablePalettes   = "palettes"
	TableTechniques = "techniques"
	TableTraditions = "traditions"
	TableOccasions  = "occasions"
)

func TableNames() []string {
	return []string{
		TableStyles, TableFlowers, TableFoliage, TablePalettes,
		TableTechniques, TableTraditions, TableOccasions,
	}
}

func (s *Service) ListStyles() *taxonomy.Table[*taxonomy.Table[taxonomy.StyleEntry]] {
	return taxonomy.StyleTable()
}

func (s *Service) ListFlowers() *taxonomy.Table[*taxonomy.Table[taxonomy.FlowerEntry]] {
	return taxonomy.FlowerTable()
}

func (s *Service) ListFoliage() *taxonomy.Table[*taxonomy.Table[taxonomy.FoliageEntry]] {
	return taxonomy.FoliageTable()
}

func (s *Service) ListPalettes() *taxonomy.Table[taxonomy.ColorPalette] {
	return taxonomy.PaletteTable()
}

func (s *Service) ListTechniques() *taxonomy.Table[*taxonomy.Table[taxonomy.Technique]] {
	return taxonomy.TechniqueTable()
}

func (s *Service) ListTraditions() *taxonomy.Table[taxonomy.CulturalTradition] {
	return taxonomy.TraditionTable()
}

// Table returns a taxonomy table by name. Singular forms and the
// "arrangement_" / "color_" prefixes are accepted.
func (s *Service) Table(name string) (any, error) {
	switch normalizeTable(name) {
	case TableStyles:
		return s.ListStyles(), nil
	case TableFlowers:
		return s.ListFlowers(), nil
	case TableFoliage:
		return s.ListFoliage(), nil
	case TablePalettes:
		return s.ListPalettes(), nil
	case TableTechniques:
		return s.ListTechniques(), nil
	case TableTraditions:
		return s.ListTraditions(), nil
	case TableOccasions:
		return taxonomy.OccasionTable(), nil
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTable, name, strings.Join(TableNames(), ", "))
}

func normalizeTable(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "arrangement_")
	name = strings.TrimPrefix(name, "color_")
	if name != "foliage" && !strings.HasSuffix(name, "s") {
		name += "s"
	}
	return name
}

// Info describes the server and its coverage.
type Info struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Description      string            `json:"description"`
	Architecture     map[string]string `json:"architecture"`
	PrimaryTools     map[string]string `json:"primary_tools"`
	TaxonomyCoverage taxonomy.Coverage `json:"taxonomy_coverage"`
	Checkpoints      []string          `json:"checkpoints"`
	CostOptimization string            `json:"cost_optimization"`
	UsagePattern     string            `json:"usage_pattern"`
}

func (s *Service) ServerInfo() *Info {
	return &Info{
		Name:        "Floral Arrangement Aesthetics Server",
		Version:     version.Version,
		Description: "Floral arrangement prompt enhancement and ComfyUI workflow generation",
		Architecture: map[string]string{
			"layer_1": "Comprehensive floral taxonomy (deterministic lookup)",
			"layer_2": "Structural mapping and technique selection",
			"layer_3": "Cultural and aesthetic context for prompt synthesis",
		},
		PrimaryTools: map[string]string{
			"enhance_floral_prompt":    "Map user intent to professional floral vocabulary for prompt enhancement",
			"generate_floral_workflow": "Create complete ComfyUI workflow JSON with floral-enhanced prompts",
		},
		TaxonomyCoverage: taxonomy.Stats(),
		Checkpoints:      s.Builder.Checkpoints().List(),
		CostOptimization: "deterministic taxonomy mapping leaves a single model call for creative synthesis",
		UsagePattern:     "User -> assistant (intent extraction) -> floralgen (deterministic mapping) -> assistant (creative synthesis)",
	}
}
