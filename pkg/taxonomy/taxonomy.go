// Package taxonomy holds the hand-authored floral design reference data:
// arrangement styles, flowers by role, foliage, color palettes, structural
// techniques, occasions and cultural traditions.
//
// All tables are built once at package initialisation and never mutated.
// Accessors hand out copies, so callers may modify what they receive.
package taxonomy

import (
	"errors"
	"slices"
)

var (
	ErrUnknownStyle     = errors.New("unknown arrangement style")
	ErrUnknownFlower    = errors.New("unknown flower")
	ErrUnknownFoliage   = errors.New("unknown foliage")
	ErrUnknownPalette   = errors.New("unknown color palette")
	ErrUnknownTechnique = errors.New("unknown structural technique")
	ErrUnknownOccasion  = errors.New("unknown occasion")
	ErrUnknownTradition = errors.New("unknown cultural tradition")
)

// Style categories.
const (
	CategoryIkebana          = "ikebana"
	CategoryWesternClassical = "western_classical"
	CategoryContemporary     = "contemporary"
)

// Balance values a StyleEntry may declare.
const (
	BalanceSymmetrical       = "symmetrical"
	BalanceAsymmetrical      = "asymmetrical"
	BalanceRadialSymmetrical = "radial symmetrical"
	BalanceEither            = "symmetrical or asymmetrical"
	BalanceOftenAsymmetrical = "often asymmetrical"
)

// Complexity levels, lowest first.
const (
	ComplexityLow      = "low"
	ComplexityMedium   = "medium"
	ComplexityHigh     = "high"
	ComplexityVeryHigh = "very high"
)

// StyleEntry describes one arrangement style within a tradition.
type StyleEntry struct {
	Category        string `json:"category"`
	Type            string `json:"type"`
	Description     string `json:"description"`
	Container       string `json:"container"`
	Characteristics string `json:"characteristics"`
	Balance         string `json:"balance"`
	Complexity      string `json:"complexity"`
}

// Role is the part a flower plays in a composition.
type Role string

const (
	RoleFocal   Role = "focal"
	RoleLine    Role = "line"
	RoleFiller  Role = "filler"
	RoleTexture Role = "texture"
)

// Roles returns every role in table order.
func Roles() []Role {
	return []Role{RoleFocal, RoleLine, RoleFiller, RoleTexture}
}

func (r Role) IsValid() bool {
	return slices.Contains(Roles(), r)
}

func (r Role) String() string {
	return string(r)
}

// FlowerEntry describes a flower and the role it is filed under.
// Key is the table key (underscored); Name is the display name.
type FlowerEntry struct {
	Key             string   `json:"-"`
	Name            string   `json:"name"`
	Role            Role     `json:"role"`
	Types           []string `json:"types,omitempty"`
	Characteristics string   `json:"characteristics"`
	ColorRange      string   `json:"color_range,omitempty"`
	Size            string   `json:"size,omitempty"`
	Height          string   `json:"height,omitempty"`
	Seasons         []string `json:"seasons,omitempty"`
	Symbolism       string   `json:"symbolism,omitempty"`
	Use             string   `json:"use,omitempty"`
	Texture         string   `json:"texture,omitempty"`
}

// Named returns a copy of the entry carrying a different display name.
func (f FlowerEntry) Named(name string) FlowerEntry {
	f.Name = name
	f.Types = slices.Clone(f.Types)
	f.Seasons = slices.Clone(f.Seasons)
	return f
}

// FoliageCategory groups foliage by the job it does.
type FoliageCategory string

const (
	FoliageStructural FoliageCategory = "structural"
	FoliageAccent     FoliageCategory = "accent"
	FoliageDramatic   FoliageCategory = "dramatic"
)

// FoliageCategories returns every category in table order.
func FoliageCategories() []FoliageCategory {
	return []FoliageCategory{FoliageStructural, FoliageAccent, FoliageDramatic}
}

type FoliageEntry struct {
	Key             string          `json:"-"`
	Name            string          `json:"name"`
	Category        FoliageCategory `json:"category"`
	Types           []string        `json:"types,omitempty"`
	Characteristics string          `json:"characteristics"`
	Use             string          `json:"use"`
}

// ColorPalette is a named set of colors, or a color-theory description
// with examples, plus the effect it produces.
type ColorPalette struct {
	Name        string   `json:"palette"`
	Description string   `json:"description,omitempty"`
	Examples    []string `json:"examples,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Effect      string   `json:"effect"`
	Occasions   []string `json:"occasions,omitempty"`
	Seasons     []string `json:"seasons,omitempty"`
}

// HasColors reports whether the palette lists explicit colors.
func (p ColorPalette) HasColors() bool {
	return len(p.Colors) > 0
}

// TechniqueFamily is one of the six structural technique groups.
type TechniqueFamily string

const (
	FamilyBalance     TechniqueFamily = "balance"
	FamilyProportion  TechniqueFamily = "proportion"
	FamilyFocalPoints TechniqueFamily = "focal_points"
	FamilyMovement    TechniqueFamily = "movement"
	FamilyTexture     TechniqueFamily = "texture"
	FamilyDensity     TechniqueFamily = "density"
)

// TechniqueFamilies returns every family in table order.
func TechniqueFamilies() []TechniqueFamily {
	return []TechniqueFamily{
		FamilyBalance, FamilyProportion, FamilyFocalPoints,
		FamilyMovement, FamilyTexture, FamilyDensity,
	}
}

// Technique is a structural technique. Only the fields that make sense
// for its family are set.
type Technique struct {
	Key          string          `json:"-"`
	Family       TechniqueFamily `json:"-"`
	Description  string          `json:"description,omitempty"`
	Arrangements []string        `json:"arrangements,omitempty"`
	Application  string          `json:"application,omitempty"`
	Technique    string          `json:"technique,omitempty"`
	Examples     string          `json:"examples,omitempty"`
	Style        string          `json:"style,omitempty"`
	Effect       string          `json:"effect,omitempty"`
	Traditional  string          `json:"traditional,omitempty"`
	Modern       string          `json:"modern,omitempty"`
	Horizontal   string          `json:"horizontal,omitempty"`
}

// OccasionContext is a sub-context of an occasion, e.g. the ceremony of a
// wedding.
type OccasionContext struct {
	Key             string   `json:"-"`
	Description     string   `json:"description,omitempty"`
	Arrangements    []string `json:"arrangements,omitempty"`
	Styles          []string `json:"styles,omitempty"`
	Scale           string   `json:"scale,omitempty"`
	Characteristics string   `json:"characteristics,omitempty"`
}

type Occasion struct {
	Name     string
	Contexts []OccasionContext
}

// ContextMap returns the sub-contexts keyed by name.
func (o Occasion) ContextMap() map[string]OccasionContext {
	m := make(map[string]OccasionContext, len(o.Contexts))
	for _, c := range o.Contexts {
		m[c.Key] = cloneContext(c)
	}
	return m
}

type CulturalTradition struct {
	Key             string            `json:"-"`
	Name            string            `json:"name"`
	Philosophy      string            `json:"philosophy"`
	Principles      []string          `json:"principles"`
	Characteristics string            `json:"characteristics,omitempty"`
	KeyConcepts     map[string]string `json:"key_concepts,omitempty"`
}

func cloneContext(c OccasionContext) OccasionContext {
	c.Arrangements = slices.Clone(c.Arrangements)
	c.Styles = slices.Clone(c.Styles)
	return c
}
