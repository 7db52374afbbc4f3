// Package tools exposes the mapping pipeline as named operations. Every
// transport (CLI, HTTP, MCP, REPL, batch) calls through a Service so the
// argument defaults and response shapes stay the same everywhere.
package tools

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/manash/floralgen/internal/mapper"
	"github.com/manash/floralgen/internal/workflow"
	"github.com/manash/floralgen/pkg/taxonomy"
)

var (
	ErrUnknownTool     = errors.New("unknown tool")
	ErrUnknownTable    = errors.New("unknown taxonomy table")
	ErrInvalidArgument = errors.New("invalid argument")
)

const SynthesisInstruction = "Use the structured data above to synthesize a vivid, cohesive image generation prompt. " +
	"Weave together the style characteristics, specific flowers, foliage, color palette, " +
	"and structural techniques into flowing descriptive prose. Emphasize the sensory qualities " +
	"(texture, color, form, movement) and the overall aesthetic effect. Keep the prompt " +
	"60-100 words, suitable for Flux, SDXL, or Midjourney."

const UsageInstructions = "1. Copy the 'workflow' JSON from this response\n" +
	"2. In ComfyUI, click 'Load' and paste the JSON\n" +
	"3. Ensure you have the specified model checkpoint\n" +
	"4. Click 'Queue Prompt' to generate\n" +
	"5. Adjust seed value in node 5 for variations"

// Defaults apply to generate requests that leave a field empty.
type Defaults struct {
	Size  string
	Model string
	Steps int
}

func DefaultDefaults() Defaults {
	return Defaults{
		Size:  workflow.DefaultSize,
		Model: workflow.DefaultModel,
		Steps: workflow.DefaultSteps,
	}
}

type Service struct {
	Builder  *workflow.Builder
	Defaults Defaults
	Logger   *slog.Logger
}

func NewService(defaults Defaults, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := DefaultDefaults()
	if defaults.Size != "" {
		d.Size = defaults.Size
	}
	if defaults.Model != "" {
		d.Model = defaults.Model
	}
	if defaults.Steps > 0 {
		d.Steps = defaults.Steps
	}
	return &Service{
		Builder:  workflow.NewBuilder(nil),
		Defaults: d,
		Logger:   logger,
	}
}

type EnhanceRequest struct {
	Intent   string `json:"user_intent"`
	Style    string `json:"style_preference,omitempty"`
	Occasion string `json:"occasion,omitempty"`
	Colors   string `json:"color_scheme,omitempty"`
}

type EnhanceResponse struct {
	*mapper.Result
	EnhancedPrompt       string `json:"enhanced_prompt"`
	SynthesisInstruction string `json:"synthesis_instruction"`
}

// Enhance maps the intent with the request's hints and formats the
// result. Empty hints take their defaults.
func (s *Service) Enhance(req EnhanceRequest) *EnhanceResponse {
	result := mapper.Map(req.Intent, mapper.Hints{
		Style:    req.Style,
		Occasion: req.Occasion,
		Colors:   req.Colors,
	})
	return &EnhanceResponse{
		Result:               result,
		EnhancedPrompt:       result.Prompt(),
		SynthesisInstruction: SynthesisInstruction,
	}
}

type GenerateRequest struct {
	Intent string `json:"user_intent"`
	Size   string `json:"output_size,omitempty"`
	Model  string `json:"model_preference,omitempty"`
	Steps  int    `json:"steps,omitempty"`
}

type Metadata struct {
	ArrangementStyle  string   `json:"arrangement_style"`
	FocalFlowers      []string `json:"focal_flowers"`
	AllFlowers        []string `json:"all_flowers"`
	Foliage           []string `json:"foliage"`
	ColorPalette      string   `json:"color_palette"`
	Balance           string   `json:"balance"`
	CulturalTradition string   `json:"cultural_tradition"`
	WorkflowID        string   `json:"workflow_id"`
	Checkpoint        string   `json:"checkpoint"`
}

type GenerateResponse struct {
	Workflow          workflow.Graph `json:"workflow"`
	PositivePrompt    string         `json:"positive_prompt"`
	NegativePrompt    string         `json:"negative_prompt"`
	Metadata          Metadata       `json:"metadata"`
	UsageInstructions string         `json:"usage_instructions"`
}

// Generate maps the intent with default hints and builds its workflow.
// A malformed size is the only error.
func (s *Service) Generate(req GenerateRequest) (*GenerateResponse, error) {
	params := workflow.Params{
		Size:  req.Size,
		Model: req.Model,
		Steps: req.Steps,
	}
	if strings.TrimSpace(params.Size) == "" {
		params.Size = s.Defaults.Size
	}
	if strings.TrimSpace(params.Model) == "" {
		params.Model = s.Defaults.Model
	}
	if params.Steps <= 0 {
		params.Steps = s.Defaults.Steps
	}

	result := mapper.Map(req.Intent, mapper.DefaultHints())
	params.Prompt = result.Prompt()
	params.NegativePrompt = workflow.NegativePrompt

	graph, err := s.Builder.Build(params)
	if err != nil {
		return nil, err
	}
	id, err := graph.ID()
	if err != nil {
		return nil, err
	}

	s.Logger.Debug("workflow generated",
		"workflow_id", id.String(),
		"style", result.Style.Type,
		"model", params.Model,
		"size", params.Size,
	)

	return &GenerateResponse{
		Workflow:       graph,
		PositivePrompt: params.Prompt,
		NegativePrompt: params.NegativePrompt,
		Metadata: Metadata{
			ArrangementStyle:  result.Style.Category + " - " + result.Style.Type,
			FocalFlowers:      result.Flowers.Names(taxonomy.RoleFocal),
			AllFlowers:        result.Flowers.AllNames(),
			Foliage:           mapper.FoliageNames(result.Foliage),
			ColorPalette:      result.Colors.Name,
			Balance:           result.Structure.Balance.Description,
			CulturalTradition: result.Culture.Philosophy,
			WorkflowID:        id.String(),
			Checkpoint:        graph.CheckpointFile(),
		},
		UsageInstructions: UsageInstructions,
	}, nil
}

// OccasionSuggestion carries either Recommendations or Error with the
// list of known occasions.
type OccasionSuggestion struct {
	Occasion           string                              `json:"occasion"`
	Recommendations    map[string]taxonomy.OccasionContext `json:"recommendations,omitempty"`
	Error              string                              `json:"error,omitempty"`
	AvailableOccasions []string                            `json:"available_occasions,omitempty"`
}

// SuggestForOccasion looks up an occasion by key. Case and surrounding
// space are ignored; aliases are not.
func (s *Service) SuggestForOccasion(occasion string) *OccasionSuggestion {
	key := strings.ToLower(strings.TrimSpace(occasion))
	if o, ok := taxonomy.LookupOccasion(key); ok {
		return &OccasionSuggestion{Occasion: occasion, Recommendations: o.ContextMap()}
	}
	return &OccasionSuggestion{
		Occasion:           occasion,
		Error:              fmt.Sprintf("Occasion '%s' not found", occasion),
		AvailableOccasions: taxonomy.OccasionNames(),
	}
}

// Found reports whether the occasion matched.
func (o *OccasionSuggestion) Found() bool {
	return o.Error == ""
}
