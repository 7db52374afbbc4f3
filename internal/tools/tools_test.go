package tools

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/manash/floralgen/internal/workflow"
	"github.com/manash/floralgen/pkg/taxonomy"
)

func newTestService() *Service {
	return NewService(Defaults{}, nil)
}

func TestEnhance(t *testing.T) {
	s := newTestService()
	resp := s.Enhance(EnhanceRequest{
		Intent:   "romantic spring wedding centerpiece",
		Occasion: "wedding",
		Colors:   "romantic",
	})

	if resp.Colors.Name != "romantic" {
		t.Errorf("Colors = %s, want romantic", resp.Colors.Name)
	}
	if !strings.Contains(resp.EnhancedPrompt, "palette") {
		t.Errorf("EnhancedPrompt = %q, want a palette clause", resp.EnhancedPrompt)
	}
	if resp.SynthesisInstruction != SynthesisInstruction {
		t.Errorf("SynthesisInstruction = %q", resp.SynthesisInstruction)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"user_intent", "style", "flowers", "foliage", "colors", "structure", "occasion", "cultural_context", "enhanced_prompt", "synthesis_instruction"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("response missing %q", key)
		}
	}
}

func TestGenerate(t *testing.T) {
	s := newTestService()
	resp, err := s.Generate(GenerateRequest{Intent: "elegant orchid centerpiece", Size: "768x1024", Model: "sdxl", Steps: 30})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if resp.Workflow[workflow.NodePositive].Inputs["text"] != resp.PositivePrompt {
		t.Error("node 2 text does not match the positive prompt")
	}
	if resp.NegativePrompt != workflow.NegativePrompt {
		t.Errorf("NegativePrompt = %q", resp.NegativePrompt)
	}
	if resp.UsageInstructions != UsageInstructions {
		t.Errorf("UsageInstructions = %q", resp.UsageInstructions)
	}

	md := resp.Metadata
	if md.ArrangementStyle != "western_classical - dome" {
		t.Errorf("ArrangementStyle = %q", md.ArrangementStyle)
	}
	// "orchid" is not a table name, so the elegant fallback supplies the flowers.
	if !slices.Equal(md.FocalFlowers, []string{"orchids", "lilies"}) {
		t.Errorf("FocalFlowers = %v, want [orchids lilies]", md.FocalFlowers)
	}
	if md.ColorPalette != "elegant" {
		t.Errorf("ColorPalette = %q, want elegant", md.ColorPalette)
	}
	if md.Checkpoint != "sd_xl_base_1.0.safetensors" {
		t.Errorf("Checkpoint = %q", md.Checkpoint)
	}
	if md.WorkflowID == "" {
		t.Error("WorkflowID is empty")
	}
	if md.CulturalTradition != taxonomy.MustTradition(taxonomy.TraditionEuropeanGarden).Philosophy {
		t.Errorf("CulturalTradition = %q", md.CulturalTradition)
	}
}

func TestGenerate_AllFlowersInRoleOrder(t *testing.T) {
	s := newTestService()
	resp, err := s.Generate(GenerateRequest{Intent: "thistle, waxflower, stock and peonies"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := []string{"peonies", "stock", "waxflower", "thistle"}
	if !slices.Equal(resp.Metadata.AllFlowers, want) {
		t.Errorf("AllFlowers = %v, want %v", resp.Metadata.AllFlowers, want)
	}
}

func TestGenerate_UnknownModelFallsBack(t *testing.T) {
	s := newTestService()
	resp, err := s.Generate(GenerateRequest{Intent: "dome", Model: "dalle"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := resp.Workflow.CheckpointFile(); got != "flux1-dev.safetensors" {
		t.Errorf("checkpoint = %q, want flux default", got)
	}
}

func TestGenerate_Defaults(t *testing.T) {
	s := NewService(Defaults{Size: "512x768", Model: "sd15", Steps: 12}, nil)
	resp, err := s.Generate(GenerateRequest{Intent: "dome", Steps: -1})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	latent := resp.Workflow[workflow.NodeLatent].Inputs
	if latent["width"] != 512 || latent["height"] != 768 {
		t.Errorf("latent = %v, want 512x768", latent)
	}
	if got := resp.Workflow[workflow.NodeSampler].Inputs["steps"]; got != 12 {
		t.Errorf("steps = %v, want 12", got)
	}
	if resp.Metadata.Checkpoint != "v1-5-pruned-emaonly.safetensors" {
		t.Errorf("Checkpoint = %q", resp.Metadata.Checkpoint)
	}
}

func TestGenerate_InvalidSize(t *testing.T) {
	s := newTestService()
	_, err := s.Generate(GenerateRequest{Intent: "dome", Size: "huge"})
	if !errors.Is(err, workflow.ErrInvalidSize) {
		t.Errorf("Generate() error = %v, want ErrInvalidSize", err)
	}
}

func TestSuggestForOccasion(t *testing.T) {
	s := newTestService()

	t.Run("known", func(t *testing.T) {
		got := s.SuggestForOccasion("funeral")
		if !got.Found() {
			t.Fatalf("SuggestForOccasion(funeral) error = %s", got.Error)
		}
		if _, ok := got.Recommendations["wreath"]; !ok {
			t.Errorf("recommendations missing wreath: %v", got.Recommendations)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		got := s.SuggestForOccasion("not_a_real_occasion")
		if got.Found() {
			t.Fatal("SuggestForOccasion(not_a_real_occasion) matched")
		}
		if got.Error != "Occasion 'not_a_real_occasion' not found" {
			t.Errorf("Error = %q", got.Error)
		}
		want := []string{"wedding", "funeral", "celebration", "everyday"}
		if !slices.Equal(got.AvailableOccasions, want) {
			t.Errorf("AvailableOccasions = %v, want %v", got.AvailableOccasions, want)
		}
	})

	t.Run("alias is not a key", func(t *testing.T) {
		if s.SuggestForOccasion("reception").Found() {
			t.Error("SuggestForOccasion(reception) matched an alias")
		}
	})
}

func TestTable(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name    string
		wantErr bool
	}{
		{"styles", false},
		{"arrangement_styles", false},
		{"style", false},
		{"flowers", false},
		{"foliage", false},
		{"color_palettes", false},
		{"palette", false},
		{"techniques", false},
		{"traditions", false},
		{"occasions", false},
		{"vases", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Table(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownTable) {
					t.Errorf("Table(%q) error = %v, want ErrUnknownTable", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Table(%q) error = %v", tt.name, err)
			}
			if got == nil {
				t.Errorf("Table(%q) = nil", tt.name)
			}
		})
	}
}

func TestServerInfo(t *testing.T) {
	info := newTestService().ServerInfo()
	if info.Version == "" {
		t.Error("Version is empty")
	}
	if info.TaxonomyCoverage != taxonomy.Stats() {
		t.Errorf("TaxonomyCoverage = %+v", info.TaxonomyCoverage)
	}
	if !slices.Equal(info.Checkpoints, []string{"flux", "sd15", "sdxl"}) {
		t.Errorf("Checkpoints = %v", info.Checkpoints)
	}
}

func TestRegistry(t *testing.T) {
	r := newTestService().Tools()

	protocolNames := []string{
		"enhance_floral_prompt", "generate_floral_workflow",
		"list_arrangement_styles", "list_flowers_by_role", "list_color_palettes",
		"list_foliage_types", "get_cultural_traditions", "get_structural_techniques",
		"suggest_flowers_for_occasion", "get_server_info",
	}
	var got []string
	for _, tool := range r.List() {
		got = append(got, tool.ProtocolName)
	}
	if !slices.Equal(got, protocolNames) {
		t.Errorf("protocol names = %v, want %v", got, protocolNames)
	}

	for _, name := range []string{"enhance", "enhance_floral_prompt"} {
		if _, ok := r.Get(name); !ok {
			t.Errorf("Get(%q) not found", name)
		}
	}
}

func TestRegistry_Call(t *testing.T) {
	r := newTestService().Tools()
	ctx := context.Background()

	t.Run("workflow with JSON numbers", func(t *testing.T) {
		out, err := r.Call(ctx, "generate_floral_workflow", Args{
			"user_intent": "cascade of orchids",
			"output_size": "1024x768",
			"steps":       float64(25),
		})
		if err != nil {
			t.Fatalf("Call() error = %v", err)
		}
		resp := out.(*GenerateResponse)
		if got := resp.Workflow[workflow.NodeSampler].Inputs["steps"]; got != 25 {
			t.Errorf("steps = %v, want 25", got)
		}
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := r.Call(ctx, "paint", nil)
		if !errors.Is(err, ErrUnknownTool) {
			t.Errorf("Call(paint) error = %v, want ErrUnknownTool", err)
		}
	})

	t.Run("bad argument type", func(t *testing.T) {
		_, err := r.Call(ctx, "workflow", Args{"user_intent": "x", "steps": true})
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Call() error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("bad size", func(t *testing.T) {
		_, err := r.Call(ctx, "workflow", Args{"user_intent": "x", "output_size": "1024"})
		if !errors.Is(err, workflow.ErrInvalidSize) {
			t.Errorf("Call() error = %v, want ErrInvalidSize", err)
		}
	})

	t.Run("missing required argument", func(t *testing.T) {
		tests := []struct {
			tool string
			args Args
			want string
		}{
			{"enhance_floral_prompt", Args{}, "user_intent is required"},
			{"generate_floral_workflow", Args{}, "user_intent is required"},
			{"suggest_flowers_for_occasion", Args{}, "occasion is required"},
			{"enhance", Args{"user_intent": "   "}, "user_intent is required"},
			{"workflow", Args{"user_intent": nil, "steps": float64(20)}, "user_intent is required"},
			{"occasion", nil, "occasion is required"},
		}
		for _, tt := range tests {
			out, err := r.Call(ctx, tt.tool, tt.args)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Call(%s, %v) error = %v, want ErrInvalidArgument", tt.tool, tt.args, err)
				continue
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Call(%s) error = %q, want %q", tt.tool, err, tt.want)
			}
			if out != nil {
				t.Errorf("Call(%s) returned a result with the error", tt.tool)
			}
		}
	})

	t.Run("listing", func(t *testing.T) {
		out, err := r.Call(ctx, "list_color_palettes", nil)
		if err != nil {
			t.Fatalf("Call() error = %v", err)
		}
		if _, ok := out.(*taxonomy.Table[taxonomy.ColorPalette]); !ok {
			t.Errorf("Call(list_color_palettes) = %T", out)
		}
	})
}

func TestArgs(t *testing.T) {
	args := Args{
		"name":   "dome",
		"blank":  "  ",
		"num":    json.Number("12"),
		"float":  3.5,
		"str":    "7",
		"bad":    "seven",
		"nested": []any{1},
	}

	if got, _ := args.String("name", "x"); got != "dome" {
		t.Errorf("String(name) = %q", got)
	}
	if got, _ := args.String("blank", "x"); got != "x" {
		t.Errorf("String(blank) = %q, want default", got)
	}
	if got, _ := args.String("missing", "x"); got != "x" {
		t.Errorf("String(missing) = %q, want default", got)
	}
	if _, err := args.String("nested", ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("String(nested) error = %v", err)
	}

	if got, _ := args.Int("num", 0); got != 12 {
		t.Errorf("Int(num) = %d", got)
	}
	if got, _ := args.Int("str", 0); got != 7 {
		t.Errorf("Int(str) = %d", got)
	}
	if got, _ := args.Int("missing", 20); got != 20 {
		t.Errorf("Int(missing) = %d, want default", got)
	}
	if _, err := args.Int("float", 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Int(float) error = %v", err)
	}
	if _, err := args.Int("bad", 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Int(bad) error = %v", err)
	}
}

func TestArgs_IntRange(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    int
		wantErr bool
	}{
		{"huge float", 1e300, 0, true},
		{"negative huge float", -1e300, 0, true},
		{"float above int32", float64(math.MaxInt32) + 1, 0, true},
		{"int32 max float", float64(math.MaxInt32), math.MaxInt32, false},
		{"huge json number", json.Number("9000000000"), 0, true},
		{"huge string", "9000000000", 0, true},
		{"ordinary", float64(30), 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Args{"steps": tt.value}.Int("steps", 0)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("Int() error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Int() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
		})
	}
}
