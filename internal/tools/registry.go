package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/manash/floralgen/internal/workflow"
)

// ParamType is the JSON type of a tool parameter.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamInteger ParamType = "integer"
)

type Param struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Description string    `json:"description"`
	Required    bool      `json:"required,omitempty"`
	Default     any       `json:"default,omitempty"`
}

// Tool is one named operation. Name is the short name used by the CLI and
// HTTP routes; ProtocolName is the name registered with MCP clients.
type Tool struct {
	Name         string                                            `json:"name"`
	ProtocolName string                                            `json:"protocol_name"`
	Description  string                                            `json:"description"`
	Params       []Param                                           `json:"params"`
	Call         func(ctx context.Context, args Args) (any, error) `json:"-"`
}

// Args are the decoded arguments of one call.
type Args map[string]any

// String returns the named argument, or def when it is absent or empty.
func (a Args) String(name, def string) (string, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return def, nil
	}
	switch s := v.(type) {
	case string:
		if strings.TrimSpace(s) == "" {
			return def, nil
		}
		return s, nil
	case json.Number:
		return s.String(), nil
	}
	return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidArgument, name, v)
}

// Int returns the named argument as an int, or def when it is absent.
// JSON numbers and numeric strings are accepted.
func (a Args) Int(name string, def int) (int, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidArgument, name, n)
		}
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, fmt.Errorf("%w: %s out of range: %v", ErrInvalidArgument, name, n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrInvalidArgument, name, err)
		}
		if i > math.MaxInt32 || i < math.MinInt32 {
			return 0, fmt.Errorf("%w: %s out of range: %v", ErrInvalidArgument, name, i)
		}
		return int(i), nil
	case string:
		if strings.TrimSpace(n) == "" {
			return def, nil
		}
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidArgument, name, n)
		}
		return int(i), nil
	}
	return 0, fmt.Errorf("%w: %s must be an integer, got %T", ErrInvalidArgument, name, v)
}

type Registry struct {
	tools  []*Tool
	byName map[string]*Tool
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Tool)}
}

// Register adds t under both of its names.
func (r *Registry) Register(t *Tool) {
	r.tools = append(r.tools, t)
	r.byName[t.Name] = t
	if t.ProtocolName != "" {
		r.byName[t.ProtocolName] = t
	}
}

func (r *Registry) Get(name string) (*Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// List returns the tools in registration order.
func (r *Registry) List() []*Tool {
	return append([]*Tool(nil), r.tools...)
}

// Call runs the named tool.
func (r *Registry) Call(ctx context.Context, name string, args Args) (any, error) {
	t, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	if args == nil {
		args = Args{}
	}
	if err := t.checkRequired(args); err != nil {
		return nil, err
	}
	return t.Call(ctx, args)
}

func (t *Tool) checkRequired(args Args) error {
	for _, p := range t.Params {
		if !p.Required {
			continue
		}
		v, ok := args[p.Name]
		if s, isString := v.(string); !ok || v == nil || (isString && strings.TrimSpace(s) == "") {
			return fmt.Errorf("%w: %s is required", ErrInvalidArgument, p.Name)
		}
	}
	return nil
}

// Tools returns the registry of every operation the service offers.
func (s *Service) Tools() *Registry {
	r := NewRegistry()

	r.Register(&Tool{
		Name:         "enhance",
		ProtocolName: "enhance_floral_prompt",
		Description:  "Map an arrangement description to floral taxonomy and return structured data plus a formatted prompt",
		Params: []Param{
			{Name: "user_intent", Type: ParamString, Required: true, Description: "Description or desired feeling, e.g. \"romantic spring wedding centerpiece\""},
			{Name: "style_preference", Type: ParamString, Default: "any", Description: "\"any\" or a style type such as moribana, cascade, dome, minimalist, garden_style"},
			{Name: "occasion", Type: ParamString, Default: "general", Description: "general, wedding, funeral, celebration or everyday"},
			{Name: "color_scheme", Type: ParamString, Default: "harmonious", Description: "harmonious or a palette name such as romantic, elegant, spring"},
		},
		Call: func(_ context.Context, args Args) (any, error) {
			var req EnhanceRequest
			var err error
			if req.Intent, err = args.String("user_intent", ""); err != nil {
				return nil, err
			}
			if req.Style, err = args.String("style_preference", ""); err != nil {
				return nil, err
			}
			if req.Occasion, err = args.String("occasion", ""); err != nil {
				return nil, err
			}
			if req.Colors, err = args.String("color_scheme", ""); err != nil {
				return nil, err
			}
			return s.Enhance(req), nil
		},
	})

	r.Register(&Tool{
		Name:         "workflow",
		ProtocolName: "generate_floral_workflow",
		Description:  "Generate a ComfyUI workflow for a floral arrangement description",
		Params: []Param{
			{Name: "user_intent", Type: ParamString, Required: true, Description: "Description of the desired arrangement"},
			{Name: "output_size", Type: ParamString, Default: s.Defaults.Size, Description: "Image size as WIDTHxHEIGHT, e.g. " + strings.Join(workflow.CommonSizes(), ", ")},
			{Name: "model_preference", Type: ParamString, Default: s.Defaults.Model, Description: "Base model: " + strings.Join(s.Builder.Checkpoints().List(), ", ")},
			{Name: "steps", Type: ParamInteger, Default: s.Defaults.Steps, Description: "Sampling steps"},
		},
		Call: func(_ context.Context, args Args) (any, error) {
			var req GenerateRequest
			var err error
			if req.Intent, err = args.String("user_intent", ""); err != nil {
				return nil, err
			}
			if req.Size, err = args.String("output_size", ""); err != nil {
				return nil, err
			}
			if req.Model, err = args.String("model_preference", ""); err != nil {
				return nil, err
			}
			if req.Steps, err = args.Int("steps", 0); err != nil {
				return nil, err
			}
			resp, err := s.Generate(req)
			if err != nil {
				return nil, err
			}
			return resp, nil
		},
	})

	listings := []struct {
		name, protocol, table, desc string
	}{
		{"styles", "list_arrangement_styles", TableStyles, "List arrangement styles by tradition"},
		{"flowers", "list_flowers_by_role", TableFlowers, "List flowers by role: focal, line, filler, texture"},
		{"palettes", "list_color_palettes", TablePalettes, "List color palettes"},
		{"foliage", "list_foliage_types", TableFoliage, "List foliage by category: structural, accent, dramatic"},
		{"traditions", "get_cultural_traditions", TableTraditions, "Describe the cultural traditions of floral arrangement"},
		{"techniques", "get_structural_techniques", TableTechniques, "Describe structural techniques by family"},
	}
	for _, l := range listings {
		table := l.table
		r.Register(&Tool{
			Name:         l.name,
			ProtocolName: l.protocol,
			Description:  l.desc,
			Call: func(_ context.Context, _ Args) (any, error) {
				return s.Table(table)
			},
		})
	}

	r.Register(&Tool{
		Name:         "occasion",
		ProtocolName: "suggest_flowers_for_occasion",
		Description:  "Recommendations for wedding, funeral, celebration or everyday arrangements",
		Params: []Param{
			{Name: "occasion", Type: ParamString, Required: true, Description: "wedding, funeral, celebration or everyday"},
		},
		Call: func(_ context.Context, args Args) (any, error) {
			occasion, err := args.String("occasion", "")
			if err != nil {
				return nil, err
			}
			return s.SuggestForOccasion(occasion), nil
		},
	})

	r.Register(&Tool{
		Name:         "info",
		ProtocolName: "get_server_info",
		Description:  "Server capabilities, version and taxonomy coverage",
		Call: func(_ context.Context, _ Args) (any, error) {
			return s.ServerInfo(), nil
		},
	})

	return r
}
