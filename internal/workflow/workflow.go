// Package workflow builds the seven-node ComfyUI job graph for a prompt.
//
// The graph shape is fixed: checkpoint load, positive and negative text
// encodes, empty latent, sampler, VAE decode and save. Only the checkpoint
// file, prompt texts, image size and step count vary between builds.
package workflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidSize = errors.New("invalid size")

const (
	DefaultSize  = "1024x1024"
	DefaultSteps = 20

	CFG            = 7.5
	SamplerName    = "euler_ancestral"
	Scheduler      = "normal"
	Denoise        = 1.0
	RandomSeed     = -1
	FilenamePrefix = "floral_arrangement"
)

// NegativePrompt lists what a floral render should avoid.
const NegativePrompt = "wilted, dead, brown, artificial, plastic, fake flowers, " +
	"low quality, blurry, distorted, malformed flowers, " +
	"ugly arrangement, chaotic, messy, cluttered"

// CommonSizes are the sizes offered to callers. Any WxH is accepted.
func CommonSizes() []string {
	return []string{"1024x1024", "1024x768", "768x1024", "1536x1024", "1024x1536"}
}

// Node ids in the graph.
const (
	NodeCheckpoint = "1"
	NodePositive   = "2"
	NodeNegative   = "3"
	NodeLatent     = "4"
	NodeSampler    = "5"
	NodeDecode     = "6"
	NodeSave       = "7"
)

// Ref points at an output slot of another node. It encodes as a
// two-element array: ["1", 0].
type Ref struct {
	Node string
	Slot int
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.Node, r.Slot})
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("node reference must have 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &r.Node); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &r.Slot)
}

type Node struct {
	ClassType string         `json:"class_type"`
	Inputs    map[string]any `json:"inputs"`
}

// Graph maps node id to node.
type Graph map[string]Node

// Params are the literal values a build fills in.
type Params struct {
	Prompt         string
	NegativePrompt string
	Size           string
	Model          string
	Steps          int
}

// ApplyDefaults fills empty fields. Non-positive steps count as empty.
func (p *Params) ApplyDefaults() {
	if p.NegativePrompt == "" {
		p.NegativePrompt = NegativePrompt
	}
	if strings.TrimSpace(p.Size) == "" {
		p.Size = DefaultSize
	}
	if strings.TrimSpace(p.Model) == "" {
		p.Model = DefaultModel
	}
	if p.Steps <= 0 {
		p.Steps = DefaultSteps
	}
}

// ParseSize parses "<width>x<height>". Both sides must be positive integers.
func ParseSize(size string) (width, height int, err error) {
	w, h, ok := strings.Cut(strings.TrimSpace(size), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q is not <width>x<height>", ErrInvalidSize, size)
	}
	width, err = strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("%w: bad width in %q", ErrInvalidSize, size)
	}
	height, err = strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("%w: bad height in %q", ErrInvalidSize, size)
	}
	return width, height, nil
}

// Builder produces graphs against a checkpoint registry.
type Builder struct {
	checkpoints *CheckpointRegistry
}

func NewBuilder(checkpoints *CheckpointRegistry) *Builder {
	if checkpoints == nil {
		checkpoints = DefaultCheckpoints()
	}
	return &Builder{checkpoints: checkpoints}
}

func (b *Builder) Checkpoints() *CheckpointRegistry {
	return b.checkpoints
}

// Build returns the graph for p. The only failure is a malformed size.
// Unknown models resolve to the registry's fallback checkpoint.
func (b *Builder) Build(p Params) (Graph, error) {
	p.ApplyDefaults()

	width, height, err := ParseSize(p.Size)
	if err != nil {
		return nil, err
	}
	ckpt := b.checkpoints.Resolve(p.Model)

	return Graph{
		NodeCheckpoint: {
			ClassType: "CheckpointLoaderSimple",
			Inputs:    map[string]any{"ckpt_name": ckpt.File},
		},
		NodePositive: {
			ClassType: "CLIPTextEncode",
			Inputs: map[string]any{
				"text": p.Prompt,
				"clip": Ref{NodeCheckpoint, 1},
			},
		},
		NodeNegative: {
			ClassType: "CLIPTextEncode",
			Inputs: map[string]any{
				"text": p.NegativePrompt,
				"clip": Ref{NodeCheckpoint, 1},
			},
		},
		NodeLatent: {
			ClassType: "EmptyLatentImage",
			Inputs: map[string]any{
				"width":      width,
				"height":     height,
				"batch_size": 1,
			},
		},
		NodeSampler: {
			ClassType: "KSampler",
			Inputs: map[string]any{
				"seed":         RandomSeed,
				"steps":        p.Steps,
				"cfg":          CFG,
				"sampler_name": SamplerName,
				"scheduler":    Scheduler,
				"denoise":      Denoise,
				"model":        Ref{NodeCheckpoint, 0},
				"positive":     Ref{NodePositive, 0},
				"negative":     Ref{NodeNegative, 0},
				"latent_image": Ref{NodeLatent, 0},
			},
		},
		NodeDecode: {
			ClassType: "VAEDecode",
			Inputs: map[string]any{
				"samples": Ref{NodeSampler, 0},
				"vae":     Ref{NodeCheckpoint, 2},
			},
		},
		NodeSave: {
			ClassType: "SaveImage",
			Inputs: map[string]any{
				"filename_prefix": FilenamePrefix,
				"images":          Ref{NodeDecode, 0},
			},
		},
	}, nil
}

// Build uses the default checkpoint registry.
func Build(p Params) (Graph, error) {
	return NewBuilder(nil).Build(p)
}

var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/manash/floralgen/workflow"))

// ID derives a stable identifier from the graph's encoded form. Identical
// graphs share an id.
func (g Graph) ID() (uuid.UUID, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding workflow: %w", err)
	}
	return uuid.NewSHA1(idNamespace, data), nil
}

// CheckpointFile returns node 1's checkpoint filename.
func (g Graph) CheckpointFile() string {
	name, _ := g[NodeCheckpoint].Inputs["ckpt_name"].(string)
	return name
}
