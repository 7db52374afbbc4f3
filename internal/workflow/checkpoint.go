package workflow

import (
	"maps"
	"slices"
	"strings"
)

// Model names understood by the default registry.
const (
	ModelFlux = "flux"
	ModelSDXL = "sdxl"
	ModelSD15 = "sd15"

	DefaultModel = ModelFlux
)

// Checkpoint is a base model the sampler loads in node 1.
type Checkpoint struct {
	Name        string `json:"name"`
	File        string `json:"file"`
	Description string `json:"description"`
}

type CheckpointRegistry struct {
	checkpoints map[string]*Checkpoint
	fallback    string
}

func NewCheckpointRegistry(fallback string) *CheckpointRegistry {
	return &CheckpointRegistry{
		checkpoints: make(map[string]*Checkpoint),
		fallback:    fallback,
	}
}

func (r *CheckpointRegistry) Register(c *Checkpoint) {
	r.checkpoints[c.Name] = c
}

func (r *CheckpointRegistry) Get(name string) (*Checkpoint, bool) {
	c, ok := r.checkpoints[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Resolve returns the checkpoint for name, or the fallback checkpoint when
// name is unknown. It never fails for a registry that holds its fallback.
func (r *CheckpointRegistry) Resolve(name string) *Checkpoint {
	if c, ok := r.Get(name); ok {
		return c
	}
	return r.checkpoints[r.fallback]
}

// List returns the registered model names, sorted.
func (r *CheckpointRegistry) List() []string {
	return slices.Sorted(maps.Keys(r.checkpoints))
}

func DefaultCheckpoints() *CheckpointRegistry {
	r := NewCheckpointRegistry(DefaultModel)
	r.Register(&Checkpoint{
		Name:        ModelFlux,
		File:        "flux1-dev.safetensors",
		Description: "Flux dev, highest quality",
	})
	r.Register(&Checkpoint{
		Name:        ModelSDXL,
		File:        "sd_xl_base_1.0.safetensors",
		Description: "Stable Diffusion XL",
	})
	r.Register(&Checkpoint{
		Name:        ModelSD15,
		File:        "v1-5-pruned-emaonly.safetensors",
		Description: "Stable Diffusion 1.5",
	})
	return r
}
