// Package config loads floralgen settings from defaults, an optional YAML
// file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/manash/floralgen/internal/tools"
	"github.com/manash/floralgen/internal/workflow"
)

// FileVersion is the only supported config file version.
const FileVersion = 1

const (
	DefaultAddr      = ":8080"
	DefaultLogLevel  = "info"
	DefaultOutputDir = "."
)

var ErrUnsupportedVersion = errors.New("unsupported config version")

type Config struct {
	Addr         string
	LogLevel     string
	DefaultModel string
	DefaultSize  string
	DefaultSteps int
	OutputDir    string
	CORSOrigins  []string
}

type fileConfig struct {
	Version int `yaml:"version"`
	Server  struct {
		Addr        string   `yaml:"addr"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Workflow struct {
		Model string `yaml:"model"`
		Size  string `yaml:"size"`
		Steps int    `yaml:"steps"`
	} `yaml:"workflow"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
}

func Default() Config {
	return Config{
		Addr:         DefaultAddr,
		LogLevel:     DefaultLogLevel,
		DefaultModel: workflow.DefaultModel,
		DefaultSize:  workflow.DefaultSize,
		DefaultSteps: workflow.DefaultSteps,
		OutputDir:    DefaultOutputDir,
		CORSOrigins:  []string{"*"},
	}
}

// Load builds the configuration. path may be empty. A .env file in the
// working directory is loaded first if present; variables already set in
// the environment win over it. A .env file that exists but does not parse
// is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if fc.Version != FileVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, fc.Version)
	}

	setString(&c.Addr, fc.Server.Addr)
	setString(&c.LogLevel, fc.Log.Level)
	setString(&c.DefaultModel, fc.Workflow.Model)
	setString(&c.DefaultSize, fc.Workflow.Size)
	setString(&c.OutputDir, fc.Output.Dir)
	if fc.Workflow.Steps != 0 {
		c.DefaultSteps = fc.Workflow.Steps
	}
	if len(fc.Server.CORSOrigins) > 0 {
		c.CORSOrigins = fc.Server.CORSOrigins
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Addr = getEnv("FLORALGEN_ADDR", c.Addr)
	c.LogLevel = getEnv("FLORALGEN_LOG_LEVEL", c.LogLevel)
	c.DefaultModel = getEnv("FLORALGEN_DEFAULT_MODEL", c.DefaultModel)
	c.DefaultSize = getEnv("FLORALGEN_DEFAULT_SIZE", c.DefaultSize)
	c.DefaultSteps = getEnvInt("FLORALGEN_DEFAULT_STEPS", c.DefaultSteps)
	c.OutputDir = getEnv("FLORALGEN_OUTPUT_DIR", c.OutputDir)
	if origins := getEnv("FLORALGEN_CORS_ORIGINS", ""); origins != "" {
		c.CORSOrigins = splitList(origins)
	}
}

func (c *Config) normalize() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.DefaultModel = strings.ToLower(strings.TrimSpace(c.DefaultModel))
	if c.DefaultSteps < 1 {
		c.DefaultSteps = workflow.DefaultSteps
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"*"}
	}
	if _, _, err := workflow.ParseSize(c.DefaultSize); err != nil {
		return fmt.Errorf("default size: %w", err)
	}
	return nil
}

// ToolDefaults returns the generate defaults for the tool service.
func (c Config) ToolDefaults() tools.Defaults {
	return tools.Defaults{
		Size:  c.DefaultSize,
		Model: c.DefaultModel,
		Steps: c.DefaultSteps,
	}
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// NewLogger returns a JSON logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
