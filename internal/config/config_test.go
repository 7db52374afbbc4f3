package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/manash/floralgen/internal/workflow"
)

var envKeys = []string{
	"FLORALGEN_ADDR", "FLORALGEN_LOG_LEVEL", "FLORALGEN_DEFAULT_MODEL", "FLORALGEN_DEFAULT_SIZE",
	"FLORALGEN_DEFAULT_STEPS", "FLORALGEN_OUTPUT_DIR", "FLORALGEN_CORS_ORIGINS",
}

// isolate runs the test in an empty directory with the floralgen
// variables cleared.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Default()
	if cfg.Addr != want.Addr || cfg.LogLevel != "info" || cfg.DefaultModel != "flux" ||
		cfg.DefaultSize != "1024x1024" || cfg.DefaultSteps != 20 || cfg.OutputDir != "." {
		t.Errorf("Load() = %+v", cfg)
	}
	if !slices.Equal(cfg.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "floralgen.yaml")
	writeFile(t, path, `version: 1
server:
  addr: ":9090"
  cors_origins: ["http://localhost:3000"]
log:
  level: DEBUG
workflow:
  model: SDXL
  size: 768x1024
  steps: 28
output:
  dir: out
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":9090" || cfg.LogLevel != "debug" || cfg.DefaultModel != "sdxl" ||
		cfg.DefaultSize != "768x1024" || cfg.DefaultSteps != 28 || cfg.OutputDir != "out" {
		t.Errorf("Load() = %+v", cfg)
	}
	if !slices.Equal(cfg.CORSOrigins, []string{"http://localhost:3000"}) {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "floralgen.yaml")
	writeFile(t, path, "version: 1\nworkflow:\n  model: sdxl\n  steps: 28\n")

	t.Setenv("FLORALGEN_DEFAULT_MODEL", "sd15")
	t.Setenv("FLORALGEN_DEFAULT_STEPS", "12")
	t.Setenv("FLORALGEN_CORS_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultModel != "sd15" || cfg.DefaultSteps != 12 {
		t.Errorf("Load() = %+v", cfg)
	}
	if !slices.Equal(cfg.CORSOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("FLORALGEN_ADDR")
	t.Cleanup(func() { os.Unsetenv("FLORALGEN_ADDR") })
	writeFile(t, filepath.Join(dir, ".env"), "FLORALGEN_ADDR=:7070\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("Addr = %q, want :7070 from .env", cfg.Addr)
	}
}

func TestLoad_DotEnvErrors(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, ".env"), "FLORALGEN-ADDR=:7070\n")

		_, err := Load("")
		if err == nil {
			t.Fatal("Load() expected error for malformed .env")
		}
		if !strings.Contains(err.Error(), ".env") {
			t.Errorf("Load() error = %v, want it to name .env", err)
		}
	})

	t.Run("unreadable", func(t *testing.T) {
		dir := isolate(t)
		if err := os.Mkdir(filepath.Join(dir, ".env"), 0755); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(""); err == nil {
			t.Error("Load() expected error when .env is a directory")
		}
	})

	t.Run("absent", func(t *testing.T) {
		isolate(t)
		if _, err := Load(""); err != nil {
			t.Errorf("Load() error = %v, want nil without .env", err)
		}
	})
}

func TestLoad_Steps(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "30", 30},
		{"not a number", "many", 20},
		{"zero clamps", "0", 20},
		{"negative clamps", "-5", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv("FLORALGEN_DEFAULT_STEPS", tt.value)

			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.DefaultSteps != tt.want {
				t.Errorf("DefaultSteps = %d, want %d", cfg.DefaultSteps, tt.want)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     string
		wantErr error
	}{
		{name: "missing version", content: "log:\n  level: debug\n", wantErr: ErrUnsupportedVersion},
		{name: "future version", content: "version: 2\n", wantErr: ErrUnsupportedVersion},
		{name: "bad default size", content: "version: 1\nworkflow:\n  size: big\n", wantErr: workflow.ErrInvalidSize},
		{name: "bad size from env", content: "version: 1\n", env: "0x512", wantErr: workflow.ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			if tt.env != "" {
				t.Setenv("FLORALGEN_DEFAULT_SIZE", tt.env)
			}
			path := filepath.Join(dir, "floralgen.yaml")
			writeFile(t, path, tt.content)

			if _, err := Load(path); !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() expected error for missing file")
	}

	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "version: [1\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for malformed YAML")
	}
}

func TestToolDefaults(t *testing.T) {
	cfg := Default()
	cfg.DefaultModel = "sdxl"
	d := cfg.ToolDefaults()
	if d.Model != "sdxl" || d.Size != "1024x1024" || d.Steps != 20 {
		t.Errorf("ToolDefaults() = %+v", d)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Errorf("output = %q, want JSON record", out)
	}
}
