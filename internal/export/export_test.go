package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
		anyErr  bool
	}{
		{name: "simple filename", path: "workflow.json"},
		{name: "subdirectory", path: "out/wedding/workflow.json"},
		{name: "dots inside a name", path: "v1..final.json"},
		{name: "empty", path: "  ", wantErr: ErrEmptyPath},
		{name: "parent directory", path: "../workflow.json", wantErr: ErrPathTraversal},
		{name: "traversal in middle", path: "out/../../etc/passwd", wantErr: ErrPathTraversal},
		{name: "absolute", path: "/etc/passwd", wantErr: ErrAbsolutePath},
		{name: "reserved CON", path: "CON.json", wantErr: ErrReservedName},
		{name: "reserved lpt1 nested", path: "out/lpt1.json", wantErr: ErrReservedName},
		{name: "leading hyphen", path: "-rf.json", anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			switch {
			case tt.anyErr:
				if err == nil {
					t.Errorf("ValidatePath(%q) error = nil, want error", tt.path)
				}
			case tt.wantErr == nil:
				if err != nil {
					t.Errorf("ValidatePath(%q) error = %v, want nil", tt.path, err)
				}
			case !errors.Is(err, tt.wantErr):
				t.Errorf("ValidatePath(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Romantic Spring Wedding", "romantic-spring-wedding"},
		{"punctuation", "Peonies, roses & ranunculus!", "peonies-roses-ranunculus"},
		{"extra whitespace", "  dome \t centerpiece  ", "dome-centerpiece"},
		{"empty", "", "arrangement"},
		{"only symbols", "***", "arrangement"},
		{"reserved", "con", "con-arrangement"},
		{"long", strings.Repeat("orchid ", 20), "orchid-orchid-orchid-orchid-orchid-orchid-orchid-o"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slug(tt.input)
			if got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if len(got) > MaxSlugLen {
				t.Errorf("Slug(%q) length = %d", tt.input, len(got))
			}
		})
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(7, "Ikebana with Iris"); got != "007-ikebana-with-iris.json" {
		t.Errorf("Filename() = %q", got)
	}
	if got := Filename(1234, "dome"); got != "1234-dome.json" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	doc := map[string]any{"1": map[string]any{"class_type": "CheckpointLoaderSimple"}}
	path, err := w.Write(doc, filepath.Join("nested", "wf.json"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if path != filepath.Join(dir, "nested", "wf.json") {
		t.Errorf("Write() path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "{\n  \"1\"") || !strings.HasSuffix(string(data), "}\n") {
		t.Errorf("file is not indented JSON:\n%s", data)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Errorf("file is not valid JSON: %v", err)
	}
}

func TestWriter_Write_Rejected(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	if _, err := w.Write(map[string]int{}, "../escape.json"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("Write() error = %v, want ErrPathTraversal", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.json")); !os.IsNotExist(err) {
		t.Error("Write() created a file outside the directory")
	}

	if _, err := w.Write(make(chan int), "bad.json"); err == nil {
		t.Error("Write() expected encode error")
	}
}

func TestNewWriter_DefaultDir(t *testing.T) {
	if w := NewWriter(""); w.Dir != "." {
		t.Errorf("NewWriter(\"\").Dir = %q, want .", w.Dir)
	}
}
