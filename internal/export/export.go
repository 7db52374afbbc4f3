// Package export writes workflow documents to disk.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	ErrPathTraversal = errors.New("path traversal detected")
	ErrAbsolutePath  = errors.New("absolute paths are not allowed")
	ErrReservedName  = errors.New("reserved filename not allowed")
	ErrEmptyPath     = errors.New("empty path")

	windowsReservedNames = map[string]bool{
		"con": true, "prn": true, "aux": true, "nul": true,
		"com1": true, "com2": true, "com3": true, "com4": true,
		"com5": true, "com6": true, "com7": true, "com8": true, "com9": true,
		"lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true,
		"lpt5": true, "lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
	}

	slugUnsafe = regexp.MustCompile(`[^a-z0-9\s-]`)
)

// MaxSlugLen bounds the intent part of generated filenames.
const MaxSlugLen = 50

// ValidatePath rejects absolute paths, any ".." element, reserved device
// names and names starting with a hyphen.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}
	if filepath.IsAbs(path) {
		return ErrAbsolutePath
	}

	for _, elem := range strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool { return r == '/' }) {
		if elem == ".." {
			return ErrPathTraversal
		}
	}

	base := filepath.Base(filepath.Clean(path))
	if windowsReservedNames[strings.TrimSuffix(strings.ToLower(base), filepath.Ext(base))] {
		return ErrReservedName
	}
	if strings.HasPrefix(base, "-") {
		return fmt.Errorf("filename cannot start with hyphen: %s", base)
	}
	return nil
}

// Slug turns an arrangement description into a lowercase, hyphenated
// filename stem of at most MaxSlugLen bytes.
func Slug(intent string) string {
	s := slugUnsafe.ReplaceAllString(strings.ToLower(intent), "")
	s = strings.Join(strings.Fields(s), "-")
	s = strings.Trim(s, "-")

	if len(s) > MaxSlugLen {
		s = strings.TrimRight(s[:MaxSlugLen], "-")
	}
	if s == "" {
		s = "arrangement"
	}
	if windowsReservedNames[s] {
		s += "-arrangement"
	}
	return s
}

// Filename names the n-th (1-based) document of a batch.
func Filename(n int, intent string) string {
	return fmt.Sprintf("%03d-%s.json", n, Slug(intent))
}

// Writer writes JSON documents below Dir.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{Dir: dir}
}

// Write encodes doc as indented JSON to the relative path name below the
// writer's directory, creating parent directories. It returns the path
// written.
func (w *Writer) Write(doc any, name string) (string, error) {
	if err := ValidatePath(name); err != nil {
		return "", fmt.Errorf("invalid output path %q: %w", name, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(w.Dir, name)
	if err := ensureDir(path); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
