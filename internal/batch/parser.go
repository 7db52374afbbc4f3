package batch

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrNoIntents = errors.New("no arrangement descriptions found in file")

// Item is one arrangement to build. Empty fields take the batch defaults.
type Item struct {
	Index  int
	Intent string
	Size   string
	Model  string
	Steps  int
}

type jsonItem struct {
	Intent string `json:"intent"`
	Size   string `json:"size,omitempty"`
	Model  string `json:"model,omitempty"`
	Steps  int    `json:"steps,omitempty"`
}

func ParseFile(path string) ([]Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return ParseJSON(file)
	case ".txt", "":
		return ParseText(file)
	default:
		return nil, fmt.Errorf("unsupported file format %q: use .txt or .json", ext)
	}
}

// ParseText reads one description per line. Blank lines and lines
// starting with # are skipped.
func ParseText(r io.Reader) ([]Item, error) {
	var items []Item
	scanner := bufio.NewScanner(r)
	index := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		index++
		items = append(items, Item{
			Index:  index,
			Intent: line,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(items) == 0 {
		return nil, ErrNoIntents
	}

	return items, nil
}

// ParseJSON reads an array of {intent, size, model, steps} objects.
func ParseJSON(r io.Reader) ([]Item, error) {
	var jsonItems []jsonItem
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jsonItems); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if len(jsonItems) == 0 {
		return nil, ErrNoIntents
	}

	items := make([]Item, len(jsonItems))
	for i, ji := range jsonItems {
		if strings.TrimSpace(ji.Intent) == "" {
			return nil, fmt.Errorf("item %d has empty intent", i+1)
		}
		if ji.Steps < 0 {
			return nil, fmt.Errorf("item %d has negative steps", i+1)
		}
		items[i] = Item{
			Index:  i + 1,
			Intent: strings.TrimSpace(ji.Intent),
			Size:   ji.Size,
			Model:  ji.Model,
			Steps:  ji.Steps,
		}
	}

	return items, nil
}
