// Package display renders tool results for people: indented JSON when the
// output is a terminal and short text summaries for the interactive shell.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"

	"github.com/manash/floralgen/internal/tools"
	"github.com/manash/floralgen/pkg/taxonomy"
)

type Printer struct {
	out    io.Writer
	indent bool
}

// New returns a Printer that indents JSON when out is a terminal.
func New(out io.Writer) *Printer {
	return &Printer{out: out, indent: IsTerminal(out)}
}

// NewIndented returns a Printer that always indents JSON.
func NewIndented(out io.Writer) *Printer {
	return &Printer{out: out, indent: true}
}

func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// JSON writes v followed by a newline.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetEscapeHTML(false)
	if p.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func (p *Printer) Enhance(resp *tools.EnhanceResponse) {
	fmt.Fprintf(p.out, "Style:     %s (%s)\n", resp.Style.Type, resp.Style.Category)
	fmt.Fprintf(p.out, "Flowers:   %s\n", joinOrNone(resp.Flowers.AllNames()))
	fmt.Fprintf(p.out, "Palette:   %s\n", resp.Colors.Name)
	fmt.Fprintf(p.out, "Occasion:  %s (%s)\n", resp.Occasion.Occasion, resp.Occasion.MatchedBy)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, resp.EnhancedPrompt)
}

func (p *Printer) Workflow(resp *tools.GenerateResponse) {
	md := resp.Metadata
	fmt.Fprintf(p.out, "Workflow:   %s\n", md.WorkflowID)
	fmt.Fprintf(p.out, "Style:      %s\n", md.ArrangementStyle)
	fmt.Fprintf(p.out, "Focal:      %s\n", joinOrNone(md.FocalFlowers))
	fmt.Fprintf(p.out, "Palette:    %s\n", md.ColorPalette)
	fmt.Fprintf(p.out, "Checkpoint: %s\n", md.Checkpoint)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, resp.PositivePrompt)
}

func (p *Printer) Occasion(s *tools.OccasionSuggestion) {
	if !s.Found() {
		fmt.Fprintf(p.out, "%s. Available: %s\n", s.Error, strings.Join(s.AvailableOccasions, ", "))
		return
	}
	fmt.Fprintf(p.out, "Occasion: %s\n", s.Occasion)
	for _, name := range slices.Sorted(maps.Keys(s.Recommendations)) {
		fmt.Fprintf(p.out, "  %-14s %s\n", name, summarizeContext(s.Recommendations[name]))
	}
}

// Truncate shortens s to maxLen runes, ending with "...".
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

func summarizeContext(c taxonomy.OccasionContext) string {
	var parts []string
	if c.Description != "" {
		parts = append(parts, c.Description)
	}
	if len(c.Arrangements) > 0 {
		parts = append(parts, strings.Join(c.Arrangements, ", "))
	}
	if c.Characteristics != "" {
		parts = append(parts, c.Characteristics)
	}
	if len(c.Styles) > 0 {
		parts = append(parts, "styles: "+strings.Join(c.Styles, ", "))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "; ")
}
