package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/manash/floralgen/internal/display"
	"github.com/manash/floralgen/internal/export"
	"github.com/manash/floralgen/internal/tools"
	"github.com/manash/floralgen/internal/workflow"
)

// Settings are the hints and generation parameters applied to every
// enhance and workflow command until changed with "set".
type Settings struct {
	Style    string
	Occasion string
	Colors   string
	Size     string
	Model    string
	Steps    int
}

type REPL struct {
	in       io.Reader
	out      io.Writer
	err      io.Writer
	service  *tools.Service
	printer  *display.Printer
	writer   *export.Writer
	settings Settings
	json     bool
	commands map[string]Command
	running  bool

	last       *tools.GenerateResponse
	lastIntent string
}

type Config struct {
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Service *tools.Service
	// OutputDir is where "save" writes workflows.
	OutputDir string
	// JSON prints full tool responses instead of summaries.
	JSON bool
}

func New(cfg *Config) *REPL {
	svc := cfg.Service
	if svc == nil {
		svc = tools.NewService(tools.Defaults{}, nil)
	}
	r := &REPL{
		in:      cfg.In,
		out:     cfg.Out,
		err:     cfg.Err,
		service: svc,
		printer: display.NewIndented(cfg.Out),
		writer:  export.NewWriter(cfg.OutputDir),
		settings: Settings{
			Size:  svc.Defaults.Size,
			Model: svc.Defaults.Model,
			Steps: svc.Defaults.Steps,
		},
		json:     cfg.JSON,
		commands: make(map[string]Command),
	}
	r.registerCommands()
	return r
}

func (r *REPL) Run(ctx context.Context) error {
	r.running = true
	r.printWelcome()

	scanner := bufio.NewScanner(r.in)
	for r.running {
		if ctx.Err() != nil {
			return nil
		}
		r.printPrompt()
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := r.execute(ctx, line); err != nil {
			fmt.Fprintf(r.err, "Error: %v\n", err)
		}
	}

	return scanner.Err()
}

func (r *REPL) execute(ctx context.Context, line string) error {
	parts := parseCommand(line)
	if len(parts) == 0 {
		return nil
	}

	cmdName := strings.ToLower(parts[0])
	args := parts[1:]

	cmd, ok := r.commands[cmdName]
	if !ok {
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmdName)
	}

	return cmd.Execute(ctx, r, args)
}

func (r *REPL) Stop() {
	r.running = false
}

func (r *REPL) Settings() Settings {
	return r.settings
}

func (r *REPL) printWelcome() {
	fmt.Fprintln(r.out, "floralgen interactive mode")
	fmt.Fprintln(r.out, "Describe an arrangement with 'enhance' or 'workflow'. Type 'help' for commands, 'quit' to exit.")
	fmt.Fprintln(r.out)
}

func (r *REPL) printPrompt() {
	if r.settings.Style != "" && r.settings.Style != "any" {
		fmt.Fprintf(r.out, "floralgen [%s] (%s)> ", r.settings.Model, r.settings.Style)
	} else {
		fmt.Fprintf(r.out, "floralgen [%s]> ", r.settings.Model)
	}
}

func (r *REPL) enhanceRequest(intent string) tools.EnhanceRequest {
	return tools.EnhanceRequest{
		Intent:   intent,
		Style:    r.settings.Style,
		Occasion: r.settings.Occasion,
		Colors:   r.settings.Colors,
	}
}

func (r *REPL) generateRequest(intent string) tools.GenerateRequest {
	size := r.settings.Size
	if size == "" {
		size = workflow.DefaultSize
	}
	return tools.GenerateRequest{
		Intent: intent,
		Size:   size,
		Model:  r.settings.Model,
		Steps:  r.settings.Steps,
	}
}

func parseCommand(line string) []string {
	var parts []string
	var current strings.Builder
	inQuotes := false
	quoteChar := rune(0)

	for _, ch := range line {
		switch {
		case ch == '"' || ch == '\'':
			if inQuotes && ch == quoteChar {
				inQuotes = false
				quoteChar = 0
			} else if !inQuotes && current.Len() == 0 {
				inQuotes = true
				quoteChar = ch
			} else {
				current.WriteRune(ch)
			}
		case (ch == ' ' || ch == '\t') && !inQuotes:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(ch)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}
