package repl

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/manash/floralgen/internal/export"
	"github.com/manash/floralgen/internal/mapper"
	"github.com/manash/floralgen/internal/workflow"
	"github.com/manash/floralgen/pkg/taxonomy"
)

type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Usage() string
	Execute(ctx context.Context, r *REPL, args []string) error
}

func allCommands() []Command {
	return []Command{
		&EnhanceCommand{},
		&WorkflowCommand{},
		&SaveCommand{},
		&ListCommand{},
		&OccasionCommand{},
		&InfoCommand{},
		&SetCommand{},
		&JSONCommand{},
		&HelpCommand{},
		&QuitCommand{},
	}
}

func (r *REPL) registerCommands() {
	for _, cmd := range allCommands() {
		r.commands[cmd.Name()] = cmd
		for _, alias := range cmd.Aliases() {
			r.commands[alias] = cmd
		}
	}
}

// EnhanceCommand maps a description to floral vocabulary
type EnhanceCommand struct{}

func (c *EnhanceCommand) Name() string        { return "enhance" }
func (c *EnhanceCommand) Aliases() []string   { return []string{"en", "e"} }
func (c *EnhanceCommand) Description() string { return "Map a description to floral vocabulary and a prompt" }
func (c *EnhanceCommand) Usage() string       { return "enhance <description>" }

func (c *EnhanceCommand) Execute(_ context.Context, r *REPL, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", c.Usage())
	}

	resp := r.service.Enhance(r.enhanceRequest(strings.Join(args, " ")))
	if r.json {
		return r.printer.JSON(resp)
	}
	r.printer.Enhance(resp)
	return nil
}

// WorkflowCommand builds a ComfyUI workflow
type WorkflowCommand struct{}

func (c *WorkflowCommand) Name() string        { return "workflow" }
func (c *WorkflowCommand) Aliases() []string   { return []string{"wf", "w", "generate", "gen"} }
func (c *WorkflowCommand) Description() string { return "Build a ComfyUI workflow for a description" }
func (c *WorkflowCommand) Usage() string       { return "workflow <description>" }

func (c *WorkflowCommand) Execute(_ context.Context, r *REPL, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", c.Usage())
	}

	intent := strings.Join(args, " ")
	resp, err := r.service.Generate(r.generateRequest(intent))
	if err != nil {
		return fmt.Errorf("workflow failed: %w", err)
	}
	r.last = resp
	r.lastIntent = intent

	if r.json {
		return r.printer.JSON(resp)
	}
	r.printer.Workflow(resp)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Use 'save [file]' to write the workflow JSON.")
	return nil
}

// SaveCommand writes the last workflow to disk
type SaveCommand struct{}

func (c *SaveCommand) Name() string        { return "save" }
func (c *SaveCommand) Aliases() []string   { return []string{"s"} }
func (c *SaveCommand) Description() string { return "Save the last workflow JSON" }
func (c *SaveCommand) Usage() string       { return "save [file]" }

func (c *SaveCommand) Execute(_ context.Context, r *REPL, args []string) error {
	if r.last == nil {
		return fmt.Errorf("no workflow to save - use 'workflow' first")
	}

	name := export.Filename(1, r.lastIntent)
	if len(args) > 0 {
		name = args[0]
	}

	path, err := r.writer.Write(r.last.Workflow, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Saved: %s\n", path)
	return nil
}

// ListCommand prints a taxonomy table
type ListCommand struct{}

func (c *ListCommand) Name() string        { return "list" }
func (c *ListCommand) Aliases() []string   { return []string{"ls", "l"} }
func (c *ListCommand) Description() string { return "List a taxonomy table" }
func (c *ListCommand) Usage() string       { return "list <styles|flowers|foliage|palettes|techniques|traditions|occasions>" }

func (c *ListCommand) Execute(_ context.Context, r *REPL, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", c.Usage())
	}

	table, err := r.service.Table(args[0])
	if err != nil {
		return err
	}
	return r.printer.JSON(table)
}

// OccasionCommand shows recommendations for an occasion
type OccasionCommand struct{}

func (c *OccasionCommand) Name() string        { return "occasion" }
func (c *OccasionCommand) Aliases() []string   { return []string{"occ", "o"} }
func (c *OccasionCommand) Description() string { return "Show recommendations for an occasion" }
func (c *OccasionCommand) Usage() string       { return "occasion <wedding|funeral|celebration|everyday>" }

func (c *OccasionCommand) Execute(_ context.Context, r *REPL, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", c.Usage())
	}

	suggestion := r.service.SuggestForOccasion(strings.Join(args, " "))
	if r.json {
		return r.printer.JSON(suggestion)
	}
	r.printer.Occasion(suggestion)
	return nil
}

// InfoCommand shows server capabilities
type InfoCommand struct{}

func (c *InfoCommand) Name() string        { return "info" }
func (c *InfoCommand) Aliases() []string   { return []string{"i"} }
func (c *InfoCommand) Description() string { return "Show version and taxonomy coverage" }
func (c *InfoCommand) Usage() string       { return "info" }

func (c *InfoCommand) Execute(_ context.Context, r *REPL, _ []string) error {
	return r.printer.JSON(r.service.ServerInfo())
}

// SetCommand changes the session hints and workflow parameters
type SetCommand struct{}

func (c *SetCommand) Name() string        { return "set" }
func (c *SetCommand) Aliases() []string   { return nil }
func (c *SetCommand) Description() string { return "Show or change hints and workflow parameters" }
func (c *SetCommand) Usage() string       { return "set [style|occasion|colors|model|size|steps] [value]" }

func (c *SetCommand) Execute(_ context.Context, r *REPL, args []string) error {
	if len(args) == 0 {
		c.print(r)
		return nil
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: %s", c.Usage())
	}

	key := strings.ToLower(args[0])
	value := strings.Join(args[1:], " ")

	switch key {
	case "style":
		value = strings.ToLower(value)
		if value != mapper.AnyStyle {
			if _, ok := taxonomy.FindStyle(value); !ok {
				return fmt.Errorf("unknown style: %s", value)
			}
		}
		r.settings.Style = value
	case "occasion":
		r.settings.Occasion = value
	case "colors", "color":
		value = strings.ToLower(value)
		if _, ok := taxonomy.Palette(value); !ok && value != mapper.HarmoniousColor {
			return fmt.Errorf("unknown palette: %s (available: %s)", value, strings.Join(taxonomy.PaletteNames(), ", "))
		}
		r.settings.Colors = value
	case "model":
		if _, ok := r.service.Builder.Checkpoints().Get(value); !ok {
			return fmt.Errorf("unknown model: %s (available: %s)", value, strings.Join(r.service.Builder.Checkpoints().List(), ", "))
		}
		r.settings.Model = strings.ToLower(value)
	case "size":
		if _, _, err := workflow.ParseSize(value); err != nil {
			return err
		}
		r.settings.Size = value
	case "steps":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("steps must be a positive integer, got %q", value)
		}
		r.settings.Steps = n
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}

	fmt.Fprintf(r.out, "%s set to: %s\n", key, value)
	return nil
}

func (c *SetCommand) print(r *REPL) {
	s := r.settings
	fmt.Fprintf(r.out, "  style     %s\n", orDefault(s.Style, mapper.AnyStyle))
	fmt.Fprintf(r.out, "  occasion  %s\n", orDefault(s.Occasion, mapper.GeneralOccasion))
	fmt.Fprintf(r.out, "  colors    %s\n", orDefault(s.Colors, mapper.HarmoniousColor))
	fmt.Fprintf(r.out, "  model     %s\n", s.Model)
	fmt.Fprintf(r.out, "  size      %s\n", s.Size)
	fmt.Fprintf(r.out, "  steps     %d\n", s.Steps)
}

// JSONCommand toggles full JSON output
type JSONCommand struct{}

func (c *JSONCommand) Name() string        { return "json" }
func (c *JSONCommand) Aliases() []string   { return nil }
func (c *JSONCommand) Description() string { return "Toggle full JSON responses" }
func (c *JSONCommand) Usage() string       { return "json [on|off]" }

func (c *JSONCommand) Execute(_ context.Context, r *REPL, args []string) error {
	if len(args) == 0 {
		r.json = !r.json
	} else {
		switch strings.ToLower(args[0]) {
		case "on", "true", "1":
			r.json = true
		case "off", "false", "0":
			r.json = false
		default:
			return fmt.Errorf("usage: %s", c.Usage())
		}
	}

	state := "off"
	if r.json {
		state = "on"
	}
	fmt.Fprintf(r.out, "JSON output %s\n", state)
	return nil
}

// HelpCommand shows available commands
type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Aliases() []string   { return []string{"?"} }
func (c *HelpCommand) Description() string { return "Show available commands" }
func (c *HelpCommand) Usage() string       { return "help" }

func (c *HelpCommand) Execute(_ context.Context, r *REPL, _ []string) error {
	fmt.Fprintln(r.out, "Available commands:")
	fmt.Fprintln(r.out)

	for _, cmd := range allCommands() {
		aliases := ""
		if len(cmd.Aliases()) > 0 {
			aliases = fmt.Sprintf(" (%s)", strings.Join(cmd.Aliases(), ", "))
		}
		fmt.Fprintf(r.out, "  %-28s%s\n", cmd.Name()+aliases, cmd.Description())
		fmt.Fprintf(r.out, "  %-28sUsage: %s\n", "", cmd.Usage())
	}

	return nil
}

// QuitCommand exits the REPL
type QuitCommand struct{}

func (c *QuitCommand) Name() string        { return "quit" }
func (c *QuitCommand) Aliases() []string   { return []string{"exit", "q"} }
func (c *QuitCommand) Description() string { return "Exit interactive mode" }
func (c *QuitCommand) Usage() string       { return "quit" }

func (c *QuitCommand) Execute(_ context.Context, r *REPL, _ []string) error {
	fmt.Fprintln(r.out, "Goodbye!")
	r.Stop()
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
