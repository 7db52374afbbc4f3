package main

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/manash/floralgen/internal/batch"
	"github.com/manash/floralgen/internal/export"
	"github.com/manash/floralgen/internal/mcpserver"
	"github.com/manash/floralgen/internal/repl"
	"github.com/manash/floralgen/internal/server"
	"github.com/manash/floralgen/internal/tools"
)

var (
	flagStyle    string
	flagOccasion string
	flagColors   string
	flagSummary  bool

	flagSize   string
	flagModel  string
	flagSteps  int
	flagOutput string

	flagOutputDir   string
	flagParallel    int
	flagStopOnError bool

	flagAddr string

	flagJSON bool
)

func newEnhanceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enhance <description>",
		Short: "Map a description to floral vocabulary and an enhanced prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}
			resp := e.service.Enhance(tools.EnhanceRequest{
				Intent:   strings.Join(args, " "),
				Style:    flagStyle,
				Occasion: flagOccasion,
				Colors:   flagColors,
			})
			if flagSummary {
				e.printer.Enhance(resp)
				return nil
			}
			return e.printer.JSON(resp)
		},
	}

	cmd.Flags().StringVar(&flagStyle, "style", "any", "style preference (any, moribana, cascade, dome, minimalist, ...)")
	cmd.Flags().StringVar(&flagOccasion, "occasion", "general", "occasion (general, wedding, funeral, celebration, everyday)")
	cmd.Flags().StringVar(&flagColors, "colors", "harmonious", "color scheme (harmonious or a palette name)")
	cmd.Flags().BoolVar(&flagSummary, "summary", false, "print a short summary instead of JSON")

	return cmd
}

func newWorkflowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow <description>",
		Short: "Build a ComfyUI workflow for a description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}
			resp, err := e.service.Generate(tools.GenerateRequest{
				Intent: strings.Join(args, " "),
				Size:   flagSize,
				Model:  flagModel,
				Steps:  flagSteps,
			})
			if err != nil {
				return err
			}

			if flagOutput == "" {
				return e.printer.JSON(resp)
			}

			path, err := export.NewWriter(e.cfg.OutputDir).Write(resp.Workflow, flagOutput)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Saved: %s\n", path)
			fmt.Fprintf(app.Out, "Workflow: %s (%s, %s)\n", resp.Metadata.WorkflowID, resp.Metadata.ArrangementStyle, resp.Metadata.Checkpoint)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagSize, "size", "s", "", "image size WIDTHxHEIGHT (default from config, 1024x1024)")
	cmd.Flags().StringVarP(&flagModel, "model", "m", "", "base model: flux, sdxl or sd15 (default from config, flux)")
	cmd.Flags().IntVar(&flagSteps, "steps", 0, "sampling steps (default from config, 20)")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the workflow JSON to this file below the output directory")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "list <" + strings.Join(tools.TableNames(), "|") + ">",
		Short:     "List a taxonomy table",
		Args:      cobra.ExactArgs(1),
		ValidArgs: tools.TableNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}
			table, err := e.service.Table(args[0])
			if err != nil {
				return err
			}
			return e.printer.JSON(table)
		},
	}
}

func newOccasionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "occasion <name>",
		Short: "Show flower and arrangement recommendations for an occasion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}
			suggestion := e.service.SuggestForOccasion(args[0])
			if err := e.printer.JSON(suggestion); err != nil {
				return err
			}
			if !suggestion.Found() {
				return fmt.Errorf("occasion %q not found", args[0])
			}
			return nil
		},
	}
}

func newInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show version, capabilities and taxonomy coverage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}
			return e.printer.JSON(e.service.ServerInfo())
		},
	}
}

func newBatchCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Build workflows for every description in a .txt or .json file",
		Long: `Build a workflow for each arrangement in a file and write each one to
<output-dir>/<NNN>-<description>.json.

A .txt file holds one description per line; blank lines and lines starting
with # are skipped. A .json file holds an array of objects:

  [{"intent": "cascade of orchids", "size": "768x1024", "model": "sdxl", "steps": 30}]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}

			items, err := batch.ParseFile(args[0])
			if err != nil {
				return err
			}

			outputDir := flagOutputDir
			if outputDir == "" {
				outputDir = e.cfg.OutputDir
			}

			fmt.Fprintf(app.Out, "Building %d workflow(s) into %s\n", len(items), outputDir)

			proc := batch.NewProcessor(e.service, app.Out, app.Err)
			results, err := proc.Process(cmd.Context(), items, &batch.Options{
				OutputDir:   outputDir,
				Parallel:    flagParallel,
				StopOnError: flagStopOnError,
			})
			proc.PrintSummary(results)
			if err != nil {
				return err
			}

			for _, r := range results {
				if r.Error != nil {
					return fmt.Errorf("batch finished with failures")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagOutputDir, "output-dir", "d", "", "directory for workflow files (default from config)")
	cmd.Flags().IntVarP(&flagParallel, "parallel", "p", 4, "number of workflows built concurrently")
	cmd.Flags().BoolVar(&flagStopOnError, "stop-on-error", false, "stop at the first failing item")

	return cmd
}

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tools over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}

			if e.cfg.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			addr := flagAddr
			if addr == "" {
				addr = e.cfg.Addr
			}

			srv := server.New(server.Config{
				Service:     e.service,
				Logger:      e.logger,
				CORSOrigins: e.cfg.CORSOrigins,
			})
			return app.ServeHTTP(cmd.Context(), srv, addr)
		},
	}

	cmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

func newMCPCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the tools to MCP clients over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}
			return app.ServeMCP(mcpserver.New(e.service))
		},
	}
}

func newInteractiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl", "i"},
		Short:   "Start an interactive shell",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}
			r := repl.New(&repl.Config{
				In:        app.In,
				Out:       app.Out,
				Err:       app.Err,
				Service:   e.service,
				OutputDir: e.cfg.OutputDir,
				JSON:      flagJSON,
			})
			return r.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&flagJSON, "json", false, "print full JSON responses")

	return cmd
}
