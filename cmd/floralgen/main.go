package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/manash/floralgen/internal/config"
	"github.com/manash/floralgen/internal/display"
	"github.com/manash/floralgen/internal/mcpserver"
	"github.com/manash/floralgen/internal/server"
	"github.com/manash/floralgen/internal/tools"
	"github.com/manash/floralgen/internal/version"
)

var flagConfig string

type App struct {
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	LoadConfig func(path string) (config.Config, error)
	// LogOutput receives structured logs; it must never be Out while
	// serving MCP over stdio.
	LogOutput io.Writer
	ServeHTTP func(ctx context.Context, s *server.Server, addr string) error
	ServeMCP  func(s *mcpserver.Server) error
}

func DefaultApp() *App {
	return &App{
		In:         os.Stdin,
		Out:        os.Stdout,
		Err:        os.Stderr,
		LoadConfig: config.Load,
		LogOutput:  os.Stderr,
		ServeHTTP: func(ctx context.Context, s *server.Server, addr string) error {
			return s.ListenAndServe(ctx, addr)
		},
		ServeMCP: func(s *mcpserver.Server) error {
			return s.ServeStdio()
		},
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := DefaultApp()
	rootCmd := newRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "floralgen",
		Short: "Floral arrangement prompt enhancement and ComfyUI workflow generation",
		Long: `floralgen maps a free-text description of a floral arrangement onto a
floral design taxonomy (styles, flowers by role, foliage, palettes, structural
techniques, occasions and cultural traditions), formats an enriched
image-generation prompt and builds a ready-to-load ComfyUI workflow.

Examples:
  floralgen enhance "romantic spring wedding centerpiece" --occasion wedding
  floralgen workflow "cascade of white orchids" --model sdxl -o orchids.json
  floralgen list palettes
  floralgen serve --addr :8080
  floralgen mcp`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(app.In)
	cmd.SetOut(app.Out)
	cmd.SetErr(app.Err)

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")

	cmd.AddCommand(
		newEnhanceCmd(app),
		newWorkflowCmd(app),
		newListCmd(app),
		newOccasionCmd(app),
		newInfoCmd(app),
		newBatchCmd(app),
		newServeCmd(app),
		newMCPCmd(app),
		newInteractiveCmd(app),
	)

	return cmd
}

// env is what every sub-command needs after configuration is loaded.
type env struct {
	cfg     config.Config
	logger  *slog.Logger
	service *tools.Service
	printer *display.Printer
}

func (app *App) setup() (*env, error) {
	cfg, err := app.LoadConfig(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logOut := app.LogOutput
	if logOut == nil {
		logOut = io.Discard
	}
	logger := config.NewLogger(cfg.LogLevel, logOut)

	return &env{
		cfg:     cfg,
		logger:  logger,
		service: tools.NewService(cfg.ToolDefaults(), logger),
		printer: display.New(app.Out),
	}, nil
}
