// Package batch builds workflows for every arrangement in an intent file
// and writes each one to the output directory.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/manash/floralgen/internal/display"
	"github.com/manash/floralgen/internal/export"
	"github.com/manash/floralgen/internal/tools"
)

var ErrStopped = errors.New("batch stopped due to error")

type Result struct {
	Index      int
	Intent     string
	Path       string
	WorkflowID string
	Error      error
	Skipped    bool
	Duration   time.Duration
}

type Options struct {
	OutputDir    string
	DefaultSize  string
	DefaultModel string
	DefaultSteps int
	Parallel     int
	StopOnError  bool
}

type Processor struct {
	service *tools.Service
	logger  *slog.Logger
	out     io.Writer
	err     io.Writer
	outMu   sync.Mutex
}

func NewProcessor(service *tools.Service, out, errOut io.Writer) *Processor {
	return &Processor{
		service: service,
		logger:  service.Logger,
		out:     out,
		err:     errOut,
	}
}

func (p *Processor) printf(format string, args ...any) {
	p.outMu.Lock()
	fmt.Fprintf(p.out, format, args...)
	p.outMu.Unlock()
}

func (p *Processor) errorf(format string, args ...any) {
	p.outMu.Lock()
	fmt.Fprintf(p.err, format, args...)
	p.outMu.Unlock()
}

// Process builds every item with at most opts.Parallel in flight. With
// StopOnError the first failure cancels the remaining items, which are
// reported as skipped.
func (p *Processor) Process(ctx context.Context, items []Item, opts *Options) ([]Result, error) {
	results := make([]Result, len(items))
	for i, item := range items {
		results[i] = Result{Index: item.Index, Intent: item.Intent, Skipped: true}
	}

	writer := export.NewWriter(opts.OutputDir)
	total := len(items)

	limit := opts.Parallel
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			result := p.processItem(item, writer, opts, i+1, total)
			results[i] = result
			if result.Error != nil && opts.StopOnError {
				return fmt.Errorf("%w: item %d: %w", ErrStopped, item.Index, result.Error)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func (p *Processor) processItem(item Item, writer *export.Writer, opts *Options, current, total int) Result {
	start := time.Now()
	result := Result{
		Index:  item.Index,
		Intent: item.Intent,
	}

	p.printf("[%d/%d] Building: %q\n", current, total, display.Truncate(item.Intent, 50))

	req := tools.GenerateRequest{
		Intent: item.Intent,
		Size:   firstNonEmpty(item.Size, opts.DefaultSize),
		Model:  firstNonEmpty(item.Model, opts.DefaultModel),
		Steps:  item.Steps,
	}
	if req.Steps <= 0 {
		req.Steps = opts.DefaultSteps
	}

	resp, err := p.service.Generate(req)
	if err != nil {
		result.Error = fmt.Errorf("workflow failed: %w", err)
		result.Duration = time.Since(start)
		p.errorf("       Error: %v\n", result.Error)
		return result
	}

	path, err := writer.Write(resp.Workflow, export.Filename(item.Index, item.Intent))
	if err != nil {
		result.Error = fmt.Errorf("save failed: %w", err)
		result.Duration = time.Since(start)
		p.errorf("       Error: %v\n", result.Error)
		return result
	}

	result.Path = path
	result.WorkflowID = resp.Metadata.WorkflowID
	result.Duration = time.Since(start)

	p.logger.Debug("batch item written", "index", item.Index, "path", path, "workflow_id", result.WorkflowID)
	p.printf("       Saved: %s (%s)\n", path, resp.Metadata.ArrangementStyle)
	return result
}

func (p *Processor) PrintSummary(results []Result) {
	var successful, skipped int
	var failures []Result

	for _, r := range results {
		switch {
		case r.Skipped:
			skipped++
		case r.Error != nil:
			failures = append(failures, r)
		default:
			successful++
		}
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Summary:")
	fmt.Fprintf(p.out, "  Successful: %d/%d workflows\n", successful, len(results))
	if len(failures) > 0 {
		fmt.Fprintf(p.out, "  Failed: %d (see errors below)\n", len(failures))
	}
	if skipped > 0 {
		fmt.Fprintf(p.out, "  Skipped: %d\n", skipped)
	}

	if len(failures) > 0 {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "Errors:")
		for _, e := range failures {
			fmt.Fprintf(p.out, "  [%d] %q: %v\n", e.Index, display.Truncate(e.Intent, 40), e.Error)
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
