package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-docx/internal/converter"
	"github.com/goliatone/go-docx/internal/logging"
	"github.com/goliatone/go-docx/internal/markdown"
	"github.com/goliatone/go-docx/pkg/interfaces"
)

// Result records the outcome for a single seed document.
type Result struct {
	ID      uuid.UUID
	Input   string
	Output  string
	Skipped bool
	Err     error
}

// Report aggregates outcomes for a whole run.
type Report struct {
	Results   []Result
	Converted int
	Skipped   int
	Failed    int
}

// Runner walks a project's seed directory and converts every discovered
// document. Failures on individual documents are recorded in the report; only
// discovery errors, a deadline, or stop-on-error abort the run.
type Runner struct {
	converter   interfaces.Converter
	logger      interfaces.Logger
	workers     int
	stopOnError bool
	timeout     time.Duration
	extension   string
	overwrite   bool
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithWorkers sets how many documents convert concurrently. Zero or negative
// means one worker per CPU.
func WithWorkers(workers int) RunnerOption {
	return func(r *Runner) {
		r.workers = workers
	}
}

// WithStopOnError makes the first document failure abort the run instead of
// being recorded and skipped over.
func WithStopOnError(stop bool) RunnerOption {
	return func(r *Runner) {
		r.stopOnError = stop
	}
}

// WithTimeout bounds the whole run. Zero means no deadline.
func WithTimeout(timeout time.Duration) RunnerOption {
	return func(r *Runner) {
		r.timeout = timeout
	}
}

// WithExtension sets the output file extension. Defaults to ".docx".
func WithExtension(ext string) RunnerOption {
	return func(r *Runner) {
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.extension = ext
	}
}

// WithOverwrite controls whether existing output files may be replaced.
// Overwriting is enabled by default; when disabled an existing destination is
// recorded as a per-document failure.
func WithOverwrite(overwrite bool) RunnerOption {
	return func(r *Runner) {
		r.overwrite = overwrite
	}
}

// NewRunner constructs a batch runner. When logger is nil logging is disabled.
func NewRunner(conv interfaces.Converter, logger interfaces.Logger, opts ...RunnerOption) *Runner {
	if logger == nil {
		logger = logging.NoOp()
	}
	runner := &Runner{
		converter: conv,
		logger:    logger,
		extension: ".docx",
		overwrite: true,
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

// Run discovers seed documents per cfg and converts each one into OutputDir.
// The output directory is created when missing. Draft documents are skipped
// when cfg.SkipDrafts is set.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Report, error) {
	if r.converter == nil {
		return nil, fmt.Errorf("project runner: converter is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	loader := markdown.NewLoader(os.DirFS(cfg.SeedDir), markdown.LoaderConfig{
		BasePath:  ".",
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	docs, err := loader.LoadDirectory(ctx, ".", interfaces.LoadOptions{})
	if err != nil {
		return nil, fmt.Errorf("project runner: discover %s: %w", cfg.SeedDir, err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("project runner: ensure output dir %s: %w", cfg.OutputDir, err)
	}

	workers := effectiveWorkers(r.workers, len(docs))
	var results []Result
	if workers <= 1 {
		results, err = r.runSequential(ctx, cfg, docs)
	} else {
		results, err = r.runConcurrent(ctx, cfg, docs, workers)
	}
	if results == nil && err != nil {
		return nil, err
	}

	report := &Report{Results: results}
	for _, result := range results {
		switch {
		case result.Skipped:
			report.Skipped++
		case result.Err != nil:
			report.Failed++
		default:
			report.Converted++
		}
	}

	r.logger.Info("project.run.completed",
		"converted", report.Converted,
		"skipped", report.Skipped,
		"failed", report.Failed,
	)
	return report, err
}

func (r *Runner) runSequential(ctx context.Context, cfg Config, docs []*interfaces.Document) ([]Result, error) {
	var results []Result
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := r.processDocument(ctx, cfg, doc)
		results = append(results, result)
		if result.Err != nil && r.stopOnError {
			return results, fmt.Errorf("project runner: convert %s: %w", result.Input, result.Err)
		}
	}
	return results, nil
}

func (r *Runner) runConcurrent(ctx context.Context, cfg Config, docs []*interfaces.Document, workers int) ([]Result, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]Result, len(docs))
	processed := make([]bool, len(docs))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	jobs := make(chan int, len(docs))
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				select {
				case <-runCtx.Done():
					return
				default:
				}

				result := r.processDocument(runCtx, cfg, docs[idx])
				results[idx] = result
				processed[idx] = true

				if result.Err != nil && r.stopOnError {
					errOnce.Do(func() {
						firstErr = fmt.Errorf("project runner: convert %s: %w", result.Input, result.Err)
						cancel()
					})
					return
				}
			}
		}()
	}

	for idx := range docs {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	completed := make([]Result, 0, len(docs))
	for idx := range docs {
		if processed[idx] {
			completed = append(completed, results[idx])
		}
	}

	if firstErr == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return completed, firstErr
}

func (r *Runner) processDocument(ctx context.Context, cfg Config, doc *interfaces.Document) Result {
	result := Result{
		ID:    uuid.New(),
		Input: filepath.Join(cfg.SeedDir, filepath.FromSlash(doc.FilePath)),
	}

	if cfg.SkipDrafts && doc.FrontMatter.Draft {
		result.Skipped = true
		r.logger.Debug("project.document.skipped", "input", result.Input, "reason", "draft")
		return result
	}

	result.Output = outputPath(cfg.OutputDir, doc.FilePath, r.extension)
	if err := r.convertOne(ctx, doc, result.Output); err != nil {
		result.Err = err
		r.logger.Error("project.document.failed", "input", result.Input, "error", err)
		return result
	}

	logging.WithConversionContext(r.logger, result.Input, result.Output, "batch").
		Info("project.document.converted", "result_id", result.ID)
	return result
}

func (r *Runner) convertOne(ctx context.Context, doc *interfaces.Document, output string) error {
	if !r.overwrite {
		if _, err := os.Stat(output); err == nil {
			return fmt.Errorf("project runner: save %s: %w", output, converter.ErrOutputExists)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("project runner: stat %s: %w", output, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("project runner: ensure %s: %w", filepath.Dir(output), err)
	}

	built, err := r.converter.ConvertDocument(ctx, doc)
	if err != nil {
		return err
	}
	return built.Save(output)
}

// effectiveWorkers clamps the configured worker count: non-positive means one
// worker per CPU, and the pool never exceeds the number of documents.
func effectiveWorkers(configured, docs int) int {
	workers := configured
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	if docs > 0 && workers > docs {
		workers = docs
	}
	return workers
}

// outputPath mirrors the seed file's relative path under outputDir, swapping
// the source extension for the output one.
func outputPath(outputDir, relInput, extension string) string {
	rel := filepath.FromSlash(relInput)
	ext := filepath.Ext(rel)
	if ext != "" {
		rel = strings.TrimSuffix(rel, ext)
	}
	return filepath.Join(outputDir, rel+extension)
}
