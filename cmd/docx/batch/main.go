package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-docx/cmd/docx/internal/bootstrap"
	convertcmd "github.com/goliatone/go-docx/internal/commands/convert"
	"github.com/goliatone/go-docx/internal/project"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runBatch(os.Args[1:]); err != nil {
		log.Fatalf("docx batch: %v", err)
	}
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("docx-batch", flag.ExitOnError)
	projectFile := fs.String("project", "", "Path to a project file describing the batch run (overrides directory flags)")
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	outputDir := fs.String("output-dir", "dist", "Directory where converted documents are written")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	recursive := fs.Bool("recursive", true, "Traverse sub-directories when discovering markdown files")
	skipDrafts := fs.Bool("skip-drafts", true, "Skip documents marked as drafts in their frontmatter")
	workers := fs.Int("workers", 0, "Concurrent conversion workers (0 means one per CPU)")
	stopOnError := fs.Bool("stop-on-error", false, "Abort the run on the first document failure")
	timeout := fs.Duration("timeout", 0, "Deadline for the whole run (0 means no deadline)")
	overwrite := fs.Bool("overwrite", true, "Replace destination files that already exist")
	showVersion := fs.Bool("version", false, "Print the version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(os.Stdout, bootstrap.Version())
		return nil
	}

	cmd := convertcmd.ConvertDirectoryCommand{
		Directory:  *contentDir,
		OutputDir:  *outputDir,
		Pattern:    *pattern,
		Recursive:  *recursive,
		SkipDrafts: *skipDrafts,
	}

	if trimmed := strings.TrimSpace(*projectFile); trimmed != "" {
		cfg, err := project.LoadConfig(trimmed)
		if err != nil {
			return fmt.Errorf("load project file: %w", err)
		}
		cmd = convertcmd.ConvertDirectoryCommand{
			Directory:  cfg.SeedDir,
			OutputDir:  cfg.OutputDir,
			Pattern:    cfg.Pattern,
			Recursive:  cfg.Recursive,
			SkipDrafts: cfg.SkipDrafts,
		}
	}

	module, err := moduleBuilder(bootstrap.Options{
		SeedDir:     cmd.Directory,
		Pattern:     cmd.Pattern,
		Recursive:   cmd.Recursive,
		OutputDir:   cmd.OutputDir,
		Overwrite:   *overwrite,
		SkipDrafts:  cmd.SkipDrafts,
		Workers:     *workers,
		StopOnError: *stopOnError,
		Timeout:     *timeout,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Module == nil || module.Module.Runner() == nil {
		return fmt.Errorf("batch runner not configured")
	}

	handler := convertcmd.NewConvertDirectoryHandler(module.Module.Runner(), module.Logger, convertcmd.FeatureGates{
		BatchEnabled: func() bool { return true },
	})
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute batch command: %w", err)
	}

	fmt.Fprintf(os.Stdout, "converted %s -> %s\n", cmd.Directory, cmd.OutputDir)

	return nil
}
