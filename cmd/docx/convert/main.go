package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-docx/cmd/docx/internal/bootstrap"
	convertcmd "github.com/goliatone/go-docx/internal/commands/convert"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runConvert(os.Args[1:]); err != nil {
		log.Fatalf("docx convert: %v", err)
	}
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("docx-convert", flag.ExitOnError)
	input := fs.String("input", "", "Markdown file to convert (may also be given as the first positional argument)")
	var output string
	fs.StringVar(&output, "output", "", "Destination .docx path (defaults to the input path with a .docx extension)")
	fs.StringVar(&output, "o", "", "Shorthand for -output")
	overwrite := fs.Bool("overwrite", true, "Replace the destination file when it already exists")
	showVersion := fs.Bool("version", false, "Print the version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(os.Stdout, bootstrap.Version())
		return nil
	}

	source := strings.TrimSpace(*input)
	if source == "" && fs.NArg() > 0 {
		source = strings.TrimSpace(fs.Arg(0))
	}
	if source == "" {
		return fmt.Errorf("input file is required")
	}

	destination := strings.TrimSpace(output)
	if destination == "" {
		destination = strings.TrimSuffix(source, filepath.Ext(source)) + ".docx"
	}

	module, err := moduleBuilder(bootstrap.Options{
		Overwrite: *overwrite,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Converter == nil {
		return fmt.Errorf("converter service not configured")
	}

	handler := convertcmd.NewConvertFileHandler(module.Converter, module.Logger)
	cmd := convertcmd.ConvertFileCommand{
		Input:  source,
		Output: destination,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute convert command: %w", err)
	}

	fmt.Fprintf(os.Stdout, "converted %s -> %s\n", source, destination)

	return nil
}
