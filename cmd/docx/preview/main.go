package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/goliatone/go-docx/cmd/docx/internal/bootstrap"
	"github.com/goliatone/go-docx/internal/markdown"
	"github.com/goliatone/go-docx/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		filePath    = flag.String("file", "", "Markdown file to preview")
		extensions  = flag.String("extensions", "", "Comma separated list of markdown extensions (table, strikethrough, tasklist, linkify)")
		hardWraps   = flag.Bool("hard-wraps", false, "Render newlines as hard line breaks")
		safeMode    = flag.Bool("safe-mode", false, "Suppress raw HTML in the rendered output")
		renderHTML  = flag.Bool("render-html", true, "Render the markdown body into HTML as part of the preview")
		showVersion = flag.Bool("version", false, "Print the version and exit")
	)

	flag.Parse()

	if *showVersion {
		fmt.Fprintln(os.Stdout, bootstrap.Version())
		return
	}

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		PreviewExtensions: bootstrap.SplitList(*extensions),
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}
	if module == nil || module.Module == nil || module.Module.Preview() == nil {
		log.Fatalf("preview parser not configured")
	}

	ctx := context.Background()

	loader := markdown.NewLoader(os.DirFS(filepath.Dir(*filePath)), markdown.LoaderConfig{BasePath: "."})
	doc, err := loader.Load(ctx, filepath.Base(*filePath), interfaces.LoadOptions{})
	if err != nil {
		log.Fatalf("load markdown document: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nChecksum: %x\n\n", *filePath, doc.Checksum)

	if doc.FrontMatter.Raw != nil {
		frontmatter, err := json.MarshalIndent(doc.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", frontmatter)
		}
	}

	if *renderHTML {
		html, err := module.Module.Preview().ParseWithOptions(doc.Body, interfaces.ParseOptions{
			Extensions: bootstrap.SplitList(*extensions),
			HardWraps:  *hardWraps,
			SafeMode:   *safeMode,
		})
		if err != nil {
			log.Fatalf("render markdown: %v", err)
		}
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(html))
	} else {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", string(doc.Body))
	}
}
