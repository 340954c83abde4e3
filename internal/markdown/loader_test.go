package markdown

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-docx/pkg/interfaces"
)

func loaderFixtureFS(t *testing.T) fstest.MapFS {
	t.Helper()

	modTime := time.Date(2025, time.March, 4, 12, 0, 0, 0, time.UTC)
	return fstest.MapFS{
		"docs/welcome.md": &fstest.MapFile{
			Data:    []byte("---\ntitle: Welcome\nslug: welcome\n---\n\n# Welcome\n\nBody copy."),
			ModTime: modTime,
		},
		"docs/zeta.md": &fstest.MapFile{
			Data:    []byte("# Zeta\n"),
			ModTime: modTime,
		},
		"docs/notes.txt": &fstest.MapFile{
			Data:    []byte("not markdown"),
			ModTime: modTime,
		},
		"docs/nested/deep.md": &fstest.MapFile{
			Data:    []byte("# Deep\n"),
			ModTime: modTime,
		},
	}
}

func TestLoaderLoad(t *testing.T) {
	loader := NewLoader(loaderFixtureFS(t), LoaderConfig{BasePath: "."})

	doc, err := loader.Load(context.Background(), "docs/welcome.md", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if doc.FilePath != "docs/welcome.md" {
		t.Fatalf("unexpected FilePath %q", doc.FilePath)
	}
	if doc.FrontMatter.Title != "Welcome" {
		t.Fatalf("expected front matter title Welcome, got %+v", doc.FrontMatter)
	}
	if len(doc.Body) == 0 {
		t.Fatal("expected non-empty body")
	}
	if len(doc.Checksum) == 0 {
		t.Fatal("expected checksum to be populated")
	}
	if doc.LastModified.IsZero() {
		t.Fatal("expected LastModified from file info")
	}
}

func TestLoaderLoadMissingFile(t *testing.T) {
	loader := NewLoader(loaderFixtureFS(t), LoaderConfig{BasePath: "."})

	if _, err := loader.Load(context.Background(), "docs/missing.md", interfaces.LoadOptions{}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoaderLoadDirectoryNonRecursive(t *testing.T) {
	loader := NewLoader(loaderFixtureFS(t), LoaderConfig{BasePath: "."})

	docs, err := loader.LoadDirectory(context.Background(), "docs", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].FilePath != "docs/welcome.md" || docs[1].FilePath != "docs/zeta.md" {
		t.Fatalf("expected results sorted by path, got %q and %q", docs[0].FilePath, docs[1].FilePath)
	}
}

func TestLoaderLoadDirectoryRecursive(t *testing.T) {
	loader := NewLoader(loaderFixtureFS(t), LoaderConfig{BasePath: ".", Recursive: true})

	docs, err := loader.LoadDirectory(context.Background(), "docs", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	if docs[0].FilePath != "docs/nested/deep.md" {
		t.Fatalf("expected nested document first, got %q", docs[0].FilePath)
	}
}

func TestLoaderLoadDirectoryRecursiveOverride(t *testing.T) {
	loader := NewLoader(loaderFixtureFS(t), LoaderConfig{BasePath: "."})

	recursive := true
	docs, err := loader.LoadDirectory(context.Background(), "docs", interfaces.LoadOptions{Recursive: &recursive})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected override to enable recursion, got %d documents", len(docs))
	}
}

func TestLoaderLoadDirectoryPatternOverride(t *testing.T) {
	loader := NewLoader(loaderFixtureFS(t), LoaderConfig{BasePath: "."})

	docs, err := loader.LoadDirectory(context.Background(), "docs", interfaces.LoadOptions{Pattern: "*.txt"})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(docs) != 1 || docs[0].FilePath != "docs/notes.txt" {
		t.Fatalf("expected only the txt file, got %+v", docs)
	}
}

func TestLoaderCancelledContext(t *testing.T) {
	loader := NewLoader(loaderFixtureFS(t), LoaderConfig{BasePath: "."})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.Load(ctx, "docs/welcome.md", interfaces.LoadOptions{}); err == nil {
		t.Fatal("expected context error from Load")
	}
	if _, err := loader.LoadDirectory(ctx, "docs", interfaces.LoadOptions{}); err == nil {
		t.Fatal("expected context error from LoadDirectory")
	}
}
