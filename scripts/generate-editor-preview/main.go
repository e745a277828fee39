package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	viewgen "github.com/goliatone/go-viewgen"
	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
)

func main() {
	ctx := context.Background()

	const (
		sourcePath   = "examples/fixtures/worlds.json"
		worldUID     = "w2"
		owner        = "ada"
		rendererName = "editor"
		outputPath   = "examples/dev/editor-preview.html"
	)

	source := pkgcatalog.SourceFromFile(sourcePath)
	html, err := viewgen.GenerateHTML(ctx, source, worldUID, owner, rendererName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate editor preview: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outputPath, html, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Generated editor preview HTML (%d bytes) → %s\n", len(html), outputPath)
}
