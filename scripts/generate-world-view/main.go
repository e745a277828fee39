package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	viewgen "github.com/goliatone/go-viewgen"
	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
	"github.com/goliatone/go-viewgen/pkg/composer"
	"github.com/goliatone/go-viewgen/pkg/model"
	"github.com/goliatone/go-viewgen/pkg/render"
)

const snapshotRendererName = "world-view-snapshot"

type snapshotRenderer struct {
	path string
}

func (r *snapshotRenderer) Name() string {
	return snapshotRendererName
}

func (r *snapshotRenderer) ContentType() string {
	return "application/json"
}

func (r *snapshotRenderer) Render(_ context.Context, view model.WorldView, _ render.RenderOptions) ([]byte, error) {
	payload, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return nil, err
	}
	return payload, nil
}

func main() {
	var (
		inputPath  = flag.String("input", "internal/catalog/testdata/worlds_catalog.json", "catalog document path")
		worldUID   = flag.String("world", "w1", "world UID to select as current")
		owner      = flag.String("owner", "ada", "viewer whose worlds land in the mine list")
		outputPath = flag.String("output", "internal/model/testdata/berlin_worldview.golden.json", "output path for the serialized world view")
	)
	flag.Parse()

	ctx := context.Background()

	registry := render.NewRegistry()
	registry.MustRegister(&snapshotRenderer{path: *outputPath})

	generator := composer.New(
		composer.WithLoader(viewgen.NewLoader()),
		composer.WithRegistry(registry),
		composer.WithDefaultRenderer(snapshotRendererName),
	)

	_, err := generator.Generate(ctx, composer.Request{
		Source:   pkgcatalog.SourceFromFile(*inputPath),
		WorldUID: *worldUID,
		Owner:    *owner,
		Renderer: snapshotRendererName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to snapshot world view: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Wrote world view snapshot to %s\n", *outputPath)
}
