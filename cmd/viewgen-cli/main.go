package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	viewgen "github.com/goliatone/go-viewgen"
	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
	"github.com/goliatone/go-viewgen/pkg/composer"
)

type options struct {
	input       string
	world       string
	owner       string
	renderer    string
	output      string
	schema      bool
	interactive bool
	verbose     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := options{}
	flag.StringVar(&opts.input, "input", "", "catalog document path or http(s) URL")
	flag.StringVar(&opts.world, "world", "", "uid of the world to select")
	flag.StringVar(&opts.owner, "owner", "", "viewer user id; splits the world list into mine and others")
	flag.StringVar(&opts.renderer, "renderer", "editor", "renderer to use (editor, json)")
	flag.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	flag.BoolVar(&opts.schema, "schema", false, "print the catalog document JSON Schema and exit")
	flag.BoolVar(&opts.interactive, "interactive", false, "pick the world and renderer via prompts")
	flag.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	logger, err := buildLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "viewgen-cli: build logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if err := execute(context.Background(), logger, opts); err != nil {
		if errors.Is(err, errAborted) {
			fmt.Fprintln(os.Stderr, "viewgen-cli: aborted")
			return 1
		}
		logger.Error("generate failed", zap.Error(err))
		return 1
	}
	return 0
}

func execute(ctx context.Context, logger *zap.Logger, opts options) error {
	if opts.schema {
		payload, err := pkgcatalog.DocumentSchemaJSON()
		if err != nil {
			return err
		}
		return writeOutput(opts.output, payload)
	}

	src := parseSource(opts.input)
	if src == nil {
		return fmt.Errorf("viewgen-cli: input %q is not a file path or http(s) URL", opts.input)
	}

	loader := viewgen.NewLoader(loaderOptions(src)...)

	req := composer.Request{
		Source:   src,
		WorldUID: opts.world,
		Owner:    opts.owner,
		Renderer: opts.renderer,
	}

	composerOptions := []composer.Option{
		composer.WithLogger(logger),
		composer.WithLoader(loader),
	}

	if opts.interactive {
		catalog, err := loadCatalog(ctx, loader, src)
		if err != nil {
			return err
		}
		worldUID, rendererName, err := promptSelections(ctx, newSurveyDriver(), catalog, opts)
		if err != nil {
			return err
		}
		req.Source = nil
		req.WorldUID = worldUID
		req.Renderer = rendererName
		composerOptions = append(composerOptions, composer.WithCatalog(catalog))
	}

	gen := composer.New(composerOptions...)
	payload, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}
	return writeOutput(opts.output, payload)
}

// promptSelections fills the world and renderer choices that flags left
// open. A -world flag skips the world prompt; the renderer prompt defaults
// to the flag value.
func promptSelections(ctx context.Context, driver promptDriver, catalog *pkgcatalog.Catalog, opts options) (string, string, error) {
	worldUID := opts.world
	if worldUID == "" {
		defs := catalog.Worlds("")
		if len(defs) == 0 {
			return "", "", errors.New("viewgen-cli: catalog has no worlds to select")
		}
		labels := make([]string, len(defs))
		for i, def := range defs {
			labels[i] = fmt.Sprintf("%s (%s)", def.Name, def.UID)
		}
		idx, err := driver.Select(ctx, selectConfig{Message: "World to edit", Options: labels})
		if err != nil {
			return "", "", err
		}
		if idx >= 0 && idx < len(defs) {
			worldUID = defs[idx].UID
		}
	}

	rendererNames := []string{"editor", "json"}
	idx, err := driver.Select(ctx, selectConfig{
		Message:      "Renderer",
		Options:      rendererNames,
		DefaultIndex: indexOf(rendererNames, opts.renderer),
	})
	if err != nil {
		return "", "", err
	}
	rendererName := opts.renderer
	if idx >= 0 && idx < len(rendererNames) {
		rendererName = rendererNames[idx]
	}

	return worldUID, rendererName, nil
}

func loadCatalog(ctx context.Context, loader pkgcatalog.Loader, src pkgcatalog.Source) (*pkgcatalog.Catalog, error) {
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("viewgen-cli: load document: %w", err)
	}
	catalog, err := viewgen.NewParser().Parse(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("viewgen-cli: parse catalog: %w", err)
	}
	return catalog, nil
}

func loaderOptions(src pkgcatalog.Source) []pkgcatalog.LoaderOption {
	if src.Kind() == pkgcatalog.SourceKindURL {
		return []pkgcatalog.LoaderOption{pkgcatalog.WithHTTPFallback(30 * time.Second)}
	}
	return nil
}

func parseSource(raw string) pkgcatalog.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgcatalog.SourceFromURL(path)
	}
	return pkgcatalog.SourceFromFile(path)
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func writeOutput(path string, payload []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("viewgen-cli: write output: %w", err)
	}
	fmt.Printf("View written to %s\n", path)
	return nil
}
