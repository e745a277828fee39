package composer

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-viewgen/internal/catalog/loader"
	internalParser "github.com/goliatone/go-viewgen/internal/catalog/parser"
	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
	"github.com/goliatone/go-viewgen/pkg/model"
	"github.com/goliatone/go-viewgen/pkg/render"
	"github.com/goliatone/go-viewgen/pkg/renderers/editor"
	"github.com/goliatone/go-viewgen/pkg/renderers/jsonstate"
)

const defaultRendererName = "editor"

// Option customises the composer configuration.
type Option func(*Composer)

// WithLoader injects a custom catalog document loader.
func WithLoader(loader pkgcatalog.Loader) Option {
	return func(c *Composer) {
		c.loader = loader
	}
}

// WithParser injects a custom catalog document parser.
func WithParser(parser pkgcatalog.Parser) Option {
	return func(c *Composer) {
		c.parser = parser
	}
}

// WithCatalog injects a live catalog. Requests then skip the loader and
// parser stages entirely and render against the injected state.
func WithCatalog(catalog *pkgcatalog.Catalog) Option {
	return func(c *Composer) {
		c.catalog = catalog
	}
}

// WithViewBuilder injects a custom world view builder.
func WithViewBuilder(builder model.Builder) Option {
	return func(c *Composer) {
		c.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(c *Composer) {
		c.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(c *Composer) {
		c.defaultRenderer = name
	}
}

// WithRenderOptions sets base render options applied to requests that do not
// carry their own.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(c *Composer) {
		c.renderOptions = options
	}
}

// WithLogger attaches a structured logger for pipeline lifecycle events. The
// composer is silent by default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Composer coordinates the full pipeline from catalog document to rendered
// output. It applies sensible defaults (editor renderer, embedded templates)
// while remaining open to dependency injection for advanced callers.
type Composer struct {
	loader          pkgcatalog.Loader
	parser          pkgcatalog.Parser
	catalog         *pkgcatalog.Catalog
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	renderOptions   render.RenderOptions
	logger          *zap.Logger

	themeSelector  theme.ThemeSelector
	themeName      string
	themeVariant   string
	themeFallbacks map[string]string

	initialiseErr   error
	defaultsApplied bool
}

// New constructs a Composer applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Composer {
	c := &Composer{
		defaultRenderer: defaultRendererName,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.applyDefaults()
	return c
}

// Request describes the inputs required to render a world view from a
// catalog document.
type Request struct {
	// Source identifies where the catalog document lives. Optional when
	// Document is supplied or the composer carries an injected catalog.
	Source pkgcatalog.Source

	// Document allows callers to bypass the loader when they already have a
	// loaded payload.
	Document *pkgcatalog.Document

	// WorldUID selects the world being edited. Empty renders the view with
	// no current selection.
	WorldUID string

	// Owner identifies the viewer so the world list splits into mine and
	// others.
	Owner string

	// Renderer names the renderer to use. If empty, the composer falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme for this request. Empty
	// values fall back to the composer-level defaults; when no name resolves
	// at all the output stays unthemed.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request data such as a pre-resolved theme
	// configuration or extra template values. When omitted, the composer's
	// base options apply.
	RenderOptions render.RenderOptions
}

// Generate executes the loader → parser → view builder → renderer sequence
// and returns the rendered bytes (HTML for the default editor renderer).
func (c *Composer) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("composer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.initialiseErr; err != nil {
		return nil, err
	}
	if !c.defaultsApplied {
		c.applyDefaults()
		if err := c.initialiseErr; err != nil {
			return nil, err
		}
	}

	catalog, err := c.resolveCatalog(ctx, req)
	if err != nil {
		return nil, err
	}

	snap := catalog.Snapshot()
	view, err := c.builder.Build(snap, model.ViewQuery{Owner: req.Owner, Current: req.WorldUID})
	if err != nil {
		return nil, fmt.Errorf("composer: build world view: %w", err)
	}

	renderer, err := c.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := c.requestOptions(req)
	if err := c.applyTheme(req, &options); err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, view, options)
	if err != nil {
		return nil, fmt.Errorf("composer: render output: %w", err)
	}

	c.logger.Debug("world view rendered",
		zap.String("world", req.WorldUID),
		zap.String("renderer", renderer.Name()),
		zap.Int("bytes", len(output)))

	return output, nil
}

func (c *Composer) resolveCatalog(ctx context.Context, req Request) (*pkgcatalog.Catalog, error) {
	if c.catalog != nil {
		return c.catalog, nil
	}

	doc, err := c.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	catalog, err := c.parser.Parse(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("composer: parse catalog: %w", err)
	}

	c.logger.Debug("catalog parsed",
		zap.String("source", doc.Location()),
		zap.Int("worlds", len(catalog.Worlds(""))),
		zap.Int("types", len(catalog.Types())))

	return catalog, nil
}

func (c *Composer) resolveDocument(ctx context.Context, req Request) (pkgcatalog.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgcatalog.Document{}, errors.New("composer: source, document or catalog is required")
	}
	doc, err := c.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgcatalog.Document{}, fmt.Errorf("composer: load document: %w", err)
	}
	return doc, nil
}

func (c *Composer) rendererFor(name string) (render.Renderer, error) {
	if c.registry == nil {
		return nil, errors.New("composer: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = c.defaultRenderer
	}

	if target != "" {
		renderer, err := c.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("composer: renderer %q: %w", name, err)
		}
	}

	names := c.registry.List()
	if len(names) == 0 {
		return nil, errors.New("composer: no renderers registered")
	}

	renderer, err := c.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("composer: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

// requestOptions picks the per-request options when the request carries any,
// falling back to the composer-level base.
func (c *Composer) requestOptions(req Request) render.RenderOptions {
	if req.RenderOptions.Theme != nil || req.RenderOptions.Values != nil {
		return req.RenderOptions
	}
	return c.renderOptions
}

func (c *Composer) applyDefaults() {
	if c.defaultsApplied {
		return
	}

	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.loader == nil {
		c.loader = internalLoader.New(pkgcatalog.NewLoaderOptions())
	}
	if c.parser == nil {
		c.parser = internalParser.New(pkgcatalog.NewParserOptions())
	}
	if c.builder == nil {
		c.builder = model.NewBuilder()
	}
	if c.registry == nil {
		c.registry = render.NewRegistry()
		renderer, err := editor.New()
		if err != nil {
			c.initialiseErr = fmt.Errorf("composer: default renderer: %w", err)
		} else {
			c.registry.MustRegister(renderer)
			c.registry.MustRegister(jsonstate.New())
		}
	}
	if c.defaultRenderer == "" {
		c.defaultRenderer = defaultRendererName
	}

	c.defaultsApplied = true
}
