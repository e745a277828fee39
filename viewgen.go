package viewgen

import (
	"context"

	theme "github.com/goliatone/go-theme"

	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
	"github.com/goliatone/go-viewgen/pkg/composer"
	"github.com/goliatone/go-viewgen/pkg/model"
	"github.com/goliatone/go-viewgen/pkg/render"
)

// Request mirrors composer.Request; alias exported via the root package for
// convenience.
type Request = composer.Request

// Option configures the composer.
type Option = composer.Option

// RenderOptions describes per-request overrides that renderers can use to
// resolve themes or inject extra template values.
type RenderOptions = render.RenderOptions

// WorldView is the typed view context the editor templates consume.
type WorldView = model.WorldView

// WorldRef identifies a world in the mine/others lists.
type WorldRef = model.WorldRef

// AssetBundle carries the editor customization assets of a world type.
type AssetBundle = model.AssetBundle

// NewComposer exposes the composer constructor from the top-level module.
func NewComposer(options ...Option) *composer.Composer {
	return composer.New(options...)
}

// GenerateHTML loads the catalog document, builds the world view for the
// requested world and viewer, and renders it using the named renderer. It is
// the simplest entry point for callers that just want the editor fragment.
func GenerateHTML(ctx context.Context, source pkgcatalog.Source, worldUID, owner, rendererName string, options ...Option) ([]byte, error) {
	gen := composer.New(options...)
	return gen.Generate(ctx, composer.Request{
		Source:   source,
		WorldUID: worldUID,
		Owner:    owner,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromDocument renders a world view using a pre-loaded document,
// bypassing the loader stage while still delegating to the composer.
func GenerateHTMLFromDocument(ctx context.Context, doc pkgcatalog.Document, worldUID, owner, rendererName string, options ...Option) ([]byte, error) {
	gen := composer.New(options...)
	return gen.Generate(ctx, composer.Request{
		Document: &doc,
		WorldUID: worldUID,
		Owner:    owner,
		Renderer: rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the composer so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector, defaultTheme, defaultVariant string) Option {
	return composer.WithThemeSelector(selector, defaultTheme, defaultVariant)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return composer.WithThemeFallbacks(fallbacks)
}
