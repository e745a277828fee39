package composer

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-viewgen/pkg/render"
)

// WithThemeSelector wires a go-theme selector so requests resolve themed
// partials, tokens, and asset URLs before rendering. The default theme and
// variant apply whenever a request does not name its own; an empty default
// leaves unthemed requests unthemed.
func WithThemeSelector(selector theme.ThemeSelector, defaultTheme, defaultVariant string) Option {
	return func(c *Composer) {
		c.themeSelector = selector
		c.themeName = defaultTheme
		c.themeVariant = defaultVariant
	}
}

// WithThemeFallbacks overrides the partial mappings used when a theme
// selection does not provide its own template for a slot.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(c *Composer) {
		c.themeFallbacks = fallbacks
	}
}

// defaultThemeFallbacks maps the partial slots the editor renderer consumes
// to the embedded templates used when a theme does not override them.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"editor.world_list": "templates/nodenet_list.tpl",
	}
}

// applyTheme resolves the theme selection for a request and attaches the
// derived renderer configuration. Requests that already carry a resolved
// theme, or that resolve to no theme name at all, pass through untouched.
func (c *Composer) applyTheme(req Request, options *render.RenderOptions) error {
	if options.Theme != nil || c.themeSelector == nil {
		return nil
	}

	name := req.ThemeName
	if name == "" {
		name = c.themeName
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = c.themeVariant
	}
	if name == "" {
		return nil
	}

	selection, err := c.themeSelector.Select(name, variant)
	if err != nil {
		return fmt.Errorf("composer: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil
	}

	options.Theme = deriveRendererConfig(selection, c.fallbacks())
	return nil
}

func (c *Composer) fallbacks() map[string]string {
	if c.themeFallbacks != nil {
		return c.themeFallbacks
	}
	return defaultThemeFallbacks()
}

// deriveRendererConfig flattens a theme selection into the renderer-facing
// configuration: fallback partials merged under manifest templates, variant
// templates winning over both, tokens merged the same way, CSS variables
// derived from the merged tokens, and an asset resolver honouring variant
// file overrides.
func deriveRendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}

	partials := make(map[string]string, len(fallbacks))
	for key, value := range fallbacks {
		partials[key] = value
	}
	tokens := map[string]string{}

	manifest := selection.Manifest

	var variant *theme.Variant
	if manifest != nil {
		for key, value := range manifest.Templates {
			partials[key] = value
		}
		for key, value := range manifest.Tokens {
			tokens[key] = value
		}
		if v, ok := manifest.Variants[selection.Variant]; ok {
			variant = &v
		}
	}
	if variant != nil {
		for key, value := range variant.Templates {
			partials[key] = value
		}
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	cfg.Partials = partials
	cfg.Tokens = tokens

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}
	cfg.CSSVars = cssVars

	if manifest != nil {
		cfg.AssetURL = assetResolver(manifest, variant)
	}

	return cfg
}

// assetResolver builds the AssetURL closure from the manifest assets with the
// variant's prefix and file overrides applied. Unknown asset keys resolve to
// the empty string so templates can fall back cleanly.
func assetResolver(manifest *theme.Manifest, variant *theme.Variant) func(string) string {
	prefix := manifest.Assets.Prefix
	files := make(map[string]string, len(manifest.Assets.Files))
	for key, value := range manifest.Assets.Files {
		files[key] = value
	}
	if variant != nil {
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
		for key, value := range variant.Assets.Files {
			files[key] = value
		}
	}

	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		return joinAssetURL(prefix, file)
	}
}

func joinAssetURL(prefix, file string) string {
	if prefix == "" {
		return file
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
}
