package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the view pipeline.
type RenderOptions struct {
	// Theme carries a resolved theme configuration. Renderers that support
	// theming read partial overrides, tokens and asset resolution from it;
	// a nil value means the plain built-in chrome.
	Theme *theme.RendererConfig
	// Values passes free-form data through to templates under the "extra"
	// key. Renderers that do not consume templates may ignore it.
	Values map[string]any
}
