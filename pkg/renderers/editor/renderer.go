package editor

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-viewgen/pkg/model"
	"github.com/goliatone/go-viewgen/pkg/render"
	rendertemplate "github.com/goliatone/go-viewgen/pkg/render/template"
	"github.com/goliatone/go-viewgen/pkg/render/template/pongo"
)

const (
	templateName     = "templates/world.tpl"
	listTemplateName = "templates/nodenet_list.tpl"

	themePartialWorldList = "editor.world_list"
	themeAssetStylesheet  = "editor.stylesheet"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	defaultStyles    bool
	stylesheet       string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk. The directory
// must mirror the bundled layout (templates/world.tpl and friends).
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithDefaultStyles inlines the embedded editor stylesheet into the fragment.
// Off by default so the plain output stays minimal.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.defaultStyles = true
	}
}

// WithStylesheet emits a link tag pointing at href. A theme asset named
// "editor.stylesheet" takes precedence when one resolves.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		cfg.stylesheet = strings.TrimSpace(href)
	}
}

// Renderer produces the world editor HTML fragment: navigation chrome with
// the world list widget, the collapsible editor panel, the add-worldobject
// menu and the paperscript asset references.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	styles     string
	stylesheet string
}

// New constructs the editor renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	for _, name := range []string{templateName, listTemplateName} {
		if err := ensureTemplate(cfg.templateFS, name); err != nil {
			return nil, err
		}
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("editor renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	styles := ""
	if cfg.defaultStyles {
		styles = defaultStylesheet()
	}

	return &Renderer{
		templates:  renderer,
		styles:     styles,
		stylesheet: cfg.stylesheet,
	}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "editor"
}

// ContentType returns the MIME type for generated fragments.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the editor fragment for one world view. The custom world
// fragment and any theme-supplied list partial are rendered through the same
// engine before the outer template assembles the chrome.
func (r *Renderer) Render(_ context.Context, view model.WorldView, renderOptions render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("editor renderer: template renderer is nil")
	}
	view.Normalize()

	themeCtx := buildThemeContext(renderOptions.Theme)

	listHTML, err := r.listPartial(themeCtx, view)
	if err != nil {
		return nil, err
	}

	fragmentHTML := ""
	hasFragment := false
	if view.Assets.HasTemplate() {
		rendered, err := r.templates.RenderTemplate(view.Assets.Template, fragmentContext(view.Assets))
		if err != nil {
			return nil, fmt.Errorf("editor renderer: render world fragment %q: %w", view.Assets.Template, err)
		}
		fragmentHTML = rendered
		hasFragment = true
	}

	data := map[string]any{
		"mine":                view.Mine,
		"others":              view.Others,
		"current":             view.Current,
		"world_assets":        view.Assets,
		"world_list_html":     listHTML,
		"has_world_fragment":  hasFragment,
		"world_fragment_html": fragmentHTML,
		"theme":               themeCtx,
		"styles":              r.styles,
		"stylesheet":          resolveStylesheet(r.stylesheet, renderOptions.Theme),
		"extra":               renderOptions.Values,
	}

	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("editor renderer: render template: %w", err)
	}
	return []byte(rendered), nil
}

// listPartial renders a theme-supplied replacement for the world list widget.
// An empty result means the built-in include stays in charge. Overrides the
// engine cannot resolve are skipped rather than failing the render, so a
// theme written for a richer bundle degrades to the default chrome.
func (r *Renderer) listPartial(themeCtx rendererTheme, view model.WorldView) (string, error) {
	name := strings.TrimSpace(themeCtx.Partials[themePartialWorldList])
	if name == "" {
		return "", nil
	}
	if resolver, ok := r.templates.(rendertemplate.Resolver); ok && !resolver.Has(name) {
		return "", nil
	}

	rendered, err := r.templates.RenderTemplate(name, map[string]any{
		"kind":    "world",
		"mine":    view.Mine,
		"others":  view.Others,
		"current": view.Current,
	})
	if err != nil {
		return "", fmt.Errorf("editor renderer: render list partial %q: %w", name, err)
	}
	return rendered, nil
}

// fragmentContext spreads the asset bundle to top-level keys the way the
// editor forwards world_assets into its custom fragment. Free-form options
// merge in first so the reserved keys always win.
func fragmentContext(assets model.AssetBundle) map[string]any {
	ctx := make(map[string]any, len(assets.Options)+3)
	for key, value := range assets.Options {
		ctx[key] = value
	}
	ctx["template"] = assets.Template
	ctx["js"] = assets.JS
	ctx["icon"] = assets.Icon
	return ctx
}

type rendererTheme struct {
	Name         string            `json:"name"`
	Variant      string            `json:"variant"`
	Partials     map[string]string `json:"partials,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVars      map[string]string `json:"cssVars,omitempty"`
	CSSVarsStyle string            `json:"css_vars_style,omitempty"`
}

func buildThemeContext(cfg *theme.RendererConfig) rendererTheme {
	if cfg == nil {
		return rendererTheme{}
	}
	ctx := rendererTheme{
		Name:     cfg.Theme,
		Variant:  cfg.Variant,
		Partials: copyStringMap(cfg.Partials),
		Tokens:   copyStringMap(cfg.Tokens),
		CSSVars:  copyStringMap(cfg.CSSVars),
	}
	ctx.CSSVarsStyle = cssVarsStyle(ctx.CSSVars)
	return ctx
}

func resolveStylesheet(href string, cfg *theme.RendererConfig) string {
	if cfg != nil && cfg.AssetURL != nil {
		if resolved := strings.TrimSpace(cfg.AssetURL(themeAssetStylesheet)); resolved != "" {
			return resolved
		}
	}
	return href
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func ensureTemplate(store fs.FS, name string) error {
	if store == nil {
		return fmt.Errorf("editor renderer: template file system is nil")
	}
	if _, err := fs.Stat(store, name); err != nil {
		return fmt.Errorf("editor renderer: template %q not found: %w", name, err)
	}
	return nil
}
