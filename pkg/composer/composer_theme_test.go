package composer

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
	"github.com/goliatone/go-viewgen/pkg/model"
	"github.com/goliatone/go-viewgen/pkg/render"
)

func TestComposer_PassesThemeConfigToRenderer(t *testing.T) {
	t.Helper()

	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
	}

	selection := &theme.Selection{
		Theme:    "acme",
		Variant:  "custom-variant",
		Manifest: manifest,
	}

	selector := &stubThemeSelector{selection: selection}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	comp := New(
		WithParser(stubParser{catalog: pkgcatalog.New()}),
		WithViewBuilder(stubBuilder{view: model.WorldView{Current: "w1"}}),
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector, "", ""),
	)

	doc := pkgcatalog.MustNewDocument(stubSource{}, []byte("{}"))
	_, err := comp.Generate(context.Background(), Request{
		Document:     &doc,
		WorldUID:     "w1",
		Renderer:     renderer.Name(),
		ThemeName:    "custom-theme",
		ThemeVariant: "custom-variant",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "custom-theme" || selector.calls[0].variant != "custom-variant" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}

	if renderer.options.Theme == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if renderer.options.Theme.Theme != selection.Theme {
		t.Fatalf("theme name mismatch: want %s, got %s", selection.Theme, renderer.options.Theme.Theme)
	}
	if renderer.options.Theme.Variant != selection.Variant {
		t.Fatalf("theme variant mismatch: want %s, got %s", selection.Variant, renderer.options.Theme.Variant)
	}
	if renderer.options.Theme.AssetURL == nil {
		t.Fatalf("expected AssetURL resolver present")
	}
	if got := renderer.options.Theme.Partials["editor.world_list"]; got != defaultThemeFallbacks()["editor.world_list"] {
		t.Fatalf("partials not merged with fallbacks: want %s, got %s", defaultThemeFallbacks()["editor.world_list"], got)
	}
	if renderer.options.Theme.Tokens["brand"] != manifest.Tokens["brand"] {
		t.Fatalf("tokens not propagated")
	}
	if renderer.options.Theme.CSSVars["--brand"] != manifest.Tokens["brand"] {
		t.Fatalf("css vars not derived from tokens")
	}
}

func TestComposer_ThemeDefaultsAndVariantMerge(t *testing.T) {
	t.Helper()

	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
		Templates: map[string]string{
			"editor.world_fragment": "themes/acme/world.tpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"editor.stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Templates: map[string]string{
					"editor.sectionbar": "themes/acme/dark/sectionbar.tpl",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"editor.vendor": "vendor.dark.js",
					},
				},
			},
		},
	}

	selection := &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: manifest,
	}

	selector := &stubThemeSelector{selection: selection}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	comp := New(
		WithParser(stubParser{catalog: pkgcatalog.New()}),
		WithViewBuilder(stubBuilder{view: model.WorldView{Current: "w1"}}),
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector, "acme", "dark"),
	)

	doc := pkgcatalog.MustNewDocument(stubSource{}, []byte("{}"))
	_, err := comp.Generate(context.Background(), Request{
		Document: &doc,
		WorldUID: "w1",
		Renderer: renderer.Name(),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "acme" || selector.calls[0].variant != "dark" {
		t.Fatalf("defaults not applied to selector: %+v", selector.calls[0])
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" {
		t.Fatalf("theme name mismatch: want acme, got %s", cfg.Theme)
	}
	if cfg.Variant != "dark" {
		t.Fatalf("theme variant mismatch: want dark, got %s", cfg.Variant)
	}
	if cfg.Partials["editor.world_fragment"] != "themes/acme/world.tpl" {
		t.Fatalf("expected base template override, got %s", cfg.Partials["editor.world_fragment"])
	}
	if cfg.Partials["editor.sectionbar"] != "themes/acme/dark/sectionbar.tpl" {
		t.Fatalf("expected variant template override, got %s", cfg.Partials["editor.sectionbar"])
	}
	if cfg.Partials["editor.world_list"] != defaultThemeFallbacks()["editor.world_list"] {
		t.Fatalf("fallback partial not applied for world list")
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("tokens not merged with variant override, got %s", cfg.Tokens["brand"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from variant tokens, got %s", cfg.CSSVars["--brand"])
	}
	if cfg.AssetURL == nil {
		t.Fatalf("expected AssetURL resolver present")
	}
	if got := cfg.AssetURL("editor.vendor"); got != "/assets/themes/acme/vendor.dark.js" {
		t.Fatalf("unexpected vendor asset url: %s", got)
	}
	if got := cfg.AssetURL("editor.stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet asset url: %s", got)
	}
}

func TestComposer_NoThemeNameLeavesUnthemed(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme"}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	comp := New(
		WithCatalog(pkgcatalog.New()),
		WithViewBuilder(stubBuilder{view: model.WorldView{Current: "w1"}}),
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector, "", ""),
	)

	if _, err := comp.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 0 {
		t.Fatalf("selector consulted without a theme name: %d calls", len(selector.calls))
	}
	if renderer.options.Theme != nil {
		t.Fatalf("expected unthemed output, got %+v", renderer.options.Theme)
	}
}

func TestComposer_PreResolvedThemeSkipsSelector(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme"}}
	preset := &theme.RendererConfig{Theme: "preset"}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	comp := New(
		WithCatalog(pkgcatalog.New()),
		WithViewBuilder(stubBuilder{view: model.WorldView{Current: "w1"}}),
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector, "acme", ""),
	)

	_, err := comp.Generate(context.Background(), Request{
		ThemeName:     "custom-theme",
		RenderOptions: render.RenderOptions{Theme: preset},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 0 {
		t.Fatalf("selector consulted despite pre-resolved theme: %d calls", len(selector.calls))
	}
	if renderer.options.Theme != preset {
		t.Fatalf("pre-resolved theme not forwarded: %+v", renderer.options.Theme)
	}
}

func TestComposer_ThemeSelectorErrorFails(t *testing.T) {
	boom := errors.New("boom")
	selector := &stubThemeSelector{err: boom}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	comp := New(
		WithCatalog(pkgcatalog.New()),
		WithViewBuilder(stubBuilder{view: model.WorldView{Current: "w1"}}),
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector, "acme", ""),
	)

	_, err := comp.Generate(context.Background(), Request{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped selector error, got %v", err)
	}
	if !strings.Contains(err.Error(), `select theme "acme"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}
