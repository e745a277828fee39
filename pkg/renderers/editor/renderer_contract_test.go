package editor_test

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-viewgen/pkg/model"
	"github.com/goliatone/go-viewgen/pkg/render"
	"github.com/goliatone/go-viewgen/pkg/renderers/editor"
	"github.com/goliatone/go-viewgen/pkg/testsupport"
)

const islandFragment = `<div class="world section">
    <img src="/static/{{ background }}" id="background">
    <canvas id="world" width="700" height="500" style="background:transparent"></canvas>
</div>
`

// chromeFS bundles the embedded chrome templates with extra fixture files so
// fragment and partial lookups resolve through a single template source.
func chromeFS(t *testing.T, extra map[string]string) fs.FS {
	t.Helper()

	fsys := fstest.MapFS{}
	for _, name := range []string{"templates/world.tpl", "templates/nodenet_list.tpl"} {
		data, err := fs.ReadFile(editor.TemplatesFS(), name)
		if err != nil {
			t.Fatalf("read embedded template %q: %v", name, err)
		}
		fsys[name] = &fstest.MapFile{Data: data}
	}
	for name, content := range extra {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestRenderer_RenderContract(t *testing.T) {
	view := testsupport.MustLoadWorldView(t, filepath.Join("testdata", "world_view.json"))

	renderer, err := editor.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "editor" {
		t.Fatalf("unexpected renderer name %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}

	output, err := renderer.Render(testsupport.Context(), view, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "world_output.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, output) {
		return
	}

	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareGolden(string(want), string(output)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_IslandFragmentContract(t *testing.T) {
	view := testsupport.MustLoadWorldView(t, filepath.Join("testdata", "world_view_island.json"))

	renderer, err := editor.New(editor.WithTemplatesFS(chromeFS(t, map[string]string{
		"island/island.tpl": islandFragment,
	})))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), view, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "world_output_island.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, output) {
		return
	}

	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareGolden(string(want), string(output)); diff != "" {
		t.Fatalf("island output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_MissingFragmentTemplate(t *testing.T) {
	view := testsupport.MustLoadWorldView(t, filepath.Join("testdata", "world_view.json"))
	view.Assets.Template = "missing/missing.tpl"

	renderer, err := editor.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, err = renderer.Render(testsupport.Context(), view, render.RenderOptions{})
	if !errors.Is(err, render.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestRenderer_EmptyViewKeepsChrome(t *testing.T) {
	renderer, err := editor.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), model.WorldView{}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(output)
	if !strings.Contains(html, "(no world selected)") {
		t.Fatalf("expected empty selector label in output:\n%s", html)
	}
	if !strings.Contains(html, `<li class="disabled"><a href="#">No worlds yet</a></li>`) {
		t.Fatalf("expected empty navigation entry in output:\n%s", html)
	}
	if !strings.Contains(html, `<canvas id="world" width="700" height="500" style="background:#eeeeee"></canvas>`) {
		t.Fatalf("expected default canvas in output:\n%s", html)
	}
	if got := strings.Count(html, `type="text/paperscript"`); got != 1 {
		t.Fatalf("expected exactly one world script, got %d:\n%s", got, html)
	}
	if !strings.Contains(html, `data="add_worldobject"`) {
		t.Fatalf("expected add worldobject action in output:\n%s", html)
	}
}

func TestRenderer_IconReplacesDefault(t *testing.T) {
	view := testsupport.MustLoadWorldView(t, filepath.Join("testdata", "world_view.json"))
	view.Assets.Icon = `<svg class="world-icon"></svg>`

	renderer, err := editor.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), view, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(output)
	if !strings.Contains(html, `<span class="sectionicon"><svg class="world-icon"></svg></span>`) {
		t.Fatalf("expected custom icon in output:\n%s", html)
	}
	if strings.Contains(html, "world_editor_icon") {
		t.Fatalf("expected default icon to be replaced:\n%s", html)
	}
}

func TestRenderer_DefaultStylesAndStylesheet(t *testing.T) {
	view := testsupport.MustLoadWorldView(t, filepath.Join("testdata", "world_view.json"))

	renderer, err := editor.New(editor.WithDefaultStyles(), editor.WithStylesheet("/assets/editor.css"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), view, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(output)
	if !strings.Contains(html, `<link rel="stylesheet" href="/assets/editor.css">`) {
		t.Fatalf("expected stylesheet link in output:\n%s", html)
	}
	if !strings.Contains(html, `<style id="world_editor_styles">`) {
		t.Fatalf("expected inlined styles in output:\n%s", html)
	}
	if !strings.Contains(html, "#world_editor {") {
		t.Fatalf("expected editor rules in inlined styles:\n%s", html)
	}
}

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{
		renderTemplateFunc: func(name string, data any, out ...io.Writer) (string, error) {
			if name == "templates/world.tpl" {
				return "custom-output", nil
			}
			return "", nil
		},
	}

	renderer, err := editor.New(editor.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	view := testsupport.MustLoadWorldView(t, filepath.Join("testdata", "world_view.json"))
	out, err := renderer.Render(testsupport.Context(), view, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "custom-output" {
		t.Fatalf("unexpected output: %s", out)
	}
	if !stub.called {
		t.Fatalf("expected render template to be called")
	}
}

func TestNew_MissingChromeTemplates(t *testing.T) {
	_, err := editor.New(editor.WithTemplatesFS(fstest.MapFS{}))
	if err == nil {
		t.Fatalf("expected error for template bundle without chrome templates")
	}
}

type stubTemplateRenderer struct {
	called             bool
	renderTemplateFunc func(name string, data any, out ...io.Writer) (string, error)
}

func (s *stubTemplateRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(name, data, out...)
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	s.called = true
	if s.renderTemplateFunc != nil {
		return s.renderTemplateFunc(name, data, out...)
	}
	return "", nil
}

func (s *stubTemplateRenderer) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	return "", nil
}

func (s *stubTemplateRenderer) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	return nil
}

func (s *stubTemplateRenderer) GlobalContext(data any) error {
	return nil
}
