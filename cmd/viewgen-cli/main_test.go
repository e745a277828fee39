package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	"go.uber.org/zap"

	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
)

type stubDriver struct {
	selections []int
	err        error
	calls      []selectConfig
}

func (d *stubDriver) Select(_ context.Context, cfg selectConfig) (int, error) {
	d.calls = append(d.calls, cfg)
	if d.err != nil {
		return 0, d.err
	}
	idx := 0
	if len(d.selections) > 0 {
		idx = d.selections[0]
		d.selections = d.selections[1:]
	}
	return idx, nil
}

func TestParseSource(t *testing.T) {
	if src := parseSource(""); src != nil {
		t.Fatalf("expected nil source for empty input, got %#v", src)
	}
	if src := parseSource("   "); src != nil {
		t.Fatalf("expected nil source for blank input, got %#v", src)
	}

	src := parseSource("worlds.json")
	if src == nil || src.Kind() != pkgcatalog.SourceKindFile {
		t.Fatalf("unexpected source: %#v", src)
	}
	if src.Location() != "worlds.json" {
		t.Fatalf("unexpected location: %q", src.Location())
	}

	src = parseSource("https://example.com/worlds.json")
	if src == nil || src.Kind() != pkgcatalog.SourceKindURL {
		t.Fatalf("unexpected source: %#v", src)
	}
}

func TestLoaderOptions(t *testing.T) {
	if opts := loaderOptions(pkgcatalog.SourceFromFile("worlds.json")); len(opts) != 0 {
		t.Fatalf("file sources need no loader options, got %d", len(opts))
	}

	opts := loaderOptions(pkgcatalog.SourceFromURL("https://example.com/worlds.json"))
	if len(opts) != 1 {
		t.Fatalf("expected HTTP fallback option, got %d", len(opts))
	}
	cfg := pkgcatalog.NewLoaderOptions(opts...)
	if !cfg.AllowHTTPFallback {
		t.Fatalf("HTTP fallback not enabled: %#v", cfg)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.RequestTimeout)
	}
}

func TestIndexOf(t *testing.T) {
	options := []string{"editor", "json"}
	if got := indexOf(options, "json"); got != 1 {
		t.Fatalf("unexpected index: %d", got)
	}
	if got := indexOf(options, "missing"); got != -1 {
		t.Fatalf("unexpected index: %d", got)
	}
}

func TestPromptSelections(t *testing.T) {
	catalog := pkgcatalog.New()
	if _, err := catalog.New("Berlin", "", "ada"); err != nil {
		t.Fatalf("new world: %v", err)
	}
	uid, err := catalog.New("Macht", "", "grace")
	if err != nil {
		t.Fatalf("new world: %v", err)
	}

	driver := &stubDriver{selections: []int{1, 1}}
	worldUID, rendererName, err := promptSelections(context.Background(), driver, catalog, options{renderer: "editor"})
	if err != nil {
		t.Fatalf("prompt selections: %v", err)
	}

	if worldUID != uid {
		t.Fatalf("unexpected world: %q", worldUID)
	}
	if rendererName != "json" {
		t.Fatalf("unexpected renderer: %q", rendererName)
	}

	if len(driver.calls) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(driver.calls))
	}
	if driver.calls[0].Message != "World to edit" {
		t.Fatalf("unexpected first prompt: %q", driver.calls[0].Message)
	}
	if len(driver.calls[0].Options) != 2 || !strings.Contains(driver.calls[0].Options[0], "Berlin") {
		t.Fatalf("unexpected world options: %v", driver.calls[0].Options)
	}
	if driver.calls[1].Message != "Renderer" || driver.calls[1].DefaultIndex != 0 {
		t.Fatalf("unexpected renderer prompt: %+v", driver.calls[1])
	}
}

func TestPromptSelectionsPresetWorldSkipsPrompt(t *testing.T) {
	catalog := pkgcatalog.New()
	if _, err := catalog.New("Berlin", "", "ada"); err != nil {
		t.Fatalf("new world: %v", err)
	}

	driver := &stubDriver{selections: []int{0}}
	worldUID, rendererName, err := promptSelections(context.Background(), driver, catalog, options{world: "w9", renderer: "json"})
	if err != nil {
		t.Fatalf("prompt selections: %v", err)
	}

	if worldUID != "w9" {
		t.Fatalf("preset world not honoured: %q", worldUID)
	}
	if rendererName != "editor" {
		t.Fatalf("unexpected renderer: %q", rendererName)
	}

	if len(driver.calls) != 1 {
		t.Fatalf("expected only the renderer prompt, got %d", len(driver.calls))
	}
	if driver.calls[0].Message != "Renderer" || driver.calls[0].DefaultIndex != 1 {
		t.Fatalf("unexpected renderer prompt: %+v", driver.calls[0])
	}
}

func TestPromptSelectionsEmptyCatalog(t *testing.T) {
	driver := &stubDriver{}
	_, _, err := promptSelections(context.Background(), driver, pkgcatalog.New(), options{})
	if err == nil || !strings.Contains(err.Error(), "no worlds to select") {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(driver.calls) != 0 {
		t.Fatalf("prompted despite empty catalog: %d calls", len(driver.calls))
	}
}

func TestPromptSelectionsAbort(t *testing.T) {
	catalog := pkgcatalog.New()
	if _, err := catalog.New("Berlin", "", "ada"); err != nil {
		t.Fatalf("new world: %v", err)
	}

	driver := &stubDriver{err: errAborted}
	_, _, err := promptSelections(context.Background(), driver, catalog, options{})
	if !errors.Is(err, errAborted) {
		t.Fatalf("expected abort error, got %v", err)
	}
}

func TestPromptError(t *testing.T) {
	if got := promptError(terminal.InterruptErr); !errors.Is(got, errAborted) {
		t.Fatalf("interrupt not mapped to errAborted: %v", got)
	}
	plain := errors.New("plain")
	if got := promptError(plain); got != plain {
		t.Fatalf("unexpected mapping: %v", got)
	}
}

func TestWriteOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	if err := writeOutput(path, []byte("payload")); err != nil {
		t.Fatalf("write output: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected contents: %q", data)
	}
}

func TestExecuteSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	err := execute(context.Background(), zap.NewNop(), options{schema: true, output: path})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if !strings.Contains(string(data), "World Catalog Document") {
		t.Fatalf("schema payload missing title: %q", data)
	}
}

func TestExecuteRejectsBadInput(t *testing.T) {
	err := execute(context.Background(), zap.NewNop(), options{input: ""})
	if err == nil || !strings.Contains(err.Error(), "not a file path or http(s) URL") {
		t.Fatalf("unexpected error: %v", err)
	}
}
