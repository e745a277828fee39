package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
	pkgmodel "github.com/goliatone/go-viewgen/pkg/model"
)

// LoadDocument reads a fixture and builds a catalog.Document using a file
// source. Testing helpers fail the test on error to keep contract tests
// concise.
func LoadDocument(t *testing.T, path string) pkgcatalog.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (pkgcatalog.Document, error) {
	if path == "" {
		return pkgcatalog.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgcatalog.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgcatalog.NewDocument(pkgcatalog.SourceFromFile(path), data)
	if err != nil {
		return pkgcatalog.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MustLoadWorldView loads a JSON golden file into a WorldView structure.
func MustLoadWorldView(t *testing.T, path string) pkgmodel.WorldView {
	t.Helper()

	view, err := LoadWorldView(path)
	if err != nil {
		t.Fatalf("load world view: %v", err)
	}
	return view
}

// LoadWorldView reads a JSON fixture into a WorldView, returning an error
// for callers managing setup outside of *testing.T.
func LoadWorldView(path string) (pkgmodel.WorldView, error) {
	if path == "" {
		return pkgmodel.WorldView{}, errors.New("testsupport: world view path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgmodel.WorldView{}, fmt.Errorf("testsupport: read world view: %w", err)
	}
	var out pkgmodel.WorldView
	if err := json.Unmarshal(data, &out); err != nil {
		return pkgmodel.WorldView{}, fmt.Errorf("testsupport: unmarshal world view: %w", err)
	}
	return out, nil
}

// WriteWorldView writes a world view golden when UPDATE_GOLDENS is enabled.
// The JSON mirrors the builder output so snapshot diffs stay focused on
// behavioural changes.
func WriteWorldView(t *testing.T, path string, value pkgmodel.WorldView) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal world view: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents. Tests
// can assert the engine returns and writes the same payload without
// duplicating buffer setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
