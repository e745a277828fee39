package catalog

import (
	"strings"
	"testing"
)

func TestNewDocumentValidatesInputs(t *testing.T) {
	if _, err := NewDocument(nil, []byte("{}")); err == nil {
		t.Fatalf("expected error for nil source")
	}
	if _, err := NewDocument(SourceFromFile("worlds.json"), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestDocumentRawIsDefensiveCopy(t *testing.T) {
	raw := []byte(`{"version": 1}`)
	doc := MustNewDocument(SourceFromFile("worlds.json"), raw)

	raw[0] = 'X'
	if got := doc.Raw(); got[0] != '{' {
		t.Fatalf("expected stored payload to be isolated from caller, got %q", got)
	}

	first := doc.Raw()
	first[0] = 'X'
	if got := doc.Raw(); got[0] != '{' {
		t.Fatalf("expected returned payload to be isolated, got %q", got)
	}
}

func TestSourceKinds(t *testing.T) {
	if got := SourceFromFile("./worlds.json").Kind(); got != SourceKindFile {
		t.Fatalf("expected file kind, got %q", got)
	}
	if got := SourceFromFS("worlds.json").Kind(); got != SourceKindFS {
		t.Fatalf("expected fs kind, got %q", got)
	}
	if got := SourceFromURL("https://example.com/worlds.json").Kind(); got != SourceKindURL {
		t.Fatalf("expected url kind, got %q", got)
	}
}

func TestSourceFromURLPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for invalid URL")
		}
	}()
	SourceFromURL("not a url")
}

func TestDocumentSchemaJSON(t *testing.T) {
	data, err := DocumentSchemaJSON()
	if err != nil {
		t.Fatalf("schema: %v", err)
	}

	text := string(data)
	if !strings.Contains(text, "World Catalog Document") {
		t.Fatalf("expected schema title, got:\n%s", text)
	}
	for _, property := range []string{"world_types", "worlds", "version"} {
		if !strings.Contains(text, `"`+property+`"`) {
			t.Fatalf("expected schema to describe %q, got:\n%s", property, text)
		}
	}
	if !strings.HasSuffix(text, "\n") {
		t.Fatalf("expected trailing newline")
	}
}
