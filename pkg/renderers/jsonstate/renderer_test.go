package jsonstate_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-viewgen/pkg/model"
	"github.com/goliatone/go-viewgen/pkg/render"
	"github.com/goliatone/go-viewgen/pkg/renderers/jsonstate"
	"github.com/goliatone/go-viewgen/pkg/testsupport"
)

func TestRenderer_EmitsViewEnvelope(t *testing.T) {
	renderer := jsonstate.New()
	if renderer.Name() != "json" {
		t.Fatalf("unexpected renderer name %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "application/json") {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}

	view := model.WorldView{
		Mine:    []model.WorldRef{{UID: "w1", Name: "Berlin", Type: "Island", Owner: "ada"}},
		Current: "w1",
		Assets:  model.AssetBundle{Template: "island/island.tpl"},
	}

	output, err := renderer.Render(testsupport.Context(), view, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded struct {
		View model.WorldView `json:"view"`
	}
	if err := json.Unmarshal(output, &decoded); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if diff := testsupport.CompareGolden("w1", decoded.View.Current); diff != "" {
		t.Fatalf("current mismatch (-want +got):\n%s", diff)
	}
	if len(decoded.View.Mine) != 1 || decoded.View.Mine[0].Name != "Berlin" {
		t.Fatalf("unexpected mine list: %#v", decoded.View.Mine)
	}
	if decoded.View.Assets.Template != "island/island.tpl" {
		t.Fatalf("unexpected assets: %#v", decoded.View.Assets)
	}
	if !strings.HasSuffix(string(output), "\n") {
		t.Fatalf("expected trailing newline")
	}
}

func TestRenderer_NormalizesNilSlices(t *testing.T) {
	renderer := jsonstate.New()

	output, err := renderer.Render(testsupport.Context(), model.WorldView{}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(output)
	if !strings.Contains(text, `"mine": []`) || !strings.Contains(text, `"others": []`) {
		t.Fatalf("expected empty arrays instead of nulls:\n%s", text)
	}
	if strings.Contains(text, "null") {
		t.Fatalf("expected no nulls in serialised view:\n%s", text)
	}
}
