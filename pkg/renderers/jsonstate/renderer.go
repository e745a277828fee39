// Package jsonstate renders the world view as a JSON document for
// script-side consumers that hydrate the editor without the HTML chrome.
package jsonstate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-viewgen/pkg/model"
	"github.com/goliatone/go-viewgen/pkg/render"
)

// Renderer emits the serialised view under a stable top-level "view" key.
type Renderer struct{}

// New constructs the JSON renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "json"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "application/json; charset=utf-8"
}

// Render marshals the view with stable two-space indentation. Theme options
// are ignored.
func (r *Renderer) Render(_ context.Context, view model.WorldView, _ render.RenderOptions) ([]byte, error) {
	view.Normalize()

	payload, err := json.MarshalIndent(map[string]any{"view": view}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json renderer: marshal view: %w", err)
	}
	return append(payload, '\n'), nil
}
