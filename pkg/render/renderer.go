package render

import (
	"context"

	"github.com/goliatone/go-viewgen/pkg/model"
)

// Renderer converts a WorldView into a byte representation (HTML, JSON, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view model.WorldView, options RenderOptions) ([]byte, error)
}
