package render

import (
	"errors"

	"github.com/goliatone/go-viewgen/pkg/render/template"
)

// ErrTemplateNotFound reports that a referenced template could not be located
// by the engine's resolution mechanism. It aliases the template seam sentinel
// so callers can match it without importing the seam package.
var ErrTemplateNotFound = template.ErrTemplateNotFound

// ErrRendererNotFound reports a registry lookup for an unknown renderer name.
var ErrRendererNotFound = errors.New("render: renderer not found")

// ErrDuplicateRenderer reports a registration under an already-taken name.
var ErrDuplicateRenderer = errors.New("render: renderer already registered")
