package template

import (
	"errors"
	"io"
)

// ErrTemplateNotFound reports that none of the engine's configured sources
// could supply a referenced template name.
var ErrTemplateNotFound = errors.New("template: template not found")

// TemplateRenderer is the engine contract renderers rely on. Render inspects
// its input and dispatches to RenderTemplate for names and RenderString for
// inline template content.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// Resolver is implemented by engines that can report template availability
// without rendering. Callers use it to validate include names up front.
type Resolver interface {
	Has(name string) bool
}
