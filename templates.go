package viewgen

import (
	"io/fs"

	"github.com/goliatone/go-viewgen/pkg/renderers/editor"
)

// EmbeddedTemplates exposes the built-in editor templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return editor.TemplatesFS()
}
