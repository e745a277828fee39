package viewgen

import (
	"io/fs"

	"github.com/goliatone/go-viewgen/pkg/renderers/editor"
)

// EditorAssetsFS exposes the stylesheet shipped with the editor renderer so
// Go applications can serve it without a separate asset build.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(viewgen.EditorAssetsFS()),
//	  ),
//	)
func EditorAssetsFS() fs.FS {
	return editor.AssetsFS()
}
