package catalog

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// source is the concrete Source handed out by the constructors below. The
// kind tells the loader which strategy fetches the payload while location
// carries the path, FS name or URL.
type source struct {
	kind     SourceKind
	location string
}

func (s source) Location() string { return s.location }

func (s source) Kind() SourceKind { return s.kind }

// SourceFromFile returns a Source pointing to a catalog file on disk.
func SourceFromFile(path string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: name}
}

// SourceFromURL parses the supplied URL string and returns a Source. It
// panics on an invalid URL to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("catalog: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("catalog: invalid URL %q: %v", raw, err))
	}
	return source{kind: SourceKindURL, location: raw}
}
