package viewgen

import (
	internalLoader "github.com/goliatone/go-viewgen/internal/catalog/loader"
	internalParser "github.com/goliatone/go-viewgen/internal/catalog/parser"
	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
)

// NewLoader constructs a catalog document loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgcatalog.LoaderOption) pkgcatalog.Loader {
	cfg := pkgcatalog.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a catalog parser backed by the internal implementation.
func NewParser(options ...pkgcatalog.ParserOption) pkgcatalog.Parser {
	cfg := pkgcatalog.NewParserOptions(options...)
	return internalParser.New(cfg)
}
