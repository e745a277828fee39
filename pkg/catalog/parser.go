package catalog

import "context"

// Parser turns raw catalog documents into populated catalogs. The concrete
// implementation lives under internal/catalog but satisfies this contract.
type Parser interface {
	Parse(ctx context.Context, doc Document) (*Catalog, error)
}

// ParserOptions exposes the parsing toggles.
type ParserOptions struct {
	// SkipUnknownTypes drops definitions referencing world types the document
	// does not declare instead of failing the parse.
	SkipUnknownTypes bool

	// CatalogOptions are applied to the catalog the parser constructs, wiring
	// stores, loggers or pre-registered types into parsed results.
	CatalogOptions []Option
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithSkipUnknownTypes toggles tolerance for definitions whose world type is
// not declared.
func WithSkipUnknownTypes(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.SkipUnknownTypes = enabled
	}
}

// WithCatalogOptions forwards construction options to parsed catalogs.
func WithCatalogOptions(options ...Option) ParserOption {
	return func(opts *ParserOptions) {
		opts.CatalogOptions = append(opts.CatalogOptions, options...)
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level viewgen package to avoid import cycles.
