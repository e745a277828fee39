package parser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
)

// Parser implements pkgcatalog.Parser for JSON and YAML catalog documents.
type Parser struct {
	options pkgcatalog.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgcatalog.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgcatalog.ParserOptions) pkgcatalog.Parser {
	return &Parser{options: options}
}

// Parse converts a Document into a populated catalog. World types register
// first so definitions can reference types declared in the same document.
func (p *Parser) Parse(ctx context.Context, doc pkgcatalog.Document) (*pkgcatalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, errors.New("catalog parser: document payload is empty")
	}

	data, err := parseDocumentData(raw, doc.Location())
	if err != nil {
		return nil, err
	}

	cat := pkgcatalog.New(p.options.CatalogOptions...)

	seenTypes := make(map[string]struct{}, len(data.Types))
	for _, t := range data.Types {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog parser: document %s declares a world type without a name", doc.Location())
		}
		if _, exists := seenTypes[name]; exists {
			return nil, fmt.Errorf("catalog parser: duplicate world type %q (document %s)", name, doc.Location())
		}
		seenTypes[name] = struct{}{}

		if err := cat.RegisterType(t); err != nil {
			return nil, fmt.Errorf("catalog parser: register world type %q (document %s): %w", name, doc.Location(), err)
		}
	}

	for _, def := range data.Worlds {
		if _, err := cat.Add(def); err != nil {
			if p.options.SkipUnknownTypes && errors.Is(err, pkgcatalog.ErrUnknownWorldType) {
				continue
			}
			return nil, fmt.Errorf("catalog parser: add world %q (document %s): %w", def.Name, doc.Location(), err)
		}
	}

	return cat, nil
}

func parseDocumentData(raw []byte, source string) (pkgcatalog.DocumentData, error) {
	var data pkgcatalog.DocumentData

	if err := json.Unmarshal(raw, &data); err == nil {
		return data, nil
	}

	if err := yaml.Unmarshal(raw, &data); err == nil {
		return data, nil
	}

	return pkgcatalog.DocumentData{}, fmt.Errorf("catalog parser: parse %s: invalid JSON or YAML", source)
}
