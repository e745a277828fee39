package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// DocumentSchema reflects the catalog document format into a JSON Schema so
// editor tooling can validate world catalogs before loading them.
func DocumentSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.ReflectFromType(reflect.TypeOf(DocumentData{}))
	if schema == nil {
		return nil, errors.New("catalog: reflect document schema failed")
	}
	schema.Title = "World Catalog Document"
	schema.Description = "World types and world definitions consumed by the editor view pipeline."
	return schema, nil
}

// DocumentSchemaJSON renders the document schema with stable indentation and
// a trailing newline, ready to write to disk.
func DocumentSchemaJSON() ([]byte, error) {
	schema, err := DocumentSchema()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("catalog: marshal document schema: %w", err)
	}
	return append(data, '\n'), nil
}
