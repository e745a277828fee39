package catalog

import "errors"

// ErrWorldNotFound reports a lookup for a uid the catalog does not hold.
var ErrWorldNotFound = errors.New("catalog: world not found")

// ErrUnknownWorldType reports a definition referencing an unregistered type.
var ErrUnknownWorldType = errors.New("catalog: unknown world type")

// ErrDuplicateWorld reports an insert colliding with an existing uid.
var ErrDuplicateWorld = errors.New("catalog: world already exists")

// ErrNoStore reports a persistence operation on a catalog without a store.
var ErrNoStore = errors.New("catalog: no store configured")
