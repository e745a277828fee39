// Package catalog manages world definitions and world types: the identity,
// ownership and editor assets behind every world the authoring UI can open.
// Definitions arrive through catalog documents (JSON or YAML), programmatic
// registration, or a directory store; view builders consume immutable
// snapshots.
package catalog
