// Package composer wires the loader → parser → view builder → renderer
// pipeline into a single entry point, providing dependency injection friendly
// helpers for consumers that want rendered editor fragments from a catalog
// document in one call.
package composer
