// Package template defines renderer-agnostic template interfaces. Concrete
// engines live in subpackages; renderers depend on the seam only so engines
// stay swappable.
package template
