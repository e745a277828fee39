package model

// Decorator enriches a world view with additional data after the canonical
// catalog-derived structure has been built.
type Decorator interface {
	Decorate(*WorldView) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*WorldView) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(view *WorldView) error {
	return fn(view)
}
