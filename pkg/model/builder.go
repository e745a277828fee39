package model

import (
	"github.com/goliatone/go-viewgen/internal/model"
	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
)

// Builder converts catalog snapshots into world views.
type Builder interface {
	Build(snap pkgcatalog.Snapshot, query ViewQuery) (WorldView, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	sorter         func([]WorldRef)
	anonymousOwner string
	decorators     []Decorator
}

// WithSorter overrides the default navigation ordering function.
func WithSorter(sorter func([]WorldRef)) BuilderOption {
	return func(opts *builderOptions) {
		opts.sorter = sorter
	}
}

// WithAnonymousOwner names the owner label that marks shared definitions.
// Worlds under that owner land in Others for every viewer, like unowned
// ones.
func WithAnonymousOwner(name string) BuilderOption {
	return func(opts *builderOptions) {
		opts.anonymousOwner = name
	}
}

// WithDecorator appends a decorator applied after the canonical view has
// been built. Decorators run in registration order.
func WithDecorator(decorator Decorator) BuilderOption {
	return func(opts *builderOptions) {
		if decorator != nil {
			opts.decorators = append(opts.decorators, decorator)
		}
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	internalOpts := model.Options{
		AnonymousOwner: cfg.anonymousOwner,
	}
	if cfg.sorter != nil {
		internalOpts.Sorter = cfg.sorter
	}

	inner := model.New(internalOpts)
	if len(cfg.decorators) == 0 {
		return inner
	}
	return &decoratedBuilder{inner: inner, decorators: cfg.decorators}
}

type decoratedBuilder struct {
	inner      Builder
	decorators []Decorator
}

func (b *decoratedBuilder) Build(snap pkgcatalog.Snapshot, query ViewQuery) (WorldView, error) {
	view, err := b.inner.Build(snap, query)
	if err != nil {
		return WorldView{}, err
	}
	for _, decorator := range b.decorators {
		if err := decorator.Decorate(&view); err != nil {
			return WorldView{}, err
		}
	}
	return view, nil
}
