package model

import (
	"strings"

	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
)

// Builder converts catalog snapshots into editor world views.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Sorter != nil {
		opts.Sorter = options.Sorter
	}
	opts.AnonymousOwner = strings.TrimSpace(options.AnonymousOwner)
	return &Builder{opts: opts}
}

// Build assembles the view for one render call. Definitions owned by the
// querying viewer appear under Mine, everything else under Others. The
// current uid survives only when the snapshot contains it, and the asset
// bundle comes from the current world's type.
func (b *Builder) Build(snap pkgcatalog.Snapshot, query ViewQuery) (WorldView, error) {
	if err := validateSnapshot(snap); err != nil {
		return WorldView{}, err
	}

	view := WorldView{}
	viewer := strings.TrimSpace(query.Owner)

	var currentType string
	for _, def := range snap.Worlds {
		ref := WorldRef{UID: def.UID, Name: def.Name, Type: def.Type, Owner: def.Owner}
		if b.isMine(def.Owner, viewer) {
			view.Mine = append(view.Mine, ref)
		} else {
			view.Others = append(view.Others, ref)
		}
		if query.Current != "" && def.UID == query.Current {
			view.Current = def.UID
			currentType = def.Type
		}
	}

	if b.opts.Sorter != nil {
		b.opts.Sorter(view.Mine)
		b.opts.Sorter(view.Others)
	}

	if view.Current != "" {
		if t, ok := snap.Type(currentType); ok {
			view.Assets = assetBundle(t.Assets)
		}
	}

	view.Normalize()
	return view, nil
}

// isMine reports whether a definition owner counts as the viewer's own.
// Unowned definitions and ones under the anonymous owner label are shared,
// so they always land under Others.
func (b *Builder) isMine(owner, viewer string) bool {
	if viewer == "" || owner == "" {
		return false
	}
	if b.opts.AnonymousOwner != "" && owner == b.opts.AnonymousOwner {
		return false
	}
	return owner == viewer
}

func assetBundle(assets pkgcatalog.Assets) AssetBundle {
	bundle := AssetBundle{
		Template: assets.Template,
		JS:       assets.JS,
		Icon:     assets.Icon,
	}
	if len(assets.Options) > 0 {
		bundle.Options = make(map[string]any, len(assets.Options))
		for key, value := range assets.Options {
			bundle.Options[key] = value
		}
	}
	return bundle
}
