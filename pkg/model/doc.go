// Package model defines the typed world view consumed by renderers. A
// WorldView splits the catalog's definitions into the viewer's own worlds
// and everyone else's, carries the uid of the world being edited, and the
// asset bundle its world type publishes (custom editor fragment, extra
// script, icon, free-form options). Builders reside in internal/model but
// return the types defined here. JSON tags on the view types double as the
// template context keys, so a serialised view and a rendered fragment agree
// on naming (mine, others, current, world_assets).
package model
