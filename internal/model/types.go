package model

import "strings"

// WorldRef identifies a selectable world in the editor navigation.
type WorldRef struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Type  string `json:"world_type,omitempty"`
	Owner string `json:"owner,omitempty"`
}

// AssetBundle carries the editor assets a world type publishes. Template
// names a fragment that replaces the default canvas editor, JS a script
// asset loaded next to the default world script. Empty string and absent
// are equivalent for both.
type AssetBundle struct {
	Template string         `json:"template,omitempty"`
	JS       string         `json:"js,omitempty"`
	Icon     string         `json:"icon,omitempty"`
	Options  map[string]any `json:"options,omitempty"`
}

// HasTemplate reports whether the bundle overrides the default editor.
func (a AssetBundle) HasTemplate() bool {
	return strings.TrimSpace(a.Template) != ""
}

// HasJS reports whether the bundle ships an extra script asset.
func (a AssetBundle) HasJS() bool {
	return strings.TrimSpace(a.JS) != ""
}

// Empty reports whether the bundle carries nothing.
func (a AssetBundle) Empty() bool {
	return a.Template == "" && a.JS == "" && a.Icon == "" && len(a.Options) == 0
}

// Clone returns a copy whose Options map is detached from the receiver.
func (a AssetBundle) Clone() AssetBundle {
	out := a
	if len(a.Options) > 0 {
		out.Options = make(map[string]any, len(a.Options))
		for key, value := range a.Options {
			out.Options[key] = value
		}
	}
	return out
}

// WorldView is the top-level representation renderers consume. Field tags
// match the context keys the editor templates look up.
type WorldView struct {
	Mine    []WorldRef  `json:"mine"`
	Others  []WorldRef  `json:"others"`
	Current string      `json:"current"`
	Assets  AssetBundle `json:"world_assets"`
}

// Normalize guarantees non-nil navigation slices so serialised views carry
// arrays instead of nulls.
func (v *WorldView) Normalize() {
	if v.Mine == nil {
		v.Mine = []WorldRef{}
	}
	if v.Others == nil {
		v.Others = []WorldRef{}
	}
}

// ViewQuery identifies the viewer and the selected world for a build.
type ViewQuery struct {
	Owner   string
	Current string
}
