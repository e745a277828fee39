package catalog

// Definition describes a stored world: identity, ownership and the world type
// that supplies its editor assets.
type Definition struct {
	UID     string            `json:"uid,omitempty" yaml:"uid,omitempty" jsonschema:"title=World uid,description=Stable identifier; assigned on import when omitted"`
	Name    string            `json:"name" yaml:"name" jsonschema:"title=Display name,required"`
	Type    string            `json:"world_type" yaml:"world_type" jsonschema:"title=World type,required"`
	Owner   string            `json:"owner,omitempty" yaml:"owner,omitempty" jsonschema:"title=Owning user"`
	Version int               `json:"version,omitempty" yaml:"version,omitempty" jsonschema:"title=Definition version"`
	Data    map[string]string `json:"data,omitempty" yaml:"data,omitempty" jsonschema:"title=Free-form metadata"`
}

// Clone returns a deep copy of the definition.
func (d Definition) Clone() Definition {
	cloned := d
	if len(d.Data) > 0 {
		cloned.Data = make(map[string]string, len(d.Data))
		for k, v := range d.Data {
			cloned.Data[k] = v
		}
	}
	return cloned
}

// Assets is the customization bundle a world type publishes for the editor:
// an optional fragment template replacing the default canvas, an optional
// script loaded next to the default world script, an optional icon, and
// extra keys forwarded to the custom fragment.
type Assets struct {
	Template string         `json:"template,omitempty" yaml:"template,omitempty" jsonschema:"title=Fragment template path"`
	JS       string         `json:"js,omitempty" yaml:"js,omitempty" jsonschema:"title=Script asset path"`
	Icon     string         `json:"icon,omitempty" yaml:"icon,omitempty" jsonschema:"title=Inline SVG icon"`
	Options  map[string]any `json:"options,omitempty" yaml:"options,omitempty" jsonschema:"title=Fragment options"`
}

// Clone returns a deep copy of the asset bundle. Option values are shared;
// documents carry scalars there in practice.
func (a Assets) Clone() Assets {
	cloned := a
	if len(a.Options) > 0 {
		cloned.Options = make(map[string]any, len(a.Options))
		for k, v := range a.Options {
			cloned.Options[k] = v
		}
	}
	return cloned
}

// Empty reports whether the bundle carries no customization at all.
func (a Assets) Empty() bool {
	return a.Template == "" && a.JS == "" && a.Icon == "" && len(a.Options) == 0
}

// WorldType describes a registered world implementation: its editor assets
// and the world object types the UI may offer for it.
type WorldType struct {
	Name        string   `json:"name" yaml:"name" jsonschema:"title=Type name,required"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" jsonschema:"title=Description"`
	Assets      Assets   `json:"assets,omitempty" yaml:"assets,omitempty" jsonschema:"title=Editor assets"`
	Objects     []string `json:"worldobjects,omitempty" yaml:"worldobjects,omitempty" jsonschema:"title=Available world object types"`
}

// Clone returns a deep copy of the world type.
func (t WorldType) Clone() WorldType {
	cloned := t
	cloned.Assets = t.Assets.Clone()
	if len(t.Objects) > 0 {
		cloned.Objects = append([]string(nil), t.Objects...)
	}
	return cloned
}

// DocumentData is the parsed form of a catalog document: the world types an
// installation ships plus the world definitions to preload.
type DocumentData struct {
	Version int          `json:"version,omitempty" yaml:"version,omitempty" jsonschema:"title=Document format version"`
	Types   []WorldType  `json:"world_types,omitempty" yaml:"world_types,omitempty" jsonschema:"title=World types"`
	Worlds  []Definition `json:"worlds,omitempty" yaml:"worlds,omitempty" jsonschema:"title=World definitions"`
}

// Snapshot is an immutable copy of catalog state handed to view builders.
type Snapshot struct {
	Worlds []Definition
	Types  map[string]WorldType
}

// Type returns the named world type from the snapshot.
func (s Snapshot) Type(name string) (WorldType, bool) {
	t, ok := s.Types[name]
	return t, ok
}
