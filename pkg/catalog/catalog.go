package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// definitionVersion is written into every new definition so future format
// migrations can tell generations apart.
const definitionVersion = 1

// DefaultTypeName is the built-in world type every catalog starts with. It
// carries no assets, so worlds of this type render the default canvas editor.
const DefaultTypeName = "World"

// Store persists world definitions between sessions.
type Store interface {
	Save(def Definition) error
	Delete(uid string) error
	LoadAll() ([]Definition, error)
}

// Catalog holds world definitions and registered world types behind a
// read-write lock. All returned values are defensive copies.
type Catalog struct {
	mu     sync.RWMutex
	worlds map[string]Definition
	types  map[string]WorldType
	store  Store
	logger *zap.Logger
}

// Option configures a Catalog during construction.
type Option func(*Catalog)

// WithStore attaches a persistence backend. New, Import, SetProperties and
// Delete write through to it; Load hydrates from it.
func WithStore(store Store) Option {
	return func(c *Catalog) {
		c.store = store
	}
}

// WithLogger attaches a structured logger. The catalog is silent by default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTypes registers world types at construction. Unlike RegisterType this
// may replace the built-in default, letting installations redefine "World"
// with their own assets.
func WithTypes(types ...WorldType) Option {
	return func(c *Catalog) {
		for _, t := range types {
			name := strings.TrimSpace(t.Name)
			if name == "" {
				continue
			}
			t.Name = name
			t.Assets.Icon = SanitizeIcon(t.Assets.Icon)
			c.types[name] = t.Clone()
		}
	}
}

// New constructs an empty catalog with the default world type registered.
func New(options ...Option) *Catalog {
	c := &Catalog{
		worlds: make(map[string]Definition),
		types: map[string]WorldType{
			DefaultTypeName: {
				Name:        DefaultTypeName,
				Description: "Plain two-dimensional world",
			},
		},
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// RegisterType adds or replaces a world type at runtime. Icons are sanitized
// before storage so rendered output never carries unvetted markup.
func (c *Catalog) RegisterType(t WorldType) error {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return errors.New("catalog: world type name is required")
	}
	t.Name = name
	t.Assets.Icon = SanitizeIcon(t.Assets.Icon)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.types[name] = t.Clone()
	return nil
}

// Types returns the sorted names of all registered world types.
func (c *Catalog) Types() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Type returns the named world type.
func (c *Catalog) Type(name string) (WorldType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.types[name]
	if !ok {
		return WorldType{}, false
	}
	return t.Clone(), true
}

// New creates a world definition with a fresh uid, persisting it when a
// store is configured.
func (c *Catalog) New(name, typeName, owner string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("catalog: world name is required")
	}
	if typeName == "" {
		typeName = DefaultTypeName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.types[typeName]; !ok {
		return "", fmt.Errorf("catalog: world type %q: %w", typeName, ErrUnknownWorldType)
	}

	def := Definition{
		UID:     newUID(),
		Name:    name,
		Type:    typeName,
		Owner:   strings.TrimSpace(owner),
		Version: definitionVersion,
	}
	c.worlds[def.UID] = def

	if c.store != nil {
		if err := c.store.Save(def.Clone()); err != nil {
			delete(c.worlds, def.UID)
			return "", fmt.Errorf("catalog: persist world %q: %w", def.UID, err)
		}
	}

	c.logger.Info("world created",
		zap.String("uid", def.UID),
		zap.String("name", def.Name),
		zap.String("world_type", def.Type),
		zap.String("owner", def.Owner))
	return def.UID, nil
}

// Add inserts a pre-built definition. Empty uids are assigned, colliding
// uids are rejected, and the referenced type must be registered. The store
// is not written; callers hydrating from persistence use this directly.
func (c *Catalog) Add(def Definition) (string, error) {
	def.Name = strings.TrimSpace(def.Name)
	if def.Name == "" {
		return "", errors.New("catalog: world name is required")
	}
	if def.Type == "" {
		def.Type = DefaultTypeName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.types[def.Type]; !ok {
		return "", fmt.Errorf("catalog: world type %q: %w", def.Type, ErrUnknownWorldType)
	}
	if def.UID == "" {
		def.UID = newUID()
	}
	if _, exists := c.worlds[def.UID]; exists {
		return "", fmt.Errorf("catalog: world %q: %w", def.UID, ErrDuplicateWorld)
	}
	if def.Version <= 0 {
		def.Version = definitionVersion
	}

	c.worlds[def.UID] = def.Clone()
	return def.UID, nil
}

// World returns the definition for a uid.
func (c *Catalog) World(uid string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.worlds[uid]
	if !ok {
		return Definition{}, false
	}
	return def.Clone(), true
}

// Worlds lists definitions sorted by name then uid. An empty owner returns
// every definition; otherwise definitions owned by that user plus unowned
// ones, which are visible to everyone.
func (c *Catalog) Worlds(owner string) []Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Definition, 0, len(c.worlds))
	for _, def := range c.worlds {
		if owner != "" && def.Owner != owner && def.Owner != "" {
			continue
		}
		out = append(out, def.Clone())
	}
	sortDefinitions(out)
	return out
}

// Properties bundles a definition with the editor-facing data of its type.
type Properties struct {
	Definition
	Assets  Assets   `json:"assets,omitempty"`
	Objects []string `json:"worldobjects,omitempty"`
}

// Properties returns the definition plus the assets and world object types
// published by its world type.
func (c *Catalog) Properties(uid string) (Properties, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.worlds[uid]
	if !ok {
		return Properties{}, fmt.Errorf("catalog: world %q: %w", uid, ErrWorldNotFound)
	}

	props := Properties{Definition: def.Clone()}
	if t, ok := c.types[def.Type]; ok {
		cloned := t.Clone()
		props.Assets = cloned.Assets
		props.Objects = cloned.Objects
	}
	return props, nil
}

// SetProperties renames or reassigns a world. Empty arguments leave the
// current value untouched.
func (c *Catalog) SetProperties(uid, name, owner string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	def, ok := c.worlds[uid]
	if !ok {
		return fmt.Errorf("catalog: world %q: %w", uid, ErrWorldNotFound)
	}

	if trimmed := strings.TrimSpace(name); trimmed != "" {
		def.Name = trimmed
	}
	if trimmed := strings.TrimSpace(owner); trimmed != "" {
		def.Owner = trimmed
	}
	c.worlds[uid] = def

	if c.store != nil {
		if err := c.store.Save(def.Clone()); err != nil {
			return fmt.Errorf("catalog: persist world %q: %w", uid, err)
		}
	}
	return nil
}

// Delete removes a world definition and its persisted file.
func (c *Catalog) Delete(uid string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.worlds[uid]; !ok {
		return fmt.Errorf("catalog: world %q: %w", uid, ErrWorldNotFound)
	}
	delete(c.worlds, uid)

	if c.store != nil {
		if err := c.store.Delete(uid); err != nil {
			return fmt.Errorf("catalog: delete persisted world %q: %w", uid, err)
		}
	}

	c.logger.Info("world deleted", zap.String("uid", uid))
	return nil
}

// Save writes a single definition through the configured store.
func (c *Catalog) Save(uid string) error {
	c.mu.RLock()
	def, ok := c.worlds[uid]
	store := c.store
	c.mu.RUnlock()

	if store == nil {
		return ErrNoStore
	}
	if !ok {
		return fmt.Errorf("catalog: world %q: %w", uid, ErrWorldNotFound)
	}
	return store.Save(def.Clone())
}

// Export serialises a definition as stable sorted-key JSON suitable for
// sharing between installations.
func (c *Catalog) Export(uid string) ([]byte, error) {
	c.mu.RLock()
	def, ok := c.worlds[uid]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("catalog: world %q: %w", uid, ErrWorldNotFound)
	}

	payload := map[string]any{
		"uid":        def.UID,
		"name":       def.Name,
		"world_type": def.Type,
		"owner":      def.Owner,
		"version":    def.Version,
	}
	if len(def.Data) > 0 {
		payload["data"] = def.Data
	}
	return json.MarshalIndent(payload, "", "    ")
}

// Import parses an exported definition. The embedded uid is honoured when it
// is free, generated when missing, and rejected when it collides with an
// existing world. The result is persisted when a store is configured.
func (c *Catalog) Import(data []byte) (string, error) {
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return "", fmt.Errorf("catalog: parse world import: %w", err)
	}

	uid, err := c.Add(def)
	if err != nil {
		return "", err
	}

	c.mu.RLock()
	stored := c.worlds[uid]
	store := c.store
	c.mu.RUnlock()

	if store != nil {
		if err := store.Save(stored.Clone()); err != nil {
			return "", fmt.Errorf("catalog: persist world %q: %w", uid, err)
		}
	}

	c.logger.Info("world imported", zap.String("uid", uid), zap.String("name", stored.Name))
	return uid, nil
}

// Load hydrates the catalog from the configured store. Definitions naming an
// unregistered world type are skipped with a warning instead of failing the
// whole load.
func (c *Catalog) Load() error {
	c.mu.RLock()
	store := c.store
	c.mu.RUnlock()

	if store == nil {
		return ErrNoStore
	}

	defs, err := store.LoadAll()
	if err != nil {
		return fmt.Errorf("catalog: load store: %w", err)
	}

	for _, def := range defs {
		if _, err := c.Add(def); err != nil {
			if errors.Is(err, ErrUnknownWorldType) {
				c.logger.Warn("skipping world with unknown type",
					zap.String("uid", def.UID),
					zap.String("world_type", def.Type))
				continue
			}
			return err
		}
	}
	return nil
}

// Snapshot returns an immutable copy of catalog state for view builders.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		Worlds: make([]Definition, 0, len(c.worlds)),
		Types:  make(map[string]WorldType, len(c.types)),
	}
	for _, def := range c.worlds {
		snap.Worlds = append(snap.Worlds, def.Clone())
	}
	sortDefinitions(snap.Worlds)
	for name, t := range c.types {
		snap.Types[name] = t.Clone()
	}
	return snap
}

func sortDefinitions(defs []Definition) {
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Name == defs[j].Name {
			return defs[i].UID < defs[j].UID
		}
		return defs[i].Name < defs[j].Name
	})
}

// newUID mirrors the uid format used by persisted worlds: a uuid4 without
// separators.
func newUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
