package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirStore persists world definitions as one <uid>.json file per world
// inside a root directory.
type DirStore struct {
	root string
}

// Ensure DirStore satisfies the Store contract.
var _ Store = (*DirStore)(nil)

// NewDirStore creates the root directory when needed and returns the store.
func NewDirStore(root string) (*DirStore, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("catalog: store root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("catalog: create store root %q: %w", root, err)
	}
	return &DirStore{root: root}, nil
}

// Root returns the directory definitions are stored in.
func (s *DirStore) Root() string {
	return s.root
}

// Save writes the definition to <root>/<uid>.json.
func (s *DirStore) Save(def Definition) error {
	if err := validateStoreUID(def.UID); err != nil {
		return err
	}

	payload, err := json.MarshalIndent(def, "", "    ")
	if err != nil {
		return fmt.Errorf("catalog: marshal world %q: %w", def.UID, err)
	}
	if err := os.WriteFile(s.path(def.UID), payload, 0o644); err != nil {
		return fmt.Errorf("catalog: write world file %q: %w", def.UID, err)
	}
	return nil
}

// Load reads a single definition file.
func (s *DirStore) Load(uid string) (Definition, error) {
	if err := validateStoreUID(uid); err != nil {
		return Definition{}, err
	}

	data, err := os.ReadFile(s.path(uid))
	if err != nil {
		return Definition{}, fmt.Errorf("catalog: read world file %q: %w", uid, err)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("catalog: parse world file %q: %w", uid, err)
	}
	return def, nil
}

// Delete removes the definition file. A missing file is not an error so
// never-persisted worlds can still be deleted from the catalog.
func (s *DirStore) Delete(uid string) error {
	if err := validateStoreUID(uid); err != nil {
		return err
	}
	if err := os.Remove(s.path(uid)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("catalog: remove world file %q: %w", uid, err)
	}
	return nil
}

// LoadAll reads every definition file in the root directory.
func (s *DirStore) LoadAll() ([]Definition, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("catalog: read store root %q: %w", s.root, err)
	}

	var defs []Definition
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		uid := strings.TrimSuffix(entry.Name(), ".json")
		def, err := s.Load(uid)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (s *DirStore) path(uid string) string {
	return filepath.Join(s.root, uid+".json")
}

func validateStoreUID(uid string) error {
	if uid == "" {
		return errors.New("catalog: world uid is required")
	}
	if filepath.Base(uid) != uid || uid == "." || uid == ".." {
		return fmt.Errorf("catalog: invalid world uid %q", uid)
	}
	return nil
}
