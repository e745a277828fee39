package model

import (
	"fmt"
	"strings"

	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
)

func validateSnapshot(snap pkgcatalog.Snapshot) error {
	for i, def := range snap.Worlds {
		if strings.TrimSpace(def.UID) == "" {
			return fmt.Errorf("model builder: definition %d (%q) has no uid", i, def.Name)
		}
	}
	return nil
}
