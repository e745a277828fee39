package model

import "sort"

// DefaultSorter orders navigation entries by display name, breaking ties on
// uid so repeated builds stay deterministic.
func DefaultSorter(refs []WorldRef) {
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Name == refs[j].Name {
			return refs[i].UID < refs[j].UID
		}
		return refs[i].Name < refs[j].Name
	})
}
