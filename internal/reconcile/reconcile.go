// Package reconcile compares referenced module names with declared ones.
package reconcile

import "github.com/dbmrq/mp/internal/modset"

// Missing returns the names in referenced that are not in declared, in the
// insertion order of referenced. The result is never nil.
func Missing(referenced, declared *modset.Set) []string {
	missing := make([]string, 0, referenced.Len())
	for _, name := range referenced.Names() {
		if !declared.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
