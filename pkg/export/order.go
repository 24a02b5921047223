package export

import (
	"sort"
)

// CanonicalOrder returns the identifiers sorted by relative path using a
// locale-independent code-point comparison, with duplicate paths removed
// (first occurrence wins). Paths are the sole identity, so the result is
// fully determined by the input.
func CanonicalOrder(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	ordered := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		ordered = append(ordered, p)
	}

	// Byte-wise comparison of UTF-8 strings is code-point order.
	sort.Strings(ordered)
	return ordered
}
