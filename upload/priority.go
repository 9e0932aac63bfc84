package upload

import (
	"path/filepath"
	"strings"
)

// OrderByPriority returns a new slice where batches whose base name contains a priority
// object name come first, grouped in priority order. All other batches keep their relative
// order. batches is not modified.
func OrderByPriority(batches []Batch, priorities []string) []Batch {
	ordered := make([]Batch, 0, len(batches))
	taken := make([]bool, len(batches))

	for _, priority := range priorities {
		for i, b := range batches {
			if !taken[i] && strings.Contains(filepath.Base(b.Name()), priority) {
				ordered = append(ordered, b)
				taken[i] = true
			}
		}
	}
	for i, b := range batches {
		if !taken[i] {
			ordered = append(ordered, b)
		}
	}
	return ordered
}

// ObjectName is the batch's base name without its extension.
func ObjectName(b Batch) string {
	base := filepath.Base(b.Name())
	return strings.TrimSuffix(base, filepath.Ext(base))
}
