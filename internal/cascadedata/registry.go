// Package cascadedata holds the named cascades shipped as compile-time Go
// slices — spec.md §1's "loading cascade files from disk" is explicitly
// out of scope, so every cascade here is a plain []float64 constant, not
// parsed or read from any file at runtime.
package cascadedata

import (
	"fmt"
	"sort"

	"github.com/AnyUserName/vjdetect/internal/cascade"
)

var registry = map[string][]float64{
	"tiny":  tinyData,
	"face":  faceData,
	"eye":   eyeData,
	"mouth": mouthData,
}

// Get returns the named cascade. Unlike internal/profile's fallback-to-
// default lookup, an unknown cascade name here is a hard argument error
// per spec.md §7 ("Unknown named cascade (façade only): argument error"),
// not a silent substitution.
func Get(name string) (cascade.Cascade, error) {
	data, ok := registry[name]
	if !ok {
		return cascade.Cascade{}, fmt.Errorf("cascadedata: unknown cascade %q (available: %v)", name, List())
	}
	return cascade.New(data)
}

// List returns the registered cascade names in sorted order, for CLI
// listing (`vjdetect cascades`).
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
