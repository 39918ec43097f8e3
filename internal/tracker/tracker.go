// Package tracker implements the collaborator façade from spec.md §6/§9:
// an object tracker that wraps one or more named cascades, invokes
// Detect per frame with its stored parameters, and reports the
// aggregated rectangle list through a caller-supplied callback rather
// than an event emitter. Spec.md §9 notes the source's event-emitter
// inheritance "becomes a callback or channel parameter on the frame
// driver" in a systems language — this is that callback.
package tracker

import (
	"fmt"

	"github.com/AnyUserName/vjdetect"
)

// Defaults match spec.md §6's tracker façade defaults.
const (
	DefaultEdgesDensity   = 0.2
	DefaultInitialScale   = 1.0
	DefaultScaleFactor    = 1.25
	DefaultStepSize       = 1.5
	DefaultRegionsOverlap = 0.5
)

type namedCascade struct {
	name    string
	cascade vjdetect.Cascade
	params  vjdetect.Params
}

// Tracker holds zero or more registered cascades, each invoked in
// registration order on every Track call.
type Tracker struct {
	cascades []namedCascade
}

// New returns an empty tracker. Register cascades with Register before
// calling Track.
func New() *Tracker {
	return &Tracker{}
}

// Register adds a named cascade with its own scan parameters. Cascades
// fire in the order they were registered.
func (t *Tracker) Register(name string, cascade vjdetect.Cascade, params vjdetect.Params) {
	t.cascades = append(t.cascades, namedCascade{name: name, cascade: cascade, params: params})
}

// Track runs Detect for every registered cascade against one frame and
// invokes onTrack once with the concatenated rectangle list (cascade
// registration order, then each cascade's own deterministic order — see
// spec.md §5). If a cascade's Detect call fails, Track stops and returns
// the error; onTrack is not called.
func (t *Tracker) Track(pixels []byte, width, height int, onTrack func([]vjdetect.Rectangle)) error {
	var all []vjdetect.Rectangle
	for _, nc := range t.cascades {
		rects, err := vjdetect.Detect(pixels, width, height, nc.cascade, nc.params)
		if err != nil {
			return fmt.Errorf("tracker: cascade %q: %w", nc.name, err)
		}
		all = append(all, rects...)
	}
	onTrack(all)
	return nil
}
