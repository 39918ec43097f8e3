package vjdetect

import (
	"github.com/AnyUserName/vjdetect/internal/cascade"
	"github.com/AnyUserName/vjdetect/internal/detector"
	"github.com/AnyUserName/vjdetect/internal/merge"
)

// Rectangle is a merged detection result: a bounding box in input-image
// pixel coordinates plus Total, the number of raw scan hits it summarizes
// (spec.md §3's "total" field).
type Rectangle = merge.Rectangle

// Cascade is an immutable, flat Haar-cascade classifier (spec.md §3/§4.F).
// Construct one with NewCascade, or look one up by name with
// internal/cascadedata (used by the CLI's batch pipeline).
type Cascade = cascade.Cascade

// Params bundles the scan tuning knobs from spec.md §4.D/§6.
type Params = detector.Params

// DefaultParams returns spec.md §4.D's documented defaults:
// InitialScale=1.0, ScaleFactor=1.25, StepSize=1.5, EdgesDensity=0.2,
// RegionsOverlap=0.5.
func DefaultParams() Params {
	return detector.DefaultParams()
}

// NewCascade wraps a flat cascade array (spec.md §4.F). It returns an
// *ArgumentError if data is shorter than the two-value minW/minH header.
func NewCascade(data []float64) (Cascade, error) {
	c, err := cascade.New(data)
	if err != nil {
		return Cascade{}, &ArgumentError{msg: err.Error()}
	}
	return c, nil
}
