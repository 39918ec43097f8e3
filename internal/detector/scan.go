// Package detector implements spec.md §4.D: scanning scales and positions,
// applying the edge-density prune, and collecting candidate rectangles for
// the merger.
package detector

import (
	"github.com/AnyUserName/vjdetect/internal/cascade"
	"github.com/AnyUserName/vjdetect/internal/evaluator"
	"github.com/AnyUserName/vjdetect/internal/integral"
	"github.com/AnyUserName/vjdetect/internal/merge"
)

// Params bundles the scan tuning knobs from spec.md §4.D/§6, each with its
// documented default.
type Params struct {
	InitialScale   float64 // default 1.0
	ScaleFactor    float64 // default 1.25
	StepSize       float64 // default 1.5
	EdgesDensity   float64 // default 0.2; 0 disables edge pruning
	RegionsOverlap float64 // default 0.5, consumed by internal/merge
}

// DefaultParams returns spec.md §4.D's documented defaults.
func DefaultParams() Params {
	return Params{
		InitialScale:   1.0,
		ScaleFactor:    1.25,
		StepSize:       1.5,
		EdgesDensity:   0.2,
		RegionsOverlap: 0.5,
	}
}

// Scan walks scales and positions over img per spec.md §4.D, returning raw
// (unmerged) candidate rectangles, each with Total 1. Edge-density pruning
// runs only when p.EdgesDensity > 0 and img carries a Sobel SAT (built by
// integral.Build with withSobel set).
func Scan(c cascade.Cascade, img *integral.Images, width, height int, p Params) []merge.Rectangle {
	var candidates []merge.Rectangle

	scale := p.InitialScale * p.ScaleFactor
	bw := int(scale * c.MinW())
	bh := int(scale * c.MinH())

	for bw < width && bh < height {
		step := int(scale*p.StepSize + 0.5)
		if step < 1 {
			step = 1
		}

		for i := 0; i < height-bh; i += step {
			for j := 0; j < width-bw; j += step {
				if p.EdgesDensity > 0 && img.SobelSAT != nil {
					density := float64(img.SobelRectSum(j, i, bw, bh)) / (float64(bw) * float64(bh) * 255)
					if density < p.EdgesDensity {
						continue
					}
				}
				if evaluator.EvaluateWindow(c, img, i, j, bw, bh, scale) {
					candidates = append(candidates, merge.Rectangle{X: j, Y: i, Width: bw, Height: bh, Total: 1})
				}
			}
		}

		scale *= p.ScaleFactor
		bw = int(scale * c.MinW())
		bh = int(scale * c.MinH())
	}

	return candidates
}
