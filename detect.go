package vjdetect

import (
	"github.com/AnyUserName/vjdetect/internal/detector"
	"github.com/AnyUserName/vjdetect/internal/integral"
	"github.com/AnyUserName/vjdetect/internal/merge"
)

// Detect runs the Viola–Jones scan-and-merge pipeline over one pixel
// buffer (spec.md §6): build integral images, scan scales and positions
// evaluating the cascade at each window (§4.B–§4.D), then cluster
// overlapping hits into merged rectangles (§4.E). It is synchronous and
// single-threaded (§5) — safe to call concurrently from multiple
// goroutines as long as each call's pixel buffer is not shared.
func Detect(pixels []byte, width, height int, c Cascade, params Params) ([]Rectangle, error) {
	if err := validate(pixels, width, height, c, params); err != nil {
		return nil, err
	}

	withSobel := params.EdgesDensity > 0
	img := integral.Build(pixels, width, height, withSobel)

	candidates := detector.Scan(c, img, width, height, params)
	rects := merge.Merge(candidates, params.RegionsOverlap)
	if rects == nil {
		rects = []Rectangle{}
	}
	return rects, nil
}

func validate(pixels []byte, width, height int, c Cascade, params Params) error {
	if width <= 0 || height <= 0 {
		return argErrorf("vjdetect: width and height must be positive, got %d x %d", width, height)
	}
	if len(pixels) != 4*width*height {
		return argErrorf("vjdetect: pixels length %d does not match 4*width*height (%d)", len(pixels), 4*width*height)
	}
	if c.Len() < 2 {
		return argErrorf("vjdetect: cascade must have at least 2 values (minW, minH), got %d", c.Len())
	}
	if params.ScaleFactor <= 1 {
		return argErrorf("vjdetect: ScaleFactor must be > 1, got %v", params.ScaleFactor)
	}
	if params.StepSize <= 0 {
		return argErrorf("vjdetect: StepSize must be > 0, got %v", params.StepSize)
	}
	if params.InitialScale <= 0 {
		return argErrorf("vjdetect: InitialScale must be > 0, got %v", params.InitialScale)
	}
	if params.EdgesDensity < 0 || params.EdgesDensity > 1 {
		return argErrorf("vjdetect: EdgesDensity must be in [0,1], got %v", params.EdgesDensity)
	}
	if params.RegionsOverlap <= 0 || params.RegionsOverlap > 1 {
		return argErrorf("vjdetect: RegionsOverlap must be in (0,1], got %v", params.RegionsOverlap)
	}
	return nil
}
