package detector

import (
	"testing"

	"github.com/AnyUserName/vjdetect/internal/cascade"
	"github.com/AnyUserName/vjdetect/internal/integral"
	"github.com/AnyUserName/vjdetect/internal/merge"
)

func meanThresholdCascade(t *testing.T, minW, minH float64) cascade.Cascade {
	t.Helper()
	c, err := cascade.New([]float64{
		minW, minH,
		0, 1,
		0, 1,
		0, 0, minW, minH, 1,
		128, -1, 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func emptyCascade(t *testing.T, minW, minH float64) cascade.Cascade {
	t.Helper()
	c, err := cascade.New([]float64{minW, minH})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

// S5: an empty cascade (minW/minH only) returns an empty list regardless
// of pixels.
func TestScan_S5_EmptyCascadeMatchesNothing(t *testing.T) {
	c := emptyCascade(t, 8, 8)
	pix := make([]byte, 32*32*4)
	for i := range pix {
		pix[i] = 255
	}
	img := integral.Build(pix, 32, 32, false)
	got := Scan(c, img, 32, 32, DefaultParams())
	if len(got) != 0 {
		t.Errorf("len(got) = %d, want 0 for an empty cascade", len(got))
	}
}

// S6: a half-black half-white 32x32 image with a mean-threshold cascade
// and edgesDensity=0 should only fire on the bright half.
func TestScan_S6_DetectsBrightHalfOnly(t *testing.T) {
	w, h := 32, 32
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(0)
			if x >= w/2 {
				v = 255
			}
			off := (y*w + x) * 4
			pix[off], pix[off+1], pix[off+2], pix[off+3] = v, v, v, 255
		}
	}
	img := integral.Build(pix, w, h, false)
	c := meanThresholdCascade(t, 8, 8)
	params := Params{InitialScale: 1, ScaleFactor: 2, StepSize: 1, EdgesDensity: 0, RegionsOverlap: 0.5}

	got := Scan(c, img, w, h, params)
	if len(got) == 0 {
		t.Fatal("expected at least one candidate rectangle in the bright half")
	}
	for _, r := range got {
		if r.X+r.Width <= w/2 {
			t.Errorf("candidate %+v falls entirely in the dark half", r)
		}
	}

	merged := merge.Merge(got, params.RegionsOverlap)
	if len(merged) == 0 || len(merged) > len(got) {
		t.Errorf("expected merging to reduce (or preserve) candidate count; got %d candidates -> %d merged", len(got), len(merged))
	}
}

// Property 6: determinism — detect (here, Scan) called twice on identical
// inputs returns equal rectangle lists.
func TestScan_Deterministic(t *testing.T) {
	w, h := 24, 24
	pix := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		off := i * 4
		v := byte((i * 17) % 256)
		pix[off], pix[off+1], pix[off+2], pix[off+3] = v, v, v, 255
	}
	img := integral.Build(pix, w, h, false)
	c := meanThresholdCascade(t, 8, 8)
	params := DefaultParams()

	first := Scan(c, img, w, h, params)
	second := Scan(c, img, w, h, params)
	if len(first) != len(second) {
		t.Fatalf("len(first)=%d, len(second)=%d, want equal", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("candidate %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
