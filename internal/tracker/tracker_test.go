package tracker

import (
	"testing"

	"github.com/AnyUserName/vjdetect"
)

func solidPixels(w, h int, v byte) []byte {
	pix := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		off := i * 4
		pix[off], pix[off+1], pix[off+2], pix[off+3] = v, v, v, 255
	}
	return pix
}

func meanThresholdCascade(t *testing.T, minW, minH float64) vjdetect.Cascade {
	t.Helper()
	c, err := vjdetect.NewCascade([]float64{
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

func TestTrack_ConcatenatesAcrossCascades(t *testing.T) {
	tr := New()
	params := vjdetect.Params{
		InitialScale:   DefaultInitialScale,
		ScaleFactor:    DefaultScaleFactor,
		StepSize:       DefaultStepSize,
		EdgesDensity:   0,
		RegionsOverlap: DefaultRegionsOverlap,
	}
	tr.Register("a", meanThresholdCascade(t, 8, 8), params)
	tr.Register("b", meanThresholdCascade(t, 8, 8), params)

	pix := solidPixels(16, 16, 200)
	var got []vjdetect.Rectangle
	if err := tr.Track(pix, 16, 16, func(rects []vjdetect.Rectangle) { got = rects }); err != nil {
		t.Fatalf("Track: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected detections from a bright frame")
	}
	single, err := vjdetect.Detect(pix, 16, 16, meanThresholdCascade(t, 8, 8), params)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(got) != 2*len(single) {
		t.Errorf("len(got) = %d, want %d (one result list per registered cascade)", len(got), 2*len(single))
	}
}

func TestTrack_EmptyTrackerCallsBackWithNoRectangles(t *testing.T) {
	tr := New()
	called := false
	err := tr.Track(solidPixels(8, 8, 0), 8, 8, func(rects []vjdetect.Rectangle) {
		called = true
		if len(rects) != 0 {
			t.Errorf("expected no rectangles, got %v", rects)
		}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected onTrack to be called even with zero registered cascades")
	}
}

func TestTrack_PropagatesCascadeError(t *testing.T) {
	tr := New()
	tr.Register("bad", meanThresholdCascade(t, 8, 8), vjdetect.Params{}) // zero Params is invalid
	err := tr.Track(solidPixels(8, 8, 0), 8, 8, func([]vjdetect.Rectangle) {
		t.Fatal("onTrack should not be called when a cascade errors")
	})
	if err == nil {
		t.Error("expected an error from an invalid Params value")
	}
}
