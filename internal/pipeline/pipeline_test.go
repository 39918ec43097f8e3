package pipeline

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeSolidPNG(t *testing.T, path string, w, h int, v uint8) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestScanImages_FindsRecognizedExtensions(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "a.png"), 8, 8, 100)
	writeSolidPNG(t, filepath.Join(dir, "b.PNG"), 8, 8, 100)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ScanImages(dir)
	if err != nil {
		t.Fatalf("ScanImages: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len(got) = %d, want 2 (got %v)", len(got), got)
	}
}

func TestRun_ProducesManifestForEveryImage(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "bright.png"), 16, 16, 240)
	writeSolidPNG(t, filepath.Join(dir, "dark.png"), 16, 16, 10)

	cfg := Config{
		SourceDir:   dir,
		CascadeName: "tiny",
		Version:     "test",
		GoVersion:   "go1.22",
	}
	m, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Stats.TotalImages != 2 {
		t.Errorf("TotalImages = %d, want 2", m.Stats.TotalImages)
	}
	if m.Stats.FailedImages != 0 {
		t.Errorf("FailedImages = %d, want 0: %+v", m.Stats.FailedImages, m.Images)
	}
}

func TestRun_RequiresSourceDir(t *testing.T) {
	if _, err := Run(Config{CascadeName: "tiny"}); err == nil {
		t.Error("expected error for missing SourceDir")
	}
}

func TestRun_UnknownCascadeIsError(t *testing.T) {
	dir := t.TempDir()
	if _, err := Run(Config{SourceDir: dir, CascadeName: "nonexistent"}); err == nil {
		t.Error("expected error for unknown cascade name")
	}
}
