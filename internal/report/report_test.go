package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestComputeStats(t *testing.T) {
	m := New("0.1.0", "go1.22")
	m.AddImage(ImageResult{Path: "a.png", Detections: []Detection{{X: 0, Y: 0, Width: 10, Height: 10, Total: 1}}})
	m.AddImage(ImageResult{Path: "b.png"})
	m.AddImage(ImageResult{Path: "c.png", Error: "decode failed"})
	m.ComputeStats()

	if m.Stats.TotalImages != 3 {
		t.Errorf("TotalImages = %d, want 3", m.Stats.TotalImages)
	}
	if m.Stats.ImagesWithDetections != 1 {
		t.Errorf("ImagesWithDetections = %d, want 1", m.Stats.ImagesWithDetections)
	}
	if m.Stats.TotalDetections != 1 {
		t.Errorf("TotalDetections = %d, want 1", m.Stats.TotalDetections)
	}
	if m.Stats.FailedImages != 1 {
		t.Errorf("FailedImages = %d, want 1", m.Stats.FailedImages)
	}
}

func TestWriteJSON_ReadJSON_RoundTrip(t *testing.T) {
	m := New("0.1.0", "go1.22")
	m.AddImage(ImageResult{Path: "a.png", Cascade: "face", Detections: []Detection{{X: 1, Y: 2, Width: 3, Height: 4, Total: 1}}})
	m.ComputeStats()

	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := m.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(got.Images) != 1 || got.Images[0].Path != "a.png" {
		t.Errorf("got.Images = %+v, want one entry for a.png", got.Images)
	}
	if got.Stats.TotalImages != 1 {
		t.Errorf("Stats.TotalImages = %d, want 1", got.Stats.TotalImages)
	}
}

func TestReadJSON_MissingFile(t *testing.T) {
	if _, err := ReadJSON(filepath.Join(os.TempDir(), "does-not-exist-vjdetect.json")); err == nil {
		t.Error("expected an error reading a missing manifest")
	}
}
