// Package report builds and serializes the JSON manifest a batch detect
// run writes: one entry per scanned image, plus aggregate stats.
package report

import "time"

// BuildInfo identifies the tool and version that produced a manifest.
type BuildInfo struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
}

// Detection is one merged rectangle from vjdetect.Detect, flattened for
// JSON (avoids exposing the library's Rectangle type alias directly so
// the manifest's wire shape is independent of internal package layout).
type Detection struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Total  int `json:"total"`
}

// ImageResult is the per-image entry in a manifest.
type ImageResult struct {
	Path               string      `json:"path"`
	Width              int         `json:"width"`
	Height             int         `json:"height"`
	Profile            string      `json:"profile"`
	Cascade            string      `json:"cascade"`
	CascadeFingerprint string      `json:"cascadeFingerprint"`
	Detections         []Detection `json:"detections"`
	Crops              []string    `json:"crops,omitempty"`
	Error              string      `json:"error,omitempty"`
}

// Stats summarizes a manifest's entries.
type Stats struct {
	TotalImages          int `json:"totalImages"`
	ImagesWithDetections int `json:"imagesWithDetections"`
	TotalDetections      int `json:"totalDetections"`
	FailedImages         int `json:"failedImages"`
}

// Manifest is the top-level report document.
type Manifest struct {
	GeneratedAt string        `json:"generatedAt"`
	Build       BuildInfo     `json:"build"`
	Images      []ImageResult `json:"images"`
	Stats       Stats         `json:"stats"`
}

// New creates an empty manifest stamped with the current time and the
// given build version.
func New(version string, goVersion string) *Manifest {
	return &Manifest{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Build: BuildInfo{
			Tool:      "vjdetect",
			Version:   version,
			GoVersion: goVersion,
		},
	}
}

// AddImage appends one image's result to the manifest.
func (m *Manifest) AddImage(r ImageResult) {
	m.Images = append(m.Images, r)
}

// ComputeStats recomputes Stats from the current Images slice. Call it
// once all images have been added, before writing.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalImages = len(m.Images)
	for _, img := range m.Images {
		if img.Error != "" {
			s.FailedImages++
			continue
		}
		if len(img.Detections) > 0 {
			s.ImagesWithDetections++
		}
		s.TotalDetections += len(img.Detections)
	}
	m.Stats = s
}
