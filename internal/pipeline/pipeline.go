// Package pipeline is the batch driver: scan a directory for images, run
// vjdetect.Detect across them with a worker pool, optionally export
// cropped detection thumbnails, and collect everything into a
// report.Manifest.
package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/vjdetect"
	"github.com/AnyUserName/vjdetect/internal/cascadedata"
	"github.com/AnyUserName/vjdetect/internal/encoder"
	"github.com/AnyUserName/vjdetect/internal/profile"
	"github.com/AnyUserName/vjdetect/internal/report"
)

// Config drives one batch run.
type Config struct {
	SourceDir   string
	OutputDir   string // crop output directory, used only when ExportCrops
	CascadeName string
	ProfileName string // if set, overrides CascadeName's scan params
	Concurrency int // default: runtime.NumCPU()
	ExportCrops bool
	CropFormat  string // "webp", "avif", "jpeg", or "png"
	CropQuality int
	Version     string
	GoVersion   string
}

func (c Config) validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("pipeline: SourceDir is required")
	}
	if c.CascadeName == "" {
		return fmt.Errorf("pipeline: CascadeName is required")
	}
	if c.ExportCrops && c.OutputDir == "" {
		return fmt.Errorf("pipeline: OutputDir is required when ExportCrops is set")
	}
	return nil
}

// Run scans Config.SourceDir, runs detection over every recognized image
// with a bounded worker pool, and returns the resulting manifest. A
// single image's decode/detect failure is recorded in its ImageResult.Error
// rather than aborting the whole run — partial-failure tolerant, matching
// the teacher's batch-processing shape.
func Run(cfg Config) (*report.Manifest, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cascade, err := cascadedata.Get(cfg.CascadeName)
	if err != nil {
		return nil, err
	}

	params := vjdetect.DefaultParams()
	profileName := cfg.ProfileName
	if profileName != "" {
		params = profile.Get(profileName).Params()
	}

	if cfg.ExportCrops {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("pipeline: create output dir: %w", err)
		}
	}

	paths, err := ScanImages(cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("pipeline: scan %s: %w", cfg.SourceDir, err)
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	reg := encoder.NewRegistry()
	results := make([]report.ImageResult, len(paths))

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)
	for i, path := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = processImage(path, cfg.CascadeName, cascade, params, profileName, cfg, reg)
		}(i, path)
	}
	wg.Wait()

	m := report.New(cfg.Version, cfg.GoVersion)
	for _, r := range results {
		m.AddImage(r)
	}
	m.ComputeStats()
	return m, nil
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
