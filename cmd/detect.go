package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/vjdetect/internal/pipeline"
)

var (
	detectOutputDir   string
	detectReportPath  string
	detectCascade     string
	detectProfile     string
	detectConcurrency int
	detectExportCrops bool
	detectCropFormat  string
	detectCropQuality int
)

var detectCmd = &cobra.Command{
	Use:   "detect <directory>",
	Short: "Run a cascade over every image in a directory and write a JSON report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceDir := args[0]

		cfg := pipeline.Config{
			SourceDir:   sourceDir,
			OutputDir:   detectOutputDir,
			CascadeName: detectCascade,
			ProfileName: detectProfile,
			Concurrency: detectConcurrency,
			ExportCrops: detectExportCrops,
			CropFormat:  detectCropFormat,
			CropQuality: detectCropQuality,
			Version:     version,
			GoVersion:   runtime.Version(),
		}

		logVerbose("scanning %s with cascade %q", sourceDir, detectCascade)
		manifest, err := pipeline.Run(cfg)
		if err != nil {
			return err
		}

		if err := manifest.WriteJSON(detectReportPath); err != nil {
			return err
		}

		fmt.Printf("scanned %d image(s): %d with detections, %d total detections, %d failed\n",
			manifest.Stats.TotalImages, manifest.Stats.ImagesWithDetections,
			manifest.Stats.TotalDetections, manifest.Stats.FailedImages)
		fmt.Printf("report written to %s\n", detectReportPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().StringVar(&detectCascade, "cascade", "face", "named cascade to run (see `vjdetect cascades`)")
	detectCmd.Flags().StringVar(&detectProfile, "profile", "", "named detection-parameter profile overriding the cascade's defaults")
	detectCmd.Flags().StringVar(&detectReportPath, "report", "vjdetect-report.json", "path to write the JSON report")
	detectCmd.Flags().IntVar(&detectConcurrency, "concurrency", 0, "worker count (default: number of CPUs)")
	detectCmd.Flags().BoolVar(&detectExportCrops, "crops", false, "export a cropped image for every detection")
	detectCmd.Flags().StringVar(&detectOutputDir, "out", "vjdetect-crops", "directory for exported crops (with --crops)")
	detectCmd.Flags().StringVar(&detectCropFormat, "crop-format", "webp", "crop encoder: webp, avif, jpeg, or png")
	detectCmd.Flags().IntVar(&detectCropQuality, "crop-quality", 82, "crop encode quality (1-100)")
}
