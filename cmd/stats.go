package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/vjdetect/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats <report.json>",
	Short: "Print summary statistics from a detection report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := report.ReadJSON(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("generated:           %s\n", m.GeneratedAt)
		fmt.Printf("build:               %s %s (%s)\n", m.Build.Tool, m.Build.Version, m.Build.GoVersion)
		fmt.Printf("total images:        %d\n", m.Stats.TotalImages)
		fmt.Printf("with detections:     %d\n", m.Stats.ImagesWithDetections)
		fmt.Printf("total detections:    %d\n", m.Stats.TotalDetections)
		fmt.Printf("failed:              %d\n", m.Stats.FailedImages)

		if verbose {
			for _, img := range m.Images {
				if img.Error != "" {
					logVerbose("%s: error: %s", img.Path, img.Error)
					continue
				}
				logVerbose("%s: %d detection(s) (%s)", img.Path, len(img.Detections), img.Cascade)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
