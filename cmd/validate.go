package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/vjdetect/internal/cascadedata"
	"github.com/AnyUserName/vjdetect/internal/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate <report.json>",
	Short: "Sanity-check a detection report against disk and cascade geometry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := report.ReadJSON(args[0])
		if err != nil {
			return err
		}

		var problems []string
		for _, img := range m.Images {
			if img.Error != "" {
				continue // a recorded processing failure is not a validation problem
			}
			if img.Cascade != "" {
				if _, err := cascadedata.Get(img.Cascade); err != nil {
					problems = append(problems, fmt.Sprintf("%s: unknown cascade %q", img.Path, img.Cascade))
				}
			}
			for _, d := range img.Detections {
				if d.Width <= 0 || d.Height <= 0 {
					problems = append(problems, fmt.Sprintf("%s: detection has non-positive size %dx%d", img.Path, d.Width, d.Height))
				}
				if d.X+d.Width > img.Width || d.Y+d.Height > img.Height {
					problems = append(problems, fmt.Sprintf("%s: detection {%d,%d,%d,%d} exceeds image bounds %dx%d",
						img.Path, d.X, d.Y, d.Width, d.Height, img.Width, img.Height))
				}
			}
			for _, crop := range img.Crops {
				info, err := os.Stat(crop)
				if err != nil {
					problems = append(problems, fmt.Sprintf("%s: crop file missing: %s", img.Path, crop))
					continue
				}
				if info.Size() == 0 {
					problems = append(problems, fmt.Sprintf("%s: crop file empty: %s", img.Path, crop))
				}
			}
		}

		if len(problems) == 0 {
			fmt.Println("report is valid")
			return nil
		}
		for _, p := range problems {
			fmt.Println(p)
		}
		return fmt.Errorf("validate: %d problem(s) found", len(problems))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
