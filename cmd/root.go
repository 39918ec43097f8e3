package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "vjdetect",
	Short: "Viola-Jones object detector for batches of images",
	Long: `vjdetect — scans a directory of images with a staged Haar cascade and
writes merged detection rectangles to a JSON report.

Ships with face/eye/mouth cascades baked in at compile time (no cascade
files loaded from disk) and can optionally export cropped, content-hashed
detection thumbnails alongside the report.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"vjdetect %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[vjdetect] "+format+"\n", args...)
	}
}
