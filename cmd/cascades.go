package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/vjdetect/internal/cascadedata"
)

var cascadesCmd = &cobra.Command{
	Use:   "cascades",
	Short: "List the cascades baked into this build",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range cascadedata.List() {
			c, err := cascadedata.Get(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-10s base window %gx%g, %d stage(s)\n", name, c.MinW(), c.MinH(), c.StageCount())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cascadesCmd)
}
