package cmd

import (
	"github.com/Digital-Shane/cinerec/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive recommendation browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, engine, err := setup()
		if err != nil {
			return err
		}
		return tui.Run(engine)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
