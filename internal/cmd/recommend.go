package cmd

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/cinerec/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var plainOutput bool

var recommendCmd = &cobra.Command{
	Use:   "recommend <title>",
	Short: "Print recommendations for a movie title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, engine, err := setup()
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		result := engine.Recommend(cmd.Context(), query)

		if plainOutput {
			for _, rec := range result.Recommendations {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", rec.Title, rec.PosterURL, rec.Justification)
			}
			return nil
		}

		width := 0
		if w, _, err := term.GetSize(0); err == nil {
			width = w
		}
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderResult(result, width))
		return nil
	},
}

func init() {
	recommendCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print tab-separated output without styling")
	rootCmd.AddCommand(recommendCmd)
}
