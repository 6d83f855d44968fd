package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/limbo/levelup/internal/progression"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(levelsCmd)
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level curve",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tXP\tTITLE")
	for _, l := range progression.Levels() {
		fmt.Fprintf(w, "%d\t%d\t%s\n", l.Level, l.Xp, l.Title)
	}
	return w.Flush()
}
