package cli

import (
	"errors"
	"fmt"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resetCmd)
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Settle the previous month now: pay rewards and zero monthly XP",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	report, err := a.Resets.RunMonthlyReset(cmd.Context())
	out := cmd.OutOrStdout()
	if errors.Is(err, errorvalues.ErrResetAlreadyCompleted) {
		fmt.Fprintf(out, "Reset for %s is already completed.\n", report.Period.Format("2006-01"))
		return nil
	}
	fmt.Fprintf(out, "Period:  %s\nGranted: %d\nSkipped: %d\nFailed:  %d\nPaid:    %d\nZeroed:  %t\n",
		report.Period.Format("2006-01"), report.Granted, report.Skipped, report.Failed, report.Paid, report.Zeroed)
	return err
}
