package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recalculateCmd)
	rootCmd.AddCommand(reconcileCmd)
}

var recalculateCmd = &cobra.Command{
	Use:   "recalculate <uid>",
	Short: "Recompute and store one user's XP totals, level and title",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecalculate,
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Recompute stored totals of every user",
	Args:  cobra.NoArgs,
	RunE:  runReconcile,
}

func runRecalculate(cmd *cobra.Command, args []string) error {
	uid, err := uuid.Parse(args[0])
	if err != nil {
		return errors.New("invalid uid: " + err.Error())
	}
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	user, err := a.Progress.Recalculate(cmd.Context(), uid)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: total %d XP, monthly %d XP, level %d (%s)\n",
		user.ID, user.TotalXp, user.MonthlyXp, user.Level, user.CurrentTitle)
	return nil
}

func runReconcile(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	report, err := a.Progress.ReconcileAll(cmd.Context())
	fmt.Fprintf(cmd.OutOrStdout(), "Processed: %d\nMissing:   %d\nFailed:    %d\n",
		report.Processed, report.Missing, report.Failed)
	return err
}
