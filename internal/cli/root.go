// Package cli implements the progressctl admin commands using Cobra.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/levelup/internal/app"
	"github.com/limbo/levelup/pkg/cleanup"
	"github.com/limbo/levelup/pkg/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "progressctl",
	Short: "Administer progression, leaderboards and monthly resets",
	Long: `progressctl runs maintenance operations against the progression store:
monthly reward resets, recalculation of stored totals and leaderboard inspection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// openApp connects the commands to the record store. Replaced in tests.
var openApp = func(ctx context.Context) (*app.App, error) {
	return app.New(ctx, app.SettingsFromConfig(config.New()))
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	cleanup.CleanUp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
