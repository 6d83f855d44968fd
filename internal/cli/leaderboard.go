package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/limbo/levelup/internal/service"
	"github.com/spf13/cobra"
)

var leaderboardFlags struct {
	user    string
	scope   string
	period  string
	country string
	city    string
}

func init() {
	f := leaderboardCmd.Flags()
	f.StringVar(&leaderboardFlags.user, "user", "", "uid of the caller the leaderboard is viewed as")
	f.StringVar(&leaderboardFlags.scope, "scope", "world", "world, country, city or friends")
	f.StringVar(&leaderboardFlags.period, "period", "monthly", "monthly or alltime")
	f.StringVar(&leaderboardFlags.country, "country", "", "country override")
	f.StringVar(&leaderboardFlags.city, "city", "", "city override")
	leaderboardCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(leaderboardCmd)
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print a leaderboard as seen by a user",
	Args:  cobra.NoArgs,
	RunE:  runLeaderboard,
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	uid, err := uuid.Parse(leaderboardFlags.user)
	if err != nil {
		return errors.New("invalid uid: " + err.Error())
	}
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	board, err := a.Leaderboard.GetLeaderboard(cmd.Context(), uid, &service.LeaderboardRequest{
		Scope:   leaderboardFlags.scope,
		Period:  leaderboardFlags.period,
		Country: leaderboardFlags.country,
		City:    leaderboardFlags.city,
	})
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tNAME\tSCORE\tLEVEL\tCOUNTRY\tCITY")
	for _, e := range board.Entries {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\t%s\n", e.Rank, e.Name, e.Score, e.Level, e.Country, e.City)
	}
	if err = w.Flush(); err != nil {
		return err
	}
	rank := "unranked"
	if board.Caller.Rank != nil {
		rank = fmt.Sprintf("#%d", *board.Caller.Rank)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s: %d XP, %s\n", board.Caller.Name, board.Caller.Score, rank)
	return nil
}
