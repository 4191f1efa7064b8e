package main

import (
	"context"
	"os"

	"github.com/fortuna/courtside/internal/app"
	"github.com/fortuna/courtside/internal/config"
	"github.com/fortuna/courtside/internal/service"
	"github.com/fortuna/courtside/internal/telemetry"
	"github.com/spf13/cobra"
)

const (
	appName    = "gamelog"
	appVersion = "1.0.0"
)

var (
	rootCtx = context.Background()
	cfg     *config.Config
	svc     *service.DashboardService
	closeFn = func() {}

	filters service.Request
)

var rootCmd = &cobra.Command{
	Use:     appName,
	Short:   "Query a player's game log, trend projection and charts",
	Version: appVersion,
	Long: `Resolve a player by full name, fetch their game log for the chosen seasons,
filter it and print averages, a linear next-game projection or a bar chart.

Examples:
  gamelog show --player "LeBron James" --season 2023-24 --location Home
  gamelog predict --player "LeBron James" --stat PRA --from 2024-01-01
  gamelog chart --player "LeBron James" --compare "Stephen Curry" --stat AST --out ast.svg`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg = config.Load()
		telemetry.Init(telemetry.ParseLevel(cfg.LogLevel))
		a, err := app.New(rootCtx, cfg)
		if err != nil {
			return err
		}
		svc = a.Service
		closeFn = a.Close
		if filters.Player == "" {
			filters.Player = svc.Presets().DefaultPlayer
		}
		filters.Surface = "cli"
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeFn()
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&filters.Player, "player", "p", "", "full player name (default from presets)")
	f.StringVar(&filters.ComparePlayer, "compare", "", "second player to compare against")
	f.StringSliceVarP(&filters.Seasons, "season", "s", nil, "season(s), e.g. 2023-24 (default from presets)")
	f.StringVar(&filters.From, "from", "", "start date YYYY-MM-DD")
	f.StringVar(&filters.To, "to", "", "end date YYYY-MM-DD")
	f.StringVar(&filters.Location, "location", "All", "All, Home or Away")
	f.StringVar(&filters.Opponent, "opponent", "", "full opponent team name")
	f.BoolVar(&filters.OpponentExact, "exact", false, "match the parsed opponent instead of the matchup text")

	rootCmd.AddCommand(showCmd, predictCmd, chartCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
