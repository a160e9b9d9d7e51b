package main

import (
	"context"
	"time"

	"github.com/riskibarqy/league-views/internal/app"
	"github.com/riskibarqy/league-views/internal/config"
	"github.com/riskibarqy/league-views/internal/platform/logging"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "leaguectl",
		Short:         "Competition views from the live feed",
		Long:          "Fetch the competition feed and print matches, standings and the team goals leaderboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall deadline for one command")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log feed requests to stderr")

	root.AddCommand(
		newStandingsCmd(opts),
		newTopScorersCmd(opts),
		newMatchesCmd(opts),
		newPlayedCmd(opts),
		newUpcomingCmd(opts),
		newArchiveCmd(opts),
	)
	return root
}

// withServices loads config, wires the view layer and runs fn under the
// command deadline.
func withServices(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, services *app.Services) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewNop()
	if opts.verbose {
		logger = logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	services, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = services.Close() }()

	return fn(ctx, services)
}
