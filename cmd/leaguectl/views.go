package main

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-views/internal/app"
	"github.com/riskibarqy/league-views/internal/usecase"
	"github.com/spf13/cobra"
)

func newStandingsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Print the league table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, opts, func(ctx context.Context, services *app.Services) error {
				items, err := services.Standings.List(ctx)
				if err != nil {
					return err
				}
				return renderStandings(cmd.OutOrStdout(), items)
			})
		},
	}
}

func newTopScorersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "topscorers",
		Aliases: []string{"goals"},
		Short:   "Print teams ranked by goals scored",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, opts, func(ctx context.Context, services *app.Services) error {
				items, err := services.TopScores.ListTopScorers(ctx)
				if err != nil {
					return err
				}
				return renderTopScorers(cmd.OutOrStdout(), items)
			})
		},
	}
}

func newMatchesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "matches",
		Short: "Print every match of the competition, earliest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, opts, func(ctx context.Context, services *app.Services) error {
				items, err := services.Matches.ListAll(ctx)
				if err != nil {
					return err
				}
				return renderMatches(cmd.OutOrStdout(), items)
			})
		},
	}
}

func newPlayedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "played",
		Short: "Print completed matches, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, opts, func(ctx context.Context, services *app.Services) error {
				items, err := services.Matches.ListPlayed(ctx)
				if err != nil {
					return err
				}
				return renderMatches(cmd.OutOrStdout(), items)
			})
		},
	}
}

func newUpcomingCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Print the next scheduled matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, opts, func(ctx context.Context, services *app.Services) error {
				items, err := services.Matches.ListUpcoming(ctx, limit)
				if err != nil {
					return err
				}
				return renderMatches(cmd.OutOrStdout(), items)
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0,
		fmt.Sprintf("number of matches to print, 1 to %d (default from UPCOMING_MATCHES_LIMIT)", usecase.MaxUpcomingMatches))
	return cmd
}
