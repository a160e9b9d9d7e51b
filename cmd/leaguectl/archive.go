package main

import (
	"context"
	"errors"

	"github.com/riskibarqy/league-views/external/analyticom"
	"github.com/riskibarqy/league-views/internal/app"
	"github.com/spf13/cobra"
)

var errArchiveDisabled = errors.New("feed archive is disabled, set FEED_ARCHIVE_ENABLED=true and DB_URL")

func newArchiveCmd(opts *rootOptions) *cobra.Command {
	archive := &cobra.Command{
		Use:   "archive",
		Short: "Inspect stored raw feed pages",
	}

	var (
		source string
		limit  int
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List the most recently fetched feed pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, opts, func(ctx context.Context, services *app.Services) error {
				if services.Archive == nil {
					return errArchiveDisabled
				}
				items, err := services.Archive.ListRecent(ctx, source, limit)
				if err != nil {
					return err
				}
				return renderArchive(cmd.OutOrStdout(), items)
			})
		},
	}
	list.Flags().StringVar(&source, "source", analyticom.SourceName, "feed source name")
	list.Flags().IntVarP(&limit, "limit", "n", 20, "number of pages to list")

	archive.AddCommand(list)
	return archive
}
