package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	feedadapters "blog_backend/internal/feature/feed/adapters"
	"blog_backend/internal/feature/feed/domain/entity"
	feedusecase "blog_backend/internal/feature/feed/usecase"
)

func newLeaderboardCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the most active authors straight from the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			entries, err := feedadapters.NewFeedRepository(db).Leaderboard(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printLeaderboard(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", feedusecase.LeaderboardLimit, "number of authors to show")
	return cmd
}

func printLeaderboard(w io.Writer, entries []entity.LeaderboardEntry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tNICKNAME\tPOSTS")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", i+1, e.Nickname, e.Count)
	}
	return tw.Flush()
}
