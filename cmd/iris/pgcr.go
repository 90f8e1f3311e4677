package main

import (
	"fmt"
	"strconv"

	"tower/packages/pgcr"

	"github.com/spf13/cobra"
)

func newPGCRCmd() *cobra.Command {
	var raw, summary bool

	cmd := &cobra.Command{
		Use:   "pgcr INSTANCE_ID",
		Short: "Fetch a post game carnage report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instanceId, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid instance id: %w", err)
			}
			scraper := pgcr.NewScraper(client)

			if raw {
				text, err := scraper.GetPGCRRaw(cmd.Context(), instanceId)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			}

			report, err := scraper.GetPGCR(cmd.Context(), instanceId)
			if err != nil {
				return err
			}
			if !summary {
				return printJSON(cmd.OutOrStdout(), report)
			}
			s, err := pgcr.Summarize(report)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the response text as received")
	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "Print a per-player summary")
	return cmd
}
