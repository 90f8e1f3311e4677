package main

import (
	"fmt"
	"strconv"

	"tower/packages/destiny"
	"tower/packages/pgcr"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var platform, mode string
	var concurrent int

	cmd := &cobra.Command{
		Use:   "history MEMBERSHIP_ID",
		Short: "List every activity a player has played in a mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			membershipId, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid membership id: %w", err)
			}
			membershipType, err := destiny.ParseMembershipType(platform)
			if err != nil {
				return err
			}
			if membershipType == destiny.MembershipAll {
				return fmt.Errorf("--platform is required")
			}
			activityMode, err := destiny.ParseActivityMode(mode)
			if err != nil {
				return err
			}

			scraper := pgcr.NewScraper(client)
			activities, err := scraper.GetActivityHistory(cmd.Context(), int(membershipType), membershipId, activityMode, concurrent)
			if err != nil {
				return err
			}
			log.Info().Int("count", len(activities)).Stringer("mode", activityMode).Msg("fetched activity history")
			return printJSON(cmd.OutOrStdout(), activities)
		},
	}
	cmd.Flags().StringVarP(&platform, "platform", "p", "all", "Membership type (name or number)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "Raid", "Activity mode name")
	cmd.Flags().IntVarP(&concurrent, "concurrent", "c", 4, "Concurrent page fetches per character")
	return cmd
}
