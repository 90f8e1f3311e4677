package main

import (
	"strconv"

	"tower/packages/bungie"
	"tower/packages/clan"

	"github.com/spf13/cobra"
)

func newClanCmd() *cobra.Command {
	var members bool

	cmd := &cobra.Command{
		Use:   "clan ID_OR_NAME",
		Short: "Show a clan by group id or exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var group *bungie.GroupResponse
			var err error
			if id, perr := strconv.ParseInt(args[0], 10, 64); perr == nil {
				group, err = clan.GetByID(ctx, client, id)
			} else {
				group, err = clan.GetByName(ctx, client, args[0])
			}
			if err != nil {
				return err
			}

			details, err := clan.ParseDetails(&group.Detail)
			if err != nil {
				return err
			}
			if !members {
				return printJSON(cmd.OutOrStdout(), details)
			}

			roster, err := clan.Members(ctx, client, details.GroupId)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"clan":    details,
				"members": roster,
			})
		},
	}
	cmd.Flags().BoolVarP(&members, "members", "m", false, "Include the full member list")
	return cmd
}
