package main

import (
	"fmt"
	"strconv"

	"tower/packages/destiny"
	"tower/packages/user"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	var platform string
	var characters bool

	cmd := &cobra.Command{
		Use:   "profile MEMBERSHIP_ID",
		Short: "Show a player's profile and linked accounts",
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

			u, err := user.GetUser(cmd.Context(), client, membershipId, membershipType)
			if err != nil {
				return err
			}
			if !characters {
				return printJSON(cmd.OutOrStdout(), u)
			}

			chars, err := user.Characters(cmd.Context(), client, u)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"user":       u,
				"characters": chars,
			})
		},
	}
	cmd.Flags().StringVarP(&platform, "platform", "p", "all", "Membership type (name or number)")
	cmd.Flags().BoolVarP(&characters, "characters", "c", false, "Include characters")
	return cmd
}
