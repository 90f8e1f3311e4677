package main

import (
	"fmt"
	"strconv"

	"tower/packages/destiny"
	"tower/packages/manifest"

	"github.com/spf13/cobra"
)

func newManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest [DEFINITION HASH]",
		Short: "Print the manifest version, or look up one definition",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup := manifest.NewLookup(client)
			if len(args) == 0 {
				version, err := lookup.Version(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), version)
				return err
			}
			if len(args) != 2 {
				return fmt.Errorf("expected DEFINITION and HASH")
			}

			entityType, err := destiny.ParseManifestEntityType(args[0])
			if err != nil {
				return err
			}
			hash, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid hash: %w", err)
			}
			text, err := lookup.Get(cmd.Context(), entityType, uint32(hash))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	return cmd
}
