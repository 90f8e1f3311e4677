package main

import (
	"fmt"
	"strings"

	"tower/packages/bungie"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "get PATH",
		Short: "Issue a raw GET against the platform and print the response",
		Long: `Issue a raw GET against the platform and print the response text.
PATH is relative to /Platform, e.g. /Destiny2/Manifest/. A full URL is used as is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseParams(params)
			if err != nil {
				return err
			}
			target := args[0]
			if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
				target = client.Endpoint("%s", target)
			}
			text, err := client.GetWithParams(cmd.Context(), target, p)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringArrayVar(&params, "param", nil, "Query parameter as key=value (repeatable)")
	return cmd
}

func parseParams(raw []string) (bungie.Params, error) {
	params := bungie.Params{}
	for _, kv := range raw {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --param %q, expected key=value", kv)
		}
		params[k] = v
	}
	return params, nil
}
