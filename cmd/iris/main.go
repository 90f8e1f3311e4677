package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"tower/packages/bungie"
	"tower/packages/env"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	debug  bool
	client *bungie.Client
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "iris",
		Short:         "Query the Destiny 2 platform API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			env.Load()
			if debug || env.BungieDebug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			if env.BungieAPIKey == "" {
				return fmt.Errorf("BUNGIE_API_KEY is not set")
			}

			client = bungie.FromEnv(bungie.WithLogger(log.Logger))
			if debug {
				client.SetDebugLogging(true)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Log every request and raw response")

	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newClanCmd())
	rootCmd.AddCommand(newPGCRCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newManifestCmd())
	rootCmd.AddCommand(newGetCmd())

	return rootCmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
