package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tower/packages/async"
	"tower/packages/async/pgcr_lookup"
	"tower/packages/bungie"
	"tower/packages/discord"
	"tower/packages/env"
	"tower/packages/monitoring"
	"tower/packages/pgcr"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var numWorkers = flag.Int("workers", 10, "number of concurrent pgcr lookups")

func main() {
	flag.Parse()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	env.Load()
	if env.BungieAPIKey == "" {
		log.Fatal().Msg("BUNGIE_API_KEY is not set")
	}
	if *numWorkers <= 0 {
		log.Fatal().Int("workers", *numWorkers).Msg("invalid worker count")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := async.Init()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to rabbit")
	}
	defer async.Cleanup()

	publishCh, err := conn.Channel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open publish channel")
	}
	defer publishCh.Close()
	if _, err := async.DeclareQueue(publishCh, pgcr_lookup.SummaryName); err != nil {
		log.Fatal().Err(err).Send()
	}

	client := bungie.FromEnv()
	alerts := discord.NewAlerter(env.AlertsWebhookURL)

	monitoring.RegisterPrometheus(env.MetricsPort)
	go watchSettings(ctx, client, alerts)

	handler := pgcr_lookup.NewHandler(pgcr.NewScraper(client), pgcr_lookup.NewChannelPublisher(publishCh), alerts)
	queue := pgcr_lookup.Create(handler)
	queue.Conn = conn

	alerts.Info(ctx, "hermes started", discord.Field{Name: "Queue", Value: queue.QueueName})
	if err := queue.Register(ctx, *numWorkers); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("queue worker stopped")
	}
	log.Info().Msg("shutting down")
}

// watchSettings polls the platform status once a minute and reports when
// PGCR lookups are switched off or back on.
func watchSettings(ctx context.Context, client *bungie.Client, alerts *discord.Alerter) {
	enabled := true
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for {
		settings, err := client.GetCommonSettings(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("failed to get common settings")
		} else {
			now := settings.SystemEnabled("Destiny2") && settings.SystemEnabled("PostGameCarnageReports")
			if now != enabled {
				enabled = now
				if enabled {
					log.Info().Msg("PGCR API is enabled")
					alerts.Info(ctx, "PGCR API is enabled")
				} else {
					log.Warn().Msg("PGCR API is disabled")
					alerts.Error(ctx, "PGCR API is disabled")
				}
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
