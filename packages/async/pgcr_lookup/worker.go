package pgcr_lookup

import (
	"context"
	"encoding/json"
	"strconv"

	"tower/packages/async"
	"tower/packages/discord"
	"tower/packages/pgcr"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	Scraper   *pgcr.Scraper
	Publisher Publisher
	Alerts    *discord.Alerter
}

// Process handles one lookup request. Reports that will never resolve are
// dropped, platform outages and transport failures are requeued.
func (h *Handler) Process(ctx context.Context, body []byte) async.Outcome {
	var request LookupRequest
	if err := json.Unmarshal(body, &request); err != nil {
		log.Warn().Err(err).Str("body", string(body)).Msg("failed to unmarshal message")
		return async.Drop
	}

	result, summary, err := h.Scraper.FetchAndSummarize(ctx, request.InstanceId)
	logger := log.With().Int64("instanceId", request.InstanceId).Stringer("result", result).Logger()

	switch result {
	case pgcr.Success:
	case pgcr.NotFound, pgcr.InsufficientPrivileges:
		logger.Info().Err(err).Msg("pgcr unavailable")
		return async.Drop
	case pgcr.BadFormat:
		logger.Warn().Err(err).Msg("pgcr could not be summarized")
		h.Alerts.Error(ctx, "Malformed PGCR", discord.Field{
			Name:  "Instance",
			Value: strconv.FormatInt(request.InstanceId, 10),
		}, discord.Field{
			Name:  "Error",
			Value: errString(err),
		})
		return async.Drop
	default:
		logger.Warn().Err(err).Msg("pgcr lookup failed, requeueing")
		return async.Requeue
	}

	out, err := json.Marshal(summary)
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal summary")
		return async.Drop
	}
	if err := h.Publisher.Publish(ctx, SummaryName, out); err != nil {
		logger.Warn().Err(err).Msg("failed to publish summary")
		return async.Requeue
	}
	logger.Debug().Int("players", summary.PlayerCount).Msg("published summary")
	return async.Ack
}

func errString(err error) string {
	if err == nil {
		return "unknown"
	}
	s := err.Error()
	if len(s) > 1000 {
		s = s[:1000]
	}
	return s
}
