package pgcr_lookup

import (
	"context"
	"encoding/json"

	"tower/packages/async"
	"tower/packages/discord"
	"tower/packages/pgcr"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	QueueName   = "pgcr_lookups"
	SummaryName = "pgcr_summaries"
)

type LookupRequest struct {
	InstanceId int64 `json:"instanceId,string"`
}

// Publisher is the part of an AMQP channel the handler needs.
type Publisher interface {
	Publish(ctx context.Context, queueName string, body []byte) error
}

type channelPublisher struct {
	ch *amqp.Channel
}

func (p channelPublisher) Publish(ctx context.Context, queueName string, body []byte) error {
	return async.Publish(ctx, p.ch, queueName, body)
}

func NewChannelPublisher(ch *amqp.Channel) Publisher {
	return channelPublisher{ch: ch}
}

func Create(h *Handler) async.QueueWorker {
	return async.QueueWorker{
		QueueName: QueueName,
		Processer: func(ctx context.Context, qw *async.QueueWorker, msg amqp.Delivery) async.Outcome {
			return h.Process(ctx, msg.Body)
		},
	}
}

func SendMessage(ctx context.Context, ch *amqp.Channel, instanceId int64) error {
	body, err := json.Marshal(LookupRequest{
		InstanceId: instanceId,
	})
	if err != nil {
		return err
	}
	return async.Publish(ctx, ch, QueueName, body)
}

func NewHandler(scraper *pgcr.Scraper, publisher Publisher, alerts *discord.Alerter) *Handler {
	return &Handler{
		Scraper:   scraper,
		Publisher: publisher,
		Alerts:    alerts,
	}
}
