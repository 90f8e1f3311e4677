package async

import (
	"context"
	"fmt"
	"io"
	"sync"

	"tower/packages/monitoring"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Outcome tells the worker loop what to do with a delivery once it has been
// processed.
type Outcome int

const (
	Ack Outcome = iota
	// Requeue puts the message back on the queue for another attempt.
	Requeue
	// Drop rejects the message without requeueing it.
	Drop
)

func (o Outcome) String() string {
	switch o {
	case Ack:
		return "ack"
	case Requeue:
		return "requeue"
	case Drop:
		return "drop"
	}
	return "unknown"
}

type QueueWorker struct {
	QueueName string
	Conn      *amqp.Connection
	Processer func(ctx context.Context, qw *QueueWorker, msg amqp.Delivery) Outcome
}

// Register consumes QueueName with numWorkers goroutines until ctx is done
// or the channel closes.
func (qw *QueueWorker) Register(ctx context.Context, numWorkers int) error {
	ch, err := qw.Conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}
	defer ch.Close()

	q, err := DeclareQueue(ch, qw.QueueName)
	if err != nil {
		return err
	}
	if err := ch.Qos(numWorkers, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	// closing the channel ends the deliveries range below
	done := make(chan struct{})
	defer close(done)
	go closeOnDone(ctx, done, ch)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for msg := range msgs {
				qw.handle(ctx, msg)
			}
		}()
	}

	log.Info().Str("queue", qw.QueueName).Int("workers", numWorkers).Msg("waiting for messages")
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("queue %s: delivery channel closed", qw.QueueName)
}

// closeOnDone closes c once ctx is cancelled. It returns without closing when
// done is closed first.
func closeOnDone(ctx context.Context, done <-chan struct{}, c io.Closer) {
	select {
	case <-ctx.Done():
		c.Close()
	case <-done:
	}
}

func (qw *QueueWorker) handle(ctx context.Context, msg amqp.Delivery) {
	outcome := qw.Processer(ctx, qw, msg)
	monitoring.QueueMessages.WithLabelValues(qw.QueueName, outcome.String()).Inc()

	var err error
	switch outcome {
	case Ack:
		err = msg.Ack(false)
	case Requeue:
		err = msg.Nack(false, true)
	default:
		err = msg.Reject(false)
	}
	if err != nil {
		log.Warn().Err(err).Str("queue", qw.QueueName).Msg("failed to settle message")
	}
}

func DeclareQueue(ch *amqp.Channel, name string) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return q, fmt.Errorf("failed to declare queue %s: %w", name, err)
	}
	return q, nil
}

// Publish sends a JSON body to the default exchange, routed by queue name.
func Publish(ctx context.Context, ch *amqp.Channel, queueName string, body []byte) error {
	return ch.PublishWithContext(
		ctx,
		"",        // exchange
		queueName, // routing key (queue name)
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
