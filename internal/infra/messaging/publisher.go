package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rental-core/internal/pkg/config"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	amqp "github.com/streadway/amqp"
)

var ErrChannelClosed = errs.New("amqp channel is not available")

// amqpChannel is the subset of *amqp.Channel the publisher needs.
type amqpChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends outbox jobs to a durable queue on the default exchange.
// Topic and job id travel as headers so consumers can route and dedupe.
type Publisher struct {
	conn    *amqp.Connection
	channel amqpChannel
	queue   string
	mu      sync.Mutex
}

func Dial(cfg config.AMQPConfig) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to RabbitMQ")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open channel")
	}
	p, err := newPublisher(ch, cfg.Queue)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	slog.Info("RabbitMQ publisher connected", "queue", cfg.Queue)
	return p, nil
}

func newPublisher(ch amqpChannel, queue string) (*Publisher, error) {
	_, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to declare queue %s", queue)
	}
	return &Publisher{channel: ch, queue: queue}, nil
}

func (p *Publisher) Publish(ctx context.Context, job shared.NotificationJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel == nil {
		return ErrChannelClosed
	}

	err := p.channel.Publish(
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    job.ID.String(),
			Type:         job.Topic,
			Timestamp:    time.Now(),
			Headers: amqp.Table{
				"topic": job.Topic,
				"kind":  job.Kind,
			},
			Body: job.Payload,
		})
	if err != nil {
		return errs.Wrapf(err, "failed to publish %s", job.Topic)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var closeErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			closeErr = errs.Wrap(err, "failed to close channel")
		}
		p.channel = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && closeErr == nil {
			closeErr = errs.Wrap(err, "failed to close connection")
		}
		p.conn = nil
	}
	return closeErr
}

// LogPublisher stands in when no broker URL is configured. Jobs are logged
// and reported as sent.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, job shared.NotificationJob) error {
	slog.InfoContext(ctx, "notification",
		"job_id", job.ID,
		"topic", job.Topic,
		"payload", string(job.Payload))
	return nil
}
