package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"parking-app/internal/domain/reservation"
	"parking-app/internal/pkg/config"
	"parking-app/internal/pkg/errs"
)

const routingPattern = "reservation.*"

type Handler func(ctx context.Context, ev reservation.Event) error

type Consumer struct {
	url         string
	exchange    string
	queue       string
	dialTimeout time.Duration
	handle      Handler
}

func NewConsumer(cfg config.BrokerConfig, handle Handler) *Consumer {
	return &Consumer{
		url:         cfg.URL,
		exchange:    cfg.Exchange,
		queue:       cfg.Queue,
		dialTimeout: cfg.DialTimeout,
		handle:      handle,
	}
}

// Run consumes until ctx is cancelled, reconnecting with exponential
// backoff capped at 30s.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		err := c.consumeOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}

		slog.Warn("event consumer disconnected", "error", err, "retry_in", backoff.String())
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}

func (c *Consumer) consumeOnce(ctx context.Context) error {
	conn, err := dial(c.url, c.dialTimeout)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "open channel")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		slog.Warn("failed to set consumer QoS", "error", err.Error())
	}
	if err := declareExchange(ch, c.exchange); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return errs.Wrapf(err, "declare queue %s", c.queue)
	}
	if err := ch.QueueBind(c.queue, routingPattern, c.exchange, false, nil); err != nil {
		return errs.Wrapf(err, "bind queue %s", c.queue)
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errs.Wrapf(err, "consume %s", c.queue)
	}
	slog.Info("event consumer started", "queue", c.queue, "exchange", c.exchange)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errs.New("deliveries channel closed")
			}
			c.process(ctx, d.Body, d)
		}
	}
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// process never requeues: a message that fails once would fail again.
func (c *Consumer) process(ctx context.Context, body []byte, ack acknowledger) {
	var ev reservation.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		slog.Warn("dropping malformed event", "error", err.Error())
		_ = ack.Nack(false, false)
		return
	}

	if err := c.handle(ctx, ev); err != nil {
		slog.Warn("event handler failed", "type", ev.Type, "reservation_id", ev.ReservationID, "error", err.Error())
		_ = ack.Nack(false, false)
		return
	}
	_ = ack.Ack(false)
}
