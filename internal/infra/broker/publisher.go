package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"parking-app/internal/domain/reservation"
	"parking-app/internal/pkg/config"
	"parking-app/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeKind       = "topic"
	defaultDialTimeout = 2 * time.Second
)

// ErrUnavailable marks failures to reach the broker.
var ErrUnavailable = errs.New("event broker unavailable")

// AMQPPublisher sends reservation events to a durable topic exchange with
// the event type as routing key. The channel is reopened lazily after a
// failure; amqp channels are not safe for concurrent publishing.
type AMQPPublisher struct {
	url         string
	exchange    string
	dialTimeout time.Duration

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(cfg config.BrokerConfig) *AMQPPublisher {
	return &AMQPPublisher{url: cfg.URL, exchange: cfg.Exchange, dialTimeout: cfg.DialTimeout}
}

func (p *AMQPPublisher) Publish(ctx context.Context, ev reservation.Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "publish cancelled")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		return err
	}

	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		string(ev.Type),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			MessageId:    ev.ReservationID.String(),
			Type:         string(ev.Type),
			Body:         body,
		},
	)
	if err != nil {
		p.resetLocked()
		return errs.Wrapf(err, "publish %s", ev.Type)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
	return nil
}

func (p *AMQPPublisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.resetLocked()

	conn, err := dial(p.url, p.dialTimeout)
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Mark(errs.Wrap(err, "open channel"), ErrUnavailable)
	}
	if err := declareExchange(ch, p.exchange); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	p.conn, p.ch = conn, ch
	slog.Info("connected to event broker", "exchange", p.exchange)
	return nil
}

func (p *AMQPPublisher) resetLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// dial bounds both the TCP connect and the AMQP handshake. Publish holds the
// publisher lock while dialing, so an unresponsive broker must not stall it
// for amqp's 30s default.
func dial(url string, timeout time.Duration) (*amqp.Connection, error) {
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "dial broker"), ErrUnavailable)
	}
	return conn, nil
}

func declareExchange(ch *amqp.Channel, name string) error {
	if err := ch.ExchangeDeclare(name, exchangeKind, true, false, false, false, nil); err != nil {
		return errs.Wrapf(err, "declare exchange %s", name)
	}
	return nil
}

// NoopPublisher drops events; used when the broker is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, reservation.Event) error { return nil }
