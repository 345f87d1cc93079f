package bootstrap

import (
	"context"
	"log/slog"

	"parking-app/internal/infra/broker"
	"parking-app/internal/pkg/config"
	"parking-app/internal/usecase/commands"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher dials lazily, so a broker outage never blocks startup.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) commands.EventPublisher {
	if !cfg.Broker.Enabled {
		return broker.NoopPublisher{}
	}

	pub := broker.NewAMQPPublisher(cfg.Broker)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	slog.Info("reservation events enabled", "exchange", cfg.Broker.Exchange)
	return pub
}
