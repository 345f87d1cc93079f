// Command notifier consumes reservation events and emits user-facing
// notices. Delivery is a structured log line per event.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"parking-app/internal/domain/reservation"
	"parking-app/internal/handler/middleware"
	"parking-app/internal/infra/broker"
	"parking-app/internal/pkg/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	loc := cfg.App.Location()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := broker.NewConsumer(cfg.Broker, func(_ context.Context, ev reservation.Event) error {
		switch ev.Type {
		case reservation.EventOpened:
			logger.Info("spot reserved",
				"user_id", ev.UserID,
				"reservation_id", ev.ReservationID,
				"lot_id", ev.LotID,
				"since", ev.OccurredAt.In(loc).Format("2006-01-02 15:04"),
			)
		case reservation.EventClosed:
			logger.Info("spot released",
				"user_id", ev.UserID,
				"reservation_id", ev.ReservationID,
				"hours", ev.DurationHours,
				"amount_cents", ev.AmountCents,
			)
		default:
			logger.Warn("unknown event type", "type", ev.Type)
		}
		return nil
	})

	logger.Info("notifier started", "exchange", cfg.Broker.Exchange, "queue", cfg.Broker.Queue)
	if err := consumer.Run(ctx); err != nil {
		logger.Error("notifier stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("notifier stopped")
}
