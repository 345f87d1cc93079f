package bootstrap

import (
	"time"

	"parking-app/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewAppLocation,
	),
)

// NewAppLocation is the zone used for display times and daily stat buckets.
func NewAppLocation(cfg config.Config) *time.Location {
	return cfg.App.Location()
}
