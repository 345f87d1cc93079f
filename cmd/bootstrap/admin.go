package bootstrap

import (
	"context"

	"parking-app/internal/pkg/config"
	"parking-app/internal/usecase/commands"

	"go.uber.org/fx"
)

var AdminModule = fx.Module("admin",
	fx.Invoke(EnsureAdmin),
)

// EnsureAdmin seeds the admin account before the server accepts requests.
func EnsureAdmin(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return auth.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
		},
	})
}
