package bootstrap

import (
	"parking-app/internal/pkg/config"
	"parking-app/internal/pkg/jwt"
	"parking-app/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		func(s *jwt.Service) commands.TokenIssuer { return s },
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	return jwt.NewServiceFromConfig(cfg.JWT)
}
