package bootstrap

import (
	"fmt"
	"time"

	"repairshop/internal/pkg/config"
	"repairshop/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	return JWTServiceFrom(cfg.JWT)
}

func JWTServiceFrom(cfg config.JWTConfig) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	return jwt.NewService(cfg.Secret, duration), nil
}
