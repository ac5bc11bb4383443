package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"repairshop/internal/infra/store"
	"repairshop/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

const storeOpenTimeout = 10 * time.Second

func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (store.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
	defer cancel()

	s, cleanup, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return s, nil
}
