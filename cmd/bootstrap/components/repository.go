package components

import (
	"fmt"
	"log/slog"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/domain/order"
	"repairshop/internal/infra/repository"
	"repairshop/internal/infra/store"
	"repairshop/internal/pkg/config"
	"repairshop/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewWorkshopHours,
		NewCatalogSeed,
		NewOrderIDGenerator,
		fx.Annotate(
			repository.NewAgendaRepository,
			fx.As(new(usecase.AgendaRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(usecase.ProductRepository)),
		),
		fx.Annotate(
			repository.NewLedgerRepository,
			fx.As(new(usecase.FinanceLedger)),
		),
	),
)

func NewWorkshopHours(cfg config.Config) (agenda.Hours, error) {
	hours := agenda.Hours{
		MorningStart:   cfg.Workshop.MorningStart,
		MorningEnd:     cfg.Workshop.MorningEnd,
		AfternoonStart: cfg.Workshop.AfternoonStart,
		AfternoonEnd:   cfg.Workshop.AfternoonEnd,
	}
	if err := hours.Validate(); err != nil {
		return agenda.Hours{}, fmt.Errorf("workshop hours %+v: %w", hours, err)
	}
	return hours, nil
}

// NewCatalogSeed returns nil when no seed file is configured.
func NewCatalogSeed(cfg config.Config) (*repository.CatalogSeed, error) {
	return repository.LoadCatalogSeed(cfg.Store.CatalogSeedFile)
}

func NewOrderIDGenerator(cfg config.Config, s store.Store, logger *slog.Logger) (order.IDGenerator, error) {
	switch cfg.Workshop.OrderIDs {
	case config.OrderIDsSequence, "":
		return repository.NewSequenceIDGenerator(s, logger), nil
	case config.OrderIDsUUID:
		return repository.UUIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown WORKSHOP_ORDER_IDS %q", cfg.Workshop.OrderIDs)
	}
}
