package components

import (
	"context"
	"log/slog"
	"time"

	"repairshop/internal/domain/order"
	"repairshop/internal/pkg/clock"
	"repairshop/internal/pkg/config"
	"repairshop/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		NewWorkshopClock,
		NewWorkshop,
		func(w *usecase.Workshop) usecase.AppointmentCommands { return w },
		func(w *usecase.Workshop) usecase.OrderCommands { return w },
		func(w *usecase.Workshop) usecase.CatalogCommands { return w },
		func(w *usecase.Workshop) usecase.WorkshopQueries { return w },
	),
	fx.Invoke(loadWorkshop),
)

// NewWorkshopClock reads wall time in the workshop's zone so that dates and
// slot hours match what the front desk sees.
func NewWorkshopClock(cfg config.Config) clock.Clock {
	return clock.NewRealClockIn(time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset))
}

type WorkshopParams struct {
	fx.In

	Config   config.Config
	Agenda   usecase.AgendaRepository
	Orders   usecase.OrderRepository
	Products usecase.ProductRepository
	Ledger   usecase.FinanceLedger
	IDs      order.IDGenerator
	Machine  *order.StateMachine
	Clock    clock.Clock
	Logger   *slog.Logger
}

func NewWorkshop(p WorkshopParams) (*usecase.Workshop, error) {
	labor, err := p.Config.Workshop.Labor()
	if err != nil {
		return nil, err
	}
	return usecase.NewWorkshop(usecase.Deps{
		Agenda:   p.Agenda,
		Orders:   p.Orders,
		Products: p.Products,
		Ledger:   p.Ledger,
		IDs:      p.IDs,
		Machine:  p.Machine,
		Clock:    p.Clock,
		Labor:    labor,
		Logger:   p.Logger,
	}), nil
}

func loadWorkshop(lc fx.Lifecycle, w *usecase.Workshop) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return w.Load(ctx)
		},
	})
}
