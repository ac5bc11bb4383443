package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"repairshop/internal/domain/order"
	"repairshop/internal/infra/notify"
	"repairshop/internal/pkg/clock"
	"repairshop/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// NotifyModule wires the observers fired by the order state machine.
var NotifyModule = fx.Module("notify",
	fx.Provide(
		fx.Annotate(
			NewRegistry,
			fx.As(new(prometheus.Registerer)),
			fx.As(new(prometheus.Gatherer)),
		),
		NewSender,
		NewNotifier,
		NewStateMachine,
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewSender(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (notify.Sender, error) {
	switch cfg.Notify.Driver {
	case config.NotifyDriverLog, "":
		return notify.NewLogSender(logger), nil
	case config.NotifyDriverNATS:
		conn, err := notify.ConnectNATS(cfg.Notify.NATSURL, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to NATS at %s: %w", cfg.Notify.NATSURL, err)
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return conn.Drain()
			},
		})
		logger.Info("Order notifications published to NATS", slog.String("subject", cfg.Notify.Subject))
		return notify.NewNATSSender(conn, cfg.Notify.Subject), nil
	default:
		return nil, fmt.Errorf("unknown NOTIFY_DRIVER %q", cfg.Notify.Driver)
	}
}

func NewNotifier(sender notify.Sender, reg prometheus.Registerer, logger *slog.Logger) (order.Notifier, error) {
	metrics, err := notify.NewMetricsObserver(reg)
	if err != nil {
		return nil, err
	}
	return order.Notifiers{
		notify.NewMessageObserver(sender, logger),
		metrics,
	}, nil
}

func NewStateMachine(clk clock.Clock, notifier order.Notifier) *order.StateMachine {
	return order.NewStateMachine(clk, notifier)
}
