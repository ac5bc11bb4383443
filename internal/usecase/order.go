package usecase

//go:generate mockgen -source=order.go -destination=../../tests/mock/commands/order.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"repairshop/internal/domain/catalog"
	"repairshop/internal/domain/finance"
	"repairshop/internal/domain/order"
	"repairshop/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderCommands interface {
	OpenOrderFromAppointment(ctx context.Context, params OpenOrderParams) (*OpenOrderResult, error)
	StartInspection(ctx context.Context, id order.ID) (*OrderView, error)
	StartService(ctx context.Context, id order.ID) (*OrderView, error)
	AddPart(ctx context.Context, id order.ID, productID uuid.UUID, quantity int) (*OrderView, error)
	FinishService(ctx context.Context, id order.ID) (*OrderView, error)
	CancelOrder(ctx context.Context, id order.ID, reason string) (*OrderView, error)
}

func (w *Workshop) StartInspection(ctx context.Context, id order.ID) (*OrderView, error) {
	return w.mutateOrder(ctx, id, func(o *order.ServiceOrder) error {
		return w.machine.StartInspection(ctx, o)
	})
}

func (w *Workshop) StartService(ctx context.Context, id order.ID) (*OrderView, error) {
	return w.mutateOrder(ctx, id, func(o *order.ServiceOrder) error {
		return w.machine.StartService(ctx, o)
	})
}

func (w *Workshop) CancelOrder(ctx context.Context, id order.ID, reason string) (*OrderView, error) {
	return w.mutateOrder(ctx, id, func(o *order.ServiceOrder) error {
		return w.machine.Cancel(ctx, o, reason)
	})
}

// AddPart consumes stock for an order in service. Running short of stock is
// reported as catalog.ErrInsufficientStock with nothing changed.
func (w *Workshop) AddPart(ctx context.Context, id order.ID, productID uuid.UUID, quantity int) (*OrderView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	o, err := w.findOrder(id)
	if err != nil {
		return nil, err
	}
	product, err := w.findProduct(productID)
	if err != nil {
		return nil, err
	}

	usage, err := w.machine.AddPart(ctx, o, product, quantity)
	if errors.Is(err, catalog.ErrInsufficientStock) {
		w.logger.Warn("Part not added: insufficient stock",
			slog.String("order_id", id.String()),
			slog.String("product_id", productID.String()),
			slog.Int("requested", quantity),
			slog.Int("available", product.Stock()))
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if err := w.saveProducts(ctx); err != nil {
		return nil, err
	}
	if err := w.saveOrders(ctx); err != nil {
		return nil, err
	}

	w.logger.Info("Part added to order",
		slog.String("order_id", id.String()),
		slog.String("product", usage.Name()),
		slog.Int("quantity", usage.Quantity()),
		slog.String("subtotal", usage.Subtotal().StringFixed(2)))
	return newOrderView(o), nil
}

// FinishService closes the order and informs the ledger of its total. The
// state machine rejects a second finish, so the ledger is told here whatever
// the order save reports, and hears about each order once.
func (w *Workshop) FinishService(ctx context.Context, id order.ID) (*OrderView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	o, err := w.findOrder(id)
	if err != nil {
		return nil, err
	}
	if err := w.machine.FinishService(ctx, o); err != nil {
		return nil, err
	}
	saveErr := w.saveOrders(ctx)
	if saveErr != nil {
		w.logger.Error("Finalized order not saved",
			slog.String("order_id", id.String()),
			slog.String("error", saveErr.Error()))
	}

	extract := order.GenerateExtract(o)
	entries, err := finance.ForFinalizedOrder(o, extract.Total, *o.ClosedAt())
	if err != nil {
		return nil, err
	}
	if err := w.ledger.Append(ctx, entries...); err != nil {
		return nil, errs.Wrap(errs.Mark(err, ErrPersistenceFailed), "record finalized order in ledger")
	}
	if saveErr != nil {
		return nil, saveErr
	}

	w.logger.Info("Service order finalized",
		slog.String("order_id", id.String()),
		slog.String("total", extract.Total.StringFixed(2)))
	return newOrderView(o), nil
}

func (w *Workshop) mutateOrder(ctx context.Context, id order.ID, apply func(*order.ServiceOrder) error) (*OrderView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	o, err := w.findOrder(id)
	if err != nil {
		return nil, err
	}
	if err := apply(o); err != nil {
		return nil, err
	}
	if err := w.saveOrders(ctx); err != nil {
		return nil, err
	}

	w.logger.Info("Service order transitioned",
		slog.String("order_id", id.String()),
		slog.String("status", o.Status().String()))
	return newOrderView(o), nil
}
