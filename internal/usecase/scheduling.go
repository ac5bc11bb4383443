package usecase

import (
	"context"
	"log/slog"
	"strings"

	"repairshop/internal/domain/order"
	"repairshop/internal/domain/party"
	"repairshop/internal/pkg/errs"

	"github.com/google/uuid"
)

type OpenOrderParams struct {
	AppointmentID uuid.UUID
	Defect        string
	// Mechanic overrides the appointment's mechanic when set.
	Mechanic party.Mechanic
}

// OpenOrderResult reports the order and what became durable. Opening and
// releasing are two separately persisted steps. The order is never undone once
// opened: a failed order save sets OrderSaved to false and the slot is still
// released, and a failed release leaves the order in place with SlotReleased
// set to false.
type OpenOrderResult struct {
	Order         *OrderView
	OrderSaved    bool
	SaveDetail    string
	SlotReleased  bool
	ReleaseDetail string
}

func (w *Workshop) OpenOrderFromAppointment(ctx context.Context, params OpenOrderParams) (*OpenOrderResult, error) {
	if strings.TrimSpace(params.Defect) == "" {
		return nil, order.ErrBlankDefect
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	appt, err := w.findAppointment(params.AppointmentID)
	if err != nil {
		return nil, err
	}

	mechanic := appt.Mechanic()
	if !params.Mechanic.IsZero() {
		mechanic = params.Mechanic
	}

	id, err := w.ids.Next(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.Mark(err, ErrPersistenceFailed), "allocate order number")
	}

	o, err := w.machine.Open(ctx, order.OpenParams{
		ID:          id,
		Client:      appt.Client(),
		Vehicle:     appt.Vehicle(),
		Mechanic:    mechanic,
		Defect:      params.Defect,
		OpenedAt:    w.clock.Now(),
		LaborCharge: w.labor,
	})
	if err != nil {
		return nil, err
	}

	w.orders = append(w.orders, o)
	w.orderByID[o.ID()] = o

	result := &OpenOrderResult{Order: newOrderView(o), OrderSaved: true, SlotReleased: true}
	if err := w.saveOrders(ctx); err != nil {
		result.OrderSaved = false
		result.SaveDetail = err.Error()
		w.logger.Error("Order opened but not saved",
			slog.String("order_id", o.ID().String()),
			slog.String("error", err.Error()))
	}

	if err := w.grid.Release(appt); err != nil {
		result.SlotReleased = false
		result.ReleaseDetail = err.Error()
		w.logger.Warn("Order opened but slot was not released",
			slog.String("order_id", o.ID().String()),
			slog.String("appointment_id", appt.ID().String()),
			slog.String("error", err.Error()))
		return result, nil
	}
	if err := w.saveGrid(ctx); err != nil {
		result.ReleaseDetail = err.Error()
		w.logger.Error("Order opened but released slot was not saved",
			slog.String("order_id", o.ID().String()),
			slog.String("error", err.Error()))
	}

	w.logger.Info("Service order opened",
		slog.String("order_id", o.ID().String()),
		slog.String("appointment_id", appt.ID().String()),
		slog.Bool("order_saved", result.OrderSaved))
	return result, nil
}
