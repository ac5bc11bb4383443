package usecase

//go:generate mockgen -source=queries.go -destination=../../tests/mock/queries/queries.go -package=queriesmock

import (
	"context"
	"errors"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/domain/order"
	"repairshop/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidSearch = errors.New("search needs exactly one of date or client id")

type WorkshopQueries interface {
	GetOrder(ctx context.Context, id order.ID) (*OrderView, error)
	GetStatus(ctx context.Context, id order.ID) (order.Status, error)
	GetExtract(ctx context.Context, id order.ID) (*ExtractView, error)
	ListOrders(ctx context.Context, activeOnly bool) ([]*OrderView, error)
	SlotsForDay(ctx context.Context, date agenda.Date) (*DayScheduleView, error)
	BookedDates(ctx context.Context) ([]agenda.Date, error)
	SearchAppointments(ctx context.Context, search AppointmentSearch) ([]*AppointmentView, error)
	ListProducts(ctx context.Context) ([]*ProductView, error)
	LedgerEntries(ctx context.Context) (*LedgerView, error)
}

// AppointmentSearch filters by day or by client; exactly one must be set.
type AppointmentSearch struct {
	Date     *agenda.Date
	ClientID *uuid.UUID
}

func (w *Workshop) GetOrder(ctx context.Context, id order.ID) (*OrderView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	o, err := w.findOrder(id)
	if err != nil {
		return nil, err
	}
	return newOrderView(o), nil
}

func (w *Workshop) GetStatus(ctx context.Context, id order.ID) (order.Status, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return "", err
	}
	o, err := w.findOrder(id)
	if err != nil {
		return "", err
	}
	return w.machine.Status(o), nil
}

func (w *Workshop) GetExtract(ctx context.Context, id order.ID) (*ExtractView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	o, err := w.findOrder(id)
	if err != nil {
		return nil, err
	}
	return newExtractView(order.GenerateExtract(o)), nil
}

func (w *Workshop) ListOrders(ctx context.Context, activeOnly bool) ([]*OrderView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	views := make([]*OrderView, 0, len(w.orders))
	for _, o := range w.orders {
		if activeOnly && !o.IsActive() {
			continue
		}
		views = append(views, newOrderView(o))
	}
	return views, nil
}

func (w *Workshop) SlotsForDay(ctx context.Context, date agenda.Date) (*DayScheduleView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	hours := w.grid.Hours()
	slots := w.grid.SlotsForDay(date)
	view := &DayScheduleView{Date: date.String(), Slots: make([]SlotView, len(slots))}
	for i, a := range slots {
		hour, _ := hours.HourOf(i)
		view.Slots[i] = SlotView{Index: i, Hour: hour, Appointment: newAppointmentView(a, hours)}
	}
	return view, nil
}

func (w *Workshop) BookedDates(ctx context.Context) ([]agenda.Date, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return w.grid.BookedDates(), nil
}

func (w *Workshop) SearchAppointments(ctx context.Context, search AppointmentSearch) ([]*AppointmentView, error) {
	if (search.Date == nil) == (search.ClientID == nil) {
		return nil, ErrInvalidSearch
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	var found []*agenda.Appointment
	if search.Date != nil {
		found = w.grid.OnDate(*search.Date)
	} else {
		found = w.grid.ForClient(*search.ClientID)
	}
	views := make([]*AppointmentView, len(found))
	for i, a := range found {
		views[i] = newAppointmentView(a, w.grid.Hours())
	}
	return views, nil
}

func (w *Workshop) ListProducts(ctx context.Context) ([]*ProductView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	views := make([]*ProductView, len(w.products))
	for i, p := range w.products {
		views[i] = newProductView(p)
	}
	return views, nil
}

func (w *Workshop) LedgerEntries(ctx context.Context) (*LedgerView, error) {
	entries, err := w.ledger.Entries(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.Mark(err, ErrPersistenceFailed), "load ledger")
	}
	return newLedgerView(entries), nil
}
