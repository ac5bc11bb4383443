package usecase

//go:generate mockgen -source=appointment.go -destination=../../tests/mock/commands/appointment.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/domain/finance"
	"repairshop/internal/domain/party"
	"repairshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AppointmentCommands interface {
	BookAppointment(ctx context.Context, params BookAppointmentParams) (*AppointmentView, error)
	ReleaseAppointment(ctx context.Context, id uuid.UUID) error
	CancelAppointment(ctx context.Context, id uuid.UUID, reason string) (*CancelAppointmentResult, error)
}

type BookAppointmentParams struct {
	Client      party.Client
	Vehicle     party.Vehicle
	Mechanic    party.Mechanic
	ServiceType string
	LiftID      *int
	ScheduledAt time.Time
}

type CancelAppointmentResult struct {
	AppointmentID uuid.UUID
	FeeCharged    bool
	Fee           decimal.Decimal
}

func (w *Workshop) BookAppointment(ctx context.Context, params BookAppointmentParams) (*AppointmentView, error) {
	st, err := agenda.ParseServiceType(params.ServiceType)
	if err != nil {
		return nil, err
	}
	var lift *agenda.Lift
	if params.LiftID != nil {
		l, err := agenda.NewLift(*params.LiftID)
		if err != nil {
			return nil, err
		}
		lift = &l
	}
	appt, err := agenda.NewAppointment(uuid.Nil, params.Client, params.Vehicle, params.Mechanic, st, lift, params.ScheduledAt)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	if err := w.grid.Reserve(appt); err != nil {
		return nil, err
	}
	if err := w.saveGrid(ctx); err != nil {
		return nil, err
	}

	w.logger.Info("Appointment booked",
		slog.String("appointment_id", appt.ID().String()),
		slog.String("date", appt.Date().String()),
		slog.Int("hour", appt.Hour()))
	return newAppointmentView(appt, w.grid.Hours()), nil
}

// ReleaseAppointment frees the slot without any charge.
func (w *Workshop) ReleaseAppointment(ctx context.Context, id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return err
	}

	appt, err := w.findAppointment(id)
	if err != nil {
		return err
	}
	if err := w.grid.Release(appt); err != nil {
		return err
	}
	return w.saveGrid(ctx)
}

// CancelAppointment frees the slot and, when the appointment is for today,
// books a cancellation fee in the ledger.
func (w *Workshop) CancelAppointment(ctx context.Context, id uuid.UUID, reason string) (*CancelAppointmentResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	appt, err := w.findAppointment(id)
	if err != nil {
		return nil, err
	}
	if err := w.grid.Release(appt); err != nil {
		return nil, err
	}
	if err := w.saveGrid(ctx); err != nil {
		return nil, err
	}

	result := &CancelAppointmentResult{AppointmentID: appt.ID(), Fee: decimal.Zero}
	fee, err := finance.CancellationFee(appt, w.labor, reason, w.clock.Now())
	if err != nil {
		return nil, err
	}
	if fee == nil {
		return result, nil
	}
	if err := w.ledger.Append(ctx, fee); err != nil {
		return nil, errs.Wrap(errs.Mark(err, ErrPersistenceFailed), "record cancellation fee")
	}
	result.FeeCharged = true
	result.Fee = fee.Amount()

	w.logger.Info("Same-day appointment cancellation charged",
		slog.String("appointment_id", appt.ID().String()),
		slog.String("fee", fee.Amount().StringFixed(2)))
	return result, nil
}
