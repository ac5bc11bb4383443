package order

import (
	"strings"
	"time"

	"repairshop/internal/domain/party"

	"github.com/shopspring/decimal"
)

type ServiceOrder struct {
	id           ID
	client       party.Client
	vehicle      party.Vehicle
	mechanic     party.Mechanic
	defect       string
	openedAt     time.Time
	closedAt     *time.Time
	parts        []PartUsage
	status       Status
	cancelReason string
	laborCharge  decimal.Decimal
}

func (o *ServiceOrder) ID() ID                       { return o.id }
func (o *ServiceOrder) Client() party.Client         { return o.client }
func (o *ServiceOrder) Vehicle() party.Vehicle       { return o.vehicle }
func (o *ServiceOrder) Mechanic() party.Mechanic     { return o.mechanic }
func (o *ServiceOrder) Defect() string               { return o.defect }
func (o *ServiceOrder) OpenedAt() time.Time          { return o.openedAt }
func (o *ServiceOrder) Status() Status               { return o.status }
func (o *ServiceOrder) CancelReason() string         { return o.cancelReason }
func (o *ServiceOrder) LaborCharge() decimal.Decimal { return o.laborCharge }

func (o *ServiceOrder) ClosedAt() *time.Time {
	if o.closedAt == nil {
		return nil
	}
	t := *o.closedAt
	return &t
}

func (o *ServiceOrder) Parts() []PartUsage {
	out := make([]PartUsage, len(o.parts))
	copy(out, o.parts)
	return out
}

func (o *ServiceOrder) IsActive() bool {
	return !o.status.IsTerminal()
}

func (o *ServiceOrder) event(at time.Time) Event {
	return Event{
		OrderID: o.id,
		Status:  o.status,
		Client:  o.client,
		Vehicle: o.vehicle,
		At:      at,
	}
}

func (o *ServiceOrder) transition(op Operation) error {
	to, err := next(o.status, op)
	if err != nil {
		return err
	}
	o.status = to
	return nil
}

func (o *ServiceOrder) close(at time.Time) {
	t := at
	o.closedAt = &t
}

func normalizeDefect(defect string) string {
	return strings.TrimSpace(defect)
}
