package finance

import (
	"errors"
	"fmt"
	"time"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidKind   = errors.New("invalid ledger entry kind")
	ErrInvalidAmount = errors.New("ledger amount must be positive")
	ErrNotFinalized  = errors.New("service order is not finalized")
)

type Kind string

const (
	KindServiceRevenue     Kind = "service_revenue"
	KindMechanicCommission Kind = "mechanic_commission"
	KindCancellationFee    Kind = "cancellation_fee"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindServiceRevenue, KindMechanicCommission, KindCancellationFee:
		return true
	default:
		return false
	}
}

// IsExpense reports whether the entry leaves the workshop's cash.
func (k Kind) IsExpense() bool {
	return k == KindMechanicCommission
}

var (
	CommissionRate      = decimal.RequireFromString("0.05")
	CancellationFeeRate = decimal.RequireFromString("0.20")
)

type Entry struct {
	id          uuid.UUID
	kind        Kind
	amount      decimal.Decimal
	reference   string
	description string
	recordedAt  time.Time
}

func NewEntry(kind Kind, amount decimal.Decimal, reference, description string, at time.Time) (*Entry, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Entry{
		id:          uuid.New(),
		kind:        kind,
		amount:      amount.Round(2),
		reference:   reference,
		description: description,
		recordedAt:  at,
	}, nil
}

func ReconstructEntry(id uuid.UUID, kind Kind, amount decimal.Decimal, reference, description string, at time.Time) *Entry {
	return &Entry{id: id, kind: kind, amount: amount, reference: reference, description: description, recordedAt: at}
}

func (e *Entry) ID() uuid.UUID           { return e.id }
func (e *Entry) Kind() Kind              { return e.kind }
func (e *Entry) Amount() decimal.Decimal { return e.amount }
func (e *Entry) Reference() string       { return e.reference }
func (e *Entry) Description() string     { return e.description }
func (e *Entry) RecordedAt() time.Time   { return e.recordedAt }

// ForFinalizedOrder books the order's revenue and the mechanic's commission.
func ForFinalizedOrder(o *order.ServiceOrder, total decimal.Decimal, at time.Time) ([]*Entry, error) {
	if o.Status() != order.StatusFinalized {
		return nil, ErrNotFinalized
	}
	if !total.IsPositive() {
		return nil, nil
	}
	revenue, err := NewEntry(KindServiceRevenue, total, o.ID().String(),
		fmt.Sprintf("Service order %s for %s", o.ID(), o.Client().Name), at)
	if err != nil {
		return nil, err
	}
	commission, err := NewEntry(KindMechanicCommission, total.Mul(CommissionRate), o.ID().String(),
		fmt.Sprintf("Commission (5%%) on order %s for mechanic %s", o.ID(), o.Mechanic().Name), at)
	if err != nil {
		return nil, err
	}
	return []*Entry{revenue, commission}, nil
}

// CancellationFee charges a share of the labor charge when an appointment is
// cancelled on its own day. Other days return nil.
func CancellationFee(appt *agenda.Appointment, labor decimal.Decimal, reason string, now time.Time) (*Entry, error) {
	fee := labor.Mul(CancellationFeeRate)
	if agenda.DateOf(now) != appt.Date() || !fee.IsPositive() {
		return nil, nil
	}
	desc := fmt.Sprintf("Same-day cancellation for %s", appt.Client().Name)
	if reason != "" {
		desc += ": " + reason
	}
	return NewEntry(KindCancellationFee, fee, appt.ID().String(), desc, now)
}

// Balance is revenue minus expenses.
func Balance(entries []*Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.kind.IsExpense() {
			total = total.Sub(e.amount)
		} else {
			total = total.Add(e.amount)
		}
	}
	return total
}
