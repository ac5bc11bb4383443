package order

//go:generate mockgen -source=factory.go -destination=../../../tests/mock/repository/ids.go -package=repositorymock

import (
	"context"
	"time"

	"repairshop/internal/domain/party"

	"github.com/shopspring/decimal"
)

// IDGenerator hands out order numbers. Implementations own the sequence.
type IDGenerator interface {
	Next(ctx context.Context) (ID, error)
}

type OpenParams struct {
	ID          ID
	Client      party.Client
	Vehicle     party.Vehicle
	Mechanic    party.Mechanic
	Defect      string
	OpenedAt    time.Time
	LaborCharge decimal.Decimal
}

// Open builds a new order in the Waiting state.
func Open(p OpenParams) (*ServiceOrder, error) {
	defect := normalizeDefect(p.Defect)
	switch {
	case p.ID.IsZero():
		return nil, ErrMissingID
	case p.Client.IsZero():
		return nil, ErrMissingClient
	case p.Vehicle.IsZero():
		return nil, ErrMissingVehicle
	case p.Mechanic.IsZero():
		return nil, ErrMissingMechanic
	case defect == "":
		return nil, ErrBlankDefect
	case p.LaborCharge.IsNegative():
		return nil, ErrNegativeLabor
	}

	return &ServiceOrder{
		id:          p.ID,
		client:      p.Client,
		vehicle:     p.Vehicle,
		mechanic:    p.Mechanic,
		defect:      defect,
		openedAt:    p.OpenedAt,
		status:      StatusWaiting,
		laborCharge: p.LaborCharge,
	}, nil
}

type Snapshot struct {
	ID           ID
	Client       party.Client
	Vehicle      party.Vehicle
	Mechanic     party.Mechanic
	Defect       string
	OpenedAt     time.Time
	ClosedAt     *time.Time
	Parts        []PartUsage
	StatusTag    string
	CancelReason string
	LaborCharge  decimal.Decimal
}

// Reconstruct rehydrates an order from storage; the state comes from the
// persisted tag, never from replaying transitions.
func Reconstruct(s Snapshot) (*ServiceOrder, error) {
	status, err := ParseStatus(s.StatusTag)
	if err != nil {
		return nil, err
	}
	o := &ServiceOrder{
		id:           s.ID,
		client:       s.Client,
		vehicle:      s.Vehicle,
		mechanic:     s.Mechanic,
		defect:       s.Defect,
		openedAt:     s.OpenedAt,
		parts:        append([]PartUsage(nil), s.Parts...),
		status:       status,
		cancelReason: s.CancelReason,
		laborCharge:  s.LaborCharge,
	}
	if s.ClosedAt != nil {
		o.close(*s.ClosedAt)
	}
	return o, nil
}
