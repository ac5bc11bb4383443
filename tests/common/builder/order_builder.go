//go:build unit || e2e

package builder

import (
	"time"

	"repairshop/internal/domain/order"
	"repairshop/internal/domain/party"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID          order.ID
	Client      party.Client
	Vehicle     party.Vehicle
	Mechanic    party.Mechanic
	Defect      string
	OpenedAt    time.Time
	LaborCharge decimal.Decimal

	// Status and Parts only apply to BuildReconstructed.
	Status       order.Status
	Parts        []order.PartUsage
	ClosedAt     *time.Time
	CancelReason string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:          "OS-0001",
		Client:      party.Client{ID: uuid.New(), Name: "Ana Souza", Phone: "+55 11 98888-7777"},
		Vehicle:     party.Vehicle{Plate: "BRA2E19", Model: "Onix"},
		Mechanic:    party.Mechanic{ID: uuid.New(), Name: "Carlos"},
		Defect:      "Engine noise",
		OpenedAt:    time.Date(2025, time.March, 10, 9, 5, 0, 0, time.UTC),
		LaborCharge: decimal.RequireFromString(order.DefaultLaborCharge),
		Status:      order.StatusWaiting,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithStatus(s order.Status) *OrderBuilder {
	b.Status = s
	return b
}

func (b *OrderBuilder) WithParts(parts ...order.PartUsage) *OrderBuilder {
	b.Parts = parts
	return b
}

func (b *OrderBuilder) OpenParams() order.OpenParams {
	return order.OpenParams{
		ID:          b.ID,
		Client:      b.Client,
		Vehicle:     b.Vehicle,
		Mechanic:    b.Mechanic,
		Defect:      b.Defect,
		OpenedAt:    b.OpenedAt,
		LaborCharge: b.LaborCharge,
	}
}

// Build methods
func (b *OrderBuilder) BuildDomain() (*order.ServiceOrder, error) {
	return order.Open(b.OpenParams())
}

// BuildReconstructed skips the workflow and places the order directly in Status.
func (b *OrderBuilder) BuildReconstructed() *order.ServiceOrder {
	o, err := order.Reconstruct(order.Snapshot{
		ID:           b.ID,
		Client:       b.Client,
		Vehicle:      b.Vehicle,
		Mechanic:     b.Mechanic,
		Defect:       b.Defect,
		OpenedAt:     b.OpenedAt,
		ClosedAt:     b.ClosedAt,
		Parts:        b.Parts,
		StatusTag:    b.Status.String(),
		CancelReason: b.CancelReason,
		LaborCharge:  b.LaborCharge,
	})
	if err != nil {
		panic(err)
	}
	return o
}
