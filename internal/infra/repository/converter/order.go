package converter

import (
	"fmt"
	"time"

	"repairshop/internal/domain/order"
	"repairshop/internal/domain/party"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PartUsageDoc struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderDoc struct {
	ID           string          `json:"id"`
	Client       party.Client    `json:"client"`
	Vehicle      party.Vehicle   `json:"vehicle"`
	Mechanic     party.Mechanic  `json:"mechanic"`
	Defect       string          `json:"defect"`
	OpenedAt     string          `json:"opened_at"`
	ClosedAt     *string         `json:"closed_at,omitempty"`
	Parts        []PartUsageDoc  `json:"parts"`
	Status       string          `json:"status"`
	CancelReason string          `json:"cancel_reason,omitempty"`
	LaborCharge  decimal.Decimal `json:"labor_charge"`
}

func OrderToDoc(o *order.ServiceOrder) OrderDoc {
	parts := o.Parts()
	doc := OrderDoc{
		ID:           o.ID().String(),
		Client:       o.Client(),
		Vehicle:      o.Vehicle(),
		Mechanic:     o.Mechanic(),
		Defect:       o.Defect(),
		OpenedAt:     o.OpenedAt().Format(time.RFC3339),
		Parts:        make([]PartUsageDoc, len(parts)),
		Status:       o.Status().String(),
		CancelReason: o.CancelReason(),
		LaborCharge:  o.LaborCharge(),
	}
	if c := o.ClosedAt(); c != nil {
		s := c.Format(time.RFC3339)
		doc.ClosedAt = &s
	}
	for i, p := range parts {
		doc.Parts[i] = PartUsageDoc{
			ProductID: p.ProductID(),
			Name:      p.Name(),
			Quantity:  p.Quantity(),
			UnitPrice: p.UnitPrice(),
		}
	}
	return doc
}

func OrderFromDoc(doc OrderDoc) (*order.ServiceOrder, error) {
	openedAt, err := time.Parse(time.RFC3339, doc.OpenedAt)
	if err != nil {
		return nil, fmt.Errorf("order %s: invalid opened_at: %w", doc.ID, err)
	}
	var closedAt *time.Time
	if doc.ClosedAt != nil {
		t, err := time.Parse(time.RFC3339, *doc.ClosedAt)
		if err != nil {
			return nil, fmt.Errorf("order %s: invalid closed_at: %w", doc.ID, err)
		}
		closedAt = &t
	}
	parts := make([]order.PartUsage, len(doc.Parts))
	for i, p := range doc.Parts {
		parts[i] = order.ReconstructPartUsage(p.ProductID, p.Name, p.Quantity, p.UnitPrice)
	}

	o, err := order.Reconstruct(order.Snapshot{
		ID:           order.ID(doc.ID),
		Client:       doc.Client,
		Vehicle:      doc.Vehicle,
		Mechanic:     doc.Mechanic,
		Defect:       doc.Defect,
		OpenedAt:     openedAt,
		ClosedAt:     closedAt,
		Parts:        parts,
		StatusTag:    doc.Status,
		CancelReason: doc.CancelReason,
		LaborCharge:  doc.LaborCharge,
	})
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", doc.ID, err)
	}
	return o, nil
}
