package order

import (
	"fmt"
	"strings"
	"time"

	"repairshop/internal/domain/party"

	"github.com/shopspring/decimal"
)

const (
	DefaultLaborCharge = "150.00"
	currency           = "R$"
	extractDateLayout  = "02/01/2006 15:04"
)

type ExtractLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

type Extract struct {
	OrderID    ID
	OpenedAt   time.Time
	Client     party.Client
	Vehicle    party.Vehicle
	Status     Status
	Lines      []ExtractLine
	PartsTotal decimal.Decimal
	Labor      decimal.Decimal
	Total      decimal.Decimal
}

// GenerateExtract prices the order as it stands. It works in any state and
// has no side effects.
func GenerateExtract(o *ServiceOrder) Extract {
	ex := Extract{
		OrderID:    o.id,
		OpenedAt:   o.openedAt,
		Client:     o.client,
		Vehicle:    o.vehicle,
		Status:     o.status,
		Lines:      make([]ExtractLine, 0, len(o.parts)),
		PartsTotal: decimal.Zero,
		Labor:      o.laborCharge,
	}
	for _, p := range o.parts {
		sub := p.Subtotal()
		ex.Lines = append(ex.Lines, ExtractLine{
			Name:      p.name,
			Quantity:  p.quantity,
			UnitPrice: p.unitPrice,
			Subtotal:  sub,
		})
		ex.PartsTotal = ex.PartsTotal.Add(sub)
	}
	ex.Total = ex.PartsTotal.Add(ex.Labor)
	return ex
}

func (e Extract) Statement() string {
	var b strings.Builder

	b.WriteString("\n================[ SERVICE ORDER STATEMENT ]================\n")
	fmt.Fprintf(&b, "Order No.: %s\n", e.OrderID)
	fmt.Fprintf(&b, "Opened: %s\n", e.OpenedAt.Format(extractDateLayout))
	fmt.Fprintf(&b, "Client: %s\n", e.Client.Name)
	fmt.Fprintf(&b, "Vehicle: %s | Plate: %s\n", e.Vehicle.Model, e.Vehicle.Plate)
	fmt.Fprintf(&b, "Status: %s\n", e.Status)
	b.WriteString("-----------------------------------------------------------\n")
	b.WriteString("PARTS AND SERVICES:\n\n")

	if len(e.Lines) == 0 {
		b.WriteString("  - No parts used.\n")
	} else {
		fmt.Fprintf(&b, "  %-15s %-5s %-11s %-11s\n", "Part", "Qty.", "Unit price", "Subtotal")
		b.WriteString("  -------------------------------------------------------\n")
		for _, l := range e.Lines {
			fmt.Fprintf(&b, "  %-15s %-5d %s %-8s %s %-8s\n",
				l.Name, l.Quantity, currency, l.UnitPrice.StringFixed(2), currency, l.Subtotal.StringFixed(2))
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  + Labor (flat rate): ............................ %s %s\n", currency, e.Labor.StringFixed(2))
	b.WriteString("-----------------------------------------------------------\n")
	fmt.Fprintf(&b, "  TOTAL DUE: ...................................... %s %s\n", currency, e.Total.StringFixed(2))
	b.WriteString("===========================================================\n")

	return b.String()
}
