package usecase

import (
	"time"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/domain/catalog"
	"repairshop/internal/domain/finance"
	"repairshop/internal/domain/order"
	"repairshop/internal/domain/party"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models handed to the handler layer

type AppointmentView struct {
	ID          uuid.UUID
	Client      party.Client
	Vehicle     party.Vehicle
	Mechanic    party.Mechanic
	ServiceType string
	LiftID      *int
	ScheduledAt time.Time
	Date        string
	Slot        int
}

type SlotView struct {
	Index       int
	Hour        int
	Appointment *AppointmentView
}

type DayScheduleView struct {
	Date  string
	Slots []SlotView
}

type PartUsageView struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

type OrderView struct {
	ID                string
	Client            party.Client
	Vehicle           party.Vehicle
	Mechanic          party.Mechanic
	Defect            string
	Status            string
	OpenedAt          time.Time
	ClosedAt          *time.Time
	CancelReason      string
	Parts             []PartUsageView
	LaborCharge       decimal.Decimal
	Total             decimal.Decimal
	AllowedOperations []string
}

type ExtractLineView struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

type ExtractView struct {
	OrderID    string
	Status     string
	Lines      []ExtractLineView
	PartsTotal decimal.Decimal
	Labor      decimal.Decimal
	Total      decimal.Decimal
	Statement  string
}

type ProductView struct {
	ID       uuid.UUID
	Name     string
	Price    decimal.Decimal
	Stock    int
	Supplier string
}

type LedgerEntryView struct {
	ID          uuid.UUID
	Kind        string
	Amount      decimal.Decimal
	Reference   string
	Description string
	RecordedAt  time.Time
}

type LedgerView struct {
	Entries []LedgerEntryView
	Balance decimal.Decimal
}

func newAppointmentView(a *agenda.Appointment, hours agenda.Hours) *AppointmentView {
	if a == nil {
		return nil
	}
	idx, _ := hours.SlotIndex(a.Hour())
	v := &AppointmentView{
		ID:          a.ID(),
		Client:      a.Client(),
		Vehicle:     a.Vehicle(),
		Mechanic:    a.Mechanic(),
		ServiceType: a.ServiceType().String(),
		ScheduledAt: a.ScheduledAt(),
		Date:        a.Date().String(),
		Slot:        idx,
	}
	if l := a.Lift(); l != nil {
		id := l.ID()
		v.LiftID = &id
	}
	return v
}

func newOrderView(o *order.ServiceOrder) *OrderView {
	parts := o.Parts()
	v := &OrderView{
		ID:           o.ID().String(),
		Client:       o.Client(),
		Vehicle:      o.Vehicle(),
		Mechanic:     o.Mechanic(),
		Defect:       o.Defect(),
		Status:       o.Status().String(),
		OpenedAt:     o.OpenedAt(),
		ClosedAt:     o.ClosedAt(),
		CancelReason: o.CancelReason(),
		Parts:        make([]PartUsageView, len(parts)),
		LaborCharge:  o.LaborCharge(),
		Total:        order.GenerateExtract(o).Total,
	}
	for i, p := range parts {
		v.Parts[i] = PartUsageView{
			ProductID: p.ProductID(),
			Name:      p.Name(),
			Quantity:  p.Quantity(),
			UnitPrice: p.UnitPrice(),
			Subtotal:  p.Subtotal(),
		}
	}
	for _, op := range order.AllowedOperations(o.Status()) {
		v.AllowedOperations = append(v.AllowedOperations, op.String())
	}
	return v
}

func newExtractView(ex order.Extract) *ExtractView {
	v := &ExtractView{
		OrderID:    ex.OrderID.String(),
		Status:     ex.Status.String(),
		Lines:      make([]ExtractLineView, len(ex.Lines)),
		PartsTotal: ex.PartsTotal,
		Labor:      ex.Labor,
		Total:      ex.Total,
		Statement:  ex.Statement(),
	}
	for i, l := range ex.Lines {
		v.Lines[i] = ExtractLineView(l)
	}
	return v
}

func newProductView(p *catalog.Product) *ProductView {
	return &ProductView{
		ID:       p.ID(),
		Name:     p.Name(),
		Price:    p.Price(),
		Stock:    p.Stock(),
		Supplier: p.Supplier(),
	}
}

func newLedgerView(entries []*finance.Entry) *LedgerView {
	v := &LedgerView{
		Entries: make([]LedgerEntryView, len(entries)),
		Balance: finance.Balance(entries),
	}
	for i, e := range entries {
		v.Entries[i] = LedgerEntryView{
			ID:          e.ID(),
			Kind:        e.Kind().String(),
			Amount:      e.Amount(),
			Reference:   e.Reference(),
			Description: e.Description(),
			RecordedAt:  e.RecordedAt(),
		}
	}
	return v
}
