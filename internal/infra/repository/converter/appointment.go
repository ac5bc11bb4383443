package converter

import (
	"fmt"
	"time"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/domain/party"

	"github.com/google/uuid"
)

type AppointmentDoc struct {
	ID          uuid.UUID      `json:"id"`
	Client      party.Client   `json:"client"`
	Vehicle     party.Vehicle  `json:"vehicle"`
	Mechanic    party.Mechanic `json:"mechanic"`
	ServiceType string         `json:"service_type"`
	LiftID      *int           `json:"lift_id,omitempty"`
	ScheduledAt string         `json:"scheduled_at"`
}

// GridDoc stores each day as a fixed-length array; empty slots are null.
type GridDoc struct {
	Rows map[string][]*AppointmentDoc `json:"rows"`
}

func AppointmentToDoc(a *agenda.Appointment) *AppointmentDoc {
	if a == nil {
		return nil
	}
	doc := &AppointmentDoc{
		ID:          a.ID(),
		Client:      a.Client(),
		Vehicle:     a.Vehicle(),
		Mechanic:    a.Mechanic(),
		ServiceType: a.ServiceType().String(),
		ScheduledAt: a.ScheduledAt().Format(time.RFC3339),
	}
	if l := a.Lift(); l != nil {
		id := l.ID()
		doc.LiftID = &id
	}
	return doc
}

func AppointmentFromDoc(doc *AppointmentDoc) (*agenda.Appointment, error) {
	if doc == nil {
		return nil, nil
	}
	st, err := agenda.ParseServiceType(doc.ServiceType)
	if err != nil {
		return nil, fmt.Errorf("appointment %s: %w", doc.ID, err)
	}
	at, err := time.Parse(time.RFC3339, doc.ScheduledAt)
	if err != nil {
		return nil, fmt.Errorf("appointment %s: invalid scheduled_at: %w", doc.ID, err)
	}
	var lift *agenda.Lift
	if doc.LiftID != nil {
		l, err := agenda.NewLift(*doc.LiftID)
		if err != nil {
			return nil, fmt.Errorf("appointment %s: %w", doc.ID, err)
		}
		lift = &l
	}
	return agenda.ReconstructAppointment(doc.ID, doc.Client, doc.Vehicle, doc.Mechanic, st, lift, at), nil
}

func GridToDoc(g *agenda.SlotGrid) GridDoc {
	doc := GridDoc{Rows: make(map[string][]*AppointmentDoc)}
	for date, row := range g.Rows() {
		docs := make([]*AppointmentDoc, len(row))
		for i, a := range row {
			docs[i] = AppointmentToDoc(a)
		}
		doc.Rows[date.String()] = docs
	}
	return doc
}

func GridFromDoc(hours agenda.Hours, doc GridDoc) (*agenda.SlotGrid, []*agenda.Appointment, error) {
	rows := make(map[agenda.Date][]*agenda.Appointment, len(doc.Rows))
	for key, docs := range doc.Rows {
		date, err := agenda.ParseDate(key)
		if err != nil {
			return nil, nil, err
		}
		row := make([]*agenda.Appointment, len(docs))
		for i, d := range docs {
			a, err := AppointmentFromDoc(d)
			if err != nil {
				return nil, nil, err
			}
			row[i] = a
		}
		rows[date] = row
	}
	return agenda.ReconstructSlotGrid(hours, rows)
}
