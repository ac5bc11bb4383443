package agenda

import (
	"sort"

	"github.com/google/uuid"
)

// SlotGrid is the per-day schedule. A row is created on first booking and
// stays in place after all of its slots are released.
type SlotGrid struct {
	hours Hours
	rows  map[Date][]*Appointment
}

func NewSlotGrid(hours Hours) (*SlotGrid, error) {
	if err := hours.Validate(); err != nil {
		return nil, err
	}
	return &SlotGrid{hours: hours, rows: make(map[Date][]*Appointment)}, nil
}

// ReconstructSlotGrid rebuilds a grid from persisted rows. Each appointment is
// placed by its own hour under the given hours, so rows saved under a
// different configuration land in the right slot. Appointments whose hour is
// outside the configured periods, or whose slot is already held, are returned
// as unplaced instead of being kept.
func ReconstructSlotGrid(hours Hours, rows map[Date][]*Appointment) (*SlotGrid, []*Appointment, error) {
	g, err := NewSlotGrid(hours)
	if err != nil {
		return nil, nil, err
	}
	var unplaced []*Appointment
	for date, row := range rows {
		if _, ok := g.rows[date]; !ok {
			g.rows[date] = make([]*Appointment, hours.Len())
		}
		for _, a := range row {
			if a == nil {
				continue
			}
			idx, ok := hours.SlotIndex(a.Hour())
			if !ok {
				unplaced = append(unplaced, a)
				continue
			}
			target, exists := g.rows[a.Date()]
			if !exists {
				target = make([]*Appointment, hours.Len())
				g.rows[a.Date()] = target
			}
			if target[idx] != nil {
				unplaced = append(unplaced, a)
				continue
			}
			target[idx] = a
		}
	}
	return g, unplaced, nil
}

func (g *SlotGrid) Hours() Hours { return g.hours }

func (g *SlotGrid) Reserve(appt *Appointment) error {
	idx, ok := g.hours.SlotIndex(appt.Hour())
	if !ok {
		return ErrHourOutOfRange
	}

	date := appt.Date()
	row, exists := g.rows[date]
	if exists && row[idx] != nil {
		return ErrSlotTaken
	}
	if !exists {
		row = make([]*Appointment, g.hours.Len())
		g.rows[date] = row
	}
	row[idx] = appt
	return nil
}

func (g *SlotGrid) Release(appt *Appointment) error {
	row, exists := g.rows[appt.Date()]
	if !exists {
		return ErrRowNotFound
	}
	idx, ok := g.hours.SlotIndex(appt.Hour())
	if !ok {
		return ErrHourOutOfRange
	}
	switch {
	case row[idx] == nil:
		return ErrSlotEmpty
	case !row[idx].Equals(appt):
		return ErrOccupantMismatch
	}
	row[idx] = nil
	return nil
}

func (g *SlotGrid) SlotsForDay(date Date) []*Appointment {
	out := make([]*Appointment, g.hours.Len())
	copy(out, g.rows[date])
	return out
}

func (g *SlotGrid) BookedDates() []Date {
	dates := make([]Date, 0, len(g.rows))
	for d := range g.rows {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func (g *SlotGrid) Find(id uuid.UUID) (*Appointment, bool) {
	for _, row := range g.rows {
		for _, a := range row {
			if a != nil && a.ID() == id {
				return a, true
			}
		}
	}
	return nil, false
}

// OnDate lists the occupied slots of a day in slot order.
func (g *SlotGrid) OnDate(date Date) []*Appointment {
	var out []*Appointment
	for _, a := range g.rows[date] {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

func (g *SlotGrid) ForClient(clientID uuid.UUID) []*Appointment {
	var out []*Appointment
	for _, d := range g.BookedDates() {
		for _, a := range g.rows[d] {
			if a != nil && a.Client().ID == clientID {
				out = append(out, a)
			}
		}
	}
	return out
}

// Rows returns a copy of every row, for persistence.
func (g *SlotGrid) Rows() map[Date][]*Appointment {
	out := make(map[Date][]*Appointment, len(g.rows))
	for d := range g.rows {
		out[d] = g.SlotsForDay(d)
	}
	return out
}
