package agenda

import (
	"fmt"
	"time"
)

const (
	MinLiftID = 1
	MaxLiftID = 3
)

type Lift struct {
	id int
}

func NewLift(id int) (Lift, error) {
	if id < MinLiftID || id > MaxLiftID {
		return Lift{}, ErrInvalidLift
	}
	return Lift{id: id}, nil
}

func (l Lift) ID() int { return l.id }

// Date is a calendar day without time or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Hours are two half-open whole-hour ranges: [MorningStart, MorningEnd) and
// [AfternoonStart, AfternoonEnd).
type Hours struct {
	MorningStart   int
	MorningEnd     int
	AfternoonStart int
	AfternoonEnd   int
}

func DefaultHours() Hours {
	return Hours{MorningStart: 8, MorningEnd: 12, AfternoonStart: 14, AfternoonEnd: 18}
}

func (h Hours) Validate() error {
	switch {
	case h.MorningStart < 0 || h.AfternoonEnd > 24:
		return ErrInvalidHours
	case h.MorningEnd <= h.MorningStart:
		return ErrInvalidHours
	case h.AfternoonEnd <= h.AfternoonStart:
		return ErrInvalidHours
	case h.AfternoonStart < h.MorningEnd:
		return ErrInvalidHours
	}
	return nil
}

func (h Hours) morningSlots() int {
	return h.MorningEnd - h.MorningStart
}

// Len is the number of slots in a day.
func (h Hours) Len() int {
	return h.morningSlots() + (h.AfternoonEnd - h.AfternoonStart)
}

// SlotIndex maps a whole hour to its slot. Hours outside both ranges have no slot.
func (h Hours) SlotIndex(hour int) (int, bool) {
	switch {
	case hour >= h.MorningStart && hour < h.MorningEnd:
		return hour - h.MorningStart, true
	case hour >= h.AfternoonStart && hour < h.AfternoonEnd:
		return (hour - h.AfternoonStart) + h.morningSlots(), true
	default:
		return -1, false
	}
}

// HourOf is the inverse of SlotIndex.
func (h Hours) HourOf(index int) (int, bool) {
	switch {
	case index < 0 || index >= h.Len():
		return -1, false
	case index < h.morningSlots():
		return h.MorningStart + index, true
	default:
		return h.AfternoonStart + index - h.morningSlots(), true
	}
}
