//go:build unit || e2e

package builder

import (
	"time"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/domain/party"
	reqdto "repairshop/internal/handler/dto/request"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID          uuid.UUID
	Client      party.Client
	Vehicle     party.Vehicle
	Mechanic    party.Mechanic
	ServiceType string
	LiftID      *int
	ScheduledAt time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	lift := 1
	return &AppointmentBuilder{
		Client:      party.Client{ID: uuid.New(), Name: "Ana Souza", Phone: "+55 11 98888-7777"},
		Vehicle:     party.Vehicle{Plate: "BRA2E19", Model: "Onix"},
		Mechanic:    party.Mechanic{ID: uuid.New(), Name: "Carlos"},
		ServiceType: string(agenda.ServiceRepair),
		LiftID:      &lift,
		ScheduledAt: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithHour(hour int) *AppointmentBuilder {
	t := b.ScheduledAt
	b.ScheduledAt = time.Date(t.Year(), t.Month(), t.Day(), hour, t.Minute(), 0, 0, t.Location())
	return b
}

func (b *AppointmentBuilder) WithDay(year int, month time.Month, day int) *AppointmentBuilder {
	t := b.ScheduledAt
	b.ScheduledAt = time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, t.Location())
	return b
}

func (b *AppointmentBuilder) WithClient(c party.Client) *AppointmentBuilder {
	b.Client = c
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() (*agenda.Appointment, error) {
	st, err := agenda.ParseServiceType(b.ServiceType)
	if err != nil {
		return nil, err
	}
	var lift *agenda.Lift
	if b.LiftID != nil {
		l, err := agenda.NewLift(*b.LiftID)
		if err != nil {
			return nil, err
		}
		lift = &l
	}
	return agenda.NewAppointment(b.ID, b.Client, b.Vehicle, b.Mechanic, st, lift, b.ScheduledAt)
}

// MustBuildDomain is for fixtures whose defaults are known to be valid.
func (b *AppointmentBuilder) MustBuildDomain() *agenda.Appointment {
	a, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return a
}

func (b *AppointmentBuilder) BuildRequestDTO() reqdto.BookAppointmentRequest {
	return reqdto.BookAppointmentRequest{
		Client:      reqdto.ClientRequest{ID: b.Client.ID, Name: b.Client.Name, Phone: b.Client.Phone},
		Vehicle:     reqdto.VehicleRequest{Plate: b.Vehicle.Plate, Model: b.Vehicle.Model},
		ServiceType: b.ServiceType,
		LiftID:      b.LiftID,
		ScheduledAt: b.ScheduledAt,
	}
}
