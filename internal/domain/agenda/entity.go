package agenda

import (
	"time"

	"repairshop/internal/domain/party"

	"github.com/google/uuid"
)

type Appointment struct {
	id          uuid.UUID
	client      party.Client
	vehicle     party.Vehicle
	mechanic    party.Mechanic
	serviceType ServiceType
	lift        *Lift
	scheduledAt time.Time
}

func NewAppointment(id uuid.UUID, client party.Client, vehicle party.Vehicle, mechanic party.Mechanic, serviceType ServiceType, lift *Lift, scheduledAt time.Time) (*Appointment, error) {
	switch {
	case client.IsZero():
		return nil, ErrMissingClient
	case vehicle.IsZero():
		return nil, ErrMissingVehicle
	case mechanic.IsZero():
		return nil, ErrMissingMechanic
	case scheduledAt.IsZero():
		return nil, ErrMissingSchedule
	case !serviceType.IsValid():
		return nil, ErrInvalidServiceType
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Appointment{
		id:          id,
		client:      client,
		vehicle:     vehicle,
		mechanic:    mechanic,
		serviceType: serviceType,
		lift:        copyLift(lift),
		scheduledAt: scheduledAt,
	}, nil
}

func ReconstructAppointment(id uuid.UUID, client party.Client, vehicle party.Vehicle, mechanic party.Mechanic, serviceType ServiceType, lift *Lift, scheduledAt time.Time) *Appointment {
	return &Appointment{
		id:          id,
		client:      client,
		vehicle:     vehicle,
		mechanic:    mechanic,
		serviceType: serviceType,
		lift:        copyLift(lift),
		scheduledAt: scheduledAt,
	}
}

func (a *Appointment) ID() uuid.UUID            { return a.id }
func (a *Appointment) Client() party.Client     { return a.client }
func (a *Appointment) Vehicle() party.Vehicle   { return a.vehicle }
func (a *Appointment) Mechanic() party.Mechanic { return a.mechanic }
func (a *Appointment) ServiceType() ServiceType { return a.serviceType }
func (a *Appointment) ScheduledAt() time.Time   { return a.scheduledAt }
func (a *Appointment) Date() Date               { return DateOf(a.scheduledAt) }
func (a *Appointment) Lift() *Lift              { return copyLift(a.lift) }

// Hour is the whole hour used for slot placement; minutes are dropped.
func (a *Appointment) Hour() int { return a.scheduledAt.Hour() }

// Equals compares identity, not field values.
func (a *Appointment) Equals(other *Appointment) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.id == other.id
}

func copyLift(l *Lift) *Lift {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}
