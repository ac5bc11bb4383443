package agenda

import "errors"

var (
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidLift        = errors.New("lift id must be between 1 and 3")
	ErrMissingClient      = errors.New("appointment requires a client")
	ErrMissingVehicle     = errors.New("appointment requires a vehicle")
	ErrMissingMechanic    = errors.New("appointment requires a mechanic")
	ErrMissingSchedule    = errors.New("appointment requires a date and time")
	ErrInvalidHours       = errors.New("invalid workshop hours")

	ErrHourOutOfRange   = errors.New("hour is outside workshop hours")
	ErrSlotTaken        = errors.New("slot is already taken")
	ErrRowNotFound      = errors.New("no schedule for that date")
	ErrSlotEmpty        = errors.New("slot is empty")
	ErrOccupantMismatch = errors.New("slot is held by a different appointment")
)

type ServiceType string

const (
	ServiceAlignment  ServiceType = "alignment"
	ServiceBalancing  ServiceType = "balancing"
	ServiceOilChange  ServiceType = "oil_change"
	ServiceInspection ServiceType = "inspection"
	ServiceRepair     ServiceType = "repair"
)

func (s ServiceType) String() string {
	return string(s)
}

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceAlignment, ServiceBalancing, ServiceOilChange, ServiceInspection, ServiceRepair:
		return true
	default:
		return false
	}
}

func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(s)
	if !st.IsValid() {
		return "", ErrInvalidServiceType
	}
	return st, nil
}
