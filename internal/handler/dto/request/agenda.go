package request

import (
	"time"

	"repairshop/internal/domain/party"
	"repairshop/internal/pkg/patch"
	"repairshop/internal/usecase"

	"github.com/google/uuid"
)

type ClientRequest struct {
	ID    uuid.UUID `json:"id" binding:"required"`
	Name  string    `json:"name" binding:"required,max=200"`
	Phone string    `json:"phone" binding:"max=40"`
}

type VehicleRequest struct {
	Plate string `json:"plate" binding:"required,max=20"`
	Model string `json:"model" binding:"max=100"`
}

type MechanicRequest struct {
	ID   uuid.UUID `json:"id" binding:"required"`
	Name string    `json:"name" binding:"max=200"`
}

func (m *MechanicRequest) toParty() *party.Mechanic {
	if m == nil {
		return nil
	}
	return &party.Mechanic{ID: m.ID, Name: m.Name}
}

type BookAppointmentRequest struct {
	Client      ClientRequest    `json:"client" binding:"required"`
	Vehicle     VehicleRequest   `json:"vehicle" binding:"required"`
	Mechanic    *MechanicRequest `json:"mechanic"`
	ServiceType string           `json:"service_type" binding:"required"`
	LiftID      *int             `json:"lift_id" binding:"omitempty,min=1,max=3"`
	ScheduledAt time.Time        `json:"scheduled_at" binding:"required"`
}

// ToParams falls back to the authenticated mechanic when the body names none.
func (r *BookAppointmentRequest) ToParams(session party.Mechanic) usecase.BookAppointmentParams {
	return usecase.BookAppointmentParams{
		Client:      party.Client{ID: r.Client.ID, Name: r.Client.Name, Phone: r.Client.Phone},
		Vehicle:     party.Vehicle{Plate: r.Vehicle.Plate, Model: r.Vehicle.Model},
		Mechanic:    patch.Coalesce(r.Mechanic.toParty(), session),
		ServiceType: r.ServiceType,
		LiftID:      r.LiftID,
		ScheduledAt: r.ScheduledAt,
	}
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}
