package request

import (
	"repairshop/internal/domain/party"
	"repairshop/internal/usecase"

	"github.com/google/uuid"
)

type OpenOrderRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" binding:"required"`
	Defect        string    `json:"defect" binding:"required,max=1000"`
}

func (r *OpenOrderRequest) ToParams(session party.Mechanic) usecase.OpenOrderParams {
	return usecase.OpenOrderParams{
		AppointmentID: r.AppointmentID,
		Defect:        r.Defect,
		Mechanic:      session,
	}
}

type AddPartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}
