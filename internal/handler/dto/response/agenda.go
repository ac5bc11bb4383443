package response

import (
	"time"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/domain/party"
	"repairshop/internal/usecase"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID          uuid.UUID      `json:"id"`
	Client      party.Client   `json:"client"`
	Vehicle     party.Vehicle  `json:"vehicle"`
	Mechanic    party.Mechanic `json:"mechanic"`
	ServiceType string         `json:"service_type"`
	LiftID      *int           `json:"lift_id,omitempty"`
	ScheduledAt time.Time      `json:"scheduled_at"`
	Date        string         `json:"date"`
	Slot        int            `json:"slot"`
}

type SlotResponse struct {
	Index       int                  `json:"index"`
	Hour        int                  `json:"hour"`
	Appointment *AppointmentResponse `json:"appointment"`
}

type DayScheduleResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type CancelAppointmentResponse struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	FeeCharged    bool      `json:"fee_charged"`
	Fee           string    `json:"fee"`
}

type BookedDatesResponse struct {
	Dates []string `json:"dates"`
}

func FromAppointmentView(v *usecase.AppointmentView) *AppointmentResponse {
	res := &AppointmentResponse{}
	copyView(res, v)
	return res
}

func FromAppointmentList(items []*usecase.AppointmentView) []*AppointmentResponse {
	res := make([]*AppointmentResponse, len(items))
	for i, it := range items {
		res[i] = FromAppointmentView(it)
	}
	return res
}

func FromDayScheduleView(v *usecase.DayScheduleView) *DayScheduleResponse {
	res := &DayScheduleResponse{}
	copyView(res, v)
	return res
}

func FromCancelAppointmentResult(r *usecase.CancelAppointmentResult) *CancelAppointmentResponse {
	res := &CancelAppointmentResponse{}
	copyView(res, r)
	return res
}

func FromBookedDates(dates []agenda.Date) *BookedDatesResponse {
	res := &BookedDatesResponse{Dates: make([]string, len(dates))}
	for i, d := range dates {
		res.Dates[i] = d.String()
	}
	return res
}
