package api

import (
	"errors"
	"net/http"

	"repairshop/internal/domain/agenda"
	reqdto "repairshop/internal/handler/dto/request"
	resdto "repairshop/internal/handler/dto/response"
	"repairshop/internal/handler/httperr"
	"repairshop/internal/handler/middleware"
	"repairshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoMechanic = errors.New("no mechanic in session")

type AppointmentHandler struct {
	cmds usecase.AppointmentCommands
	q    usecase.WorkshopQueries
}

func NewAppointmentHandler(cmds usecase.AppointmentCommands, q usecase.WorkshopQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Book appointment
// @Description Reserve the slot at the requested date and hour
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookAppointmentRequest true "Book appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	mechanic, ok := middleware.GetMechanic(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoMechanic, "Unauthorized", nil)
		return
	}
	var req reqdto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.BookAppointment(c.Request.Context(), req.ToParams(mechanic))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Search appointments
// @Description List appointments of one day or of one client; exactly one filter is required
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param client_id query string false "Client ID"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Router /appointments [get]
func (h *AppointmentHandler) Search(c *gin.Context) {
	var search usecase.AppointmentSearch
	if v := c.Query("date"); v != "" {
		d, err := agenda.ParseDate(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
			return
		}
		search.Date = &d
	}
	if v := c.Query("client_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid client id", nil)
			return
		}
		search.ClientID = &id
	}
	items, err := h.q.SearchAppointments(c.Request.Context(), search)
	if errors.Is(err, usecase.ErrInvalidSearch) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": resdto.FromAppointmentList(items)})
}

// @Summary Release appointment
// @Description Free the appointment's slot without any charge
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Release(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.ReleaseAppointment(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel appointment
// @Description Free the slot; a same-day cancellation books a fee in the ledger
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.CancelRequest false "Cancellation reason"
// @Success 200 {object} resdto.CancelAppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.CancelRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}
	result, err := h.cmds.CancelAppointment(c.Request.Context(), id, req.Reason)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelAppointmentResult(result))
}

// @Summary Day schedule
// @Description Slots of one day in hour order, empty slots included
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayScheduleResponse
// @Failure 400 {object} httperr.Response
// @Router /schedule/{date} [get]
func (h *AppointmentHandler) DaySchedule(c *gin.Context) {
	date, err := agenda.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	view, err := h.q.SlotsForDay(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayScheduleView(view))
}

// @Summary Booked dates
// @Description Dates that have a schedule row, ascending
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookedDatesResponse
// @Router /schedule/booked-dates [get]
func (h *AppointmentHandler) BookedDates(c *gin.Context) {
	dates, err := h.q.BookedDates(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookedDates(dates))
}
