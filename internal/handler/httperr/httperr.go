package httperr

import (
	"net/http"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/domain/catalog"
	"repairshop/internal/domain/finance"
	"repairshop/internal/domain/order"
	"repairshop/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError picks the status for a usecase error. Client errors
// carry the domain message; anything else is reported as an internal error.
func AbortWithDomainError(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, DetailOf(err))
}

// DetailOf gives the machine-readable detail attached to soft failures.
func DetailOf(err error) any {
	if errs.Is(err, catalog.ErrInsufficientStock) {
		return gin.H{"reason": "insufficient_stock"}
	}
	return nil
}

var conflicts = []error{
	order.ErrInvalidOperation,
	order.ErrCancelFinalized,
	order.ErrAlreadyCancelled,
	agenda.ErrSlotTaken,
	agenda.ErrSlotEmpty,
	agenda.ErrOccupantMismatch,
	catalog.ErrInsufficientStock,
}

// Stored data the server can no longer read is its own fault.
var internal = []error{
	errs.ErrPersistenceFailed,
	order.ErrUnknownStatus,
}

var notFound = []error{
	errs.ErrAppointmentNotFound,
	errs.ErrOrderNotFound,
	errs.ErrProductNotFound,
	agenda.ErrRowNotFound,
}

var unprocessable = []error{
	errs.ErrDomainValidation,
	agenda.ErrInvalidServiceType,
	agenda.ErrInvalidLift,
	agenda.ErrMissingClient,
	agenda.ErrMissingVehicle,
	agenda.ErrMissingMechanic,
	agenda.ErrMissingSchedule,
	agenda.ErrHourOutOfRange,
	catalog.ErrEmptyName,
	catalog.ErrInvalidPrice,
	catalog.ErrNegativeStock,
	catalog.ErrInvalidQuantity,
	order.ErrMissingID,
	order.ErrBlankDefect,
	order.ErrNegativeLabor,
	order.ErrMissingClient,
	order.ErrMissingVehicle,
	order.ErrMissingMechanic,
	finance.ErrInvalidAmount,
}

func StatusOf(err error) int {
	switch {
	case isAny(err, internal):
		return http.StatusInternalServerError
	case isAny(err, notFound):
		return http.StatusNotFound
	case isAny(err, conflicts):
		return http.StatusConflict
	case isAny(err, unprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errs.Is(err, t) {
			return true
		}
	}
	return false
}
