//go:build e2e

package workshop_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "repairshop/internal/handler/dto/response"
	"repairshop/tests/common/httptest"
	"repairshop/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type WorkshopE2ETestSuite struct {
	e2e.SharedSuite
}

func TestWorkshopE2ESuite(t *testing.T) {
	suite.Run(t, new(WorkshopE2ETestSuite))
}

func (s *WorkshopE2ETestSuite) bookingBody(at time.Time) map[string]any {
	return map[string]any{
		"client":       map[string]any{"id": uuid.New().String(), "name": "Ana", "phone": "+55 11 99999-0000"},
		"vehicle":      map[string]any{"plate": "ABC1D23", "model": "Gol"},
		"service_type": "repair",
		"lift_id":      2,
		"scheduled_at": at.Format(time.RFC3339),
	}
}

func (s *WorkshopE2ETestSuite) TestFullOrderLifecycle() {
	day := time.Now().AddDate(0, 0, 7)
	at := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	var product resdto.ProductResponse
	rec := httptest.PerformRequest(s.T(), s.App.Router, http.MethodPost, "/api/products",
		map[string]any{"name": "Oil filter", "price": "12.50", "stock": 10, "supplier": "Acme"}, s.Token)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &product)

	var appt resdto.AppointmentResponse
	rec = httptest.PerformRequest(s.T(), s.App.Router, http.MethodPost, "/api/appointments", s.bookingBody(at), s.Token)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &appt)
	s.Equal(1, appt.Slot)
	s.Equal(s.Mechanic.ID, appt.Mechanic.ID)

	s.Run("second booking at the same hour is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.App.Router, http.MethodPost, "/api/appointments", s.bookingBody(at), s.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "slot is already taken")
	})

	var opened resdto.OpenOrderResponse
	rec = httptest.PerformRequest(s.T(), s.App.Router, http.MethodPost, "/api/orders",
		map[string]any{"appointment_id": appt.ID.String(), "defect": "Engine noise"}, s.Token)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &opened)
	s.True(opened.OrderSaved)
	s.True(opened.SlotReleased)
	s.Equal("OS-0001", opened.Order.ID)
	s.Equal("Waiting", opened.Order.Status)

	orderPath := "/api/orders/" + opened.Order.ID
	for _, step := range []string{"/inspection", "/service"} {
		rec = httptest.PerformRequest(s.T(), s.App.Router, http.MethodPost, orderPath+step, nil, s.Token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	}

	rec = httptest.PerformRequest(s.T(), s.App.Router, http.MethodPost, orderPath+"/parts",
		map[string]any{"product_id": product.ID.String(), "quantity": 3}, s.Token)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	s.Run("adding more than the stock is a conflict", func() {
		rec := httptest.PerformRequest(s.T(), s.App.Router, http.MethodPost, orderPath+"/parts",
			map[string]any{"product_id": product.ID.String(), "quantity": 8}, s.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "insufficient stock")
	})

	var finished resdto.OrderResponse
	rec = httptest.PerformRequest(s.T(), s.App.Router, http.MethodPost, orderPath+"/finish", nil, s.Token)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &finished)
	s.Equal("Finalized", finished.Status)
	s.Equal("187.50", finished.Total)

	s.Run("state survives a restart", func() {
		s.Restart()

		var extract resdto.ExtractResponse
		rec := httptest.PerformRequest(s.T(), s.App.Router, http.MethodGet, orderPath+"/extract", nil, s.Token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &extract)
		s.Equal("37.50", extract.PartsTotal)
		s.Equal("187.50", extract.Total)

		var products struct {
			Products []resdto.ProductResponse `json:"products"`
		}
		rec = httptest.PerformRequest(s.T(), s.App.Router, http.MethodGet, "/api/products", nil, s.Token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &products)
		s.Require().Len(products.Products, 1)
		s.Equal(7, products.Products[0].Stock)

		var ledger resdto.LedgerResponse
		rec = httptest.PerformRequest(s.T(), s.App.Router, http.MethodGet, "/api/ledger", nil, s.Token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ledger)
		s.Len(ledger.Entries, 2)
		s.Equal("178.12", ledger.Balance)

		rec = httptest.PerformRequest(s.T(), s.App.Router, http.MethodPost, orderPath+"/cancel", nil, s.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "finalized")
	})
}

func (s *WorkshopE2ETestSuite) TestDocumentsLandInPostgres() {
	day := time.Now().AddDate(0, 0, 3)
	at := time.Date(day.Year(), day.Month(), day.Day(), 14, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	rec := httptest.PerformRequest(s.T(), s.App.Router, http.MethodPost, "/api/appointments", s.bookingBody(at), s.Token)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

	pool := s.OpenPool()
	var rows int
	err := pool.QueryRow(context.Background(),
		`SELECT jsonb_array_length(body->'rows'->$1::text) FROM documents WHERE key = 'appointments'`,
		fmt.Sprintf("%04d-%02d-%02d", day.Year(), day.Month(), day.Day())).Scan(&rows)
	s.Require().NoError(err)
	s.Equal(8, rows)
}

func (s *WorkshopE2ETestSuite) TestRequiresToken() {
	rec := httptest.PerformRequest(s.T(), s.App.Router, http.MethodGet, "/api/orders", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")

	rec = httptest.PerformRequest(s.T(), s.App.Router, http.MethodGet, "/health", nil, "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}
