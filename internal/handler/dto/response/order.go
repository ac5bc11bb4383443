package response

import (
	"time"

	"repairshop/internal/domain/party"
	"repairshop/internal/usecase"

	"github.com/google/uuid"
)

type PartUsageResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unit_price"`
	Subtotal  string    `json:"subtotal"`
}

type OrderResponse struct {
	ID                string              `json:"id"`
	Client            party.Client        `json:"client"`
	Vehicle           party.Vehicle       `json:"vehicle"`
	Mechanic          party.Mechanic      `json:"mechanic"`
	Defect            string              `json:"defect"`
	Status            string              `json:"status"`
	OpenedAt          time.Time           `json:"opened_at"`
	ClosedAt          *time.Time          `json:"closed_at,omitempty"`
	CancelReason      string              `json:"cancel_reason,omitempty"`
	Parts             []PartUsageResponse `json:"parts"`
	LaborCharge       string              `json:"labor_charge"`
	Total             string              `json:"total"`
	AllowedOperations []string            `json:"allowed_operations"`
}

type OpenOrderResponse struct {
	Order         *OrderResponse `json:"order"`
	OrderSaved    bool           `json:"order_saved"`
	SaveDetail    string         `json:"save_detail,omitempty"`
	SlotReleased  bool           `json:"slot_released"`
	ReleaseDetail string         `json:"release_detail,omitempty"`
}

type StatusResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type ExtractLineResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type ExtractResponse struct {
	OrderID    string                `json:"order_id"`
	Status     string                `json:"status"`
	Lines      []ExtractLineResponse `json:"lines"`
	PartsTotal string                `json:"parts_total"`
	Labor      string                `json:"labor"`
	Total      string                `json:"total"`
	Statement  string                `json:"statement"`
}

func FromOrderView(v *usecase.OrderView) *OrderResponse {
	res := &OrderResponse{}
	copyView(res, v)
	if res.Parts == nil {
		res.Parts = []PartUsageResponse{}
	}
	if res.AllowedOperations == nil {
		res.AllowedOperations = []string{}
	}
	return res
}

func FromOrderList(items []*usecase.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(items))
	for i, it := range items {
		res[i] = FromOrderView(it)
	}
	return res
}

func FromOpenOrderResult(r *usecase.OpenOrderResult) *OpenOrderResponse {
	return &OpenOrderResponse{
		Order:         FromOrderView(r.Order),
		OrderSaved:    r.OrderSaved,
		SaveDetail:    r.SaveDetail,
		SlotReleased:  r.SlotReleased,
		ReleaseDetail: r.ReleaseDetail,
	}
}

func FromExtractView(v *usecase.ExtractView) *ExtractResponse {
	res := &ExtractResponse{}
	copyView(res, v)
	return res
}
