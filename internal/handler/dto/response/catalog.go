package response

import (
	"time"

	"repairshop/internal/usecase"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Price    string    `json:"price"`
	Stock    int       `json:"stock"`
	Supplier string    `json:"supplier"`
}

type LedgerEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Reference   string    `json:"reference"`
	Description string    `json:"description"`
	RecordedAt  time.Time `json:"recorded_at"`
}

type LedgerResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Balance string                `json:"balance"`
}

func FromProductView(v *usecase.ProductView) *ProductResponse {
	res := &ProductResponse{}
	copyView(res, v)
	return res
}

func FromProductList(items []*usecase.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(items))
	for i, it := range items {
		res[i] = FromProductView(it)
	}
	return res
}

func FromLedgerView(v *usecase.LedgerView) *LedgerResponse {
	res := &LedgerResponse{}
	copyView(res, v)
	if res.Entries == nil {
		res.Entries = []LedgerEntryResponse{}
	}
	return res
}
