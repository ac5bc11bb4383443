package converter

import (
	"fmt"
	"time"

	"repairshop/internal/domain/catalog"
	"repairshop/internal/domain/finance"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDoc struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Supplier string          `json:"supplier,omitempty"`
}

func ProductToDoc(p *catalog.Product) ProductDoc {
	return ProductDoc{
		ID:       p.ID(),
		Name:     p.Name(),
		Price:    p.Price(),
		Stock:    p.Stock(),
		Supplier: p.Supplier(),
	}
}

func ProductFromDoc(doc ProductDoc) *catalog.Product {
	return catalog.ReconstructProduct(doc.ID, doc.Name, doc.Price, doc.Stock, doc.Supplier)
}

type EntryDoc struct {
	ID          uuid.UUID       `json:"id"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	RecordedAt  string          `json:"recorded_at"`
}

func EntryToDoc(e *finance.Entry) EntryDoc {
	return EntryDoc{
		ID:          e.ID(),
		Kind:        e.Kind().String(),
		Amount:      e.Amount(),
		Reference:   e.Reference(),
		Description: e.Description(),
		RecordedAt:  e.RecordedAt().Format(time.RFC3339),
	}
}

func EntryFromDoc(doc EntryDoc) (*finance.Entry, error) {
	kind := finance.Kind(doc.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("ledger entry %s: %w", doc.ID, finance.ErrInvalidKind)
	}
	at, err := time.Parse(time.RFC3339, doc.RecordedAt)
	if err != nil {
		return nil, fmt.Errorf("ledger entry %s: invalid recorded_at: %w", doc.ID, err)
	}
	return finance.ReconstructEntry(doc.ID, kind, doc.Amount, doc.Reference, doc.Description, at), nil
}
